package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mamora-sema/Food-diary/services"
)

func GetSync(c *gin.Context) {
	snapshot, err := services.GetSyncSnapshot(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": snapshot})
}

func PostSync(c *gin.Context) {
	var push services.SyncPush
	if err := c.ShouldBindJSON(&push); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := services.ApplySync(currentUserID(c), push)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"created_products": created,
	})
}
