package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mamora-sema/Food-diary/services"
)

// queryDate reads ?date=YYYY-MM-DD, defaulting to today.
func queryDate(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return time.Now(), true
	}
	date, err := services.ParseDay(dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

type MealEntryInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	MealType  string  `json:"meal_type" binding:"required"`
	Weight    float64 `json:"weight" binding:"required"`
	Date      string  `json:"date"` // YYYY-MM-DD, today if empty
}

func AddMealEntry(c *gin.Context) {
	var input MealEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if input.Date != "" {
		var err error
		date, err = services.ParseDay(input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
	}

	entry, err := services.AddMealEntry(currentUserID(c),
		input.ProductID, input.MealType, input.Weight, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func DeleteMealEntry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := services.DeleteMealEntry(currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func ListMealEntries(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	entries, err := services.ListMealEntries(currentUserID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func GetDailySummary(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}
	summary, err := services.DailySummary(currentUserID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":    date.Format("2006-01-02"),
		"summary": summary,
	})
}
