package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mamora-sema/Food-diary/nutrition"
	"github.com/Mamora-sema/Food-diary/services"
)

func GetGoals(c *gin.Context) {
	goal, err := services.GetOrCreateGoal(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

type GoalsInput struct {
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
	Carbs   float64 `json:"carbs"`
}

func UpdateGoals(c *gin.Context) {
	var input GoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.UpdateGoals(currentUserID(c), input.Protein, input.Fat, input.Carbs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// GET /goals/recommend?weight=70&activity=moderate
func RecommendGoals(c *gin.Context) {
	weight, err := strconv.ParseFloat(c.Query("weight"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid 'weight' query param"})
		return
	}

	goal, err := nutrition.RecommendGoals(weight, c.Query("activity"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func GetProgressHistory(c *gin.Context) {
	history, err := services.GetProgressHistory(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
