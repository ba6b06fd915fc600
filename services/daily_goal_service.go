package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Mamora-sema/Food-diary/config"
	"github.com/Mamora-sema/Food-diary/models"
	"github.com/Mamora-sema/Food-diary/nutrition"
)

// GetOrCreateGoal returns the user's daily goal, creating the row with
// default targets on first access.
func GetOrCreateGoal(userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		def := nutrition.DefaultGoal()
		goal = models.DailyGoal{
			UserID:   userID,
			Calories: def.Calories,
			Protein:  def.Protein,
			Fat:      def.Fat,
			Carbs:    def.Carbs,
		}
		if err := config.DB.Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateGoals stores new macro targets; calories are derived from the
// macros, not taken from the caller.
func UpdateGoals(userID uint, protein, fat, carbs float64) (*models.DailyGoal, error) {
	calories, err := nutrition.CaloriesFromMacros(protein, fat, carbs)
	if err != nil {
		return nil, err
	}

	goal, err := GetOrCreateGoal(userID)
	if err != nil {
		return nil, err
	}

	goal.Protein = protein
	goal.Fat = fat
	goal.Carbs = carbs
	goal.Calories = calories

	if err := config.DB.Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

func upsertGoalTx(tx *gorm.DB, userID uint, values nutrition.Goal) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := tx.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	goal.Calories = values.Calories
	goal.Protein = values.Protein
	goal.Fat = values.Fat
	goal.Carbs = values.Carbs

	if err := tx.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}
