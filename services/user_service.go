package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Mamora-sema/Food-diary/config"
	"github.com/Mamora-sema/Food-diary/models"
	"github.com/Mamora-sema/Food-diary/nutrition"
	"github.com/Mamora-sema/Food-diary/utils"
)

// SetupInput carries the one-time onboarding form: body weight plus
// either an activity level to derive goals from, or manual macros.
type SetupInput struct {
	WeightKg       float64 `json:"weight_kg" binding:"required"`
	Activity       string  `json:"activity"`
	UseRecommended bool    `json:"use_recommended"`
	Protein        float64 `json:"protein"`
	Fat            float64 `json:"fat"`
	Carbs          float64 `json:"carbs"`
}

// CompleteSetup stores the user's weight, writes their goal row
// (recommended or manual, calories always derived from macros), seeds
// the default product catalog on first completion and marks setup
// complete. One transaction.
func CompleteSetup(userID uint, in SetupInput) (*models.DailyGoal, error) {
	var goal *models.DailyGoal
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		var values nutrition.Goal
		var err error
		if in.UseRecommended {
			values, err = nutrition.RecommendGoals(in.WeightKg, in.Activity)
		} else {
			values = nutrition.Goal{Protein: in.Protein, Fat: in.Fat, Carbs: in.Carbs}
			values.Calories, err = nutrition.CaloriesFromMacros(in.Protein, in.Fat, in.Carbs)
		}
		if err != nil {
			return err
		}

		goal, err = upsertGoalTx(tx, userID, values)
		if err != nil {
			return err
		}

		if !user.SetupComplete {
			if err := seedDefaultProducts(tx, userID); err != nil {
				return err
			}
		}

		user.WeightKg = in.WeightKg
		user.SetupComplete = true
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return goal, nil
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"id":             user.ID,
		"username":       user.Username,
		"weight_kg":      user.WeightKg,
		"avatar_url":     user.AvatarURL,
		"setup_complete": user.SetupComplete,
	}, nil
}

func UpdateUserProfile(userID uint, weightKg float64, avatarBase64 string) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}

	if weightKg > 0 {
		user.WeightKg = weightKg
	}
	if avatarBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(avatarBase64, user.Username)
		if err != nil {
			return fmt.Errorf("failed to upload avatar: %w", err)
		}
		user.AvatarURL = url
	}

	return config.DB.Save(&user).Error
}

func ChangePassword(userID uint, current, newPassword, confirm string) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}

	if !utils.CheckPasswordHash(current, user.Password) {
		return errors.New("current password is incorrect")
	}
	if newPassword != confirm {
		return errors.New("passwords do not match")
	}
	if len(newPassword) < 4 {
		return errors.New("password must be at least 4 characters")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return config.DB.Save(&user).Error
}

// DeleteAccount removes the user and every row they own. The caller
// must retype their username to confirm.
func DeleteAccount(userID uint, confirmUsername string) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		if user.Username != confirmUsername {
			return errors.New("username confirmation does not match")
		}

		// Hard deletes: a soft-deleted row would keep the username
		// occupied in its unique index forever.
		if err := tx.Unscoped().
			Where("recipe_id IN (?)", tx.Model(&models.Recipe{}).Select("id").Where("user_id = ?", userID)).
			Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for _, m := range []interface{}{
			&models.Recipe{},
			&models.MealEntry{},
			&models.Product{},
			&models.DailyGoal{},
			&models.DailyProgress{},
		} {
			if err := tx.Unscoped().Where("user_id = ?", userID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(&user).Error
	})
}
