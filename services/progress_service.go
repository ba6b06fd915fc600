package services

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Mamora-sema/Food-diary/config"
	"github.com/Mamora-sema/Food-diary/logger"
	"github.com/Mamora-sema/Food-diary/models"
	"github.com/Mamora-sema/Food-diary/nutrition"
)

// SnapshotDailyProgress writes one daily_progress row per user for the
// given day, upserting so reruns are idempotent. A user whose summary
// cannot be computed (dangling product reference) is logged and
// skipped; the rollup never fails the whole batch for one user.
func SnapshotDailyProgress(day time.Time) error {
	log := logger.L()
	date := dayStart(day)

	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		return err
	}

	for _, user := range users {
		summary, err := DailySummary(user.ID, date)
		if err != nil {
			if errors.Is(err, nutrition.ErrDanglingProduct) {
				log.Warn("skipping progress snapshot",
					zap.Uint("user_id", user.ID),
					zap.Error(err),
				)
				continue
			}
			return err
		}

		dp := models.DailyProgress{
			UserID:   user.ID,
			Date:     date,
			Calories: summary.Total.Calories,
			Protein:  summary.Total.Protein,
			Fat:      summary.Total.Fat,
			Carbs:    summary.Total.Carbs,
		}
		if err := config.DB.
			Where("user_id = ? AND date = ?", user.ID, date).
			Assign(dp).
			FirstOrCreate(&dp).Error; err != nil {
			return err
		}
	}
	return nil
}

func GetProgressHistory(userID uint) ([]models.DailyProgress, error) {
	var history []models.DailyProgress
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&history).Error
	return history, err
}
