package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyProgress is a per-day snapshot of a user's totals, written by
// the nightly rollup job and served from the history endpoint.
type DailyProgress struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"` // truncated to YYYY-MM-DD

	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
}
