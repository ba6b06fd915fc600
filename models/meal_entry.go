package models

import (
	"time"

	"gorm.io/gorm"
)

// MealEntry is one consumption event: a product eaten at a meal on a
// date, with the portion weight in grams. Nutrition is always derived
// from the referenced product, never stored on the entry.
type MealEntry struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	ProductID uint      `gorm:"index;not null"`
	MealType  string    `gorm:"size:20;not null"` // breakfast|lunch|dinner|snack
	Weight    float64   `gorm:"not null"`
	Date      time.Time `gorm:"index;not null"` // truncated to YYYY-MM-DD
	Product   *Product  `gorm:"foreignKey:ProductID"`
}
