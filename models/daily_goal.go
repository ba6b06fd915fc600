package models

import (
	"gorm.io/gorm"

	"github.com/Mamora-sema/Food-diary/nutrition"
)

// DailyGoal holds a user's daily intake targets, one row per user,
// created lazily with defaults on first access.
type DailyGoal struct {
	gorm.Model
	UserID   uint `gorm:"uniqueIndex;not null"`
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
}

// ToCore returns the goal as a core value for the summary builder.
func (g *DailyGoal) ToCore() nutrition.Goal {
	return nutrition.Goal{
		Calories: g.Calories,
		Protein:  g.Protein,
		Fat:      g.Fat,
		Carbs:    g.Carbs,
	}
}
