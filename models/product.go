package models

import (
	"gorm.io/gorm"

	"github.com/Mamora-sema/Food-diary/nutrition"
)

// Product is one entry of a user's food catalog. Nutrition values are
// stored per 100 g. Recipe-derived products carry IsRecipe so the
// catalog can distinguish them from direct entries.
type Product struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Name     string `gorm:"size:100;not null"`
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
	IsRecipe bool `gorm:"default:false"`
}

// PerHundredGrams returns the product's stored nutrition as a core
// profile.
func (p *Product) PerHundredGrams() nutrition.Profile {
	return nutrition.Profile{
		Calories: p.Calories,
		Protein:  p.Protein,
		Fat:      p.Fat,
		Carbs:    p.Carbs,
	}
}
