package models

import "gorm.io/gorm"

// Recipe combines weighted products. ProductID points at the catalog
// product derived from this recipe; its nutrition mirrors the recipe's
// per-100g profile and is resynchronized on every ingredient edit.
type Recipe struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	ProductID   *uint  `gorm:"index"`
	Ingredients []RecipeIngredient
}

// RecipeIngredient links a recipe to a product with a portion weight
// in grams. The product link is weak; the product may have been
// deleted since.
type RecipeIngredient struct {
	gorm.Model
	RecipeID  uint `gorm:"index;not null"`
	ProductID uint `gorm:"index;not null"`
	Weight    float64
	Product   *Product `gorm:"foreignKey:ProductID"`
}
