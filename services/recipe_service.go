package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Mamora-sema/Food-diary/config"
	"github.com/Mamora-sema/Food-diary/models"
	"github.com/Mamora-sema/Food-diary/nutrition"
)

type IngredientInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Weight    float64 `json:"weight" binding:"required"`
}

type RecipeInput struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Ingredients []IngredientInput `json:"ingredients" binding:"required,min=1"`
}

type IngredientView struct {
	ProductID   uint              `json:"product_id"`
	ProductName string            `json:"product_name"`
	Weight      float64           `json:"weight"`
	Nutrition   nutrition.Profile `json:"nutrition"`
}

// RecipeView is the API shape of a recipe: the stored fields plus the
// computed weight and nutrition, which are never persisted on the
// recipe itself.
type RecipeView struct {
	ID              uint              `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	ProductID       *uint             `json:"product_id,omitempty"`
	Ingredients     []IngredientView  `json:"ingredients"`
	TotalWeight     float64           `json:"total_weight"`
	TotalNutrition  nutrition.Profile `json:"total_nutrition"`
	PerHundredGrams nutrition.Profile `json:"nutrition_per_100g"`
}

// coreIngredients maps stored ingredient rows to core values. A row
// whose product was deleted maps to a nil profile, which the core
// reports as ErrDanglingProduct.
func coreIngredients(rows []models.RecipeIngredient) []nutrition.Ingredient {
	out := make([]nutrition.Ingredient, 0, len(rows))
	for _, row := range rows {
		ing := nutrition.Ingredient{Weight: row.Weight}
		if row.Product != nil {
			p := row.Product.PerHundredGrams()
			ing.Product = &p
		}
		out = append(out, ing)
	}
	return out
}

func buildRecipeView(recipe *models.Recipe) (*RecipeView, error) {
	core := coreIngredients(recipe.Ingredients)

	total, err := nutrition.TotalNutrition(core)
	if err != nil {
		return nil, err
	}
	per100, err := nutrition.PerHundredGrams(core)
	if err != nil {
		return nil, err
	}

	views := make([]IngredientView, 0, len(recipe.Ingredients))
	for _, row := range recipe.Ingredients {
		scaled, err := nutrition.Scale(row.Product.PerHundredGrams(), row.Weight)
		if err != nil {
			return nil, err
		}
		views = append(views, IngredientView{
			ProductID:   row.ProductID,
			ProductName: row.Product.Name,
			Weight:      row.Weight,
			Nutrition:   scaled,
		})
	}

	return &RecipeView{
		ID:              recipe.ID,
		Name:            recipe.Name,
		Description:     recipe.Description,
		ProductID:       recipe.ProductID,
		Ingredients:     views,
		TotalWeight:     nutrition.TotalWeight(core),
		TotalNutrition:  total,
		PerHundredGrams: per100,
	}, nil
}

// replaceIngredients rewrites a recipe's ingredient list wholesale and
// returns the new rows with products resolved, scoped to the owner.
func replaceIngredients(tx *gorm.DB, recipe *models.Recipe, items []IngredientInput) ([]models.RecipeIngredient, error) {
	if err := tx.
		Where("recipe_id = ?", recipe.ID).
		Delete(&models.RecipeIngredient{}).Error; err != nil {
		return nil, err
	}

	rows := make([]models.RecipeIngredient, 0, len(items))
	for _, item := range items {
		if item.Weight < 0 {
			return nil, nutrition.ErrInvalidInput
		}
		var product models.Product
		if err := tx.
			Where("id = ? AND user_id = ?", item.ProductID, recipe.UserID).
			First(&product).Error; err != nil {
			return nil, err
		}
		row := models.RecipeIngredient{
			RecipeID:  recipe.ID,
			ProductID: product.ID,
			Weight:    item.Weight,
			Product:   &product,
		}
		if err := tx.Omit("Product").Create(&row).Error; err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// syncDerivedProduct writes the recipe's per-100g nutrition and name
// onto its derived catalog product, creating the product if the link
// is missing. Must run in the same transaction as the ingredient edit
// so the mirror is never stale.
func syncDerivedProduct(tx *gorm.DB, recipe *models.Recipe) error {
	core := coreIngredients(recipe.Ingredients)
	per100, err := nutrition.PerHundredGrams(core)
	if err != nil {
		return err
	}

	if recipe.ProductID != nil {
		var product models.Product
		if err := tx.First(&product, *recipe.ProductID).Error; err == nil {
			product.Name = recipe.Name
			product.Calories = per100.Calories
			product.Protein = per100.Protein
			product.Fat = per100.Fat
			product.Carbs = per100.Carbs
			return tx.Save(&product).Error
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	product := models.Product{
		UserID:   recipe.UserID,
		Name:     recipe.Name,
		Calories: per100.Calories,
		Protein:  per100.Protein,
		Fat:      per100.Fat,
		Carbs:    per100.Carbs,
		IsRecipe: true,
	}
	if err := tx.Create(&product).Error; err != nil {
		return err
	}
	recipe.ProductID = &product.ID
	return tx.Omit("Ingredients").Save(recipe).Error
}

func CreateRecipe(userID uint, in RecipeInput) (*RecipeView, error) {
	var recipe models.Recipe
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		recipe = models.Recipe{
			UserID:      userID,
			Name:        in.Name,
			Description: in.Description,
		}
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}

		rows, err := replaceIngredients(tx, &recipe, in.Ingredients)
		if err != nil {
			return err
		}
		recipe.Ingredients = rows

		return syncDerivedProduct(tx, &recipe)
	})
	if err != nil {
		return nil, err
	}
	return buildRecipeView(&recipe)
}

func UpdateRecipe(userID, recipeID uint, in RecipeInput) (*RecipeView, error) {
	var recipe models.Recipe
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("id = ? AND user_id = ?", recipeID, userID).
			First(&recipe).Error; err != nil {
			return err
		}

		recipe.Name = in.Name
		recipe.Description = in.Description
		if err := tx.Save(&recipe).Error; err != nil {
			return err
		}

		rows, err := replaceIngredients(tx, &recipe, in.Ingredients)
		if err != nil {
			return err
		}
		recipe.Ingredients = rows

		return syncDerivedProduct(tx, &recipe)
	})
	if err != nil {
		return nil, err
	}
	return buildRecipeView(&recipe)
}

// DeleteRecipe removes a recipe, its ingredient rows and its derived
// catalog product.
func DeleteRecipe(userID, recipeID uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.
			Where("id = ? AND user_id = ?", recipeID, userID).
			First(&recipe).Error; err != nil {
			return err
		}

		if err := tx.
			Where("recipe_id = ?", recipe.ID).
			Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if recipe.ProductID != nil {
			if err := tx.
				Where("id = ? AND user_id = ?", *recipe.ProductID, userID).
				Delete(&models.Product{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&recipe).Error
	})
}

func GetRecipe(userID, recipeID uint) (*RecipeView, error) {
	var recipe models.Recipe
	err := config.DB.
		Preload("Ingredients.Product").
		Where("id = ? AND user_id = ?", recipeID, userID).
		First(&recipe).Error
	if err != nil {
		return nil, err
	}
	return buildRecipeView(&recipe)
}

func ListRecipes(userID uint) ([]RecipeView, error) {
	var recipes []models.Recipe
	err := config.DB.
		Preload("Ingredients.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}

	views := make([]RecipeView, 0, len(recipes))
	for i := range recipes {
		view, err := buildRecipeView(&recipes[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}
