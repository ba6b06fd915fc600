package services

import (
	"gorm.io/gorm"

	"github.com/Mamora-sema/Food-diary/config"
	"github.com/Mamora-sema/Food-diary/models"
	"github.com/Mamora-sema/Food-diary/nutrition"
)

// ProductInput carries the nutrition form values for a product. Macros
// may be entered per 100 g (ServingGrams == 0) or per a custom serving
// size, in which case they are normalized back to the per-100g unit.
// Calories are always derived from the macros.
type ProductInput struct {
	Name         string  `json:"name" binding:"required"`
	Protein      float64 `json:"protein"`
	Fat          float64 `json:"fat"`
	Carbs        float64 `json:"carbs"`
	ServingGrams float64 `json:"serving_grams"`
	IsRecipe     bool    `json:"is_recipe"`
}

func productProfile(in ProductInput) (nutrition.Profile, error) {
	p := nutrition.Profile{Protein: in.Protein, Fat: in.Fat, Carbs: in.Carbs}
	if in.ServingGrams > 0 && in.ServingGrams != 100 {
		rescaled, err := nutrition.RescaleToServing(p, in.ServingGrams)
		if err != nil {
			return nutrition.Profile{}, err
		}
		p = rescaled
	}
	calories, err := nutrition.CaloriesFromMacros(p.Protein, p.Fat, p.Carbs)
	if err != nil {
		return nutrition.Profile{}, err
	}
	p.Calories = calories
	return p, nil
}

func CreateProduct(userID uint, in ProductInput) (*models.Product, error) {
	profile, err := productProfile(in)
	if err != nil {
		return nil, err
	}

	product := models.Product{
		UserID:   userID,
		Name:     in.Name,
		Calories: profile.Calories,
		Protein:  profile.Protein,
		Fat:      profile.Fat,
		Carbs:    profile.Carbs,
		IsRecipe: in.IsRecipe,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func UpdateProduct(userID, productID uint, in ProductInput) (*models.Product, error) {
	var product models.Product
	if err := config.DB.
		Where("id = ? AND user_id = ?", productID, userID).
		First(&product).Error; err != nil {
		return nil, err
	}

	profile, err := productProfile(in)
	if err != nil {
		return nil, err
	}

	product.Name = in.Name
	product.Calories = profile.Calories
	product.Protein = profile.Protein
	product.Fat = profile.Fat
	product.Carbs = profile.Carbs

	if err := config.DB.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product; any recipe that derived it has its
// link cleared so the recipe keeps working without a catalog mirror.
func DeleteProduct(userID, productID uint) error {
	return config.DB.Transaction(func(tx *gorm.DB) error {
		return deleteProductTx(tx, userID, productID)
	})
}

func deleteProductTx(tx *gorm.DB, userID, productID uint) error {
	var product models.Product
	if err := tx.
		Where("id = ? AND user_id = ?", productID, userID).
		First(&product).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Recipe{}).
		Where("product_id = ?", product.ID).
		Update("product_id", nil).Error; err != nil {
		return err
	}
	return tx.Delete(&product).Error
}

func GetProduct(userID, productID uint) (*models.Product, error) {
	var product models.Product
	err := config.DB.
		Where("id = ? AND user_id = ?", productID, userID).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func ListProducts(userID uint) ([]models.Product, error) {
	var products []models.Product
	err := config.DB.
		Where("user_id = ?", userID).
		Order("name").
		Find(&products).Error
	return products, err
}

// The catalog every user starts with, macros per 100 g.
var defaultProducts = []struct {
	name                string
	protein, fat, carbs float64
}{
	{"Chicken breast", 31, 3.6, 0},
	{"White rice", 2.7, 0.3, 28},
	{"Egg", 13, 11, 1.1},
	{"Oatmeal", 2.4, 1.4, 12},
	{"Banana", 1.1, 0.3, 23},
	{"Cottage cheese 5%", 17, 5, 1.8},
	{"Buckwheat", 4.2, 1.1, 21},
	{"Milk 2.5%", 2.8, 2.5, 4.7},
	{"White bread", 9, 3.2, 49},
	{"Apple", 0.3, 0.2, 14},
	{"Beef", 26, 15, 0},
	{"Salmon", 20, 13, 0},
	{"Potato", 2, 0.1, 17},
	{"Pasta", 5, 1.1, 25},
	{"Hard cheese", 25, 33, 1.3},
}

func seedDefaultProducts(tx *gorm.DB, userID uint) error {
	for _, d := range defaultProducts {
		calories, err := nutrition.CaloriesFromMacros(d.protein, d.fat, d.carbs)
		if err != nil {
			return err
		}
		product := models.Product{
			UserID:   userID,
			Name:     d.name,
			Calories: calories,
			Protein:  d.protein,
			Fat:      d.fat,
			Carbs:    d.carbs,
		}
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
	}
	return nil
}
