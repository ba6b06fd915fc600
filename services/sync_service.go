package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Mamora-sema/Food-diary/config"
	"github.com/Mamora-sema/Food-diary/models"
	"github.com/Mamora-sema/Food-diary/nutrition"
)

// syncWindowDays bounds how much entry history a snapshot carries.
const syncWindowDays = 30

// SyncSnapshot is the full client-facing state dump used by offline
// clients to seed their local store.
type SyncSnapshot struct {
	Timestamp string                 `json:"timestamp"`
	User      map[string]interface{} `json:"user"`
	Products  []models.Product       `json:"products"`
	Recipes   []RecipeView           `json:"recipes"`
	Goals     *models.DailyGoal      `json:"goals"`
	Entries   []MealEntryView        `json:"entries"`
	MealTypes []string               `json:"meal_types"`
}

func GetSyncSnapshot(userID uint) (*SyncSnapshot, error) {
	user, err := GetUserProfile(userID)
	if err != nil {
		return nil, err
	}
	products, err := ListProducts(userID)
	if err != nil {
		return nil, err
	}
	recipes, err := ListRecipes(userID)
	if err != nil {
		return nil, err
	}
	goal, err := GetOrCreateGoal(userID)
	if err != nil {
		return nil, err
	}

	from := time.Now().AddDate(0, 0, -syncWindowDays)
	entries, err := listMealEntriesSince(userID, from)
	if err != nil {
		return nil, err
	}
	views := make([]MealEntryView, 0, len(entries))
	for i := range entries {
		view, err := entryView(&entries[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}

	return &SyncSnapshot{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		User:      user,
		Products:  products,
		Recipes:   recipes,
		Goals:     goal,
		Entries:   views,
		MealTypes: nutrition.MealTypes,
	}, nil
}

type SyncEntry struct {
	ProductID uint    `json:"product_id"`
	MealType  string  `json:"meal_type"`
	Weight    float64 `json:"weight"`
	Date      string  `json:"date"` // YYYY-MM-DD
}

// SyncProduct takes calories as entered by the client; direct calorie
// entry is the one path that does not derive them from macros.
type SyncProduct struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	IsRecipe bool    `json:"is_recipe"`
}

type SyncGoals struct {
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
	Carbs   float64 `json:"carbs"`
}

type SyncPush struct {
	UserWeight      *float64      `json:"user_weight"`
	NewEntries      []SyncEntry   `json:"new_entries"`
	DeletedEntries  []uint        `json:"deleted_entries"`
	NewProducts     []SyncProduct `json:"new_products"`
	DeletedProducts []uint        `json:"deleted_products"`
	Goals           *SyncGoals    `json:"goals"`
}

// ApplySync applies a batch of offline mutations in one transaction
// and returns the products it created so the client can remap local
// identifiers. Deletions of rows that no longer exist are ignored.
func ApplySync(userID uint, push SyncPush) ([]models.Product, error) {
	var created []models.Product

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if push.UserWeight != nil {
			if err := tx.Model(&models.User{}).
				Where("id = ?", userID).
				Update("weight_kg", *push.UserWeight).Error; err != nil {
				return err
			}
		}

		for _, item := range push.NewEntries {
			if !nutrition.ValidMealType(item.MealType) || item.Weight < 0 {
				return nutrition.ErrInvalidInput
			}
			date, err := ParseDay(item.Date)
			if err != nil {
				return err
			}
			var product models.Product
			if err := tx.
				Where("id = ? AND user_id = ?", item.ProductID, userID).
				First(&product).Error; err != nil {
				return err
			}
			entry := models.MealEntry{
				UserID:    userID,
				ProductID: product.ID,
				MealType:  item.MealType,
				Weight:    item.Weight,
				Date:      date,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}

		for _, entryID := range push.DeletedEntries {
			if err := tx.
				Where("id = ? AND user_id = ?", entryID, userID).
				Delete(&models.MealEntry{}).Error; err != nil {
				return err
			}
		}

		for _, item := range push.NewProducts {
			product := models.Product{
				UserID:   userID,
				Name:     item.Name,
				Calories: item.Calories,
				Protein:  item.Protein,
				Fat:      item.Fat,
				Carbs:    item.Carbs,
				IsRecipe: item.IsRecipe,
			}
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			created = append(created, product)
		}

		for _, productID := range push.DeletedProducts {
			err := deleteProductTx(tx, userID, productID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		if push.Goals != nil {
			calories, err := nutrition.CaloriesFromMacros(
				push.Goals.Protein, push.Goals.Fat, push.Goals.Carbs)
			if err != nil {
				return err
			}
			_, err = upsertGoalTx(tx, userID, nutrition.Goal{
				Calories: calories,
				Protein:  push.Goals.Protein,
				Fat:      push.Goals.Fat,
				Carbs:    push.Goals.Carbs,
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
