package services

import (
	"time"

	"github.com/Mamora-sema/Food-diary/config"
	"github.com/Mamora-sema/Food-diary/models"
	"github.com/Mamora-sema/Food-diary/nutrition"
)

type MealEntryView struct {
	ID          uint              `json:"id"`
	ProductID   uint              `json:"product_id"`
	ProductName string            `json:"product_name"`
	MealType    string            `json:"meal_type"`
	Weight      float64           `json:"weight"`
	Date        string            `json:"date"`
	Nutrition   nutrition.Profile `json:"nutrition"`
}

// dayStart truncates a time to the beginning of its day; entry dates
// are stored truncated and queried as [start, start+24h) windows.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDay parses a YYYY-MM-DD string as local midnight, so parsed
// dates land in the same window dayStart stamps entries with.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func entryView(entry *models.MealEntry) (*MealEntryView, error) {
	if entry.Product == nil {
		return nil, nutrition.ErrDanglingProduct
	}
	scaled, err := nutrition.Scale(entry.Product.PerHundredGrams(), entry.Weight)
	if err != nil {
		return nil, err
	}
	return &MealEntryView{
		ID:          entry.ID,
		ProductID:   entry.ProductID,
		ProductName: entry.Product.Name,
		MealType:    entry.MealType,
		Weight:      entry.Weight,
		Date:        entry.Date.Format("2006-01-02"),
		Nutrition:   scaled,
	}, nil
}

func AddMealEntry(userID, productID uint, mealType string, weight float64, date time.Time) (*MealEntryView, error) {
	if !nutrition.ValidMealType(mealType) {
		return nil, nutrition.ErrInvalidInput
	}
	if weight < 0 {
		return nil, nutrition.ErrInvalidInput
	}

	// Ownership boundary: the product must belong to the same user.
	product, err := GetProduct(userID, productID)
	if err != nil {
		return nil, err
	}

	entry := models.MealEntry{
		UserID:    userID,
		ProductID: product.ID,
		MealType:  mealType,
		Weight:    weight,
		Date:      dayStart(date),
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	entry.Product = product
	return entryView(&entry)
}

func DeleteMealEntry(userID, entryID uint) error {
	var entry models.MealEntry
	if err := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return err
	}
	return config.DB.Delete(&entry).Error
}

func ListMealEntries(userID uint, date time.Time) ([]MealEntryView, error) {
	start := dayStart(date)
	end := start.Add(24 * time.Hour)

	var entries []models.MealEntry
	err := config.DB.
		Preload("Product").
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("created_at").
		Find(&entries).Error
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
	return views, nil
}

func listMealEntriesSince(userID uint, from time.Time) ([]models.MealEntry, error) {
	var entries []models.MealEntry
	err := config.DB.
		Preload("Product").
		Where("user_id = ? AND date >= ?", userID, dayStart(from)).
		Order("date, created_at").
		Find(&entries).Error
	return entries, err
}

// DailySummary rolls one day's entries up against the user's goal.
func DailySummary(userID uint, date time.Time) (nutrition.DailySummary, error) {
	start := dayStart(date)
	end := start.Add(24 * time.Hour)

	var entries []models.MealEntry
	err := config.DB.
		Preload("Product").
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Find(&entries).Error
	if err != nil {
		return nutrition.DailySummary{}, err
	}

	goal, err := GetOrCreateGoal(userID)
	if err != nil {
		return nutrition.DailySummary{}, err
	}

	core := make([]nutrition.Entry, 0, len(entries))
	for i := range entries {
		e := nutrition.Entry{MealType: entries[i].MealType, Weight: entries[i].Weight}
		if entries[i].Product != nil {
			p := entries[i].Product.PerHundredGrams()
			e.Product = &p
		}
		core = append(core, e)
	}

	return nutrition.BuildDailySummary(core, goal.ToCore())
}
