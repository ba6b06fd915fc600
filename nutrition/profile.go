// Package nutrition holds the calculation core of the food diary:
// macro-to-calorie conversion, per-weight scaling, recipe aggregation,
// goal recommendation and daily summaries. Everything here is pure and
// stateless; persistence and ownership checks live with the callers.
package nutrition

import (
	"errors"
	"math"
)

var (
	// ErrInvalidInput flags negative weights or macro values.
	ErrInvalidInput = errors.New("nutrition: negative or invalid input")

	// ErrDanglingProduct flags an entry or ingredient whose referenced
	// product no longer exists.
	ErrDanglingProduct = errors.New("nutrition: referenced product no longer exists")
)

// Profile holds nutrition values, either per 100 g of a product or as
// an absolute total for a consumed portion.
type Profile struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// round1 rounds to one decimal place, the stored precision of every
// nutrition value in the system.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// CaloriesFromMacros derives calories from macro grams at 4/9/4 kcal
// per gram of protein/fat/carbs.
func CaloriesFromMacros(protein, fat, carbs float64) (float64, error) {
	if protein < 0 || fat < 0 || carbs < 0 {
		return 0, ErrInvalidInput
	}
	return round1(protein*4 + fat*9 + carbs*4), nil
}

// Scale converts a per-100g profile to an arbitrary portion weight in
// grams. A zero weight yields an all-zero profile.
func Scale(per100g Profile, weightGrams float64) (Profile, error) {
	if weightGrams < 0 {
		return Profile{}, ErrInvalidInput
	}
	m := weightGrams / 100
	return Profile{
		Calories: round1(per100g.Calories * m),
		Protein:  round1(per100g.Protein * m),
		Fat:      round1(per100g.Fat * m),
		Carbs:    round1(per100g.Carbs * m),
	}, nil
}

// RescaleToServing normalizes values that were entered for a custom
// serving size back to the per-100g reference unit. The declared
// serving weight must be positive.
func RescaleToServing(perServing Profile, servingGrams float64) (Profile, error) {
	if servingGrams <= 0 {
		return Profile{}, ErrInvalidInput
	}
	m := 100 / servingGrams
	return Profile{
		Calories: round1(perServing.Calories * m),
		Protein:  round1(perServing.Protein * m),
		Fat:      round1(perServing.Fat * m),
		Carbs:    round1(perServing.Carbs * m),
	}, nil
}
