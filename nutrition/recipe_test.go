package nutrition

import (
	"errors"
	"testing"
)

var (
	chicken = Profile{Calories: 165, Protein: 31, Fat: 3.6, Carbs: 0}
	apple   = Profile{Calories: 52, Protein: 0.3, Fat: 0.2, Carbs: 14}
)

func testIngredients() []Ingredient {
	return []Ingredient{
		{Product: &chicken, Weight: 200},
		{Product: &apple, Weight: 150},
	}
}

func TestTotalWeight(t *testing.T) {
	if got := TotalWeight(testIngredients()); !almostEqual(got, 350) {
		t.Errorf("TotalWeight = %v, want 350", got)
	}
	if got := TotalWeight(nil); got != 0 {
		t.Errorf("TotalWeight(nil) = %v, want 0", got)
	}
}

func TestTotalNutrition(t *testing.T) {
	got, err := TotalNutrition(testIngredients())
	if err != nil {
		t.Fatalf("TotalNutrition: %v", err)
	}
	// 165*2 + 52*1.5 = 408 kcal; macros summed the same way. The raw
	// protein sum sits just below 62.45 in float64, so it rounds down.
	want := Profile{Calories: 408, Protein: 62.4, Fat: 7.5, Carbs: 21}
	if !profilesEqual(got, want) {
		t.Errorf("TotalNutrition = %+v, want %+v", got, want)
	}
}

func TestTotalNutritionRoundsOnceAfterSummation(t *testing.T) {
	// Each term contributes 0.04 g of protein (1.33 per 100g at 3 g),
	// which rounds to 0 per term but to 0.1 after summation over three
	// ingredients.
	tiny := Profile{Protein: 1.33}
	ings := []Ingredient{
		{Product: &tiny, Weight: 3},
		{Product: &tiny, Weight: 3},
		{Product: &tiny, Weight: 3},
	}
	got, err := TotalNutrition(ings)
	if err != nil {
		t.Fatalf("TotalNutrition: %v", err)
	}
	if !almostEqual(got.Protein, 0.1) {
		t.Errorf("Protein = %v, want 0.1 (rounded after summation)", got.Protein)
	}
}

func TestPerHundredGrams(t *testing.T) {
	got, err := PerHundredGrams(testIngredients())
	if err != nil {
		t.Fatalf("PerHundredGrams: %v", err)
	}
	// 408 * 100/350 = 116.57... -> 116.6
	if !almostEqual(got.Calories, 116.6) {
		t.Errorf("Calories per 100g = %v, want 116.6", got.Calories)
	}
	// 62.4 * 100/350 = 17.82... -> 17.8
	if !almostEqual(got.Protein, 17.8) {
		t.Errorf("Protein per 100g = %v, want 17.8", got.Protein)
	}
}

func TestPerHundredGramsZeroWeight(t *testing.T) {
	got, err := PerHundredGrams(nil)
	if err != nil {
		t.Fatalf("PerHundredGrams(nil): %v", err)
	}
	if !profilesEqual(got, Profile{}) {
		t.Errorf("PerHundredGrams(nil) = %+v, want all-zero", got)
	}
}

func TestRecipeRecomputeHasNoResidualState(t *testing.T) {
	// Editing the ingredient list and re-deriving must match computing
	// from scratch on the new list.
	first := testIngredients()
	if _, err := PerHundredGrams(first); err != nil {
		t.Fatalf("PerHundredGrams: %v", err)
	}

	edited := []Ingredient{{Product: &apple, Weight: 300}}
	got, err := PerHundredGrams(edited)
	if err != nil {
		t.Fatalf("PerHundredGrams: %v", err)
	}
	fresh, err := PerHundredGrams([]Ingredient{{Product: &apple, Weight: 300}})
	if err != nil {
		t.Fatalf("PerHundredGrams: %v", err)
	}
	if !profilesEqual(got, fresh) {
		t.Errorf("recompute after edit = %+v, from scratch = %+v", got, fresh)
	}
}

func TestDanglingIngredient(t *testing.T) {
	ings := []Ingredient{
		{Product: &chicken, Weight: 100},
		{Product: nil, Weight: 50},
	}
	if _, err := TotalNutrition(ings); !errors.Is(err, ErrDanglingProduct) {
		t.Errorf("TotalNutrition error = %v, want ErrDanglingProduct", err)
	}
	if _, err := PerHundredGrams(ings); !errors.Is(err, ErrDanglingProduct) {
		t.Errorf("PerHundredGrams error = %v, want ErrDanglingProduct", err)
	}
}
