package nutrition

import (
	"errors"
	"testing"
)

func TestBuildDailySummaryEmptyDay(t *testing.T) {
	goal := Goal{Calories: 2000, Protein: 50, Fat: 65, Carbs: 300}
	got, err := BuildDailySummary(nil, goal)
	if err != nil {
		t.Fatalf("BuildDailySummary: %v", err)
	}

	if len(got.Meals) != len(MealTypes) {
		t.Fatalf("got %d meal buckets, want %d", len(got.Meals), len(MealTypes))
	}
	for _, mealType := range MealTypes {
		bucket, ok := got.Meals[mealType]
		if !ok {
			t.Fatalf("bucket %q missing on an empty day", mealType)
		}
		if !profilesEqual(bucket, Profile{}) {
			t.Errorf("bucket %q = %+v, want all-zero", mealType, bucket)
		}
	}
	if !profilesEqual(got.Total, Profile{}) {
		t.Errorf("Total = %+v, want all-zero", got.Total)
	}
	if !profilesEqual(got.Percentages, Profile{}) {
		t.Errorf("Percentages = %+v, want all-zero", got.Percentages)
	}
	if got.MacroBreakdown != (Breakdown{}) || got.CalorieBreakdown != (Breakdown{}) {
		t.Errorf("breakdowns = %+v / %+v, want all-zero", got.MacroBreakdown, got.CalorieBreakdown)
	}
	if !profilesEqual(got.Remaining, Profile{Calories: 2000, Protein: 50, Fat: 65, Carbs: 300}) {
		t.Errorf("Remaining = %+v, want the full goal", got.Remaining)
	}
}

func TestBuildDailySummaryZeroGoal(t *testing.T) {
	entries := []Entry{{MealType: MealLunch, Weight: 100, Product: &chicken}}
	got, err := BuildDailySummary(entries, Goal{})
	if err != nil {
		t.Fatalf("BuildDailySummary: %v", err)
	}
	if !profilesEqual(got.Percentages, Profile{}) {
		t.Errorf("Percentages against a zero goal = %+v, want all-zero", got.Percentages)
	}
	if !almostEqual(got.Remaining.Calories, -165) {
		t.Errorf("Remaining.Calories = %v, want -165", got.Remaining.Calories)
	}
}

func TestBuildDailySummaryGroupsAndTotals(t *testing.T) {
	goal := Goal{Calories: 2000, Protein: 100, Fat: 60, Carbs: 250}
	entries := []Entry{
		{MealType: MealBreakfast, Weight: 100, Product: &apple},
		{MealType: MealLunch, Weight: 200, Product: &chicken},
		{MealType: MealLunch, Weight: 150, Product: &apple},
	}
	got, err := BuildDailySummary(entries, goal)
	if err != nil {
		t.Fatalf("BuildDailySummary: %v", err)
	}

	if !almostEqual(got.Meals[MealBreakfast].Calories, 52) {
		t.Errorf("breakfast calories = %v, want 52", got.Meals[MealBreakfast].Calories)
	}
	if !almostEqual(got.Meals[MealLunch].Calories, 408) {
		t.Errorf("lunch calories = %v, want 408", got.Meals[MealLunch].Calories)
	}
	if !profilesEqual(got.Meals[MealDinner], Profile{}) || !profilesEqual(got.Meals[MealSnack], Profile{}) {
		t.Errorf("empty buckets not all-zero: dinner=%+v snack=%+v", got.Meals[MealDinner], got.Meals[MealSnack])
	}
	if !almostEqual(got.Total.Calories, 460) {
		t.Errorf("total calories = %v, want 460", got.Total.Calories)
	}
	// 460 / 2000 * 100 = 23.0
	if !almostEqual(got.Percentages.Calories, 23) {
		t.Errorf("calories percent = %v, want 23", got.Percentages.Calories)
	}
	if !almostEqual(got.Remaining.Calories, 1540) {
		t.Errorf("remaining calories = %v, want 1540", got.Remaining.Calories)
	}
}

func TestBuildDailySummaryPercentUsesStoredGoalCalories(t *testing.T) {
	// The goal's calories were edited directly and no longer match its
	// macros; the stored value must still be the denominator.
	goal := Goal{Calories: 1000, Protein: 100, Fat: 100, Carbs: 100}
	entries := []Entry{{MealType: MealDinner, Weight: 200, Product: &chicken}}
	got, err := BuildDailySummary(entries, goal)
	if err != nil {
		t.Fatalf("BuildDailySummary: %v", err)
	}
	// 330 / 1000 * 100 = 33.0
	if !almostEqual(got.Percentages.Calories, 33) {
		t.Errorf("calories percent = %v, want 33 (against the stored goal)", got.Percentages.Calories)
	}
}

func TestBuildDailySummaryOverGoalIsNotClamped(t *testing.T) {
	goal := Goal{Calories: 300, Protein: 50, Fat: 10, Carbs: 20}
	entries := []Entry{{MealType: MealSnack, Weight: 400, Product: &chicken}}
	got, err := BuildDailySummary(entries, goal)
	if err != nil {
		t.Fatalf("BuildDailySummary: %v", err)
	}
	// 660 / 300 * 100 = 220.0
	if !almostEqual(got.Percentages.Calories, 220) {
		t.Errorf("calories percent = %v, want 220 (no clamping)", got.Percentages.Calories)
	}
	if !almostEqual(got.Remaining.Calories, -360) {
		t.Errorf("remaining calories = %v, want -360 (may go negative)", got.Remaining.Calories)
	}
}

func TestBuildDailySummaryBreakdownsDiffer(t *testing.T) {
	// 100 g of a product with equal macro grams: gram shares are one
	// third each, but fat's 9 kcal/g dominates the calorie share.
	even := Profile{Calories: 170, Protein: 10, Fat: 10, Carbs: 10}
	entries := []Entry{{MealType: MealBreakfast, Weight: 100, Product: &even}}
	got, err := BuildDailySummary(entries, Goal{Calories: 2000})
	if err != nil {
		t.Fatalf("BuildDailySummary: %v", err)
	}

	if !almostEqual(got.MacroBreakdown.Protein, 33.3) ||
		!almostEqual(got.MacroBreakdown.Fat, 33.3) ||
		!almostEqual(got.MacroBreakdown.Carbs, 33.3) {
		t.Errorf("MacroBreakdown = %+v, want a third each", got.MacroBreakdown)
	}
	// 40 / 170, 90 / 170, 40 / 170
	if !almostEqual(got.CalorieBreakdown.Protein, 23.5) ||
		!almostEqual(got.CalorieBreakdown.Fat, 52.9) ||
		!almostEqual(got.CalorieBreakdown.Carbs, 23.5) {
		t.Errorf("CalorieBreakdown = %+v, want {23.5 52.9 23.5}", got.CalorieBreakdown)
	}
}

func TestBuildDailySummaryDanglingProduct(t *testing.T) {
	entries := []Entry{{MealType: MealLunch, Weight: 100, Product: nil}}
	if _, err := BuildDailySummary(entries, Goal{}); !errors.Is(err, ErrDanglingProduct) {
		t.Errorf("BuildDailySummary error = %v, want ErrDanglingProduct", err)
	}
}

func TestBuildDailySummaryUnknownMealType(t *testing.T) {
	entries := []Entry{{MealType: "brunch", Weight: 100, Product: &apple}}
	if _, err := BuildDailySummary(entries, Goal{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("BuildDailySummary error = %v, want ErrInvalidInput", err)
	}
}

func TestValidMealType(t *testing.T) {
	for _, mealType := range MealTypes {
		if !ValidMealType(mealType) {
			t.Errorf("ValidMealType(%q) = false", mealType)
		}
	}
	if ValidMealType("brunch") || ValidMealType("") {
		t.Error("ValidMealType accepted an unknown meal type")
	}
}
