package nutrition

import "math"

// Goal is a user's daily target for calories and each macro.
type Goal struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// Activity levels accepted by RecommendGoals.
const (
	ActivityLow      = "low"
	ActivityModerate = "moderate"
	ActivityHigh     = "high"
	ActivityAthlete  = "athlete"
)

// Macro grams per kg of body weight, keyed by activity level.
var activityMultipliers = map[string]struct{ protein, fat, carbs float64 }{
	ActivityLow:      {1.2, 0.8, 3},
	ActivityModerate: {1.5, 1.0, 4},
	ActivityHigh:     {1.8, 1.0, 5},
	ActivityAthlete:  {2.2, 1.2, 6},
}

// DefaultGoal returns the targets a user starts with before completing
// setup.
func DefaultGoal() Goal {
	return Goal{Calories: 2000, Protein: 50, Fat: 65, Carbs: 300}
}

// RecommendGoals derives daily macro targets from body weight and
// activity level. Macros are rounded to whole grams and calories are
// derived from the rounded macros. Unknown activity levels fall back
// to the moderate band.
func RecommendGoals(weightKg float64, activity string) (Goal, error) {
	if weightKg < 0 {
		return Goal{}, ErrInvalidInput
	}
	m, ok := activityMultipliers[activity]
	if !ok {
		m = activityMultipliers[ActivityModerate]
	}
	protein := math.Round(weightKg * m.protein)
	fat := math.Round(weightKg * m.fat)
	carbs := math.Round(weightKg * m.carbs)
	calories, err := CaloriesFromMacros(protein, fat, carbs)
	if err != nil {
		return Goal{}, err
	}
	return Goal{Calories: calories, Protein: protein, Fat: fat, Carbs: carbs}, nil
}
