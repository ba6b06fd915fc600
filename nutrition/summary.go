package nutrition

// Meal types, in display order.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealTypes lists the four meal buckets in display order.
var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

// ValidMealType reports whether t is one of the four meal buckets.
func ValidMealType(t string) bool {
	for _, m := range MealTypes {
		if m == t {
			return true
		}
	}
	return false
}

// Entry is one consumption event, already resolved against the product
// catalog. Product is the referenced product's per-100g profile; nil
// means the product row no longer exists.
type Entry struct {
	MealType string
	Weight   float64
	Product  *Profile
}

// Breakdown holds the percentage share of each macro.
type Breakdown struct {
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
	Carbs   float64 `json:"carbs"`
}

// DailySummary is the rollup of one user's day against their goal.
// Percentages and Remaining carry percent-of-goal and goal-minus-total
// values per tracked field; Remaining goes negative when over goal.
type DailySummary struct {
	Meals            map[string]Profile `json:"meals"`
	Total            Profile            `json:"total"`
	Goal             Goal               `json:"goal"`
	Percentages      Profile            `json:"percentages"`
	MacroBreakdown   Breakdown          `json:"macro_breakdown"`
	CalorieBreakdown Breakdown          `json:"calorie_breakdown"`
	Remaining        Profile            `json:"remaining"`
}

// BuildDailySummary aggregates one day's entries into per-meal and
// daily totals, percent-of-goal, macro and calorie-source breakdowns.
// All four meal buckets are present even when empty. Fields are
// rounded once after the full summation, not per entry.
func BuildDailySummary(entries []Entry, goal Goal) (DailySummary, error) {
	type acc struct{ cal, prot, fat, carbs float64 }
	byMeal := make(map[string]*acc, len(MealTypes))
	for _, t := range MealTypes {
		byMeal[t] = &acc{}
	}

	var day acc
	for _, e := range entries {
		if e.Product == nil {
			return DailySummary{}, ErrDanglingProduct
		}
		if e.Weight < 0 {
			return DailySummary{}, ErrInvalidInput
		}
		bucket, ok := byMeal[e.MealType]
		if !ok {
			return DailySummary{}, ErrInvalidInput
		}
		m := e.Weight / 100
		bucket.cal += e.Product.Calories * m
		bucket.prot += e.Product.Protein * m
		bucket.fat += e.Product.Fat * m
		bucket.carbs += e.Product.Carbs * m
		day.cal += e.Product.Calories * m
		day.prot += e.Product.Protein * m
		day.fat += e.Product.Fat * m
		day.carbs += e.Product.Carbs * m
	}

	meals := make(map[string]Profile, len(MealTypes))
	for t, a := range byMeal {
		meals[t] = Profile{
			Calories: round1(a.cal),
			Protein:  round1(a.prot),
			Fat:      round1(a.fat),
			Carbs:    round1(a.carbs),
		}
	}
	total := Profile{
		Calories: round1(day.cal),
		Protein:  round1(day.prot),
		Fat:      round1(day.fat),
		Carbs:    round1(day.carbs),
	}

	// Percent of goal; a zero goal reads as 0%, never a division error.
	pct := func(consumed, target float64) float64 {
		if target == 0 {
			return 0
		}
		return round1(consumed / target * 100)
	}
	percentages := Profile{
		Calories: pct(total.Calories, goal.Calories),
		Protein:  pct(total.Protein, goal.Protein),
		Fat:      pct(total.Fat, goal.Fat),
		Carbs:    pct(total.Carbs, goal.Carbs),
	}

	// Gram share of each macro.
	var macro Breakdown
	if gramSum := total.Protein + total.Fat + total.Carbs; gramSum > 0 {
		macro = Breakdown{
			Protein: round1(total.Protein / gramSum * 100),
			Fat:     round1(total.Fat / gramSum * 100),
			Carbs:   round1(total.Carbs / gramSum * 100),
		}
	}

	// Share of calories contributed by each macro, which differs from
	// the gram share because fat carries 9 kcal/g against 4 for the
	// other two.
	var calorie Breakdown
	pCal, fCal, cCal := total.Protein*4, total.Fat*9, total.Carbs*4
	if calSum := pCal + fCal + cCal; calSum > 0 {
		calorie = Breakdown{
			Protein: round1(pCal / calSum * 100),
			Fat:     round1(fCal / calSum * 100),
			Carbs:   round1(cCal / calSum * 100),
		}
	}

	remaining := Profile{
		Calories: round1(goal.Calories - total.Calories),
		Protein:  round1(goal.Protein - total.Protein),
		Fat:      round1(goal.Fat - total.Fat),
		Carbs:    round1(goal.Carbs - total.Carbs),
	}

	return DailySummary{
		Meals:            meals,
		Total:            total,
		Goal:             goal,
		Percentages:      percentages,
		MacroBreakdown:   macro,
		CalorieBreakdown: calorie,
		Remaining:        remaining,
	}, nil
}
