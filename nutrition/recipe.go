package nutrition

// Ingredient is one weighted component of a recipe, already resolved
// against the product catalog. Product is the referenced product's
// per-100g profile; nil means the product row no longer exists.
type Ingredient struct {
	Product *Profile
	Weight  float64
}

// TotalWeight sums the ingredient weights in grams.
func TotalWeight(ingredients []Ingredient) float64 {
	var total float64
	for _, ing := range ingredients {
		total += ing.Weight
	}
	return total
}

// TotalNutrition sums the scaled nutrition of every ingredient. Each
// field is rounded once after the full summation, not per ingredient,
// so rounding error does not compound across long ingredient lists.
func TotalNutrition(ingredients []Ingredient) (Profile, error) {
	var cal, prot, fat, carbs float64
	for _, ing := range ingredients {
		if ing.Product == nil {
			return Profile{}, ErrDanglingProduct
		}
		if ing.Weight < 0 {
			return Profile{}, ErrInvalidInput
		}
		m := ing.Weight / 100
		cal += ing.Product.Calories * m
		prot += ing.Product.Protein * m
		fat += ing.Product.Fat * m
		carbs += ing.Product.Carbs * m
	}
	return Profile{
		Calories: round1(cal),
		Protein:  round1(prot),
		Fat:      round1(fat),
		Carbs:    round1(carbs),
	}, nil
}

// PerHundredGrams derives the per-100g profile of the whole recipe.
// A zero total weight yields an all-zero profile rather than an error.
func PerHundredGrams(ingredients []Ingredient) (Profile, error) {
	total, err := TotalNutrition(ingredients)
	if err != nil {
		return Profile{}, err
	}
	weight := TotalWeight(ingredients)
	if weight == 0 {
		return Profile{}, nil
	}
	m := 100 / weight
	return Profile{
		Calories: round1(total.Calories * m),
		Protein:  round1(total.Protein * m),
		Fat:      round1(total.Fat * m),
		Carbs:    round1(total.Carbs * m),
	}, nil
}
