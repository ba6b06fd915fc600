package nutrition

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func profilesEqual(a, b Profile) bool {
	return almostEqual(a.Calories, b.Calories) &&
		almostEqual(a.Protein, b.Protein) &&
		almostEqual(a.Fat, b.Fat) &&
		almostEqual(a.Carbs, b.Carbs)
}

func TestCaloriesFromMacros(t *testing.T) {
	tests := []struct {
		name                string
		protein, fat, carbs float64
		want                float64
	}{
		{"default goal macros", 50, 65, 300, 1985},
		{"chicken breast per 100g", 31, 3.6, 0, 156.4},
		{"all zero", 0, 0, 0, 0},
		{"fractional rounding", 0.3, 0.2, 14, 59},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CaloriesFromMacros(tt.protein, tt.fat, tt.carbs)
			if err != nil {
				t.Fatalf("CaloriesFromMacros(%v, %v, %v): %v", tt.protein, tt.fat, tt.carbs, err)
			}
			want := math.Round((tt.protein*4+tt.fat*9+tt.carbs*4)*10) / 10
			if !almostEqual(got, tt.want) || !almostEqual(got, want) {
				t.Errorf("CaloriesFromMacros(%v, %v, %v) = %v, want %v", tt.protein, tt.fat, tt.carbs, got, tt.want)
			}
		})
	}
}

func TestCaloriesFromMacrosNegative(t *testing.T) {
	for _, macros := range [][3]float64{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}} {
		if _, err := CaloriesFromMacros(macros[0], macros[1], macros[2]); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("CaloriesFromMacros(%v) error = %v, want ErrInvalidInput", macros, err)
		}
	}
}

func TestScale(t *testing.T) {
	chicken := Profile{Calories: 165, Protein: 31, Fat: 3.6, Carbs: 0}

	got, err := Scale(chicken, 200)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	want := Profile{Calories: 330, Protein: 62, Fat: 7.2, Carbs: 0}
	if !profilesEqual(got, want) {
		t.Errorf("Scale(chicken, 200) = %+v, want %+v", got, want)
	}
}

func TestScaleIdentityAtBaseWeight(t *testing.T) {
	p := Profile{Calories: 52, Protein: 0.3, Fat: 0.2, Carbs: 14}
	got, err := Scale(p, 100)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if !profilesEqual(got, p) {
		t.Errorf("Scale(p, 100) = %+v, want %+v", got, p)
	}
}

func TestScaleZeroWeight(t *testing.T) {
	got, err := Scale(Profile{Calories: 165, Protein: 31, Fat: 3.6}, 0)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if !profilesEqual(got, Profile{}) {
		t.Errorf("Scale(p, 0) = %+v, want all-zero", got)
	}
}

func TestScaleNegativeWeight(t *testing.T) {
	if _, err := Scale(Profile{Calories: 100}, -50); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Scale(p, -50) error = %v, want ErrInvalidInput", err)
	}
}

func TestRescaleToServing(t *testing.T) {
	// Values entered for a 40 g serving come back quoted per 100 g.
	perServing := Profile{Calories: 100, Protein: 4, Fat: 2, Carbs: 16}
	got, err := RescaleToServing(perServing, 40)
	if err != nil {
		t.Fatalf("RescaleToServing: %v", err)
	}
	want := Profile{Calories: 250, Protein: 10, Fat: 5, Carbs: 40}
	if !profilesEqual(got, want) {
		t.Errorf("RescaleToServing(p, 40) = %+v, want %+v", got, want)
	}
}

func TestRescaleToServingRejectsNonPositive(t *testing.T) {
	for _, serving := range []float64{0, -100} {
		if _, err := RescaleToServing(Profile{Calories: 100}, serving); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("RescaleToServing(p, %v) error = %v, want ErrInvalidInput", serving, err)
		}
	}
}
