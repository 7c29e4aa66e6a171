// internal/models/analysis.go
package models

import (
	"math"
	"time"
)

// Category is the coarse food group used for heuristics and reporting.
type Category string

const (
	CategoryGrains    Category = "grains"
	CategoryProtein   Category = "protein"
	CategoryVegetable Category = "vegetable"
	CategoryFruit     Category = "fruit"
	CategoryDairy     Category = "dairy"
	CategorySnack     Category = "snack"
	CategoryBeverage  Category = "beverage"
	CategoryDessert   Category = "dessert"
	CategorySoup      Category = "soup"
	CategoryCurry     Category = "curry"
	CategoryMainDish  Category = "main_dish"
)

// Categories lists every known category in a fixed order.
var Categories = []Category{
	CategoryGrains, CategoryProtein, CategoryVegetable, CategoryFruit,
	CategoryDairy, CategorySnack, CategoryBeverage, CategoryDessert,
	CategorySoup, CategoryCurry, CategoryMainDish,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory maps free text to a Category. Unknown values become main_dish.
func ParseCategory(s string) Category {
	c := Category(s)
	if c.Valid() {
		return c
	}
	return CategoryMainDish
}

// Provenance records which component supplied an item.
type Provenance string

const (
	ProvenancePrimaryVision   Provenance = "primary-vision-model"
	ProvenanceSecondaryVision Provenance = "secondary-vision-model"
	ProvenanceExternalLookup  Provenance = "external-lookup"
	ProvenanceReferenceDB     Provenance = "reference-database"
)

// Nutrients holds energy (kcal), protein/carbs/fat/fiber (g) and sodium (mg).
// Depending on context the values are per 100g or absolute.
type Nutrients struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
}

// Scale returns n multiplied by factor.
func (n Nutrients) Scale(factor float64) Nutrients {
	return Nutrients{
		Calories: n.Calories * factor,
		Protein:  n.Protein * factor,
		Carbs:    n.Carbs * factor,
		Fat:      n.Fat * factor,
		Fiber:    n.Fiber * factor,
		Sodium:   n.Sodium * factor,
	}
}

// Add returns the field-wise sum of n and o.
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
		Fiber:    n.Fiber + o.Fiber,
		Sodium:   n.Sodium + o.Sodium,
	}
}

// NonNegative reports whether every field is >= 0.
func (n Nutrients) NonNegative() bool {
	return n.Calories >= 0 && n.Protein >= 0 && n.Carbs >= 0 &&
		n.Fat >= 0 && n.Fiber >= 0 && n.Sodium >= 0
}

// Upper bounds of a per-100g vector. Pure fat is about 900 kcal per 100g.
const (
	MaxCaloriesPer100g = 900.0
	MaxGramsPer100g    = 100.0
	MaxSodiumPer100g   = 100000.0 // mg
)

// PlausiblePer100g reports whether n is a finite per-100g vector within
// physical bounds.
func (n Nutrients) PlausiblePer100g() bool {
	within := func(v, max float64) bool {
		return !math.IsNaN(v) && v >= 0 && v <= max
	}
	return within(n.Calories, MaxCaloriesPer100g) &&
		within(n.Protein, MaxGramsPer100g) &&
		within(n.Carbs, MaxGramsPer100g) &&
		within(n.Fat, MaxGramsPer100g) &&
		within(n.Fiber, MaxGramsPer100g) &&
		within(n.Sodium, MaxSodiumPer100g)
}

// ReferenceFoodEntry is one row of the built-in dish table.
type ReferenceFoodEntry struct {
	Name     string             `json:"name"`
	NameEN   string             `json:"name_en"`
	Per100g  Nutrients          `json:"per_100g"`
	Category Category           `json:"category"`
	Portions map[string]float64 `json:"portions"`
	Keywords []string           `json:"keywords,omitempty"`
}

// RecognizedItem is a candidate food produced by a recognizer for one request.
// A nil Confidence means the recognizer did not report one.
type RecognizedItem struct {
	Name          string     `json:"name"`
	NameEN        string     `json:"name_en"`
	Portion       string     `json:"portion"`
	Confidence    *float64   `json:"confidence,omitempty"`
	Category      Category   `json:"category"`
	CookingMethod string     `json:"cooking_method,omitempty"`
	Provenance    Provenance `json:"provenance"`
	ReferenceKey  string     `json:"reference_key,omitempty"`
	External      *Nutrients `json:"external,omitempty"`
}

// Score returns a pointer to v, for RecognizedItem.Confidence.
func Score(v float64) *float64 {
	return &v
}

// NutritionComponent is the resolved nutrition of one recognized item.
type NutritionComponent struct {
	Name    string  `json:"name"`
	NameEN  string  `json:"name_en"`
	Portion string  `json:"portion"`
	Grams   float64 `json:"grams"`
	Nutrients
	Confidence float64    `json:"confidence"`
	Category   Category   `json:"category"`
	Provenance Provenance `json:"provenance"`
}

// ImageAnalysis carries recognition metadata for a result.
type ImageAnalysis struct {
	ItemsDetected       int      `json:"items_detected"`
	RecognitionAccuracy float64  `json:"recognition_accuracy"`
	PortionAccuracy     float64  `json:"portion_accuracy"`
	ModelsUsed          []string `json:"models_used"`
}

// AnalysisResult is the output of one food image analysis.
type AnalysisResult struct {
	ID               string               `json:"id"`
	Success          bool                 `json:"success"`
	Components       []NutritionComponent `json:"components"`
	Totals           Nutrients            `json:"totals"`
	ProcessingTimeMS int64                `json:"processing_time_ms"`
	Recommendations  []string             `json:"recommendations"`
	Warnings         []string             `json:"warnings"`
	Confidence       float64              `json:"confidence"`
	ImageAnalysis    ImageAnalysis        `json:"image_analysis"`
}

// AnalysisRecord is an AnalysisResult as stored in the history.
type AnalysisRecord struct {
	AnalysisResult
	CreatedAt time.Time `json:"created_at"`
}
