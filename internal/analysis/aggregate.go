package analysis

import (
	"math"

	"mcp-food-vision/internal/fooddb"
	"mcp-food-vision/internal/models"
	"mcp-food-vision/internal/portion"
)

const unspecifiedConfidence = 0.7

// Aggregate is the per-item and total nutrition of a meal.
type Aggregate struct {
	Components []models.NutritionComponent
	Totals     models.Nutrients
	// Confidence is the mean item confidence rounded to 2 decimals.
	Confidence float64
	// Fallback is set when no items were recognized and the generic meal
	// was substituted.
	Fallback bool
}

// FallbackItems is the generic meal used when recognition finds nothing.
func FallbackItems() []models.RecognizedItem {
	return []models.RecognizedItem{
		{
			Name:         "ข้าวสวย",
			NameEN:       "steamed rice",
			Portion:      "1 จาน",
			Confidence:   models.Score(0.6),
			Category:     models.CategoryGrains,
			Provenance:   models.ProvenanceReferenceDB,
			ReferenceKey: "ข้าวสวย",
		},
		{
			Name:         "ผัดผักรวม",
			NameEN:       "stir-fried mixed vegetables",
			Portion:      "1 จาน",
			Confidence:   models.Score(0.5),
			Category:     models.CategoryVegetable,
			Provenance:   models.ProvenanceReferenceDB,
			ReferenceKey: "ผัดผักรวม",
		},
	}
}

// Aggregator resolves each item's nutrition from the reference table, an
// external snapshot, or the category heuristic, in that order.
type Aggregator struct {
	db *fooddb.Database
}

func NewAggregator(db *fooddb.Database) *Aggregator {
	if db == nil {
		db = fooddb.Default()
	}
	return &Aggregator{db: db}
}

func (a *Aggregator) Aggregate(items []models.RecognizedItem) Aggregate {
	var agg Aggregate
	if len(items) == 0 {
		items = FallbackItems()
		agg.Fallback = true
	}

	var totals models.Nutrients
	var confidenceSum float64
	agg.Components = make([]models.NutritionComponent, 0, len(items))
	for _, item := range items {
		c, exact := a.component(item)
		totals = totals.Add(exact)
		confidenceSum += c.Confidence
		agg.Components = append(agg.Components, c)
	}

	agg.Totals = roundNutrients(totals)
	agg.Confidence = round(confidenceSum/float64(len(agg.Components)), 2)
	return agg
}

// component returns the rounded component and its unrounded nutrients.
func (a *Aggregator) component(item models.RecognizedItem) (models.NutritionComponent, models.Nutrients) {
	c := models.NutritionComponent{
		Name:       item.Name,
		NameEN:     item.NameEN,
		Portion:    item.Portion,
		Confidence: itemConfidence(item.Confidence),
		Category:   item.Category,
		Provenance: item.Provenance,
	}
	if !c.Category.Valid() {
		c.Category = models.CategoryMainDish
	}

	var per100 models.Nutrients
	if entry, ok := a.reference(item); ok {
		c.Name = entry.Name
		if entry.NameEN != "" {
			c.NameEN = entry.NameEN
		}
		c.Category = entry.Category
		c.Provenance = models.ProvenanceReferenceDB
		c.Grams = portion.EstimateGrams(item.Portion, &entry)
		per100 = entry.Per100g
	} else if item.External != nil && item.External.PlausiblePer100g() {
		c.Provenance = models.ProvenanceExternalLookup
		c.Grams = portion.EstimateGenericGrams(item.Portion)
		per100 = *item.External
	} else {
		c.Grams = portion.EstimateGenericGrams(item.Portion)
		per100 = fooddb.CategoryProfile(c.Category)
	}

	exact := per100.Scale(c.Grams / 100)
	c.Nutrients = roundNutrients(exact)
	return c, exact
}

// reference resolves the item's reference entry. Items that skipped
// enrichment are matched by name here; externally enriched items are not.
func (a *Aggregator) reference(item models.RecognizedItem) (models.ReferenceFoodEntry, bool) {
	if item.ReferenceKey != "" {
		return a.db.Get(item.ReferenceKey)
	}
	if item.External != nil {
		return models.ReferenceFoodEntry{}, false
	}
	if entry, ok := a.db.Lookup(item.Name); ok {
		return entry, true
	}
	return a.db.Lookup(item.NameEN)
}

func itemConfidence(c *float64) float64 {
	switch {
	case c == nil || math.IsNaN(*c):
		return unspecifiedConfidence
	case *c < 0:
		return 0
	case *c > 1:
		return 1
	default:
		return *c
	}
}

// roundNutrients rounds energy and sodium to integers and the rest to one
// decimal.
func roundNutrients(n models.Nutrients) models.Nutrients {
	return models.Nutrients{
		Calories: math.Round(n.Calories),
		Protein:  round(n.Protein, 1),
		Carbs:    round(n.Carbs, 1),
		Fat:      round(n.Fat, 1),
		Fiber:    round(n.Fiber, 1),
		Sodium:   math.Round(n.Sodium),
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
