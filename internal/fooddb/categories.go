package fooddb

import "mcp-food-vision/internal/models"

// categoryProfiles are rough per-100g vectors used when neither the reference
// table nor an external lookup knows the item.
var categoryProfiles = map[models.Category]models.Nutrients{
	models.CategoryGrains:    {Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Fiber: 0.4, Sodium: 5},
	models.CategoryProtein:   {Calories: 160, Protein: 17.6, Carbs: 2, Fat: 9, Fiber: 0, Sodium: 350},
	models.CategoryVegetable: {Calories: 45, Protein: 2, Carbs: 7, Fat: 1.5, Fiber: 2.5, Sodium: 250},
	models.CategoryFruit:     {Calories: 60, Protein: 0.8, Carbs: 15, Fat: 0.2, Fiber: 2, Sodium: 2},
	models.CategoryDairy:     {Calories: 65, Protein: 3.4, Carbs: 5, Fat: 3.5, Fiber: 0, Sodium: 45},
	models.CategorySnack:     {Calories: 450, Protein: 6, Carbs: 55, Fat: 22, Fiber: 3, Sodium: 500},
	models.CategoryBeverage:  {Calories: 45, Protein: 0.5, Carbs: 11, Fat: 0.2, Fiber: 0, Sodium: 10},
	models.CategoryDessert:   {Calories: 250, Protein: 4, Carbs: 40, Fat: 9, Fiber: 1, Sodium: 80},
	models.CategorySoup:      {Calories: 40, Protein: 3, Carbs: 3, Fat: 1.8, Fiber: 0.5, Sodium: 400},
	models.CategoryCurry:     {Calories: 150, Protein: 8, Carbs: 6, Fat: 11, Fiber: 1.5, Sodium: 600},
	models.CategoryMainDish:  {Calories: 180, Protein: 9, Carbs: 20, Fat: 7, Fiber: 1.5, Sodium: 550},
}

// CategoryProfile returns the per-100g heuristic vector for c. Unknown
// categories use the main_dish vector.
func CategoryProfile(c models.Category) models.Nutrients {
	if n, ok := categoryProfiles[c]; ok {
		return n
	}
	return categoryProfiles[models.CategoryMainDish]
}
