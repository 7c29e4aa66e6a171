package analysis

import "mcp-food-vision/internal/models"

const (
	MsgLowCalorie      = "This meal is low in calories. Consider adding more food to meet your energy needs."
	MsgHighCalorie     = "This meal is high in calories. Consider controlling your portion size."
	MsgLowProtein      = "Add a protein source such as eggs, chicken, fish or tofu."
	MsgHighCarbs       = "This meal is high in carbohydrates. Try brown rice or reduce the rice portion."
	MsgHighFat         = "This meal is high in fat. Choose boiled, steamed or grilled dishes instead of fried ones."
	MsgLowFiber        = "Add more vegetables or fruit to increase fiber."
	MsgBalanced        = "This meal looks well balanced."
	WarnVeryHighSodium = "Very high sodium. Regular intake at this level raises the risk of high blood pressure."
	WarnHighSodium     = "Moderately high sodium. Consider reducing sauces and seasoning."
	WarnHighCalorie    = "Very high calorie meal. Eating like this regularly may lead to weight gain."
)

// Recommend derives dietary advice from meal totals using fixed thresholds.
// Both slices are non-nil.
func Recommend(t models.Nutrients) (recommendations, warnings []string) {
	recommendations = []string{}
	warnings = []string{}

	switch {
	case t.Calories < 300:
		recommendations = append(recommendations, MsgLowCalorie)
	case t.Calories > 800:
		recommendations = append(recommendations, MsgHighCalorie)
	}
	if t.Protein < 15 {
		recommendations = append(recommendations, MsgLowProtein)
	}
	if t.Carbs > 100 {
		recommendations = append(recommendations, MsgHighCarbs)
	}
	if t.Fat > 30 {
		recommendations = append(recommendations, MsgHighFat)
	}
	if t.Fiber < 5 {
		recommendations = append(recommendations, MsgLowFiber)
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, MsgBalanced)
	}

	switch {
	case t.Sodium > 1500:
		warnings = append(warnings, WarnVeryHighSodium)
	case t.Sodium > 1000:
		warnings = append(warnings, WarnHighSodium)
	}
	if t.Calories > 1000 {
		warnings = append(warnings, WarnHighCalorie)
	}
	return recommendations, warnings
}
