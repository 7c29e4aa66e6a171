package recognize

import (
	"strings"

	"mcp-food-vision/internal/models"
)

// labelDishes maps classifier labels (food-101 style, or Rekognition / Cloud
// Vision label names, normalized) to local dish names.
var labelDishes = map[string]string{
	"pad thai":            "ผัดไทย",
	"fried rice":          "ข้าวผัด",
	"rice":                "ข้าวสวย",
	"steamed rice":        "ข้าวสวย",
	"sticky rice":         "ข้าวเหนียว",
	"spring rolls":        "ปอเปี๊ยะทอด",
	"chicken curry":       "แกงกะหรี่ไก่",
	"curry":               "แกงกะหรี่ไก่",
	"green curry":         "แกงเขียวหวานไก่",
	"red curry":           "แกงแดง",
	"hot and sour soup":   "ต้มยำกุ้ง",
	"tom yum":             "ต้มยำกุ้ง",
	"miso soup":           "แกงจืดเต้าหู้หมูสับ",
	"dumplings":           "ขนมจีบ",
	"gyoza":               "ขนมจีบ",
	"chicken wings":       "ไก่ทอด",
	"fried chicken":       "ไก่ทอด",
	"pho":                 "ก๋วยเตี๋ยวน้ำ",
	"ramen":               "ก๋วยเตี๋ยวน้ำ",
	"noodle":              "ก๋วยเตี๋ยวน้ำ",
	"noodle soup":         "ก๋วยเตี๋ยวน้ำ",
	"omelette":            "ไข่เจียว",
	"fried egg":           "ไข่ดาว",
	"deviled eggs":        "ไข่ต้ม",
	"egg":                 "ไข่ต้ม",
	"french fries":        "เฟรนช์ฟรายส์",
	"ice cream":           "ไอศกรีม",
	"steak":               "สเต๊กเนื้อ",
	"sushi":               "ซูชิ",
	"pizza":               "พิซซ่า",
	"hamburger":           "แฮมเบอร์เกอร์",
	"club sandwich":       "แซนด์วิช",
	"sandwich":            "แซนด์วิช",
	"grilled salmon":      "ปลาเผา",
	"fish and chips":      "ปลาทอด",
	"spaghetti bolognese": "สปาเก็ตตี้",
	"spaghetti carbonara": "สปาเก็ตตี้",
	"caesar salad":        "ผักสด",
	"salad":               "ผักสด",
	"cheesecake":          "เค้ก",
	"chocolate cake":      "เค้ก",
	"cake":                "เค้ก",
	"bread":               "ขนมปัง",
	"banana":              "กล้วย",
	"mango":               "มะม่วง",
	"watermelon":          "แตงโม",
	"papaya salad":        "ส้มตำ",
	"satay":               "หมูสะเต๊ะ",
	"tofu":                "เต้าหู้ทอด",
	"coffee":              "กาแฟดำ",
	"milk":                "นมจืด",
	"juice":               "น้ำส้มคั้น",
}

// genericLabels are label-detector outputs that describe the scene rather
// than a dish.
var genericLabels = map[string]bool{
	"food": true, "meal": true, "dish": true, "plate": true, "lunch": true,
	"dinner": true, "breakfast": true, "brunch": true, "cuisine": true,
	"produce": true, "tableware": true, "platter": true, "bowl": true,
	"cutlery": true, "fork": true, "spoon": true, "table": true,
	"ingredient": true, "recipe": true, "staple food": true, "fast food": true,
	"comfort food": true, "finger food": true, "junk food": true,
	"thai food": true, "asian food": true, "supper": true, "dishware": true,
}

type categoryRule struct {
	category models.Category
	keywords []string
}

// categoryRules are checked in order; the first keyword hit decides.
var categoryRules = []categoryRule{
	{models.CategoryBeverage, []string{"juice", "coffee", "tea", "soda", "drink", "smoothie", "milkshake", "cocktail", "beverage", "water", "latte"}},
	{models.CategoryDessert, []string{"cake", "cheesecake", "cupcake", "shortcake", "ice cream", "pudding", "donut", "dessert", "pie", "tiramisu", "macaron", "mousse", "sundae", "brownie", "cookie", "waffle", "pancake", "churro", "creme", "panna cotta", "cannoli", "baklava", "custard", "chocolate"}},
	{models.CategorySoup, []string{"soup", "pho", "ramen", "chowder", "bisque", "tom yum"}},
	{models.CategoryCurry, []string{"curry"}},
	{models.CategoryMainDish, []string{"fried rice", "pad thai", "noodle", "pasta", "spaghetti", "pizza", "burger", "hamburger", "cheeseburger", "sandwich", "lasagna", "risotto", "paella", "bibimbap", "sushi", "taco", "burrito", "ravioli", "gnocchi"}},
	{models.CategoryProtein, []string{"chicken", "pork", "beef", "steak", "fish", "shrimp", "prawn", "egg", "omelette", "salmon", "tuna", "crab", "lobster", "oyster", "scallop", "mussel", "squid", "calamari", "duck", "lamb", "ribs", "sausage", "tofu", "meat", "satay"}},
	{models.CategorySnack, []string{"fries", "chips", "nachos", "spring roll", "dumpling", "gyoza", "samosa", "popcorn", "nuts", "onion rings", "cracker", "snack"}},
	{models.CategoryFruit, []string{"fruit", "mango", "banana", "apple", "orange", "melon", "watermelon", "pineapple", "papaya", "berry", "grape", "durian"}},
	{models.CategoryDairy, []string{"cheese", "yogurt", "milk"}},
	{models.CategoryVegetable, []string{"salad", "vegetable", "broccoli", "spinach", "edamame", "beet", "cabbage", "carrot", "leaf vegetable"}},
	{models.CategoryGrains, []string{"rice", "bread", "toast", "bagel", "baguette", "porridge", "congee"}},
}

// defaultPortions is the synthesized portion description per category.
var defaultPortions = map[models.Category]string{
	models.CategoryBeverage: "1 แก้ว",
	models.CategorySoup:     "1 ชาม",
	models.CategoryCurry:    "1 ถ้วย",
	models.CategoryDessert:  "1 ชิ้น",
	models.CategoryFruit:    "1 ชิ้น",
	models.CategoryDairy:    "1 แก้ว",
	models.CategorySnack:    "1 ชิ้น",
}

func normalizeLabel(label string) string {
	label = strings.ToLower(strings.ReplaceAll(label, "_", " "))
	return strings.Join(strings.Fields(label), " ")
}

// categorizeLabel guesses a category from keywords. ok is false when no
// keyword matched and the main_dish default was used.
func categorizeLabel(label string) (models.Category, bool) {
	norm := normalizeLabel(label)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if containsWord(norm, kw) {
				return rule.category, true
			}
		}
	}
	return models.CategoryMainDish, false
}

// isFoodLabel reports whether a label-detector output names a specific food.
func isFoodLabel(label string) bool {
	norm := normalizeLabel(label)
	if norm == "" || genericLabels[norm] {
		return false
	}
	if _, ok := labelDishes[norm]; ok {
		return true
	}
	_, ok := categorizeLabel(norm)
	return ok
}

// itemFromLabel builds a RecognizedItem from a classifier label and score.
func itemFromLabel(label string, score float64, provenance models.Provenance) models.RecognizedItem {
	norm := normalizeLabel(label)
	category, _ := categorizeLabel(norm)
	name := norm
	if local, ok := labelDishes[norm]; ok {
		name = local
	}
	portion, ok := defaultPortions[category]
	if !ok {
		portion = "1 จาน"
	}
	return models.RecognizedItem{
		Name:       name,
		NameEN:     norm,
		Portion:    portion,
		Confidence: models.Score(clamp01(score)),
		Category:   category,
		Provenance: provenance,
	}
}

// containsWord reports whether kw occurs in s as whole words, allowing a plural
// "s" or "es" suffix.
func containsWord(s, kw string) bool {
	for start := 0; start+len(kw) <= len(s); {
		i := strings.Index(s[start:], kw)
		if i < 0 {
			return false
		}
		i += start
		if i == 0 || s[i-1] == ' ' {
			rest := s[i+len(kw):]
			if strings.HasPrefix(rest, "es") {
				rest = rest[2:]
			} else if strings.HasPrefix(rest, "s") {
				rest = rest[1:]
			}
			if rest == "" || rest[0] == ' ' {
				return true
			}
		}
		start = i + 1
	}
	return false
}
