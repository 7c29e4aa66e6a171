// Package portion turns casual portion descriptions ("1 จาน", "2 ไม้",
// "half a bowl") into gram weights.
package portion

import (
	"regexp"
	"strconv"
	"strings"

	"mcp-food-vision/internal/models"
)

// Gram weights used when the reference table has no better number.
const (
	PlateGrams       = 200.0
	BowlGrams        = 240.0
	PieceGrams       = 100.0
	LargePieceGrams  = 150.0
	EggGrams         = 50.0
	SkewerGrams      = 30.0
	GlassGrams       = 240.0
	DefaultGrams     = 150.0
	GenericPlate     = 250.0
	GenericBowl      = 240.0
	GenericDefault   = 200.0
	MaxExplicitGrams = 5000.0
	maxCount         = 50.0
	referencePlate   = "1 จาน"
	referenceBowl    = "1 ชาม"
	referenceBowlAlt = "1 ถ้วย"
)

var (
	gramsRe   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:กรัม|(?:grams?|gr|g)\b)`)
	leadingRe = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)`)
)

type unitRule struct {
	keywords []string
	grams    func(text string, entry *models.ReferenceFoodEntry) float64
}

// unitRules are checked in order; the first rule whose keyword appears wins.
var unitRules = []unitRule{
	{keywords: []string{"จาน", "plate", "dish"}, grams: plateGrams},
	{keywords: []string{"ชาม", "ถ้วย", "bowl", "cup"}, grams: bowlGrams},
	{keywords: []string{"ชิ้น", "piece", "slice"}, grams: pieceGrams},
	{keywords: []string{"ฟอง", "egg"}, grams: func(text string, _ *models.ReferenceFoodEntry) float64 {
		return EggGrams * leadingCount(text)
	}},
	{keywords: []string{"ไม้", "skewer", "stick"}, grams: func(text string, _ *models.ReferenceFoodEntry) float64 {
		return SkewerGrams * leadingCount(text)
	}},
	{keywords: []string{"แก้ว", "กล่อง", "glass", "box"}, grams: func(string, *models.ReferenceFoodEntry) float64 {
		return GlassGrams
	}},
}

// EstimateGrams estimates the weight of a portion of a reference dish. An exact
// key in the entry's portion table always wins, then unit keywords, then an
// explicit gram value, then DefaultGrams. entry may be nil.
func EstimateGrams(text string, entry *models.ReferenceFoodEntry) float64 {
	if entry != nil {
		if g, ok := entry.Portions[text]; ok {
			return g
		}
	}
	lower := strings.ToLower(text)
	for _, rule := range unitRules {
		if containsAny(lower, rule.keywords) {
			return rule.grams(lower, entry)
		}
	}
	if g, ok := ExplicitGrams(text); ok {
		return g
	}
	return DefaultGrams
}

// EstimateGenericGrams estimates portions of items without a reference entry.
func EstimateGenericGrams(text string) float64 {
	if g, ok := ExplicitGrams(text); ok {
		return g
	}
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, []string{"จาน", "plate", "dish"}):
		return GenericPlate
	case containsAny(lower, []string{"ชาม", "ถ้วย", "bowl", "cup"}):
		return GenericBowl
	default:
		return GenericDefault
	}
}

// ExplicitGrams extracts a gram weight written in the text, e.g. "180 g".
// Values above MaxExplicitGrams are ignored.
func ExplicitGrams(text string) (float64, bool) {
	m := gramsRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	g, err := strconv.ParseFloat(m[1], 64)
	if err != nil || g <= 0 || g > MaxExplicitGrams {
		return 0, false
	}
	return g, true
}

func plateGrams(text string, entry *models.ReferenceFoodEntry) float64 {
	whole := PlateGrams
	if entry != nil {
		if g, ok := entry.Portions[referencePlate]; ok {
			whole = g
		}
	}
	if isHalf(text) {
		return whole / 2
	}
	return whole
}

func bowlGrams(text string, entry *models.ReferenceFoodEntry) float64 {
	whole := BowlGrams
	if entry != nil {
		if g, ok := entry.Portions[referenceBowl]; ok {
			whole = g
		} else if g, ok := entry.Portions[referenceBowlAlt]; ok {
			whole = g
		}
	}
	if isHalf(text) {
		return whole / 2
	}
	return whole
}

func pieceGrams(text string, _ *models.ReferenceFoodEntry) float64 {
	if containsAny(text, []string{"ใหญ่", "large", "big"}) {
		return LargePieceGrams
	}
	return PieceGrams
}

func isHalf(text string) bool {
	return containsAny(text, []string{"1/2", "ครึ่ง", "half"})
}

func leadingCount(text string) float64 {
	m := leadingRe.FindStringSubmatch(text)
	if m == nil {
		return 1
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil || n <= 0 || n > maxCount {
		return 1
	}
	return n
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
