package portion

import (
	"strings"
	"testing"

	"mcp-food-vision/internal/models"
)

func TestEstimateGramsPrefersPortionTable(t *testing.T) {
	entry := &models.ReferenceFoodEntry{
		Name:     "หมูปิ้ง",
		Portions: map[string]float64{"3 ไม้": 95, "1 จาน": 180},
	}
	// "3 ไม้" would be 90g by the skewer rule.
	if got := EstimateGrams("3 ไม้", entry); got != 95 {
		t.Fatalf("table hit: want=95 got=%v", got)
	}
	if got := EstimateGrams("2 ไม้", entry); got != 60 {
		t.Fatalf("skewer rule: want=60 got=%v", got)
	}
}

func TestEstimateGramsUnitRules(t *testing.T) {
	withPlate := &models.ReferenceFoodEntry{Portions: map[string]float64{"1 จาน": 300, "1 ชาม": 400}}

	cases := []struct {
		name  string
		text  string
		entry *models.ReferenceFoodEntry
		want  float64
	}{
		{"plate default", "2 จาน", nil, 200},
		{"half plate", "1/2 จาน", nil, 100},
		{"plate from reference", "จานใหญ่", withPlate, 300},
		{"half plate from reference", "ครึ่งจาน", withPlate, 150},
		{"bowl default", "1 ถ้วย", nil, 240},
		{"half bowl", "half bowl", nil, 120},
		{"bowl from reference", "ชามใหญ่", withPlate, 400},
		{"piece", "1 ชิ้น", nil, 100},
		{"large piece", "1 ชิ้นใหญ่", nil, 150},
		{"eggs", "2 ฟอง", nil, 100},
		{"egg without count", "ไข่ ฟอง", nil, 50},
		{"skewers", "4 ไม้", nil, 120},
		{"glass", "1 แก้ว", nil, 240},
		{"box", "1 กล่อง", nil, 240},
		{"plate beats explicit grams", "1 จาน 500 กรัม", nil, 200},
		{"explicit grams", "180 กรัม", nil, 180},
		{"explicit grams english", "about 75g", nil, 75},
		{"fallback", "some", nil, 150},
		{"empty", "", nil, 150},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EstimateGrams(tc.text, tc.entry); got != tc.want {
				t.Fatalf("EstimateGrams(%q): want=%v got=%v", tc.text, tc.want, got)
			}
		})
	}
}

func TestEstimateGenericGrams(t *testing.T) {
	cases := map[string]float64{
		"1 จาน":     250,
		"1 plate":   250,
		"1 ชาม":     240,
		"1 ถ้วย":    240,
		"1 ชิ้น":    200,
		"":          200,
		"320 กรัม":  320,
		"1 จาน 90g": 90,
	}
	for text, want := range cases {
		if got := EstimateGenericGrams(text); got != want {
			t.Fatalf("EstimateGenericGrams(%q): want=%v got=%v", text, want, got)
		}
	}
}

func TestExplicitGrams(t *testing.T) {
	if _, ok := ExplicitGrams("1 จาน"); ok {
		t.Fatalf("expected no explicit grams")
	}
	if g, ok := ExplicitGrams("12.5 grams"); !ok || g != 12.5 {
		t.Fatalf("want=12.5 got=%v ok=%v", g, ok)
	}
	huge := strings.Repeat("9", 308) + " g"
	if g, ok := ExplicitGrams(huge); ok {
		t.Fatalf("oversized weight should be ignored, got=%v", g)
	}
	if g := EstimateGenericGrams(huge); g != GenericDefault {
		t.Fatalf("generic grams for oversized weight: want=%v got=%v", GenericDefault, g)
	}
	if g := EstimateGrams(strings.Repeat("9", 308)+" ไม้", nil); g != SkewerGrams {
		t.Fatalf("oversized count: want=%v got=%v", SkewerGrams, g)
	}
}
