package fooddb

import (
	"strings"
	"sync"
	"testing"

	"mcp-food-vision/internal/models"
)

func TestDefaultDatabaseInvariants(t *testing.T) {
	db := Default()
	if db.Len() < 100 {
		t.Fatalf("expected at least 100 dishes, got=%d", db.Len())
	}
	for _, name := range db.Names(0) {
		e, ok := db.Get(name)
		if !ok {
			t.Fatalf("Get(%q) missing", name)
		}
		if e.NameEN == "" {
			t.Fatalf("%q: empty english name", name)
		}
		if !e.Per100g.NonNegative() {
			t.Fatalf("%q: negative nutrients", name)
		}
		if !e.Category.Valid() {
			t.Fatalf("%q: bad category %q", name, e.Category)
		}
	}
}

func TestFallbackDishesExist(t *testing.T) {
	for _, name := range []string{"ข้าวสวย", "ผัดผักรวม"} {
		e, ok := Default().Get(name)
		if !ok {
			t.Fatalf("missing %q", name)
		}
		if _, ok := e.Portions["1 จาน"]; !ok {
			t.Fatalf("%q: missing 1 จาน portion", name)
		}
	}
}

func TestFind(t *testing.T) {
	db := Default()
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"ผัดกะเพรา", "ผัดกะเพรา", true},
		{"Pad Thai", "ผัดไทย", true},
		{"pad_thai", "ผัดไทย", true},
		{"egg_fried_rice", "ข้าวผัด", true},
		{"shrimp fried rice", "ข้าวผัดกุ้ง", true},
		{"shrimp paste fried rice", "ข้าวคลุกกะปิ", true},
		{"mango_sticky_rice", "ข้าวเหนียวมะม่วง", true},
		// compound entries come first and also absorb their components' labels
		{"sticky rice", "ข้าวเหนียวมะม่วง", true},
		{"rice", "ข้าวสวย", true},
		{"soy milk", "นมถั่วเหลือง", true},
		{"soymilk", "นมถั่วเหลือง", true},
		{"fresh milk", "นมจืด", true},
		{"grilled pork neck", "คอหมูย่าง", true},
		{"fried fish cakes", "ทอดมันปลา", true},
		{"Green Curry", "แกงเขียวหวานไก่", true},
		{"hot_and_sour_soup", "ต้มยำกุ้ง", true},
		{"spring_rolls", "ปอเปี๊ยะทอด", true},
		{"krapow moo", "ผัดกะเพรา", true},
		{"", "", false},
		{"   ", "", false},
		{"zzzz unknown", "", false},
	}
	for _, tc := range cases {
		got, ok := db.Find(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("Find(%q): want=(%q,%v) got=(%q,%v)", tc.in, tc.want, tc.wantOK, got, ok)
		}
	}
}

func TestFindFirstMatchWins(t *testing.T) {
	db, err := New([]models.ReferenceFoodEntry{
		{Name: "นม", NameEN: "milk", Category: models.CategoryDairy},
		{Name: "นมถั่วเหลือง", NameEN: "soy milk", Category: models.CategoryBeverage},
		{Name: "ชานม", NameEN: "milk tea", Category: models.CategoryBeverage, Keywords: []string{"cha nom"}},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cases := map[string]string{
		"soy milk":      "นม",
		"Milk Tea":      "นม",
		"milk":          "นม",
		"iced cha nom":  "ชานม",
		"นมถั่วเหลือง": "นมถั่วเหลือง",
	}
	for in, want := range cases {
		if got, _ := db.Find(in); got != want {
			t.Fatalf("Find(%q): want=%q got=%q", in, want, got)
		}
	}

	reordered, err := New([]models.ReferenceFoodEntry{
		{Name: "นมถั่วเหลือง", NameEN: "soy milk", Category: models.CategoryBeverage},
		{Name: "นม", NameEN: "milk", Category: models.CategoryDairy},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, _ := reordered.Find("soy milk"); got != "นมถั่วเหลือง" {
		t.Fatalf("specific entry first: want=นมถั่วเหลือง got=%q", got)
	}
}

func TestDefaultTableListsCompoundDishesFirst(t *testing.T) {
	db := Default()
	names := db.Names(0)
	pos := make(map[string]int, len(names))
	for i, n := range names {
		pos[n] = i
	}
	for _, generic := range names {
		g, _ := db.Get(generic)
		for _, specific := range names {
			s, _ := db.Get(specific)
			if s.Name == g.Name || s.NameEN == g.NameEN {
				continue
			}
			if strings.Contains(normalize(s.NameEN), normalize(g.NameEN)) && pos[generic] < pos[specific] {
				t.Fatalf("%q (%s) must precede %q (%s)", specific, s.NameEN, generic, g.NameEN)
			}
		}
	}
}

func TestNewRejectsInvalidEntries(t *testing.T) {
	cases := map[string][]models.ReferenceFoodEntry{
		"empty name":   {{Name: "", NameEN: "x", Category: models.CategorySoup}},
		"negative":     {{Name: "x", NameEN: "x", Category: models.CategorySoup, Per100g: models.Nutrients{Fat: -1}}},
		"bad category": {{Name: "x", NameEN: "x", Category: "pizza"}},
		"duplicate": {
			{Name: "x", NameEN: "x", Category: models.CategorySoup},
			{Name: "x", NameEN: "y", Category: models.CategorySoup},
		},
		"zero portion": {{Name: "x", NameEN: "x", Category: models.CategorySoup, Portions: map[string]float64{"1 ชาม": 0}}},
	}
	for name, entries := range cases {
		if _, err := New(entries); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestGetReturnsCopy(t *testing.T) {
	db := Default()
	e, _ := db.Get("ข้าวสวย")
	e.Portions["1 จาน"] = 1
	again, _ := db.Get("ข้าวสวย")
	if again.Portions["1 จาน"] != 200 {
		t.Fatalf("database mutated through returned entry")
	}
}

func TestConcurrentReaders(t *testing.T) {
	db := Default()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, n := range db.Names(20) {
				if _, ok := db.Lookup(n); !ok {
					t.Errorf("Lookup(%q) failed", n)
				}
			}
		}()
	}
	wg.Wait()
}

func TestCategoryProfile(t *testing.T) {
	for _, c := range models.Categories {
		if p := CategoryProfile(c); p.Calories <= 0 {
			t.Fatalf("%s: empty profile", c)
		}
	}
	if CategoryProfile("unknown") != CategoryProfile(models.CategoryMainDish) {
		t.Fatalf("unknown category should use main_dish")
	}
	if p := CategoryProfile(models.CategoryProtein); p.Calories != 160 || p.Protein != 17.6 {
		t.Fatalf("protein profile: got=%+v", p)
	}
}
