// Package fooddb holds the built-in reference table of dishes with per-100g
// nutrition and portion-to-gram mappings, and the label normalizer that maps
// recognizer output onto it.
package fooddb

import (
	"fmt"
	"maps"
	"strings"

	"mcp-food-vision/internal/models"
)

// Database is an immutable, ordered set of reference entries. It is safe for
// concurrent use.
type Database struct {
	entries []models.ReferenceFoodEntry
	byName  map[string]int
}

// SourceID identifies the built-in table in analysis metadata.
const SourceID = "thai-food-reference-db"

var defaultDB = mustNew(dishes)

// Default returns the process-wide reference database.
func Default() *Database {
	return defaultDB
}

func mustNew(entries []models.ReferenceFoodEntry) *Database {
	db, err := New(entries)
	if err != nil {
		panic(err)
	}
	return db
}

// New validates entries and builds a Database. Iteration order follows the
// slice order.
func New(entries []models.ReferenceFoodEntry) (*Database, error) {
	db := &Database{
		entries: make([]models.ReferenceFoodEntry, 0, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if strings.TrimSpace(e.Name) == "" || strings.TrimSpace(e.NameEN) == "" {
			return nil, fmt.Errorf("entry %d: name and name_en are required", i)
		}
		if !e.Per100g.NonNegative() {
			return nil, fmt.Errorf("entry %q: negative nutrient density", e.Name)
		}
		if !e.Category.Valid() {
			return nil, fmt.Errorf("entry %q: unknown category %q", e.Name, e.Category)
		}
		if _, dup := db.byName[e.Name]; dup {
			return nil, fmt.Errorf("entry %q: duplicate name", e.Name)
		}
		for portion, grams := range e.Portions {
			if grams <= 0 {
				return nil, fmt.Errorf("entry %q: portion %q must weigh more than zero", e.Name, portion)
			}
		}
		e.Portions = maps.Clone(e.Portions)
		e.Keywords = lowerAll(e.Keywords)
		db.byName[e.Name] = len(db.entries)
		db.entries = append(db.entries, e)
	}
	return db, nil
}

// Len returns the number of entries.
func (db *Database) Len() int {
	return len(db.entries)
}

// Get returns a copy of the entry stored under its canonical local name.
func (db *Database) Get(name string) (models.ReferenceFoodEntry, bool) {
	i, ok := db.byName[name]
	if !ok {
		return models.ReferenceFoodEntry{}, false
	}
	return cloneEntry(db.entries[i]), true
}

// Names returns up to n canonical names in table order. n <= 0 returns all.
func (db *Database) Names(n int) []string {
	if n <= 0 || n > len(db.entries) {
		n = len(db.entries)
	}
	out := make([]string, 0, n)
	for _, e := range db.entries[:n] {
		out = append(out, e.Name)
	}
	return out
}

// Find maps a recognizer label (local name, English name, or an underscored
// classifier label) to a canonical key.
//
// An exact local name wins. Otherwise the first entry in table order whose
// English name equals, contains or is contained in the label, or whose
// keyword is contained in the label, is returned. Blank input never matches.
func (db *Database) Find(name string) (string, bool) {
	raw := strings.TrimSpace(name)
	if raw == "" {
		return "", false
	}
	if _, ok := db.byName[raw]; ok {
		return raw, true
	}

	label := normalize(raw)
	if label == "" {
		return "", false
	}
	for _, e := range db.entries {
		en := normalize(e.NameEN)
		if en == label || strings.Contains(label, en) || strings.Contains(en, label) {
			return e.Name, true
		}
		for _, kw := range e.Keywords {
			if kw != "" && strings.Contains(label, kw) {
				return e.Name, true
			}
		}
	}
	return "", false
}

// Lookup combines Find and Get.
func (db *Database) Lookup(name string) (models.ReferenceFoodEntry, bool) {
	key, ok := db.Find(name)
	if !ok {
		return models.ReferenceFoodEntry{}, false
	}
	return db.Get(key)
}

func normalize(s string) string {
	s = strings.ToLower(strings.ReplaceAll(s, "_", " "))
	return strings.Join(strings.Fields(s), " ")
}

func lowerAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, normalize(s))
	}
	return out
}

func cloneEntry(e models.ReferenceFoodEntry) models.ReferenceFoodEntry {
	e.Portions = maps.Clone(e.Portions)
	if e.Keywords != nil {
		e.Keywords = append([]string(nil), e.Keywords...)
	}
	return e
}
