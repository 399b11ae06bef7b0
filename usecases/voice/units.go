package voice

import (
	"strings"

	"github.com/hashicorp/go-set/v2"
)

// Canonical unit spellings, keyed by their lowercase form. "L" keeps its
// conventional capital.
var canonicalUnits = map[string]string{
	"kg":     "kg",
	"g":      "g",
	"mg":     "mg",
	"l":      "L",
	"ml":     "ml",
	"lb":     "lb",
	"oz":     "oz",
	"pcs":    "pcs",
	"pack":   "pack",
	"can":    "can",
	"bottle": "bottle",
	"box":    "box",
	"dozen":  "dozen",
	"bunch":  "bunch",
	"bag":    "bag",
}

var unitSynonyms = map[string]string{
	"kilogram":    "kg",
	"kilograms":   "kg",
	"kilo":        "kg",
	"kilos":       "kg",
	"gram":        "g",
	"grams":       "g",
	"milligram":   "mg",
	"milligrams":  "mg",
	"litre":       "L",
	"litres":      "L",
	"liter":       "L",
	"liters":      "L",
	"millilitre":  "ml",
	"millilitres": "ml",
	"milliliter":  "ml",
	"milliliters": "ml",
	"pound":       "lb",
	"pounds":      "lb",
	"lbs":         "lb",
	"ounce":       "oz",
	"ounces":      "oz",
	"piece":       "pcs",
	"pieces":      "pcs",
	"packet":      "pack",
	"packets":     "pack",
	"packs":       "pack",
	"cans":        "can",
	"bottles":     "bottle",
	"boxes":       "box",
	"dozens":      "dozen",
	"bunches":     "bunch",
	"bags":        "bag",
}

var knownUnits = func() *set.Set[string] {
	s := set.New[string](len(canonicalUnits) + len(unitSynonyms))
	for lower := range canonicalUnits {
		s.Insert(lower)
	}
	for synonym := range unitSynonyms {
		s.Insert(synonym)
	}
	return s
}()

// NormalizeUnit maps a free-text unit onto its canonical spelling:
// recognition is case-insensitive and synonym-aware ("Kilogram" -> "kg",
// "litre" -> "L"). Unrecognized units pass through trimmed and otherwise
// untouched.
func NormalizeUnit(unit string) string {
	trimmed := strings.TrimSpace(unit)
	lower := strings.ToLower(trimmed)
	if !knownUnits.Contains(lower) {
		return trimmed
	}
	if canonical, ok := unitSynonyms[lower]; ok {
		return canonical
	}
	return canonicalUnits[lower]
}

// isKnownUnit reports whether the token names a recognized unit, used by the
// bulk-add splitter to tell units from item words.
func isKnownUnit(token string) bool {
	return knownUnits.Contains(strings.ToLower(strings.TrimSpace(token)))
}
