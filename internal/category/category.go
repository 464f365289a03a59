package category

import (
	"strings"

	"github.com/gtteam/shop/internal/model"
)

// Canonical category keys. Free-text catalog labels are folded into this
// vocabulary so filtering and search behave the same regardless of how a
// category was spelled upstream.
const (
	Decoratiuni   = "decoratiuni"
	Vouchere      = "vouchere"
	Education     = "education"
	GenTech       = "gentech"
	Abonamente    = "abonamente"
	Comori        = "comori"
	Uncategorized = "uncategorized"
)

// Normalize returns the canonical category key for a raw label.
// It is case-insensitive, trims whitespace, and is total: unknown labels
// pass through trimmed and lowercased, empty input maps to Uncategorized.
func Normalize(raw string) string {
	cat := strings.ToLower(strings.TrimSpace(raw))
	if cat == "" {
		return Uncategorized
	}

	switch cat {
	case "decoratiuni", "decorații", "decorations", "decoration":
		return Decoratiuni
	case "voucher", "vouchere":
		return Vouchere
	case "cariera", "carieră", "education":
		return Education
	case "gentech":
		return GenTech
	case "abonamente":
		return Abonamente
	case "comori":
		return Comori
	}

	return cat
}

// physicalCategories are category labels whose items always need a
// shipping address.
var physicalCategories = map[string]bool{
	"merchandise": true,
	"electronics": true,
}

// IsPhysical reports whether a reward with the given raw category, explicit
// physical flag, and type string requires shipment.
func IsPhysical(rawCategory string, physical bool, typ string) bool {
	return physicalCategories[strings.ToLower(strings.TrimSpace(rawCategory))] ||
		physical ||
		typ == "physical"
}

// Tag derives NormalizedCategory and the physical classification for a
// reward. It is applied once at catalog load so the rest of the system
// reads a single boolean instead of re-running the duck-typed checks.
func Tag(r model.Reward) model.Reward {
	r.NormalizedCategory = Normalize(r.Category)
	r.Physical = IsPhysical(r.Category, r.Physical, "")
	return r
}

// TagAll returns a tagged copy of the catalog.
func TagAll(rewards []model.Reward) []model.Reward {
	tagged := make([]model.Reward, len(rewards))
	for i, r := range rewards {
		tagged[i] = Tag(r)
	}
	return tagged
}
