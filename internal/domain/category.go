package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Category is one of the top-level groupings leaf factions are organised under.
type Category string

func (c Category) String() string {
	return string(c)
}

const (
	CategoryXenos    Category = "xenos"    // Alien races
	CategoryImperium Category = "imperium" // Loyal human factions
	CategoryChaos    Category = "chaos"    // Forces of the Dark Gods
)

var Categories = []Category{
	CategoryXenos,
	CategoryImperium,
	CategoryChaos,
}

// ParseCategory matches token case-insensitively against Categories.
func ParseCategory(token string) (Category, bool) {
	lowered := strings.ToLower(token)
	for _, c := range Categories {
		if string(c) == lowered {
			return c, true
		}
	}
	return "", false
}

// DisplayName is the name of the top-level faction record for the category,
// e.g. "Xenos".
func (c Category) DisplayName() string {
	return Capitalize(string(c))
}

func (c Category) Description() string {
	switch c {
	case CategoryXenos:
		return "Alien races and non-human factions"
	case CategoryImperium:
		return "Human factions loyal to the Emperor"
	case CategoryChaos:
		return "Forces of the Dark Gods"
	default:
		return "Unknown"
	}
}

// Color is the accent used by the category card on the factions page.
func (c Category) Color() string {
	switch c {
	case CategoryXenos:
		return "#8B5CF6"
	case CategoryImperium:
		return "#3B82F6"
	case CategoryChaos:
		return "#EF4444"
	default:
		return "#6B7280"
	}
}

// CategoryNames returns the valid tokens in display order.
func CategoryNames() []string {
	names := make([]string, 0, len(Categories))
	for _, c := range Categories {
		names = append(names, c.String())
	}
	return names
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
