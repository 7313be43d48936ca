package normalize

import "strings"

// Category is a product category triple. L2 (Participating/Non-Participating/
// VIP) is only ever assigned by table-specific header maps, never by the
// generic label parser.
type Category struct {
	L1 string // Linked, Non-Linked, or blank
	L2 string // Participating, Non-Participating, VIP, or blank
	L3 string // Life, Annuity, Pension, Health, or blank
}

// ParseCategoryLabel derives L1 and L3 from a free-text category label by
// case-insensitive substring tests. The annuity check runs before the life
// check so that "general annuity life fund" style labels do not register a
// false Life hit.
func ParseCategoryLabel(label string) Category {
	var c Category
	lower := strings.ToLower(strings.TrimSpace(label))
	if lower == "" {
		return c
	}

	if strings.Contains(lower, "linked") {
		if strings.Contains(lower, "non-linked") || strings.Contains(lower, "non linked") || strings.Contains(lower, "nonlinked") {
			c.L1 = "Non-Linked"
		} else {
			c.L1 = "Linked"
		}
	}

	switch {
	case strings.Contains(lower, "annuity"):
		c.L3 = "Annuity"
	case strings.Contains(lower, "life"):
		c.L3 = "Life"
	case strings.Contains(lower, "pension"):
		c.L3 = "Pension"
	case strings.Contains(lower, "health"):
		c.L3 = "Health"
	}

	return c
}
