// Package nav implements the interaction state of the site navigation bar:
// sticky/scroll styling, the two dropdown menus and the compact (mobile) menu.
package nav

import (
	"errors"
	"fmt"
)

// Dropdown identifies one of the navigation dropdown menus. The zero value,
// None, means no dropdown is open, which makes "at most one open dropdown" a
// property of the type rather than a convention.
type Dropdown uint8

const (
	None Dropdown = iota
	Solutions
	Resources
)

// ErrUnknownDropdown is returned when a dropdown identifier cannot be parsed.
var ErrUnknownDropdown = errors.New("unknown dropdown")

// Dropdowns lists every selectable dropdown in display order.
var Dropdowns = []Dropdown{Solutions, Resources}

// String returns the identifier used in markup and content files.
func (d Dropdown) String() string {
	switch d {
	case Solutions:
		return "solutions"
	case Resources:
		return "resources"
	default:
		return ""
	}
}

// ParseDropdown converts an identifier such as "solutions" into a Dropdown.
// The empty string is not a valid identifier; use None directly instead.
func ParseDropdown(s string) (Dropdown, error) {
	switch s {
	case "solutions":
		return Solutions, nil
	case "resources":
		return Resources, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownDropdown, s)
	}
}
