// Package faq holds the open/closed state of the FAQ accordion.
package faq

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when toggling an item that does not exist.
var ErrIndexOutOfRange = errors.New("faq index out of range")

// State is a snapshot of the accordion. Open is false when every item is
// collapsed, in which case Active is meaningless.
type State struct {
	Active int
	Open   bool
}

// IsOpen reports whether item i is expanded.
func (s State) IsOpen(i int) bool {
	return s.Open && s.Active == i
}

// Accordion tracks which of a fixed number of items is expanded. At most one
// item is open at a time.
type Accordion struct {
	items int
	state State
}

// New returns an accordion over items entries, all collapsed.
func New(items int) *Accordion {
	return &Accordion{items: items}
}

// State returns the current state.
func (a *Accordion) State() State {
	return a.state
}

// Len returns the number of items.
func (a *Accordion) Len() int {
	return a.items
}

// Toggle collapses item i if it is open and otherwise expands it, collapsing
// any other item.
func (a *Accordion) Toggle(i int) error {
	if i < 0 || i >= a.items {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, a.items)
	}
	if a.state.IsOpen(i) {
		a.state = State{}
		return nil
	}
	a.state = State{Active: i, Open: true}
	return nil
}
