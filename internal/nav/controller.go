package nav

// ScrollThreshold is the vertical offset, in CSS pixels, past which the bar
// switches to its scrolled style.
const ScrollThreshold = 10

// State is a snapshot of the navigation bar.
type State struct {
	Scrolled       bool
	ActiveDropdown Dropdown
	MobileMenuOpen bool
}

// IsOpen reports whether d is the open dropdown.
func (s State) IsOpen(d Dropdown) bool {
	return d != None && s.ActiveDropdown == d
}

// Controller owns the State of a single rendered navigation bar. It is not
// safe for concurrent use; the owning page serialises events onto it.
//
// Pointer and click handlers write the same ActiveDropdown field with no
// arbitration between them, so the most recent event always wins.
type Controller struct {
	state State
}

// NewController returns a controller in the initial state: not scrolled, no
// dropdown open, mobile menu closed.
func NewController() *Controller {
	return &Controller{}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Scroll records the page's vertical offset.
func (c *Controller) Scroll(offsetY float64) {
	c.state.Scrolled = offsetY > ScrollThreshold
}

// PointerEnter opens d while the pointer hovers its menu item. Hover is
// ignored while the mobile menu is open.
func (c *Controller) PointerEnter(d Dropdown) {
	if c.state.MobileMenuOpen {
		return
	}
	c.state.ActiveDropdown = d
}

// PointerLeave closes whichever dropdown is open when the pointer leaves a
// menu item. Ignored while the mobile menu is open.
func (c *Controller) PointerLeave() {
	if c.state.MobileMenuOpen {
		return
	}
	c.state.ActiveDropdown = None
}

// ToggleDropdown handles a click on d's trigger: it closes d if d is open and
// otherwise opens d, replacing any other open dropdown.
func (c *Controller) ToggleDropdown(d Dropdown) {
	if c.state.ActiveDropdown == d {
		c.state.ActiveDropdown = None
		return
	}
	c.state.ActiveDropdown = d
}

// ToggleMobileMenu flips the mobile menu. Opening it closes any dropdown.
func (c *Controller) ToggleMobileMenu() {
	c.state.MobileMenuOpen = !c.state.MobileMenuOpen
	if c.state.MobileMenuOpen {
		c.state.ActiveDropdown = None
	}
}

// SelectLink is called when the user follows a navigable link. fromDropdown
// is true for links inside a dropdown panel.
func (c *Controller) SelectLink(fromDropdown bool) {
	if c.state.MobileMenuOpen {
		c.state.MobileMenuOpen = false
		c.state.ActiveDropdown = None
		return
	}
	if fromDropdown {
		c.state.ActiveDropdown = None
	}
}

// OutsidePress handles a pointer press anywhere on the document. insideNav
// reports whether the press landed inside the navigation container. Presses
// only matter while the mobile menu is open.
func (c *Controller) OutsidePress(insideNav bool) {
	if !c.state.MobileMenuOpen || insideNav {
		return
	}
	c.state.MobileMenuOpen = false
	c.state.ActiveDropdown = None
}

// ListensForOutsidePress reports whether the outside-press listener should be
// present in the page.
func (c *Controller) ListensForOutsidePress() bool {
	return c.state.MobileMenuOpen
}
