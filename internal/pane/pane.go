// Package pane defines the identifiers of the screens the main container can
// show and the rules for mapping any identifier onto a renderable screen.
package pane

import (
	"strings"

	"github.com/Iron-Ham/mobilepane/internal/errors"
)

// Pane identifies one of the container's child screens.
// Values outside the declared constants are representable; they render as
// Settings (see Resolve).
type Pane string

const (
	Home       Pane = "home"       // Default screen
	Navigation Pane = "navigation" // Movement controls
	Settings   Pane = "settings"   // Runtime settings
)

// All returns the panes in navigation bar order.
func All() []Pane {
	return []Pane{Home, Navigation, Settings}
}

// String returns the identifier.
func (p Pane) String() string {
	return string(p)
}

// Valid reports whether p is one of the declared panes.
func (p Pane) Valid() bool {
	switch p {
	case Home, Navigation, Settings:
		return true
	}
	return false
}

// Resolve returns the pane that is rendered for p. Anything that is not Home
// or Navigation resolves to Settings.
func (p Pane) Resolve() Pane {
	switch p {
	case Home:
		return Home
	case Navigation:
		return Navigation
	default:
		return Settings
	}
}

// Title returns the label used for p in the navigation bar.
func (p Pane) Title() string {
	switch p.Resolve() {
	case Home:
		return "Home"
	case Navigation:
		return "Navigation"
	default:
		return "Settings"
	}
}

// Index returns the position of the resolved pane in All.
func (p Pane) Index() int {
	switch p.Resolve() {
	case Home:
		return 0
	case Navigation:
		return 1
	default:
		return 2
	}
}

// Next returns the pane after p in navigation bar order, wrapping around.
func (p Pane) Next() Pane {
	all := All()
	return all[(p.Index()+1)%len(all)]
}

// Prev returns the pane before p in navigation bar order, wrapping around.
func (p Pane) Prev() Pane {
	all := All()
	return all[(p.Index()+len(all)-1)%len(all)]
}

// Parse converts user input (flags, config) into a Pane. Matching is case
// insensitive and ignores surrounding whitespace. Unlike the container,
// Parse rejects unknown names.
func Parse(s string) (Pane, error) {
	p := Pane(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", errors.NewValidationError("pane must be one of home, navigation, settings").
			WithValue(s).
			WithCause(errors.ErrUnknownPane)
	}
	return p, nil
}
