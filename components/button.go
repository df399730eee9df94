package components

import "github.com/lixenwraith/traffic-light/core"

// ButtonID identifies which control a button drives
type ButtonID int

const (
	ButtonChange ButtonID = iota
	ButtonAnimate
	ButtonCaution
)

// Button is a clickable on-screen control
// Value is the machine-readable state, Label is what the user sees
type Button struct {
	ID       ButtonID
	Value    string
	Label    string
	Shortcut rune
	Bounds   core.Area // Terminal cells
}

// NewButton creates a button at the given cell bounds
func NewButton(id ButtonID, value, label string, shortcut rune, bounds core.Area) *Button {
	return &Button{
		ID:       id,
		Value:    value,
		Label:    label,
		Shortcut: shortcut,
		Bounds:   bounds,
	}
}

// SetFace updates value and label together
func (b *Button) SetFace(value, label string) {
	b.Value = value
	b.Label = label
}

// Contains reports whether the cell (x, y) is inside the button
func (b *Button) Contains(x, y int) bool {
	return b.Bounds.Contains(x, y)
}
