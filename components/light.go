package components

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/traffic-light/constants"
	"github.com/lixenwraith/traffic-light/core"
)

var offColor = core.MustHex(constants.LightOffColor)

// Light is a single round lamp with a fixed position, radius and color
type Light struct {
	on     bool
	center core.Point
	radius float64
	color  colorful.Color
}

// NewLight creates a lamp that starts switched off
func NewLight(center core.Point, radius float64, color colorful.Color) *Light {
	return &Light{
		center: center,
		radius: radius,
		color:  color,
	}
}

// IsOn reports whether the lamp is lit
func (l *Light) IsOn() bool {
	return l.on
}

// Set switches the lamp to the given state
func (l *Light) Set(on bool) {
	l.on = on
}

func (l *Light) SwitchOn() {
	l.Set(true)
}

func (l *Light) SwitchOff() {
	l.Set(false)
}

// Toggle flips the lamp
func (l *Light) Toggle() {
	l.Set(!l.on)
}

func (l *Light) Center() core.Point {
	return l.center
}

func (l *Light) Radius() float64 {
	return l.radius
}

// Color returns the lit color regardless of the current state
func (l *Light) Color() colorful.Color {
	return l.color
}

// FillColor returns the color the lamp is drawn with right now
func (l *Light) FillColor() colorful.Color {
	if l.on {
		return l.color
	}
	return offColor
}

// Draw paints the lamp onto s
func (l *Light) Draw(s core.Surface) {
	s.DrawFilledCircle(l.center, l.radius, l.FillColor())
}
