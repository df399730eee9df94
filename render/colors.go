package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// HUD colors
var (
	RgbButtonBorder  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbButtonLabel   = tcell.NewRGBColor(255, 255, 255) // White
	RgbButtonRunning = tcell.NewRGBColor(255, 165, 0)   // Orange while the animation is armed
	RgbStatusText    = tcell.NewRGBColor(255, 255, 255) // White
	RgbHelpText      = tcell.NewRGBColor(120, 120, 120) // Dim gray
	RgbBackground    = tcell.NewRGBColor(0, 0, 0)
)

// ToTcell converts a surface color to a terminal true color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
