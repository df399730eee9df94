package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/traffic-light/components"
	"github.com/lixenwraith/traffic-light/constants"
)

// TerminalRenderer draws the buttons, status line and key help beside the canvas
type TerminalRenderer struct {
	screen tcell.Screen
	left   int // First HUD column; everything left of it belongs to the canvas
}

// NewTerminalRenderer creates a HUD renderer that owns columns from left onward
func NewTerminalRenderer(screen tcell.Screen, left int) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		left:   left,
	}
}

// Draw repaints the HUD region; the caller presents the screen
func (r *TerminalRenderer) Draw(buttons []*components.Button, status string) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.clear(defaultStyle)

	for _, b := range buttons {
		r.drawButton(b, defaultStyle)
	}

	column := r.left
	if len(buttons) > 0 {
		column = buttons[0].Bounds.X
	}
	r.drawText(column, constants.StatusRow, status, defaultStyle.Foreground(RgbStatusText).Bold(true))
	r.drawText(column, constants.HelpRow, helpLine(buttons), defaultStyle.Foreground(RgbHelpText))
}

func (r *TerminalRenderer) clear(style tcell.Style) {
	_, height := r.screen.Size()
	for y := 0; y < height; y++ {
		for x := r.left; x < r.left+constants.HUDWidth; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawButton(b *components.Button, defaultStyle tcell.Style) {
	area := b.Bounds
	if area.Width < 2 || area.Height < 2 {
		return
	}

	borderColor := RgbButtonBorder
	if b.ID == components.ButtonAnimate && b.Value == constants.ButtonValueStop {
		borderColor = RgbButtonRunning
	}
	borderStyle := defaultStyle.Foreground(borderColor)

	right := area.Right() - 1
	bottom := area.Bottom() - 1
	for x := area.X + 1; x < right; x++ {
		r.screen.SetContent(x, area.Y, tcell.RuneHLine, nil, borderStyle)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, borderStyle)
	}
	for y := area.Y + 1; y < bottom; y++ {
		r.screen.SetContent(area.X, y, tcell.RuneVLine, nil, borderStyle)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, borderStyle)
	}
	r.screen.SetContent(area.X, area.Y, tcell.RuneULCorner, nil, borderStyle)
	r.screen.SetContent(right, area.Y, tcell.RuneURCorner, nil, borderStyle)
	r.screen.SetContent(area.X, bottom, tcell.RuneLLCorner, nil, borderStyle)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, borderStyle)

	// Center the label on the middle row
	inner := area.Width - 2
	label := runewidth.Truncate(b.Label, inner, "")
	x := area.X + 1 + (inner-runewidth.StringWidth(label))/2
	r.drawText(x, area.Y+area.Height/2, label, defaultStyle.Foreground(RgbButtonLabel))
}

// drawText writes s at (x, y) honoring wide runes, returning the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

func helpLine(buttons []*components.Button) string {
	line := ""
	for _, b := range buttons {
		line += string(b.Shortcut) + " " + shortName(b) + "  "
	}
	return line + string(constants.KeyQuit) + " quit"
}

func shortName(b *components.Button) string {
	switch b.ID {
	case components.ButtonChange:
		return "change"
	case components.ButtonAnimate:
		return "animate"
	case components.ButtonCaution:
		return "caution"
	}
	return b.Value
}
