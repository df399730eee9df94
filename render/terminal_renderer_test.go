package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/traffic-light/components"
	"github.com/lixenwraith/traffic-light/constants"
	"github.com/lixenwraith/traffic-light/core"
)

func readRow(screen tcell.Screen, x0, x1, y int) string {
	var sb strings.Builder
	for x := x0; x < x1; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func TestTerminalRendererDrawsButtonsAndStatus(t *testing.T) {
	screen := newSimScreen(t)
	r := NewTerminalRenderer(screen, 22)

	animate := components.NewButton(components.ButtonAnimate,
		constants.ButtonValueStart, constants.ButtonLabelStart, constants.KeyAnimate,
		core.Area{X: 24, Y: 6, Width: constants.ButtonWidth, Height: constants.ButtonHeight})
	caution := components.NewButton(components.ButtonCaution,
		constants.ButtonValueCaution, constants.ButtonLabelCaution, constants.KeyCaution,
		core.Area{X: 24, Y: 10, Width: constants.ButtonWidth, Height: constants.ButtonHeight})

	r.Draw([]*components.Button{animate, caution}, "State: STOP")

	row := readRow(screen, 24, 24+constants.ButtonWidth, 7)
	assert.Contains(t, row, constants.ButtonLabelStart)
	assert.Equal(t, tcell.RuneVLine, []rune(row)[0])

	ch, _, _, _ := screen.GetContent(24, 6)
	assert.Equal(t, tcell.RuneULCorner, ch)

	assert.Contains(t, readRow(screen, 24, 60, constants.StatusRow), "State: STOP")
	assert.Contains(t, readRow(screen, 24, 70, constants.HelpRow), "a animate")

	// Relabel and redraw: old text must not linger
	animate.SetFace(constants.ButtonValueStop, constants.ButtonLabelStop)
	r.Draw([]*components.Button{animate, caution}, "State: GO")

	row = readRow(screen, 24, 24+constants.ButtonWidth, 7)
	assert.Contains(t, row, constants.ButtonLabelStop)
	assert.NotContains(t, row, constants.ButtonLabelStart)

	_, _, style, _ := screen.GetContent(24, 6)
	fg, _, _ := style.Decompose()
	assert.Equal(t, RgbButtonRunning, fg, "armed animate button is highlighted")
}

func TestRecordingSurface(t *testing.T) {
	r := NewRecordingSurface()
	red := core.MustHex(constants.LightRedColor)

	r.DrawRectOutline(1, 2, 3, 4)
	r.DrawFilledCircle(core.Pt(5, 6), 7, red)

	assert.Len(t, r.Commands, 2)
	assert.Equal(t, CommandRect, r.Commands[0].Kind)
	assert.Equal(t, []DrawCommand{{Kind: CommandCircle, Center: core.Pt(5, 6), Radius: 7, Color: red}}, r.Circles())

	r.Clear()
	r.Flush()
	assert.Empty(t, r.Commands)
	assert.Equal(t, 1, r.Clears)
	assert.Equal(t, 1, r.Flushes)
}
