package components

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/traffic-light/constants"
	"github.com/lixenwraith/traffic-light/core"
)

type circleCall struct {
	center core.Point
	radius float64
	color  colorful.Color
}

// stubSurface captures circle draws
type stubSurface struct {
	circles []circleCall
}

func (s *stubSurface) DrawFilledCircle(center core.Point, radius float64, color colorful.Color) {
	s.circles = append(s.circles, circleCall{center, radius, color})
}

func (s *stubSurface) DrawRectOutline(x, y, w, h float64) {}

func TestLightSwitching(t *testing.T) {
	l := NewLight(core.Pt(1, 2), 3, core.MustHex(constants.LightRedColor))
	assert.False(t, l.IsOn(), "new light starts off")

	l.SwitchOn()
	assert.True(t, l.IsOn())

	l.SwitchOn()
	assert.True(t, l.IsOn(), "switching on twice keeps it on")

	l.Toggle()
	assert.False(t, l.IsOn())

	l.Toggle()
	assert.True(t, l.IsOn())

	l.SwitchOff()
	assert.False(t, l.IsOn())

	l.Set(true)
	assert.True(t, l.IsOn())
}

func TestLightDrawUsesOffColorWhenOff(t *testing.T) {
	green := core.MustHex(constants.LightGreenColor)
	l := NewLight(core.Pt(10.5, 37.5), constants.LightRadius, green)
	s := &stubSurface{}

	l.Draw(s)
	l.SwitchOn()
	l.Draw(s)

	require.Len(t, s.circles, 2)
	assert.Equal(t, core.MustHex(constants.LightOffColor), s.circles[0].color)
	assert.Equal(t, green, s.circles[1].color)

	for _, c := range s.circles {
		assert.Equal(t, core.Pt(10.5, 37.5), c.center)
		assert.Equal(t, constants.LightRadius, c.radius)
	}
}

func TestButtonFace(t *testing.T) {
	b := NewButton(ButtonAnimate, constants.ButtonValueStart, constants.ButtonLabelStart, constants.KeyAnimate,
		core.Area{X: 24, Y: 6, Width: 22, Height: 3})

	assert.True(t, b.Contains(24, 6))
	assert.True(t, b.Contains(45, 8))
	assert.False(t, b.Contains(46, 8))
	assert.False(t, b.Contains(30, 9))

	b.SetFace(constants.ButtonValueStop, constants.ButtonLabelStop)
	assert.Equal(t, constants.ButtonValueStop, b.Value)
	assert.Equal(t, constants.ButtonLabelStop, b.Label)
}
