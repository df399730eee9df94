package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/traffic-light/constants"
	"github.com/lixenwraith/traffic-light/core"
	"github.com/lixenwraith/traffic-light/render"
)

// lamps returns red, yellow, green on-flags
func lamps(tl *TrafficLight) [3]bool {
	return [3]bool{tl.Red().IsOn(), tl.Yellow().IsOn(), tl.Green().IsOn()}
}

func TestTrafficLightInitialize(t *testing.T) {
	tl := NewTrafficLight()
	tl.Advance()
	tl.Advance()

	tl.Initialize()
	assert.Equal(t, StateStop, tl.State())
	assert.Equal(t, [3]bool{true, false, false}, lamps(tl))
}

func TestTrafficLightAdvanceSequence(t *testing.T) {
	tl := NewTrafficLight()
	require.Equal(t, StateStop, tl.State())
	require.Equal(t, [3]bool{true, false, false}, lamps(tl))

	steps := []struct {
		state State
		lamps [3]bool
	}{
		{StateGo, [3]bool{false, false, true}},
		{StateYield, [3]bool{false, true, false}},
		{StateStop, [3]bool{true, false, false}},
		{StateGo, [3]bool{false, false, true}},
	}

	for i, step := range steps {
		tl.Advance()
		assert.Equal(t, step.state, tl.State(), "step %d", i)
		assert.Equal(t, step.lamps, lamps(tl), "step %d", i)
	}
}

func TestTrafficLightCautionBlinks(t *testing.T) {
	tl := NewTrafficLight()
	tl.Advance() // Go
	require.Equal(t, StateGo, tl.State())

	yellowBefore := tl.Yellow().IsOn()
	tl.ToggleCautionMode()
	assert.Equal(t, StateCaution, tl.State())
	assert.Equal(t, [3]bool{false, false, true}, lamps(tl), "lamps wait for the next advance")

	tl.Advance()
	assert.Equal(t, StateCaution, tl.State())
	assert.Equal(t, !yellowBefore, tl.Yellow().IsOn())
	assert.False(t, tl.Red().IsOn())
	assert.False(t, tl.Green().IsOn())

	// Each further advance flips yellow again
	for i := 0; i < 4; i++ {
		prev := tl.Yellow().IsOn()
		tl.Advance()
		assert.Equal(t, StateCaution, tl.State())
		assert.Equal(t, !prev, tl.Yellow().IsOn())
		assert.False(t, tl.Red().IsOn())
		assert.False(t, tl.Green().IsOn())
	}

	tl.ToggleCautionMode()
	assert.Equal(t, StateYield, tl.State())

	tl.Advance()
	assert.Equal(t, StateStop, tl.State())
	assert.Equal(t, [3]bool{true, false, false}, lamps(tl))
}

func TestTrafficLightTimeUntilNextChange(t *testing.T) {
	tl := NewTrafficLight()
	assert.Equal(t, 2*time.Second, tl.TimeUntilNextChange())

	tl.Advance()
	assert.Equal(t, 3*time.Second, tl.TimeUntilNextChange())

	tl.Advance()
	assert.Equal(t, 500*time.Millisecond, tl.TimeUntilNextChange())

	tl.ToggleCautionMode()
	assert.Equal(t, time.Second, tl.TimeUntilNextChange())
}

func TestTrafficLightRender(t *testing.T) {
	tl := NewTrafficLight()
	s := render.NewRecordingSurface()

	tl.Render(s)

	require.Len(t, s.Commands, 4)
	box := s.Commands[0]
	assert.Equal(t, render.CommandRect, box.Kind)
	assert.Equal(t, []float64{constants.LightBoxX, constants.LightBoxY, constants.LightBoxWidth, constants.LightBoxHeight},
		[]float64{box.X, box.Y, box.W, box.H})

	off := core.MustHex(constants.LightOffColor)
	circles := s.Circles()
	require.Len(t, circles, 3)

	assert.Equal(t, core.Pt(constants.LightCenterX, constants.RedLightY), circles[0].Center)
	assert.Equal(t, core.MustHex(constants.LightRedColor), circles[0].Color)
	assert.Equal(t, core.Pt(constants.LightCenterX, constants.YellowLightY), circles[1].Center)
	assert.Equal(t, off, circles[1].Color)
	assert.Equal(t, core.Pt(constants.LightCenterX, constants.GreenLightY), circles[2].Center)
	assert.Equal(t, off, circles[2].Color)

	for _, c := range circles {
		assert.Equal(t, constants.LightRadius, c.Radius)
	}
}
