package engine

import (
	"time"

	"github.com/lixenwraith/traffic-light/components"
	"github.com/lixenwraith/traffic-light/constants"
	"github.com/lixenwraith/traffic-light/core"
)

// TrafficLight ties three lamps to the state cycle
// Outside Caution exactly one of red/green is lit and yellow is lit only in Yield
type TrafficLight struct {
	state State
	box   core.Area

	red    *components.Light
	yellow *components.Light
	green  *components.Light
}

// NewTrafficLight builds the fixed lamp layout and initializes it to Stop
func NewTrafficLight() *TrafficLight {
	tl := &TrafficLight{
		box: LightBox(),
		red: components.NewLight(
			core.Pt(constants.LightCenterX, constants.RedLightY),
			constants.LightRadius,
			core.MustHex(constants.LightRedColor),
		),
		yellow: components.NewLight(
			core.Pt(constants.LightCenterX, constants.YellowLightY),
			constants.LightRadius,
			core.MustHex(constants.LightYellowColor),
		),
		green: components.NewLight(
			core.Pt(constants.LightCenterX, constants.GreenLightY),
			constants.LightRadius,
			core.MustHex(constants.LightGreenColor),
		),
	}
	tl.Initialize()
	return tl
}

// LightBox returns the housing rectangle in surface pixels
func LightBox() core.Area {
	return core.Area{
		X:      constants.LightBoxX,
		Y:      constants.LightBoxY,
		Width:  constants.LightBoxWidth,
		Height: constants.LightBoxHeight,
	}
}

// Initialize resets to Stop with only red lit
func (tl *TrafficLight) Initialize() {
	tl.state = StateStop
	tl.red.SwitchOn()
	tl.yellow.SwitchOff()
	tl.green.SwitchOff()
}

// Advance moves to the next state and updates the lamps
// In Caution yellow blinks: it flips on every call while red and green stay dark
func (tl *TrafficLight) Advance() {
	tl.state = NextState(tl.state)

	if tl.state == StateCaution {
		tl.red.SwitchOff()
		tl.yellow.Toggle()
		tl.green.SwitchOff()
		return
	}

	tl.red.Set(tl.state == StateStop)
	tl.yellow.Set(tl.state == StateYield)
	tl.green.Set(tl.state == StateGo)
}

// ToggleCautionMode enters Caution, or leaves it for Yield
// Lamps change on the next Advance
func (tl *TrafficLight) ToggleCautionMode() {
	if tl.state != StateCaution {
		tl.state = StateCaution
	} else {
		tl.state = StateYield
	}
}

// TimeUntilNextChange returns the dwell time of the current state
func (tl *TrafficLight) TimeUntilNextChange() time.Duration {
	return DwellDuration(tl.state)
}

// Render draws the housing and then each lamp top to bottom
func (tl *TrafficLight) Render(s core.Surface) {
	s.DrawRectOutline(float64(tl.box.X), float64(tl.box.Y), float64(tl.box.Width), float64(tl.box.Height))
	tl.red.Draw(s)
	tl.yellow.Draw(s)
	tl.green.Draw(s)
}

func (tl *TrafficLight) State() State {
	return tl.state
}

func (tl *TrafficLight) Red() *components.Light {
	return tl.red
}

func (tl *TrafficLight) Yellow() *components.Light {
	return tl.yellow
}

func (tl *TrafficLight) Green() *components.Light {
	return tl.green
}

// Box returns the housing rectangle
func (tl *TrafficLight) Box() core.Area {
	return tl.box
}
