package engine

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"time"

	"github.com/lixenwraith/traffic-light/components"
	"github.com/lixenwraith/traffic-light/constants"
	"github.com/lixenwraith/traffic-light/core"
)

// ErrNoSurface is returned when the app is built without a drawing surface
var ErrNoSurface = errors.New("engine: no drawing surface")

// ErrNoScheduler is returned when the app is built without a scheduler
var ErrNoScheduler = errors.New("engine: no scheduler")

// Canvas is a Surface that is cleared and presented once per frame
type Canvas interface {
	core.Surface
	Clear()
	Flush()
}

// Overlay draws the controls and status text next to the canvas
type Overlay interface {
	Draw(buttons []*components.Button, status string)
}

// Chime plays a short tone when the light changes
type Chime interface {
	PlayTone(freqHz float64, d time.Duration)
}

// AppContext owns every long-lived object of the demo
// All methods must be called from the single event loop goroutine
type AppContext struct {
	// ===== Immutable After Init =====

	Light     *TrafficLight
	Animation *Timer

	ChangeButton  *components.Button
	AnimateButton *components.Button
	CautionButton *components.Button

	canvas Canvas

	// ===== Optional Collaborators =====
	// Set by main after construction; nil disables the feature.

	Overlay Overlay
	Sound   Chime

	// ===== Counters =====

	Frames int // Completed redraws
	Steps  int // Animation steps taken
}

// NewAppContext builds the traffic light, the three buttons and the animation timer
func NewAppContext(canvas Canvas, scheduler Scheduler) (*AppContext, error) {
	if isNil(canvas) {
		return nil, ErrNoSurface
	}
	if isNil(scheduler) {
		return nil, ErrNoScheduler
	}

	light := NewTrafficLight()
	column := light.Box().Right() + constants.ButtonGap

	app := &AppContext{
		Light:  light,
		canvas: canvas,
		ChangeButton: components.NewButton(components.ButtonChange,
			constants.ButtonValueChange, constants.ButtonLabelChange, constants.KeyChange,
			buttonBounds(column, constants.ChangeButtonRow)),
		AnimateButton: components.NewButton(components.ButtonAnimate,
			constants.ButtonValueStart, constants.ButtonLabelStart, constants.KeyAnimate,
			buttonBounds(column, constants.AnimateButtonRow)),
		CautionButton: components.NewButton(components.ButtonCaution,
			constants.ButtonValueCaution, constants.ButtonLabelCaution, constants.KeyCaution,
			buttonBounds(column, constants.CautionButtonRow)),
	}
	app.Animation = NewTimer(scheduler, app.AnimateButton, app.Step)

	return app, nil
}

// isNil also catches a nil pointer stored in a non-nil interface
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func buttonBounds(column, row int) core.Area {
	return core.Area{X: column, Y: row, Width: constants.ButtonWidth, Height: constants.ButtonHeight}
}

// Buttons returns the controls in display order
func (a *AppContext) Buttons() []*components.Button {
	return []*components.Button{a.ChangeButton, a.AnimateButton, a.CautionButton}
}

// Change advances the light by one state and redraws
func (a *AppContext) Change() {
	a.advance()
	a.Redraw()
}

// ToggleAnimation starts or stops the self-scheduling animation loop
func (a *AppContext) ToggleAnimation() {
	a.Animation.OnButtonClick()
	a.Redraw()
}

// ToggleCaution enters or leaves Caution; lamps follow on the next advance
func (a *AppContext) ToggleCaution() {
	a.Light.ToggleCautionMode()
	log.Printf("caution: state now %v", a.Light.State())
	a.Redraw()
}

// Step is the animation callback: advance, redraw, re-arm for the new dwell time
func (a *AppContext) Step() {
	a.Steps++
	a.advance()
	a.Redraw()
	a.Animation.Arm(a.Light.TimeUntilNextChange())
}

// Press dispatches a button by identity
func (a *AppContext) Press(b *components.Button) {
	switch b.ID {
	case components.ButtonChange:
		a.Change()
	case components.ButtonAnimate:
		a.ToggleAnimation()
	case components.ButtonCaution:
		a.ToggleCaution()
	}
}

// ButtonAt returns the button covering cell (x, y), or nil
func (a *AppContext) ButtonAt(x, y int) *components.Button {
	for _, b := range a.Buttons() {
		if b.Contains(x, y) {
			return b
		}
	}
	return nil
}

// Click presses the button under (x, y), reporting whether one was hit
func (a *AppContext) Click(x, y int) bool {
	b := a.ButtonAt(x, y)
	if b == nil {
		return false
	}
	a.Press(b)
	return true
}

// HandleKey presses the button bound to shortcut r, reporting whether one matched
func (a *AppContext) HandleKey(r rune) bool {
	for _, b := range a.Buttons() {
		if b.Shortcut == r {
			a.Press(b)
			return true
		}
	}
	return false
}

// Status describes the current state for the status line
func (a *AppContext) Status() string {
	status := fmt.Sprintf("State: %-7s  dwell %.1fs", a.Light.State(), a.Light.TimeUntilNextChange().Seconds())
	if a.AnimateButton.Value == constants.ButtonValueStop {
		status += "  [running]"
	}
	return status
}

// Redraw paints the light and the overlay, then presents the frame
func (a *AppContext) Redraw() {
	a.canvas.Clear()
	a.Light.Render(a.canvas)
	if a.Overlay != nil {
		a.Overlay.Draw(a.Buttons(), a.Status())
	}
	a.canvas.Flush()
	a.Frames++
}

func (a *AppContext) advance() {
	from := a.Light.State()
	a.Light.Advance()
	to := a.Light.State()
	log.Printf("light: %v -> %v (yellow=%t)", from, to, a.Light.Yellow().IsOn())

	if a.Sound != nil {
		a.Sound.PlayTone(chimeFrequency(to), constants.ChimeDuration)
	}
}

func chimeFrequency(s State) float64 {
	switch s {
	case StateStop:
		return constants.ChimeStopHz
	case StateGo:
		return constants.ChimeGoHz
	case StateYield:
		return constants.ChimeYieldHz
	default:
		return constants.ChimeCautionHz
	}
}
