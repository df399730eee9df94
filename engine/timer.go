package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/traffic-light/components"
	"github.com/lixenwraith/traffic-light/constants"
)

// Timer is a single-shot cancellable timer bound to one button and one callback
// The button face mirrors the armed state: "stop" while armed, "start" otherwise
type Timer struct {
	scheduler Scheduler
	button    *components.Button
	callback  func()
	pending   ScheduledTask
}

// NewTimer binds callback to button and shows the start face
func NewTimer(scheduler Scheduler, button *components.Button, callback func()) *Timer {
	t := &Timer{
		scheduler: scheduler,
		button:    button,
		callback:  callback,
	}
	t.showStart()
	return t
}

// Arm schedules the callback after delay, replacing any fire still pending
func (t *Timer) Arm(delay time.Duration) {
	if t.pending != nil {
		t.pending.Stop()
	}

	var task ScheduledTask
	task = t.scheduler.AfterFunc(delay, func() {
		if t.pending == task {
			t.pending = nil
		}
		t.callback()
	})
	t.pending = task

	t.button.SetFace(constants.ButtonValueStop, constants.ButtonLabelStop)
	log.Printf("timer: armed for %v", delay)
}

// Disarm cancels the pending fire, if any, and shows the start face
func (t *Timer) Disarm() {
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
		log.Printf("timer: disarmed")
	}
	t.showStart()
}

// Armed reports whether a fire is pending
func (t *Timer) Armed() bool {
	return t.pending != nil
}

// OnButtonClick starts after the lead-in or stops, depending on the button face
func (t *Timer) OnButtonClick() {
	switch t.button.Value {
	case constants.ButtonValueStart:
		t.Arm(constants.AnimationLeadIn)
	case constants.ButtonValueStop:
		t.Disarm()
	default:
		log.Printf("timer: ignoring click on button with value %q", t.button.Value)
	}
}

// Button returns the control bound to this timer
func (t *Timer) Button() *components.Button {
	return t.button
}

func (t *Timer) showStart() {
	t.button.SetFace(constants.ButtonValueStart, constants.ButtonLabelStart)
}
