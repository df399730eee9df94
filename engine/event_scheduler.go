package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
)

// EventPoster accepts events into an event loop, satisfied by tcell.Screen
type EventPoster interface {
	PostEvent(ev tcell.Event) error
}

// EventScheduler delivers timer fires as TimerEvents through the screen's event queue
// The owner of the loop calls Fire on each TimerEvent it polls
type EventScheduler struct {
	poster EventPoster
}

// NewEventScheduler creates a scheduler that posts into poster
func NewEventScheduler(poster EventPoster) *EventScheduler {
	return &EventScheduler{poster: poster}
}

// postRetryInterval is the wait between attempts to queue a fire into a full event queue
const postRetryInterval = 5 * time.Millisecond

// AfterFunc arms a wall-clock timer that posts a TimerEvent when it expires
func (s *EventScheduler) AfterFunc(d time.Duration, fn func()) ScheduledTask {
	ev := &TimerEvent{fn: fn}
	ev.timer = time.AfterFunc(d, func() {
		ev.SetEventNow()
		s.deliver(ev)
	})
	return ev
}

// deliver queues ev, retrying while the queue is full until it is accepted or stopped
// Runs on the timer goroutine, never on the loop, so waiting cannot deadlock
func (s *EventScheduler) deliver(ev *TimerEvent) {
	for attempt := 0; ; attempt++ {
		if ev.cancelled.Load() {
			return
		}
		err := s.poster.PostEvent(ev)
		if err == nil {
			return
		}
		if attempt == 0 {
			log.Printf("scheduler: event queue busy, retrying timer fire: %v", err)
		}
		time.Sleep(postRetryInterval)
	}
}

// TimerEvent is a tcell event carrying a scheduled callback
type TimerEvent struct {
	tcell.EventTime
	fn        func()
	timer     *time.Timer
	cancelled atomic.Bool
	fired     atomic.Bool
}

// Stop cancels the callback even if the event is already queued
func (e *TimerEvent) Stop() bool {
	if e.fired.Load() || !e.cancelled.CompareAndSwap(false, true) {
		return false
	}
	e.timer.Stop()
	return true
}

// Fire runs the callback unless the task was stopped, at most once
func (e *TimerEvent) Fire() {
	if e.cancelled.Load() || !e.fired.CompareAndSwap(false, true) {
		return
	}
	e.fn()
}
