package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/traffic-light/constants"
)

// State is the phase the traffic light is currently showing
type State int

const (
	StateStop State = iota
	StateGo
	StateYield
	StateCaution
)

// cycleLength is the number of states in the normal rotation; Caution is outside it
const cycleLength = 3

var stateNames = [...]string{
	StateStop:    "STOP",
	StateGo:      "GO",
	StateYield:   "YIELD",
	StateCaution: "CAUTION",
}

// dwellSeconds is indexed by State
var dwellSeconds = [...]float64{
	StateStop:    constants.DwellStopSeconds,
	StateGo:      constants.DwellGoSeconds,
	StateYield:   constants.DwellYieldSeconds,
	StateCaution: constants.DwellCautionSeconds,
}

func (s State) String() string {
	if !s.valid() {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

func (s State) valid() bool {
	return s >= StateStop && s <= StateCaution
}

// NextState returns the state that follows previous in the rotation
// Caution is sticky and only left through ToggleCautionMode
func NextState(previous State) State {
	if previous == StateCaution {
		return StateCaution
	}
	return (previous + 1) % cycleLength
}

// SecondsToStayInState returns the dwell time of s
// An unknown state is a programming error and panics
func SecondsToStayInState(s State) float64 {
	if !s.valid() {
		panic(fmt.Sprintf("engine: no dwell time for %v", s))
	}
	return dwellSeconds[s]
}

// DwellDuration is SecondsToStayInState as a time.Duration
func DwellDuration(s State) time.Duration {
	return time.Duration(SecondsToStayInState(s) * float64(time.Second))
}
