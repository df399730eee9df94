package constants

import "time"

// Dwell durations per light state (seconds)
const (
	DwellStopSeconds    = 2.0
	DwellGoSeconds      = 3.0
	DwellYieldSeconds   = 0.5
	DwellCautionSeconds = 1.0
)

// AnimationLeadIn is the delay between pressing Start and the first step
const AnimationLeadIn = 500 * time.Millisecond
