package constants

import "time"

// Chime pitch per light state
const (
	ChimeStopHz    = 440.0
	ChimeGoHz      = 660.0
	ChimeYieldHz   = 550.0
	ChimeCautionHz = 880.0
)

// Chime Timing
const (
	ChimeDuration = 120 * time.Millisecond
	ChimeAttack   = 5 * time.Millisecond
)

// ChimeVolume is the peak amplitude of a chime sample
const ChimeVolume = 0.2
