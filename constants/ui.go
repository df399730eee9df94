package constants

// Button values and display labels
const (
	ButtonValueChange = "change"
	ButtonLabelChange = "Change"

	// Animate button toggles between these two pairs
	ButtonValueStart = "start"
	ButtonLabelStart = "Start Simulation"
	ButtonValueStop  = "stop"
	ButtonLabelStop  = "Stop  Simulation"

	ButtonValueCaution = "caution"
	ButtonLabelCaution = "Caution"
)

// Keyboard shortcuts
const (
	KeyChange  = 'c'
	KeyAnimate = 'a'
	KeyCaution = 'x'
	KeyQuit    = 'q'
)

// UI Layout (terminal cells)
const (
	// ButtonGap separates the light box from the button column
	ButtonGap = 5

	ButtonWidth  = 22
	ButtonHeight = 3

	ChangeButtonRow  = 2
	AnimateButtonRow = 6
	CautionButtonRow = 10

	// StatusRow shows the current state and dwell
	StatusRow = 15

	// HelpRow lists the keyboard shortcuts
	HelpRow = 17

	// HUDWidth is the number of columns cleared before drawing the HUD
	HUDWidth = 48
)
