package constants

// Surface Geometry (pixels; one column wide, half a row tall)
const (
	// CanvasColumns is the width of the light canvas in terminal cells
	CanvasColumns = 22

	// CanvasRows is the height of the light canvas in terminal cells
	CanvasRows = 24

	// PixelsPerRow is the vertical resolution of one terminal cell
	PixelsPerRow = 2
)

// Light Box Geometry
const (
	LightBoxX      = 2
	LightBoxY      = 2
	LightBoxWidth  = 17
	LightBoxHeight = 44
)

// Light Geometry
const (
	// LightRadius is the radius of every lamp
	LightRadius = 6.0

	// LightCenterX is the shared horizontal center of the three lamps
	LightCenterX = LightBoxX + LightBoxWidth/2.0

	RedLightY    = 9.5
	YellowLightY = 23.5
	GreenLightY  = 37.5
)

// Palette (hex literals parsed once at start-up)
const (
	LightRedColor    = "#ff0000"
	LightYellowColor = "#ffff00"
	LightGreenColor  = "#00ff00"

	// LightOffColor fills a lamp that is switched off
	LightOffColor = "#303030"

	// LightBoxColor strokes the housing outline
	LightBoxColor = "#c0c0c0"

	// CanvasBackgroundColor is the color of every pixel not drawn this frame
	CanvasBackgroundColor = "#000000"
)
