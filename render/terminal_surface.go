package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/traffic-light/constants"
	"github.com/lixenwraith/traffic-light/core"
)

// upperHalfBlock paints the top pixel of a cell with the foreground and the bottom with the background
const upperHalfBlock = '▀'

// TerminalSurface rasterizes draw commands into a pixel buffer of two pixels per cell
// Flush writes the buffer to the screen; pixels outside the buffer are clipped
type TerminalSurface struct {
	screen tcell.Screen
	cols   int
	rows   int // Terminal rows; pixel height is rows*PixelsPerRow

	pixels     []colorful.Color
	background colorful.Color
	outline    colorful.Color
}

// NewTerminalSurface creates a surface covering cols x rows cells at the screen origin
func NewTerminalSurface(screen tcell.Screen, cols, rows int) *TerminalSurface {
	s := &TerminalSurface{
		screen:     screen,
		cols:       cols,
		rows:       rows,
		pixels:     make([]colorful.Color, cols*rows*constants.PixelsPerRow),
		background: core.MustHex(constants.CanvasBackgroundColor),
		outline:    core.MustHex(constants.LightBoxColor),
	}
	s.Clear()
	return s
}

// Size returns the pixel dimensions
func (s *TerminalSurface) Size() (width, height int) {
	return s.cols, s.rows * constants.PixelsPerRow
}

// Clear resets every pixel to the background color
func (s *TerminalSurface) Clear() {
	for i := range s.pixels {
		s.pixels[i] = s.background
	}
}

// Pixel returns the color at pixel (x, y); out of range reads the background
func (s *TerminalSurface) Pixel(x, y int) colorful.Color {
	if !s.inBounds(x, y) {
		return s.background
	}
	return s.pixels[y*s.cols+x]
}

func (s *TerminalSurface) set(x, y int, c colorful.Color) {
	if s.inBounds(x, y) {
		s.pixels[y*s.cols+x] = c
	}
}

func (s *TerminalSurface) inBounds(x, y int) bool {
	w, h := s.Size()
	return x >= 0 && x < w && y >= 0 && y < h
}

// DrawFilledCircle fills every pixel whose center lies within radius of center
// Pixels straddling the rim are blended with what is already there
func (s *TerminalSurface) DrawFilledCircle(center core.Point, radius float64, color colorful.Color) {
	x0 := int(math.Floor(center.X - radius - 1))
	x1 := int(math.Ceil(center.X + radius + 1))
	y0 := int(math.Floor(center.Y - radius - 1))
	y1 := int(math.Ceil(center.Y + radius + 1))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := math.Hypot(float64(x)+0.5-center.X, float64(y)+0.5-center.Y)
			switch {
			case d <= radius-0.5:
				s.set(x, y, color)
			case d < radius+0.5:
				coverage := radius + 0.5 - d
				s.set(x, y, s.Pixel(x, y).BlendLab(color, coverage))
			}
		}
	}
}

// DrawRectOutline strokes a one pixel border along the inside of the rectangle
func (s *TerminalSurface) DrawRectOutline(x, y, w, h float64) {
	left := int(math.Round(x))
	top := int(math.Round(y))
	right := int(math.Round(x+w)) - 1
	bottom := int(math.Round(y+h)) - 1

	for px := left; px <= right; px++ {
		s.set(px, top, s.outline)
		s.set(px, bottom, s.outline)
	}
	for py := top; py <= bottom; py++ {
		s.set(left, py, s.outline)
		s.set(right, py, s.outline)
	}
}

// Flush copies the pixel buffer to the screen and shows it
func (s *TerminalSurface) Flush() {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := s.Pixel(col, row*constants.PixelsPerRow)
			bottom := s.Pixel(col, row*constants.PixelsPerRow+1)
			style := tcell.StyleDefault.Foreground(ToTcell(top)).Background(ToTcell(bottom))
			s.screen.SetContent(col, row, upperHalfBlock, nil, style)
		}
	}
	s.screen.Show()
}
