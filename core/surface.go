package core

import "github.com/lucasb-eyer/go-colorful"

// Surface is the drawing capability every drawable writes to
type Surface interface {
	// DrawFilledCircle fills a circle of radius pixels around center
	DrawFilledCircle(center Point, radius float64, color colorful.Color)
	// DrawRectOutline strokes the border of the rectangle at (x, y) sized w by h
	DrawRectOutline(x, y, w, h float64)
}
