package core

// Area represents a rectangular region in integer grid units
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Contains reports whether (x, y) falls inside the area
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// Right returns the first column past the right edge
func (a Area) Right() int {
	return a.X + a.Width
}

// Bottom returns the first row past the bottom edge
func (a Area) Bottom() int {
	return a.Y + a.Height
}
