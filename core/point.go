package core

// Point is an immutable position in surface pixels
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}
