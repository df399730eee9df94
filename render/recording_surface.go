package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/traffic-light/core"
)

// CommandKind identifies a recorded draw call
type CommandKind int

const (
	CommandCircle CommandKind = iota
	CommandRect
)

// DrawCommand is one recorded draw call
type DrawCommand struct {
	Kind   CommandKind
	Center core.Point
	Radius float64
	Color  colorful.Color

	X, Y, W, H float64 // CommandRect only
}

// RecordingSurface keeps draw calls instead of rasterizing them
// Commands hold the calls since the last Clear
type RecordingSurface struct {
	Commands []DrawCommand
	Clears   int
	Flushes  int
}

func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{}
}

func (r *RecordingSurface) DrawFilledCircle(center core.Point, radius float64, color colorful.Color) {
	r.Commands = append(r.Commands, DrawCommand{Kind: CommandCircle, Center: center, Radius: radius, Color: color})
}

func (r *RecordingSurface) DrawRectOutline(x, y, w, h float64) {
	r.Commands = append(r.Commands, DrawCommand{Kind: CommandRect, X: x, Y: y, W: w, H: h})
}

func (r *RecordingSurface) Clear() {
	r.Commands = r.Commands[:0]
	r.Clears++
}

func (r *RecordingSurface) Flush() {
	r.Flushes++
}

// Circles returns the recorded circle calls in order
func (r *RecordingSurface) Circles() []DrawCommand {
	var out []DrawCommand
	for _, c := range r.Commands {
		if c.Kind == CommandCircle {
			out = append(out, c)
		}
	}
	return out
}
