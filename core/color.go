package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// MustHex parses a "#rrggbb" literal, panicking on malformed input
// Only used for compile-time palette constants
func MustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("core: invalid color literal %q: %v", hex, err))
	}
	return c
}
