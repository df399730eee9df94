package constants

import (
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

// TestAnimateLabelsShareWidth keeps the Animate button from resizing when it toggles
func TestAnimateLabelsShareWidth(t *testing.T) {
	assert.Equal(t,
		runewidth.StringWidth(ButtonLabelStart),
		runewidth.StringWidth(ButtonLabelStop),
	)
}

// TestLabelsFitButtons verifies every label fits inside the button border
func TestLabelsFitButtons(t *testing.T) {
	for _, label := range []string{ButtonLabelChange, ButtonLabelStart, ButtonLabelStop, ButtonLabelCaution} {
		assert.LessOrEqual(t, runewidth.StringWidth(label), ButtonWidth-2, label)
	}
}

// TestLightsFitBox verifies every lamp lies inside the housing and the canvas
func TestLightsFitBox(t *testing.T) {
	for _, y := range []float64{RedLightY, YellowLightY, GreenLightY} {
		assert.GreaterOrEqual(t, y-LightRadius, float64(LightBoxY))
		assert.LessOrEqual(t, y+LightRadius, float64(LightBoxY+LightBoxHeight))
	}
	assert.GreaterOrEqual(t, LightCenterX-LightRadius, float64(LightBoxX))
	assert.LessOrEqual(t, LightCenterX+LightRadius, float64(LightBoxX+LightBoxWidth))

	assert.LessOrEqual(t, LightBoxX+LightBoxWidth, CanvasColumns)
	assert.LessOrEqual(t, LightBoxY+LightBoxHeight, CanvasRows*PixelsPerRow)
}

func TestAnimationLeadIn(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, AnimationLeadIn)
}
