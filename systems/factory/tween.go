package factory

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// minTween keeps zero-length tweens finishing on their first update.
const minTween = 1e-3

// newFuse counts elapsed seconds from 0 to duration.
func newFuse(duration float64) *gween.Tween {
	d := float32(math.Max(duration, minTween))
	return gween.New(0, d, d, ease.Linear)
}

// NewBladeRamp moves a blade speed from one value to another at a constant
// acceleration in degrees per second squared.
func NewBladeRamp(from, to, accel float64) *gween.Tween {
	d := minTween
	if accel > 0 {
		d = math.Max(math.Abs(to-from)/accel, minTween)
	}
	return gween.New(float32(from), float32(to), float32(d), ease.Linear)
}
