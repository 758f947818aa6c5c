package components

import (
	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Rect is an axis-aligned area on the ground plane.
type Rect struct {
	X, Z, W, D float64
}

func (r Rect) Contains(p mathutil.Vec3) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Z >= r.Z && p.Z <= r.Z+r.D
}

func (r Rect) Center() mathutil.Vec3 {
	return mathutil.NewVec3(r.X+r.W/2, 0, r.Z+r.D/2)
}

type FanData struct {
	Area      Rect
	Origin    mathutil.Vec3
	Direction mathutil.Vec3
	On        bool
	Config    config.FanConfig

	// Slowed tracks actors whose speed this fan currently overrides.
	Slowed map[*combat.Target]bool

	Blade      *gween.Tween
	BladeSpeed float64
	BladeAngle float64
}

var Fan = donburi.NewComponentType[FanData]()
