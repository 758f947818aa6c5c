package components

import (
	"github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type BarrelPhase int

const (
	BarrelIdle BarrelPhase = iota
	BarrelFusing
	BarrelRespawning
)

func (p BarrelPhase) String() string {
	switch p {
	case BarrelFusing:
		return "fusing"
	case BarrelRespawning:
		return "respawning"
	default:
		return "idle"
	}
}

type BarrelData struct {
	Phase  BarrelPhase
	Origin mathutil.Vec3
	Config config.BarrelConfig

	// Fuse tracks elapsed fuse time; Flash is the pulse level in [0, 1].
	Fuse  *gween.Tween
	Flash float64
}

var Barrel = donburi.NewComponentType[BarrelData]()
