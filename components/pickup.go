package components

import (
	"github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type MaskPickupData struct {
	Mask     config.MaskConfig
	Position mathutil.Vec3
	Radius   float64
	Object   *resolv.Object
}

var MaskPickup = donburi.NewComponentType[MaskPickupData]()

// MaskSpawnerData drops pickups at random points inside Area.
type MaskSpawnerData struct {
	Area   Rect
	Config config.MaskSpawnConfig
	Masks  []string

	// Elapsed counts toward the next spawn attempt.
	Elapsed float64
}

var MaskSpawner = donburi.NewComponentType[MaskSpawnerData]()
