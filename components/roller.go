package components

import (
	"github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/yohamta/donburi"
)

// RollerData is a spinning drum lying along Axis. Actors touching it are
// carried in the direction of spin.
type RollerData struct {
	Area   Rect
	Center mathutil.Vec3
	Axis   mathutil.Vec3
	Angle  float64
	Config config.RollerConfig
}

var Roller = donburi.NewComponentType[RollerData]()
