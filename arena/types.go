// Package arena parses Tiled maps into arena layouts. A layout is pure data;
// the sim package turns it into entities.
package arena

import (
	"github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
)

// Box is an axis-aligned area on the ground plane in world units.
type Box struct {
	X, Z, W, D float64
}

func (b Box) Center() mathutil.Vec3 {
	return mathutil.NewVec3(b.X+b.W/2, 0, b.Z+b.D/2)
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Z  float64
	Index int
}

type HazardKind string

const (
	HazardFan    HazardKind = "fan"
	HazardRoller HazardKind = "roller"
	HazardBarrel HazardKind = "barrel"
)

// Hazard is one placed obstacle. Only the config matching Kind is set; it
// starts from the package defaults with the object's properties applied.
type Hazard struct {
	Kind HazardKind
	Box  Box

	// Fan: wind direction, defaulting to straight up.
	Direction mathutil.Vec3
	// Roller: the drum's axis, "x" or "z".
	Axis mathutil.Vec3

	Fan    config.FanConfig
	Roller config.RollerConfig
	Barrel config.BarrelConfig
}

// Prop is a loose physics object.
type Prop struct {
	Name string
	X, Z float64
	Mass float64
}

// Layout holds everything parsed from one arena map.
type Layout struct {
	Name       string
	Width      int
	Depth      int
	Walls      []Box
	Pits       []Box
	DeathZones []Box
	Spawns     []SpawnPoint
	Hazards    []Hazard
	Props      []Prop
	MaskSpawns []Box
	Masks      []string
}
