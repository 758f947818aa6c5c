package sim

import (
	"fmt"
	"math"

	"github.com/automoto/maskbrawl/arena"
	"github.com/automoto/maskbrawl/components"
	cfg "github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/physics"
	"github.com/automoto/maskbrawl/systems/factory"
	"github.com/automoto/maskbrawl/tags"
	"github.com/yohamta/donburi/ecs"
)

// Build creates the static geometry, hazards, props and spawners of a layout
// inside an existing arena.
func Build(e *ecs.ECS, layout *arena.Layout) error {
	a := components.MustArena(e.World)

	for _, b := range layout.Walls {
		factory.CreateWall(e, b.X, b.Z, b.W, b.D)
	}
	for _, b := range layout.Pits {
		factory.CreatePit(e, b.X, b.Z, b.W, b.D)
	}
	for _, b := range layout.DeathZones {
		factory.CreateDeathZone(e, b.X, b.Z, b.W, b.D)
	}

	a.Spawns = a.Spawns[:0]
	for _, sp := range layout.Spawns {
		a.Spawns = append(a.Spawns, components.SpawnPoint{X: sp.X, Z: sp.Z})
	}

	barrels := 0
	for _, h := range layout.Hazards {
		switch h.Kind {
		case arena.HazardFan:
			dir := h.Direction
			if dir.IsZero() {
				dir = mathutil.Up
			}
			factory.CreateFan(e, rect(h.Box), fanOrigin(h.Box, dir.Normalized()), dir, h.Fan)
		case arena.HazardRoller:
			factory.CreateRoller(e, rect(h.Box), h.Axis, h.Roller)
		case arena.HazardBarrel:
			barrels++
			factory.CreateBarrel(e, fmt.Sprintf("barrel-%d", barrels), h.Box.Center(), h.Barrel)
		default:
			return fmt.Errorf("hazard kind %q", h.Kind)
		}
	}

	for _, p := range layout.Props {
		body := cfg.Prop
		if p.Mass > 0 {
			body.Mass = p.Mass
		}
		factory.CreateProp(e, p.Name, mathutil.NewVec3(p.X, 0, p.Z), body)
	}

	for _, b := range layout.MaskSpawns {
		factory.CreateMaskSpawner(e, rect(b), cfg.MaskSpawn, layout.Masks)
	}

	a.Nav = physics.NewNavGrid(a.Space, cfg.Arena.NavCellSize,
		tags.ResolvSolid, tags.ResolvPit, tags.ResolvDeathZone)
	return nil
}

func rect(b arena.Box) components.Rect {
	return components.Rect{X: b.X, Z: b.Z, W: b.W, D: b.D}
}

// fanOrigin places the fan on the upwind side of its zone. Vertical fans sit
// in the middle of the floor.
func fanOrigin(b arena.Box, dir mathutil.Vec3) mathutil.Vec3 {
	center := b.Center()
	flat := dir.Flat()
	if flat.IsZero() {
		return center
	}
	flat = flat.Normalized()
	reach := math.Abs(flat.X)*b.W/2 + math.Abs(flat.Z)*b.D/2
	return center.Sub(flat.Scale(reach))
}
