package factory

import (
	"github.com/automoto/maskbrawl/archetypes"
	"github.com/automoto/maskbrawl/components"
	"github.com/automoto/maskbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a solid box on the ground plane.
func CreateWall(ecs *ecs.ECS, x, z, w, d float64) *donburi.Entry {
	return createZone(ecs, archetypes.Wall.Spawn(ecs), components.Rect{X: x, Z: z, W: w, D: d}, tags.ResolvSolid)
}

// CreatePit creates a hole in the floor. Anything over it falls.
func CreatePit(ecs *ecs.ECS, x, z, w, d float64) *donburi.Entry {
	return createZone(ecs, archetypes.Pit.Spawn(ecs), components.Rect{X: x, Z: z, W: w, D: d}, tags.ResolvPit)
}

// CreateDeathZone creates an invisible area that kills actors entering it.
func CreateDeathZone(ecs *ecs.ECS, x, z, w, d float64) *donburi.Entry {
	return createZone(ecs, archetypes.DeathZone.Spawn(ecs), components.Rect{X: x, Z: z, W: w, D: d}, tags.ResolvDeathZone)
}

func createZone(ecs *ecs.ECS, entry *donburi.Entry, r components.Rect, tag string) *donburi.Entry {
	components.Zone.SetValue(entry, components.ZoneData{Area: r})

	// Add to space if it exists
	if arenaEntry, ok := components.Arena.First(ecs.World); ok {
		components.Arena.Get(arenaEntry).Space.AddBox(r.X, r.Z, r.W, r.D, entry, tag)
	}
	return entry
}
