package factory

import (
	"github.com/automoto/maskbrawl/archetypes"
	"github.com/automoto/maskbrawl/components"
	cfg "github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMaskSpawner creates a spawner that drops any of masks inside area.
// An empty list means every configured mask.
func CreateMaskSpawner(ecs *ecs.ECS, area components.Rect, c cfg.MaskSpawnConfig, masks []string) *donburi.Entry {
	if len(masks) == 0 {
		masks = cfg.MaskNames()
	}
	spawner := archetypes.MaskSpawner.Spawn(ecs)
	components.MaskSpawner.SetValue(spawner, components.MaskSpawnerData{
		Area:   area,
		Config: c,
		Masks:  masks,
	})
	return spawner
}

// CreateMaskPickup places a mask on the floor at p.
func CreateMaskPickup(ecs *ecs.ECS, mask cfg.MaskConfig, p mathutil.Vec3, radius float64) *donburi.Entry {
	arena := components.MustArena(ecs.World)
	pickup := archetypes.MaskPickup.Spawn(ecs)
	obj := arena.Space.AddFootprint(p, radius, pickup, tags.ResolvPickup)
	components.MaskPickup.SetValue(pickup, components.MaskPickupData{
		Mask:     mask,
		Position: p,
		Radius:   radius,
		Object:   obj,
	})
	return pickup
}

// DestroyMaskPickup removes a pickup and its footprint.
func DestroyMaskPickup(ecs *ecs.ECS, pickup *donburi.Entry) {
	if arenaEntry, ok := components.Arena.First(ecs.World); ok {
		components.Arena.Get(arenaEntry).Space.Remove(components.MaskPickup.Get(pickup).Object)
	}
	ecs.World.Remove(pickup.Entity())
}
