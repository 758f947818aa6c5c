package systems

import (
	"github.com/automoto/maskbrawl/components"
	cfg "github.com/automoto/maskbrawl/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates rigid bodies. Props that fall out of the arena
// are removed; barrels go back to where they were placed.
func UpdatePhysics(ecs *ecs.ECS) {
	arena := components.MustArena(ecs.World)

	var lost []*donburi.Entry
	components.Prop.Each(ecs.World, func(e *donburi.Entry) {
		prop := components.Prop.Get(e)
		if prop.Body == nil || prop.Body.Frozen {
			return
		}
		prop.Body.Step(arena.DT)
		if prop.Body.Transform.Position.Y < cfg.Motor.KillHeight {
			lost = append(lost, e)
		}
	})

	for _, e := range lost {
		prop := components.Prop.Get(e)
		if e.HasComponent(components.Barrel) {
			ResetBarrel(e)
			continue
		}
		arena.Logger.Debug("prop fell out", "prop", prop.Target.Name)
		arena.Space.Remove(prop.Body.Object)
		ecs.World.Remove(e.Entity())
	}
}
