package systems

import (
	"github.com/automoto/maskbrawl/components"
	"github.com/automoto/maskbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateActors integrates every live actor's motor and regenerates health.
func UpdateActors(e *ecs.ECS) {
	arena := components.MustArena(e.World)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		actor := components.Actor.Get(entry)
		if !actor.Alive {
			return
		}
		actor.Motor.Update(arena.DT)
		actor.Health.Tick(arena.DT)
	})
}
