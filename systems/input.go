package systems

import (
	"github.com/automoto/maskbrawl/components"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput hands each actor's intent to its motor and active attack.
// Jump and attack are consumed here.
func UpdateInput(e *ecs.ECS) {
	arena := components.MustArena(e.World)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		actor := components.Actor.Get(entry)
		input := components.Input.Get(entry)
		defer func() {
			input.Jump = false
			input.Attack = false
		}()

		if !actor.Alive {
			actor.Motor.SetInput(mathutil.Zero)
			return
		}
		if actor.Motor.IsStunned() {
			return
		}

		actor.Motor.SetInput(input.Move)
		if input.Jump {
			actor.Motor.Jump()
		}
		if input.Attack {
			loadout := components.Loadout.Get(entry)
			ex := loadout.Current()
			if ex == nil {
				arena.Logger.Error("no attack bound", "player", actor.Name, "kind", loadout.Active.String())
				return
			}
			ex.PerformAttack()
		}
	})
}
