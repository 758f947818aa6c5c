package systems

import (
	"github.com/automoto/maskbrawl/components"
	"github.com/yohamta/donburi/ecs"
)

// AdvanceClock moves simulation time forward by one tick and fires every
// timer that came due. It runs first so later systems see the new time.
func AdvanceClock(e *ecs.ECS) {
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)
	arena.Tick++
	arena.Scheduler.Advance(arena.DT)
}
