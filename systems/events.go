package systems

import (
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ProcessEvents delivers every event published during the tick. It runs last
// so subscribers see a settled world.
func ProcessEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}
