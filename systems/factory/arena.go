package factory

import (
	"log/slog"
	"math/rand"

	"github.com/automoto/maskbrawl/archetypes"
	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/components"
	"github.com/automoto/maskbrawl/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type ArenaOptions struct {
	Width, Depth int
	CellSize     int
	Seed         int64
	Logger       *slog.Logger
}

// CreateArena creates the singleton holding the collision space, the timer
// queue and the seeded RNG every system shares.
func CreateArena(ecs *ecs.ECS, o ArenaOptions) *donburi.Entry {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(arena, components.ArenaData{
		Space:     physics.NewSpace(o.Width, o.Depth, o.CellSize),
		Scheduler: combat.NewScheduler(),
		Rand:      rand.New(rand.NewSource(o.Seed)),
		Logger:    logger,
	})
	components.Scoreboard.SetValue(arena, components.ScoreboardData{
		Scores: make(map[string]*components.Score),
	})
	return arena
}
