package systems

import (
	"io"
	"log/slog"
	"testing"

	"github.com/automoto/maskbrawl/components"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/systems/factory"
	"github.com/automoto/maskbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDT = 1.0 / 60

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateArena(e, factory.ArenaOptions{
		Width:    40,
		Depth:    40,
		CellSize: 2,
		Seed:     1,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	components.MustArena(e.World).DT = testDT
	SubscribeScoreboard(e.World)
	return e
}

func addPlayer(e *ecs.ECS, name string, p mathutil.Vec3) *donburi.Entry {
	n := 0
	tags.Player.Each(e.World, func(*donburi.Entry) { n++ })
	return factory.CreatePlayer(e, factory.PlayerOptions{Name: name, Index: n, Spawn: p})
}

// run advances the clock n times, running systems in order on each tick.
func run(e *ecs.ECS, n int, systems ...ecs.System) {
	for i := 0; i < n; i++ {
		AdvanceClock(e)
		for _, s := range systems {
			s(e)
		}
		ProcessEvents(e)
	}
}

func score(e *ecs.ECS, name string) components.Score {
	board := components.Scoreboard.Get(components.Scoreboard.MustFirst(e.World))
	return *board.Get(name)
}

func countPickups(e *ecs.ECS) int {
	n := 0
	components.MaskPickup.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func countProjectiles(e *ecs.ECS) int {
	n := 0
	components.Projectile.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
