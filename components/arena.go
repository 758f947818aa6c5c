package components

import (
	"log/slog"
	"math/rand"

	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/physics"
	"github.com/yohamta/donburi"
)

// ArenaData is the singleton holding everything systems share.
type ArenaData struct {
	Space     *physics.Space
	Nav       *physics.NavGrid
	Scheduler *combat.Scheduler
	Rand      *rand.Rand
	Logger    *slog.Logger
	DT        float64
	Tick      uint64
	Spawns    []SpawnPoint
}

type SpawnPoint struct {
	X, Z float64
}

var Arena = donburi.NewComponentType[ArenaData]()

// MustArena returns the arena singleton.
func MustArena(w donburi.World) *ArenaData {
	return Arena.Get(Arena.MustFirst(w))
}
