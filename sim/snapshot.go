package sim

import (
	"github.com/automoto/maskbrawl/components"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/tags"
	"github.com/yohamta/donburi"
)

type ActorSnapshot struct {
	Name      string
	Position  mathutil.Vec3
	Health    float64
	MaxHealth float64
	Alive     bool
	Stunned   bool
	Mask      string
	Attack    string
	State     string
}

// Snapshot is a read-only copy of the match state at one tick.
type Snapshot struct {
	Match       string
	Tick        uint64
	Time        float64
	Actors      []ActorSnapshot
	Scores      []components.Score
	Projectiles int
	Pickups     int
}

func (s *Sim) Snapshot() Snapshot {
	w := s.ecs.World
	a := components.MustArena(w)
	snap := Snapshot{
		Match:  s.id,
		Tick:   a.Tick,
		Time:   a.Scheduler.Now(),
		Scores: s.Scoreboard(),
	}

	for _, name := range s.Names() {
		entry := s.actors[name]
		actor := components.Actor.Get(entry)
		loadout := components.Loadout.Get(entry)
		as := ActorSnapshot{
			Name:      actor.Name,
			Position:  actor.Transform.Position,
			Health:    actor.Health.CurrentHealth(),
			MaxHealth: actor.Health.MaxHealth(),
			Alive:     actor.Alive,
			Stunned:   actor.Motor.IsStunned(),
			Mask:      components.Mask.Get(entry).Name(),
			Attack:    loadout.Active.String(),
		}
		if ex := loadout.Current(); ex != nil {
			as.State = ex.State().String()
		}
		snap.Actors = append(snap.Actors, as)
	}

	components.Projectile.Each(w, func(*donburi.Entry) { snap.Projectiles++ })
	tags.MaskPickup.Each(w, func(*donburi.Entry) { snap.Pickups++ })
	return snap
}

// Scoreboard returns the ranked scores.
func (s *Sim) Scoreboard() []components.Score {
	return components.Scoreboard.Get(components.Scoreboard.MustFirst(s.ecs.World)).Ranked()
}
