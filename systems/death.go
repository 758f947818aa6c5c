package systems

import (
	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/components"
	cfg "github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	CauseFell      = "fell"
	CauseDeathZone = "deathzone"
)

type pendingDeath struct {
	entry *donburi.Entry
	cause string
}

// UpdateDeaths kills actors that dropped below the kill height or walked
// into a death zone.
func UpdateDeaths(e *ecs.ECS) {
	arena := components.MustArena(e.World)

	var dead []pendingDeath
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		actor := components.Actor.Get(entry)
		if !actor.Alive {
			return
		}
		p := actor.Transform.Position
		switch {
		case p.Y < cfg.Motor.KillHeight:
			dead = append(dead, pendingDeath{entry, CauseFell})
		case arena.Space.PointIn(p, tags.ResolvDeathZone):
			dead = append(dead, pendingDeath{entry, CauseDeathZone})
		}
	})

	for _, d := range dead {
		KillActor(e, d.entry, d.cause)
	}
}

// KillActor takes an actor out of play and schedules its respawn. The last
// attacker is credited when the hit was recent enough.
func KillActor(e *ecs.ECS, entry *donburi.Entry, cause string) {
	arena := components.MustArena(e.World)
	actor := components.Actor.Get(entry)
	if !actor.Alive {
		return
	}
	actor.Alive = false
	actor.Controller.Detach()
	actor.Motor.Reset()
	for _, ex := range components.Loadout.Get(entry).Executors {
		ex.Cancel()
	}
	RemoveMask(e, entry)

	now := arena.Scheduler.Now()
	killer := ""
	if actor.LastAttacker != "" && now-actor.LastHitAt <= cfg.Sim.KillCreditWindow {
		killer = actor.LastAttacker
	}
	actor.LastAttacker = ""

	arena.Logger.Info("player killed", "player", actor.Name, "cause", cause, "killer", killer)
	components.ActorKilled.Publish(e.World, components.ActorKilledEvent{
		Victim: actor.Name,
		Killer: killer,
		Cause:  cause,
	})

	entity := entry.Entity()
	arena.Scheduler.After(combat.TimerKey{Owner: entity, Purpose: "respawn"}, cfg.Sim.RespawnDelay, func() {
		if !e.World.Valid(entity) {
			return
		}
		RespawnActor(e, e.World.Entry(entity))
	})
}

// RespawnActor puts a dead actor back at a free spawn point with a full
// health pool.
func RespawnActor(e *ecs.ECS, entry *donburi.Entry) {
	arena := components.MustArena(e.World)
	actor := components.Actor.Get(entry)
	if actor.Alive {
		return
	}

	p := findSpawn(arena, actor.Index)
	actor.Controller.Teleport(p)
	actor.Controller.Attach()
	actor.Motor.Reset()
	actor.Health.Reset()
	actor.Transform.Forward = mathutil.Forward
	actor.Alive = true

	arena.Logger.Info("player respawned", "player", actor.Name, "x", p.X, "z", p.Z)
}

// findSpawn returns the first spawn point, starting from the actor's own,
// that no actor or wall is standing on.
func findSpawn(arena *components.ArenaData, index int) mathutil.Vec3 {
	n := len(arena.Spawns)
	if n == 0 {
		return mathutil.NewVec3(arena.Space.Width/2, 0, arena.Space.Depth/2)
	}
	if index < 0 {
		index = -index
	}
	half := mathutil.NewVec3(cfg.Motor.Radius, 0, cfg.Motor.Radius)
	for i := 0; i < n; i++ {
		s := arena.Spawns[(index+i)%n]
		p := mathutil.NewVec3(s.X, 0, s.Z)
		if !arena.Space.CheckBox(p, half, 0, tags.ResolvPlayer, tags.ResolvSolid) {
			return p
		}
	}
	s := arena.Spawns[index%n]
	return mathutil.NewVec3(s.X, 0, s.Z)
}
