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

const barrelRespawnPurpose = "barrel-respawn"

// UpdateBarrels burns down lit fuses and detonates the barrels whose fuse
// ran out.
func UpdateBarrels(e *ecs.ECS) {
	arena := components.MustArena(e.World)

	var due []*donburi.Entry
	components.Barrel.Each(e.World, func(entry *donburi.Entry) {
		b := components.Barrel.Get(entry)
		if b.Phase != components.BarrelFusing || b.Fuse == nil {
			return
		}
		elapsed, done := b.Fuse.Update(float32(arena.DT))
		b.Flash = mathutil.PingPong(float64(elapsed)*b.Config.FlashSpeed, 1)
		if done {
			due = append(due, entry)
		}
	})

	for _, entry := range due {
		ExplodeBarrel(e, entry)
	}
}

// ExplodeBarrel detonates a barrel, hides it and schedules it to come back.
// A barrel that is already waiting to respawn is left alone.
func ExplodeBarrel(e *ecs.ECS, entry *donburi.Entry) bool {
	arena := components.MustArena(e.World)
	b := components.Barrel.Get(entry)
	prop := components.Prop.Get(entry)

	if b.Phase == components.BarrelRespawning {
		arena.Logger.Warn("barrel exploded while respawning", "barrel", prop.Target.Name)
		return false
	}

	origin := prop.Target.Position()
	b.Phase = components.BarrelRespawning
	b.Fuse = nil
	b.Flash = 0
	prop.Body.Frozen = true
	prop.Body.Velocity = mathutil.Zero
	arena.Space.Remove(prop.Body.Object)

	Explode(e, origin, b.Config.Explosion, prop.Target)

	entity := entry.Entity()
	arena.Scheduler.After(combat.TimerKey{Owner: entity, Purpose: barrelRespawnPurpose}, b.Config.RespawnDelay, func() {
		if !e.World.Valid(entity) {
			return
		}
		ResetBarrel(e.World.Entry(entity))
	})
	return true
}

// ResetBarrel puts a barrel back at its origin, whole and at rest.
func ResetBarrel(entry *donburi.Entry) {
	b := components.Barrel.Get(entry)
	prop := components.Prop.Get(entry)

	prop.Body.Reset(b.Origin)
	prop.Body.Frozen = false
	if prop.Body.Object.Space == nil {
		prop.Body.Space.Add(prop.Body.Object)
	}
	prop.Health.Reset()
	b.Phase = components.BarrelIdle
	b.Fuse = nil
	b.Flash = 0
}

// Explode hits everything within the blast radius except source. Bodies take
// an explosion impulse; kinematic actors take knockback instead. Damage and
// knockback fall off linearly with distance.
func Explode(e *ecs.ECS, origin mathutil.Vec3, c cfg.ExplosionConfig, source *combat.Target) int {
	arena := components.MustArena(e.World)

	hits := 0
	for _, t := range arena.Space.OverlapSphere(origin, c.Radius, tags.ResolvPlayer, tags.ResolvProp) {
		if t == source {
			continue
		}
		hits++
		falloff := mathutil.Clamp01(1 - t.Position().Distance(origin)/c.Radius)

		if t.Body != nil {
			t.Body.AddExplosionImpulse(c.Force, origin, c.Radius, c.UpwardModifier)
		} else {
			kb := combat.KnockbackResolver{
				Force:                c.CharacterKnockback * falloff,
				UpwardForce:          c.CharacterUpward * falloff,
				ControllerMultiplier: c.ControllerMultiplier,
			}
			kb.Apply(t, t.Position().Sub(origin))
		}

		if t.Health != nil {
			t.Health.TakeDamage(c.Damage * falloff)
		}
	}

	arena.Logger.Info("explosion", "x", origin.X, "z", origin.Z, "hits", hits)
	components.Explosion.Publish(e.World, components.ExplosionEvent{Origin: origin, Hits: hits})
	return hits
}
