package systems

import (
	"math"

	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/components"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFans spins fan blades and, while a fan is on, pushes everything in
// its area along the wind. Actors in the wind also move slower; that is
// undone as soon as they leave or the fan stops.
func UpdateFans(e *ecs.ECS) {
	arena := components.MustArena(e.World)
	dt := arena.DT

	inside := make(map[*components.FanData]map[*combat.Target]bool)
	inWind := make(map[*combat.Target]bool)
	components.Fan.Each(e.World, func(entry *donburi.Entry) {
		fan := components.Fan.Get(entry)
		spinBlade(fan, dt)

		blown := make(map[*combat.Target]bool)
		inside[fan] = blown
		if !fan.On {
			return
		}

		c := fan.Config
		center := fan.Area.Center()
		reach := math.Hypot(fan.Area.W, fan.Area.D) / 2
		for _, t := range arena.Space.OverlapColumn(center, reach, tags.ResolvPlayer, tags.ResolvProp) {
			if !fan.Area.Contains(t.Position()) {
				continue
			}
			falloff := windFalloff(fan, t)

			switch {
			case t.Body != nil:
				t.Body.AddImpulse(fan.Direction.Scale(c.Force * falloff * dt))
			case t.Receiver != nil:
				actor, ok := actorOf(t)
				if !ok || !actor.Alive {
					continue
				}
				actor.Controller.Move(fan.Direction.Scale(c.Force * c.CharacterForceMultiplier * falloff * dt))
				if t.Movement != nil {
					t.Movement.SetSpeedModifier(c.CharacterMovementMultiplier)
				}
				blown[t] = true
				inWind[t] = true
				fan.Slowed[t] = true
			}
		}
	})

	// Overlapping fans share actors, so speed comes back only once no fan
	// blows on them.
	components.Fan.Each(e.World, func(entry *donburi.Entry) {
		fan := components.Fan.Get(entry)
		releaseSlowed(fan, inside[fan], inWind)
	})
}

func spinBlade(fan *components.FanData, dt float64) {
	if fan.Blade != nil {
		speed, done := fan.Blade.Update(float32(dt))
		fan.BladeSpeed = float64(speed)
		if done {
			fan.Blade = nil
		}
	}
	fan.BladeAngle = math.Mod(fan.BladeAngle+fan.BladeSpeed*dt, 360)
}

// windFalloff is 1 at the fan and 0 at MaxFloatHeight away from it.
func windFalloff(fan *components.FanData, t *combat.Target) float64 {
	if fan.Config.MaxFloatHeight <= 0 {
		return 1
	}
	d := t.Position().Distance(fan.Origin)
	return mathutil.Clamp01(1 - d/fan.Config.MaxFloatHeight)
}

// releaseSlowed forgets the actors that left this fan and restores the
// speed of those no other fan is still slowing.
func releaseSlowed(fan *components.FanData, keep, inWind map[*combat.Target]bool) {
	for t := range fan.Slowed {
		if keep[t] {
			continue
		}
		if t.Movement != nil && !inWind[t] {
			t.Movement.SetSpeedModifier(1)
		}
		delete(fan.Slowed, t)
	}
}

// actorOf maps a target back to its actor component.
func actorOf(t *combat.Target) (*components.ActorData, bool) {
	entry, ok := t.Data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.Actor) {
		return nil, false
	}
	return components.Actor.Get(entry), true
}
