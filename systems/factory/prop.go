package factory

import (
	"github.com/automoto/maskbrawl/archetypes"
	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/components"
	cfg "github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/physics"
	"github.com/automoto/maskbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProp creates an indestructible rigid body, such as a crate.
func CreateProp(ecs *ecs.ECS, name string, p mathutil.Vec3, body cfg.BodyConfig) *donburi.Entry {
	arena := components.MustArena(ecs.World)
	prop := archetypes.Prop.Spawn(ecs)

	transform := &mathutil.Transform{Position: p, Forward: mathutil.Forward}
	target := &combat.Target{Name: name, Transform: transform, Data: prop}
	rb := physics.NewRigidBody(arena.Space, transform, body, target, tags.ResolvProp)
	target.Body = rb

	components.Prop.SetValue(prop, components.PropData{Target: target, Body: rb})
	return prop
}

// CreateBarrel creates an explosive barrel. Depleting its health lights the
// fuse; the barrel system takes it from there.
func CreateBarrel(ecs *ecs.ECS, name string, p mathutil.Vec3, c cfg.BarrelConfig) *donburi.Entry {
	arena := components.MustArena(ecs.World)
	barrel := archetypes.Barrel.Spawn(ecs)

	transform := &mathutil.Transform{Position: p, Forward: mathutil.Forward}
	target := &combat.Target{Name: name, Transform: transform, Data: barrel}
	rb := physics.NewRigidBody(arena.Space, transform, c.Body, target, tags.ResolvProp, tags.ResolvHazard)
	health := combat.NewHealth(cfg.HealthConfig{MaxHealth: c.Health}, arena.Scheduler)
	target.Body = rb
	target.Health = health

	health.OnDamaged = func(amount, remaining float64) {
		components.DamageTaken.Publish(ecs.World, components.DamageTakenEvent{
			Victim:    name,
			Amount:    amount,
			Remaining: remaining,
		})
	}
	health.OnDepleted = func(float64) {
		LightFuse(barrel)
	}

	components.Prop.SetValue(barrel, components.PropData{Target: target, Body: rb, Health: health})
	components.Barrel.SetValue(barrel, components.BarrelData{
		Origin: p,
		Config: c,
	})
	return barrel
}

// LightFuse starts the barrel's countdown. Only idle barrels can be lit.
func LightFuse(barrel *donburi.Entry) bool {
	b := components.Barrel.Get(barrel)
	if b.Phase != components.BarrelIdle {
		return false
	}
	b.Phase = components.BarrelFusing
	b.Fuse = newFuse(b.Config.FlashDuration)
	b.Flash = 0
	return true
}
