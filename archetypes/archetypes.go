package archetypes

import (
	"github.com/automoto/maskbrawl/components"
	cfg "github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Arena = newArchetype(
		components.Arena,
		components.Scoreboard,
	)
	Player = newArchetype(
		tags.Player,
		components.Actor,
		components.Loadout,
		components.Mask,
		components.Input,
		components.Animation,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Zone,
	)
	Pit = newArchetype(
		tags.Pit,
		components.Zone,
	)
	DeathZone = newArchetype(
		tags.DeathZone,
		components.Zone,
	)
	Prop = newArchetype(
		components.Prop,
	)
	Barrel = newArchetype(
		tags.Barrel,
		components.Prop,
		components.Barrel,
	)
	Fan = newArchetype(
		tags.Fan,
		components.Fan,
	)
	Roller = newArchetype(
		tags.Roller,
		components.Roller,
	)
	MaskSpawner = newArchetype(
		components.MaskSpawner,
	)
	MaskPickup = newArchetype(
		tags.MaskPickup,
		components.MaskPickup,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
