package systems

import (
	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/components"
	cfg "github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/systems/factory"
	"github.com/automoto/maskbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spawnBlockers are the layers a new pickup must not overlap.
var spawnBlockers = []string{tags.ResolvSolid, tags.ResolvPlayer, tags.ResolvProp, tags.ResolvHazard, tags.ResolvPickup}

// UpdateMaskSpawners drops a new pickup every spawn interval while fewer
// than the maximum are lying around.
func UpdateMaskSpawners(e *ecs.ECS) {
	arena := components.MustArena(e.World)

	live := 0
	components.MaskPickup.Each(e.World, func(*donburi.Entry) { live++ })

	var due []*components.MaskSpawnerData
	components.MaskSpawner.Each(e.World, func(entry *donburi.Entry) {
		s := components.MaskSpawner.Get(entry)
		s.Elapsed += arena.DT
		if s.Elapsed < s.Config.SpawnInterval {
			return
		}
		s.Elapsed -= s.Config.SpawnInterval
		due = append(due, s)
	})

	for _, s := range due {
		if live >= s.Config.MaxSpawnCount {
			continue
		}
		if SpawnMask(e, s) {
			live++
		}
	}
}

// SpawnMask tries random points in the spawner's area until one is over
// solid floor and clear of obstacles. It gives up after MaxAttempts.
func SpawnMask(e *ecs.ECS, s *components.MaskSpawnerData) bool {
	arena := components.MustArena(e.World)
	if len(s.Masks) == 0 {
		return false
	}

	half := s.Config.SpawnSpaceRadius * 0.5
	extents := mathutil.NewVec3(half, half, half)
	attempts := max(s.Config.MaxAttempts, 1)
	for i := 0; i < attempts; i++ {
		p := mathutil.NewVec3(
			s.Area.X+arena.Rand.Float64()*s.Area.W,
			0,
			s.Area.Z+arena.Rand.Float64()*s.Area.D,
		)
		if !arena.Space.HasFloor(p) || arena.Space.CheckBox(p, extents, 0, spawnBlockers...) {
			continue
		}

		name := s.Masks[arena.Rand.Intn(len(s.Masks))]
		mask, ok := cfg.Masks[name]
		if !ok {
			arena.Logger.Error("unknown mask", "mask", name)
			return false
		}
		factory.CreateMaskPickup(e, mask, p, s.Config.PickupRadius)
		arena.Logger.Debug("mask spawned", "mask", name, "x", p.X, "z", p.Z, "attempts", i+1)
		return true
	}
	arena.Logger.Debug("no room for a mask", "attempts", attempts)
	return false
}

// UpdateMaskPickups equips a pickup on the first live actor touching it.
func UpdateMaskPickups(e *ecs.ECS) {
	arena := components.MustArena(e.World)

	type claim struct {
		pickup *donburi.Entry
		actor  *donburi.Entry
	}
	var claims []claim
	claimed := make(map[*combat.Target]bool)

	components.MaskPickup.Each(e.World, func(entry *donburi.Entry) {
		pickup := components.MaskPickup.Get(entry)
		for _, t := range arena.Space.OverlapSphere(pickup.Position, pickup.Radius, tags.ResolvPlayer) {
			if claimed[t] {
				continue
			}
			actorEntry, ok := t.Data.(*donburi.Entry)
			if !ok || !components.Actor.Get(actorEntry).Alive {
				continue
			}
			claimed[t] = true
			claims = append(claims, claim{entry, actorEntry})
			return
		}
	})

	for _, c := range claims {
		mask := components.MaskPickup.Get(c.pickup).Mask
		factory.DestroyMaskPickup(e, c.pickup)
		EquipMask(e, c.actor, mask)
	}
}

// EquipMask replaces whatever the actor wears with mask and applies its
// health, speed, damage, cooldown and resistance values. The mask's attack
// kind becomes the active one.
func EquipMask(e *ecs.ECS, entry *donburi.Entry, mask cfg.MaskConfig) {
	arena := components.MustArena(e.World)
	actor := components.Actor.Get(entry)
	loadout := components.Loadout.Get(entry)

	if _, ok := loadout.Executors[mask.AttackKind]; !ok {
		arena.Logger.Error("mask has no matching attack", "mask", mask.Name, "kind", mask.AttackKind.String())
		return
	}

	RemoveMask(e, entry)

	err := actor.Health.SetProperties(combat.HealthProperties{
		MaxHealth:     combat.Value(mask.MaxHealth),
		RegenRate:     combat.Value(mask.RegenRate),
		RegenWaitTime: combat.Value(mask.RegenWaitTime),
	})
	if err != nil {
		arena.Logger.Error("mask rejected", "mask", mask.Name, "error", err)
		return
	}
	actor.Motor.SetMaskModifiers(mask.SpeedMultiplier, mask.KnockbackResistance)
	setLoadoutModifiers(loadout, mask.DamageMultiplier, mask.CooldownMultiplier)

	if current := loadout.Current(); current != nil {
		current.Cancel()
	}
	loadout.Active = mask.AttackKind

	m := mask
	components.Mask.Get(entry).Mask = &m
	arena.Logger.Info("mask equipped", "player", actor.Name, "mask", mask.Name, "attack", mask.AttackKind.String())
	components.MaskEquipped.Publish(e.World, components.MaskEquippedEvent{Actor: actor.Name, Mask: mask.Name})
}

// RemoveMask takes off the actor's mask and restores the bare-faced values.
func RemoveMask(e *ecs.ECS, entry *donburi.Entry) {
	md := components.Mask.Get(entry)
	if md.Mask == nil {
		return
	}
	actor := components.Actor.Get(entry)
	loadout := components.Loadout.Get(entry)

	// Defaults are positive, so SetProperties cannot fail.
	_ = actor.Health.SetProperties(combat.HealthProperties{
		MaxHealth:     combat.Value(cfg.DefaultMaxHealth),
		RegenRate:     combat.Value(cfg.Health.RegenRate),
		RegenWaitTime: combat.Value(cfg.Health.RegenWaitTime),
	})
	actor.Motor.SetMaskModifiers(1, 0)
	setLoadoutModifiers(loadout, 1, 1)
	if current := loadout.Current(); current != nil {
		current.Cancel()
	}
	loadout.Active = cfg.AttackSlash

	md.Mask = nil
	components.MaskEquipped.Publish(e.World, components.MaskEquippedEvent{Actor: actor.Name})
}

func setLoadoutModifiers(l *components.LoadoutData, damage, cooldown float64) {
	for _, ex := range l.Executors {
		ex.SetDamageModifier(damage)
		ex.SetCooldownMultiplier(cooldown)
	}
}
