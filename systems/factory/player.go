package factory

import (
	"github.com/automoto/maskbrawl/archetypes"
	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/components"
	cfg "github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/motion"
	"github.com/automoto/maskbrawl/physics"
	"github.com/automoto/maskbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlayerOptions struct {
	Name       string
	Index      int
	Spawn      mathutil.Vec3
	Bot        bool
	Difficulty cfg.BotDifficulty
}

// CreatePlayer builds an actor with a motor, a health pool and one executor
// per attack variant. Slash is active until a mask says otherwise.
func CreatePlayer(ecs *ecs.ECS, o PlayerOptions) *donburi.Entry {
	arena := components.MustArena(ecs.World)

	var player *donburi.Entry
	if o.Bot {
		player = archetypes.Player.Spawn(ecs, tags.Bot, components.Bot)
		components.Bot.SetValue(player, components.BotData{Difficulty: o.Difficulty})
	} else {
		player = archetypes.Player.Spawn(ecs)
	}

	transform := &mathutil.Transform{Position: o.Spawn, Forward: mathutil.Forward}
	target := &combat.Target{Name: o.Name, Transform: transform, Data: player}

	controller := physics.NewController(arena.Space, transform, cfg.Motor.Radius, target, tags.ResolvPlayer)
	motor := motion.NewMotor(cfg.Motor, arena.Scheduler, controller, transform)
	health := combat.NewHealth(cfg.Health, arena.Scheduler)
	target.Health = health
	target.Receiver = motor
	target.Movement = motor

	anim := components.NewCueLog()
	components.Animation.SetValue(player, components.AnimationData{CueLog: anim})
	motor.OnStunChanged = func(stunned bool) {
		components.Animation.Get(player).Stunned = stunned
		if stunned {
			anim.Trigger("Stunned")
		} else {
			anim.Trigger("Recovered")
		}
	}

	health.OnDamaged = func(amount, remaining float64) {
		components.DamageTaken.Publish(ecs.World, components.DamageTakenEvent{
			Victim:    o.Name,
			Amount:    amount,
			Remaining: remaining,
		})
	}
	health.OnDepleted = func(stun float64) {
		motor.Stun(stun)
		components.HealthDepleted.Publish(ecs.World, components.HealthDepletedEvent{
			Victim:       o.Name,
			StunDuration: stun,
		})
	}

	logger := arena.Logger.With("component", "combat")
	spawner := NewProjectileSpawner(ecs, o.Name)
	registry := NewRegistry(ecs.World)
	executors := make(map[cfg.AttackKind]*combat.Executor, len(cfg.AllAttackKinds))
	for _, kind := range cfg.AllAttackKinds {
		profile := cfg.Attacks[kind]
		ex := combat.NewExecutor(combat.ExecutorOptions{
			Profile:          profile,
			Owner:            target,
			Scheduler:        arena.Scheduler,
			Detector:         combat.HitDetector{Query: arena.Space, Layers: tags.MeleeLayers},
			Animator:         anim,
			Stun:             motor,
			Logger:           logger,
			Spawner:          spawner,
			Registry:         registry,
			ProjectileLayers: tags.ProjectileLayers,
			BlockingLayers:   tags.BlockingLayers,
		})
		ex.OnHit = func(hit combat.HitEvent, damage float64) {
			creditHit(hit.Target, o.Name, arena.Scheduler.Now())
			components.AttackLanded.Publish(ecs.World, components.AttackLandedEvent{
				Attacker:  o.Name,
				Victim:    hit.Target.String(),
				Kind:      profile.Kind,
				Damage:    damage,
				Direction: hit.Direction,
			})
		}
		executors[kind] = ex
	}

	components.Actor.SetValue(player, components.ActorData{
		Name:       o.Name,
		Index:      o.Index,
		Target:     target,
		Transform:  transform,
		Motor:      motor,
		Controller: controller,
		Health:     health,
		Alive:      true,
	})
	components.Loadout.SetValue(player, components.LoadoutData{
		Executors: executors,
		Active:    cfg.AttackSlash,
	})
	components.Input.SetValue(player, components.InputData{})

	arena.Logger.Info("player joined", "player", o.Name, "bot", o.Bot, "x", o.Spawn.X, "z", o.Spawn.Z)
	return player
}

// creditHit remembers who last hit an actor so a fall can be credited.
func creditHit(victim *combat.Target, attacker string, now float64) {
	entry, ok := victim.Data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.Actor) {
		return
	}
	actor := components.Actor.Get(entry)
	actor.LastAttacker = attacker
	actor.LastHitAt = now
}
