package systems

import (
	"log/slog"

	"github.com/automoto/maskbrawl/components"
	"github.com/yohamta/donburi"
)

// SubscribeScoreboard keeps the scoreboard in step with combat events.
func SubscribeScoreboard(w donburi.World) {
	components.AttackLanded.Subscribe(w, onAttackLanded)
	components.ActorKilled.Subscribe(w, onActorKilled)
}

func scoreboard(w donburi.World) *components.ScoreboardData {
	entry, ok := components.Scoreboard.First(w)
	if !ok {
		return nil
	}
	return components.Scoreboard.Get(entry)
}

func onAttackLanded(w donburi.World, ev components.AttackLandedEvent) {
	board := scoreboard(w)
	if board == nil {
		return
	}
	sc := board.Get(ev.Attacker)
	sc.Hits++
	sc.DamageDealt += ev.Damage
}

func onActorKilled(w donburi.World, ev components.ActorKilledEvent) {
	board := scoreboard(w)
	if board == nil {
		return
	}
	board.Get(ev.Victim).Deaths++
	if ev.Killer != "" && ev.Killer != ev.Victim {
		board.Get(ev.Killer).KOs++
	}
}

// SubscribeCombatLog writes combat events to logger.
func SubscribeCombatLog(w donburi.World, logger *slog.Logger) {
	logger = logger.With("component", "events")
	components.AttackLanded.Subscribe(w, func(_ donburi.World, ev components.AttackLandedEvent) {
		logger.Debug("attack landed",
			"attacker", ev.Attacker,
			"victim", ev.Victim,
			"attack", ev.Kind.String(),
			"damage", ev.Damage,
		)
	})
	components.HealthDepleted.Subscribe(w, func(_ donburi.World, ev components.HealthDepletedEvent) {
		logger.Info("health depleted", "victim", ev.Victim, "stun", ev.StunDuration)
	})
	components.MaskEquipped.Subscribe(w, func(_ donburi.World, ev components.MaskEquippedEvent) {
		if ev.Mask == "" {
			logger.Debug("mask removed", "player", ev.Actor)
			return
		}
		logger.Debug("mask equipped", "player", ev.Actor, "mask", ev.Mask)
	})
}
