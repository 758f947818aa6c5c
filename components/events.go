package components

import (
	"github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/yohamta/donburi/features/events"
)

// DamageTakenEvent is published for every hit on an actor or prop.
type DamageTakenEvent struct {
	Victim    string
	Amount    float64
	Remaining float64
}

// HealthDepletedEvent is published when a health pool crosses to zero.
type HealthDepletedEvent struct {
	Victim       string
	StunDuration float64
}

// AttackLandedEvent is published after damage and knockback were applied.
type AttackLandedEvent struct {
	Attacker  string
	Victim    string
	Kind      config.AttackKind
	Damage    float64
	Direction mathutil.Vec3
}

// ActorKilledEvent is published when an actor falls out of the arena.
type ActorKilledEvent struct {
	Victim string
	Killer string // empty for self-inflicted falls
	Cause  string
}

// ExplosionEvent is published when a barrel goes off.
type ExplosionEvent struct {
	Origin mathutil.Vec3
	Hits   int
}

// MaskEquippedEvent is published when an actor picks up or drops a mask.
type MaskEquippedEvent struct {
	Actor string
	Mask  string // empty when the mask was removed
}

var (
	DamageTaken    = events.NewEventType[DamageTakenEvent]()
	HealthDepleted = events.NewEventType[HealthDepletedEvent]()
	AttackLanded   = events.NewEventType[AttackLandedEvent]()
	ActorKilled    = events.NewEventType[ActorKilledEvent]()
	Explosion      = events.NewEventType[ExplosionEvent]()
	MaskEquipped   = events.NewEventType[MaskEquippedEvent]()
)
