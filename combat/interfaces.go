// Package combat resolves attacks: who gets hit, how hard, and which way
// they fly. It knows nothing about the ECS world; collaborators are reached
// through the small capability interfaces below.
package combat

import "github.com/automoto/maskbrawl/mathutil"

// Damageable is the health capability exposed to attacks and hazards.
type Damageable interface {
	TakeDamage(amount float64)
	Heal(amount float64)
	SetProperties(p HealthProperties) error
	CurrentHealth() float64
	MaxHealth() float64
	IsAlive() bool
}

// PhysicsBody is a free-moving rigid body.
//
//go:generate go tool mockgen -destination=./mocks/physics_body_mock.go -package=mocks . PhysicsBody
type PhysicsBody interface {
	AddImpulse(v mathutil.Vec3)
	AddExplosionImpulse(force float64, origin mathutil.Vec3, radius, upwardModifier float64)
}

// KinematicController moves an actor by explicit deltas. It has no momentum.
type KinematicController interface {
	Move(delta mathutil.Vec3)
	IsGrounded() bool
}

// KnockbackReceiver accumulates knockback on a kinematic actor.
//
//go:generate go tool mockgen -destination=./mocks/knockback_receiver_mock.go -package=mocks . KnockbackReceiver
type KnockbackReceiver interface {
	ApplyKnockback(v mathutil.Vec3)
}

// SpeedModifiable is the movement-modifier capability used by fans and masks.
type SpeedModifiable interface {
	SetSpeedModifier(factor float64)
}

// Animator receives fire-and-forget animation cues.
//
//go:generate go tool mockgen -destination=./mocks/animator_mock.go -package=mocks . Animator
type Animator interface {
	Trigger(cue string)
}

// StunGate reports whether an actor is currently stunned.
type StunGate interface {
	IsStunned() bool
}

// RayHit is the closest intersection found by a raycast.
type RayHit struct {
	Target   *Target
	Point    mathutil.Vec3
	Distance float64
}

// SpatialQuery answers geometric questions about the arena. Layers filter
// candidates; an empty layer list matches everything.
//
//go:generate go tool mockgen -destination=./mocks/spatial_query_mock.go -package=mocks . SpatialQuery
type SpatialQuery interface {
	OverlapSphere(origin mathutil.Vec3, radius float64, layers ...string) []*Target
	Raycast(origin, direction mathutil.Vec3, maxDistance float64, layers ...string) (RayHit, bool)
	CheckBox(center, halfExtents mathutil.Vec3, yaw float64, layers ...string) bool
}

// ActorRegistry lists the actors currently in play.
type ActorRegistry interface {
	Actors() []*Target
}

// ProjectileSpawner hands projectiles to whatever steps them each tick.
type ProjectileSpawner interface {
	Spawn(p *Projectile)
	Despawn(p *Projectile)
}
