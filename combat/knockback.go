package combat

import (
	"github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
)

// KnockbackKind reports which path a knockback took.
type KnockbackKind int

const (
	KnockbackNone KnockbackKind = iota
	KnockbackImpulse
	KnockbackKinematic
)

func (k KnockbackKind) String() string {
	switch k {
	case KnockbackImpulse:
		return "impulse"
	case KnockbackKinematic:
		return "kinematic"
	default:
		return "none"
	}
}

// KnockbackResolver turns a hit direction into a push. Rigid bodies take a
// single impulse; kinematic actors receive the same vector scaled by
// ControllerMultiplier since they keep no momentum of their own.
type KnockbackResolver struct {
	Force                float64
	UpwardForce          float64
	ControllerMultiplier float64
}

// NewKnockbackResolver applies upwardBias to the configured upward force.
func NewKnockbackResolver(cfg config.KnockbackConfig, upwardBias float64) KnockbackResolver {
	if upwardBias <= 0 {
		upwardBias = 1
	}
	return KnockbackResolver{
		Force:                cfg.Force,
		UpwardForce:          cfg.UpwardForce * upwardBias,
		ControllerMultiplier: cfg.ControllerMultiplier,
	}
}

// Vector is the raw push for a hit travelling along direction. Only the
// horizontal part of direction is used.
func (r KnockbackResolver) Vector(direction mathutil.Vec3) mathutil.Vec3 {
	return direction.FlatNormalized().Scale(r.Force).Add(mathutil.Up.Scale(r.UpwardForce))
}

// Apply pushes t. Targets with neither capability are left alone.
func (r KnockbackResolver) Apply(t *Target, direction mathutil.Vec3) KnockbackKind {
	if t == nil {
		return KnockbackNone
	}
	v := r.Vector(direction)
	switch {
	case t.Body != nil:
		t.Body.AddImpulse(v)
		return KnockbackImpulse
	case t.Receiver != nil:
		mult := r.ControllerMultiplier
		if mult <= 0 {
			mult = 1
		}
		t.Receiver.ApplyKnockback(v.Scale(mult))
		return KnockbackKinematic
	}
	return KnockbackNone
}
