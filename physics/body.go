package physics

import (
	"math"

	"github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/solarlune/resolv"
)

// floorSnap is how far below the floor something may be and still land.
const floorSnap = 0.25

// RigidBody is a dynamic prop: barrels, crates, anything that takes impulses.
type RigidBody struct {
	Space     *Space
	Object    *resolv.Object
	Transform *mathutil.Transform
	Velocity  mathutil.Vec3
	Mass      float64
	Drag      float64
	Gravity   float64
	Radius    float64
	// Frozen bodies ignore impulses and do not integrate.
	Frozen bool

	grounded bool
}

func NewRigidBody(space *Space, transform *mathutil.Transform, cfg config.BodyConfig, data any, tags ...string) *RigidBody {
	return &RigidBody{
		Space:     space,
		Object:    space.AddFootprint(transform.Position, cfg.Radius, data, tags...),
		Transform: transform,
		Mass:      cfg.Mass,
		Drag:      cfg.Drag,
		Gravity:   cfg.Gravity,
		Radius:    cfg.Radius,
	}
}

// AddImpulse changes velocity by v/mass.
func (b *RigidBody) AddImpulse(v mathutil.Vec3) {
	if b.Frozen {
		return
	}
	m := b.Mass
	if m <= 0 {
		m = 1
	}
	b.Velocity = b.Velocity.Add(v.Scale(1 / m))
}

// AddExplosionImpulse pushes the body away from origin with linear falloff to
// zero at radius. upwardModifier lowers the apparent origin so the push
// gains lift.
func (b *RigidBody) AddExplosionImpulse(force float64, origin mathutil.Vec3, radius, upwardModifier float64) {
	if b.Frozen {
		return
	}
	apparent := origin
	apparent.Y -= upwardModifier
	offset := b.Transform.Position.Sub(apparent)
	dist := offset.Length()

	falloff := 1.0
	if radius > 0 {
		if b.Transform.Position.Distance(origin) > radius {
			return
		}
		falloff = 1 - math.Min(dist/radius, 1)
	}
	dir := offset.Normalized()
	if dir.IsZero() {
		dir = mathutil.Up
	}
	b.AddImpulse(dir.Scale(force * falloff))
}

// Step integrates the body over dt.
func (b *RigidBody) Step(dt float64) {
	if b.Frozen || dt <= 0 {
		return
	}
	b.Velocity.Y += b.Gravity * dt
	if b.Drag > 0 {
		b.Velocity = b.Velocity.Scale(1 / (1 + b.Drag*dt))
	}

	delta := b.Velocity.Scale(dt)
	p, blockedX, blockedZ := b.Space.Slide(b.Object, b.Transform.Position, delta, b.Radius)
	if blockedX {
		b.Velocity.X = 0
	}
	if blockedZ {
		b.Velocity.Z = 0
	}
	p.Y += delta.Y

	b.grounded = false
	if p.Y <= 0 && b.Transform.Position.Y >= -floorSnap && b.Space.HasFloor(p) {
		p.Y = 0
		b.grounded = true
		if b.Velocity.Y < 0 {
			b.Velocity.Y = 0
		}
	}
	b.Transform.Position = p
	Track(b.Object, p)
}

func (b *RigidBody) IsGrounded() bool { return b.grounded }

// Reset stops the body at p.
func (b *RigidBody) Reset(p mathutil.Vec3) {
	b.Velocity = mathutil.Zero
	b.Transform.Position = p
	Track(b.Object, p)
}
