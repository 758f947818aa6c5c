// Package motion drives kinematic actors: input, gravity, jumping, and the
// decaying knockback and push forces that attacks and hazards leave behind.
package motion

import (
	"math"

	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
)

// Motor owns a kinematic actor's velocities. It implements
// combat.KnockbackReceiver, combat.SpeedModifiable and combat.StunGate.
type Motor struct {
	cfg        config.MotorConfig
	clock      combat.Clock
	controller combat.KinematicController
	transform  *mathutil.Transform

	input      mathutil.Vec3
	jumpQueued bool

	velocity  mathutil.Vec3
	knockback mathutil.Vec3
	external  mathutil.Vec3
	onRoller  bool

	speedModifier float64
	maskSpeed     float64
	resistance    float64
	stunnedUntil  float64

	// OnStunChanged fires when the stun state flips.
	OnStunChanged func(stunned bool)
	stunned       bool
}

func NewMotor(cfg config.MotorConfig, clock combat.Clock, controller combat.KinematicController, transform *mathutil.Transform) *Motor {
	return &Motor{
		cfg:           cfg,
		clock:         clock,
		controller:    controller,
		transform:     transform,
		speedModifier: 1,
		maskSpeed:     1,
		stunnedUntil:  math.Inf(-1),
	}
}

// SetInput sets the desired ground-plane move direction. Inputs longer than
// one unit are normalized.
func (m *Motor) SetInput(move mathutil.Vec3) {
	move = move.Flat()
	if move.Length() > 1 {
		move = move.Normalized()
	}
	m.input = move
}

// Jump queues a jump for the next update. It is dropped unless grounded and
// not stunned at that point.
func (m *Motor) Jump() {
	m.jumpQueued = true
}

func (m *Motor) ApplyKnockback(v mathutil.Vec3) {
	v = v.Scale(1 - mathutil.Clamp01(m.resistance))
	m.knockback = m.knockback.Add(v)
	if m.controller.IsGrounded() && v.Y > 0 {
		m.velocity.Y = v.Y
	}
}

// SetExternalForce replaces the contact push for this tick. Without a fresh
// call the push decays on its own.
func (m *Motor) SetExternalForce(v mathutil.Vec3) {
	m.external = v
	m.onRoller = true
}

func (m *Motor) SetSpeedModifier(factor float64) {
	m.speedModifier = math.Max(0, factor)
}

// SetMaskModifiers applies the equipped mask's speed and knockback resistance.
func (m *Motor) SetMaskModifiers(speed, resistance float64) {
	if speed <= 0 {
		speed = 1
	}
	m.maskSpeed = speed
	m.resistance = mathutil.Clamp01(resistance)
}

// Stun disables movement, jumping and attacking for d seconds.
func (m *Motor) Stun(d float64) {
	m.stunnedUntil = m.clock.Now() + d
	m.input = mathutil.Zero
	m.setStunned(true)
}

func (m *Motor) IsStunned() bool {
	return m.clock.Now() < m.stunnedUntil
}

func (m *Motor) setStunned(v bool) {
	if m.stunned == v {
		return
	}
	m.stunned = v
	if m.OnStunChanged != nil {
		m.OnStunChanged(v)
	}
}

// Update advances the actor by dt.
func (m *Motor) Update(dt float64) {
	if dt <= 0 {
		return
	}
	stunned := m.IsStunned()
	m.setStunned(stunned)

	if !stunned && !m.input.IsZero() {
		move := m.input.Scale(m.cfg.MoveSpeed * m.speedModifier * m.maskSpeed)
		m.turnToward(m.input, dt)
		m.controller.Move(move.Scale(dt))
	}

	if m.jumpQueued && !stunned && m.controller.IsGrounded() {
		m.velocity.Y = math.Sqrt(m.cfg.JumpHeight * -2 * m.cfg.Gravity)
	}
	m.jumpQueued = false

	if m.controller.IsGrounded() && m.velocity.Y < 0 {
		m.velocity.Y = m.cfg.GroundStickVelocity
	}
	m.velocity.Y += m.cfg.Gravity * dt
	m.controller.Move(m.velocity.Scale(dt))

	if m.knockback.Length() > m.cfg.MinForce {
		m.controller.Move(m.knockback.Scale(dt))
		m.knockback = m.knockback.Lerp(mathutil.Zero, m.cfg.KnockbackDecay*dt)
	} else {
		m.knockback = mathutil.Zero
	}

	if m.onRoller {
		m.controller.Move(m.external.Scale(dt))
	} else if m.external.Length() > m.cfg.MinForce {
		m.controller.Move(m.external.Scale(dt))
		m.external = m.external.Lerp(mathutil.Zero, m.cfg.ExternalDecay*dt)
	} else {
		m.external = mathutil.Zero
	}
	m.onRoller = false
}

func (m *Motor) turnToward(dir mathutil.Vec3, dt float64) {
	if dir.Length() < 0.1 {
		return
	}
	cur, want := m.transform.FlatForward(), dir.FlatNormalized()
	if cur.Dot(want) < -0.999 {
		// Lerping through zero has no heading; turn via the side instead.
		want = cur.Cross(mathutil.Up)
	}
	f := cur.Lerp(want, m.cfg.TurnRate*dt).FlatNormalized()
	if !f.IsZero() {
		m.transform.Forward = f
	}
}

// Reset clears all motion state, as on respawn.
func (m *Motor) Reset() {
	m.input = mathutil.Zero
	m.jumpQueued = false
	m.velocity = mathutil.Zero
	m.knockback = mathutil.Zero
	m.external = mathutil.Zero
	m.onRoller = false
	m.stunnedUntil = math.Inf(-1)
	m.setStunned(false)
}

func (m *Motor) Velocity() mathutil.Vec3  { return m.velocity }
func (m *Motor) Knockback() mathutil.Vec3 { return m.knockback }
func (m *Motor) External() mathutil.Vec3  { return m.external }
func (m *Motor) SpeedModifier() float64   { return m.speedModifier }
func (m *Motor) Transform() *mathutil.Transform {
	return m.transform
}
