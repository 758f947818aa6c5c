package motion

import (
	"math"
	"testing"

	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
)

type fakeController struct {
	transform *mathutil.Transform
	grounded  bool
	moves     []mathutil.Vec3
}

func (c *fakeController) Move(d mathutil.Vec3) {
	c.moves = append(c.moves, d)
	c.transform.Position = c.transform.Position.Add(d)
}

func (c *fakeController) IsGrounded() bool { return c.grounded }

func newMotor(grounded bool) (*Motor, *fakeController, *combat.Scheduler) {
	s := combat.NewScheduler()
	tr := &mathutil.Transform{Forward: mathutil.Forward}
	c := &fakeController{transform: tr, grounded: grounded}
	return NewMotor(config.Motor, s, c, tr), c, s
}

func TestKnockbackAccumulates(t *testing.T) {
	m, _, _ := newMotor(true)
	m.ApplyKnockback(mathutil.NewVec3(10, 2, 0))
	m.ApplyKnockback(mathutil.NewVec3(0, 3, 10))

	if got := m.Knockback(); got != mathutil.NewVec3(10, 5, 10) {
		t.Fatalf("expected hits to stack, got %+v", got)
	}
	if m.Velocity().Y != 3 {
		t.Fatalf("expected grounded knockback to set vertical velocity to the last hit, got %v", m.Velocity().Y)
	}
}

func TestKnockbackAirborneKeepsVerticalVelocity(t *testing.T) {
	m, _, _ := newMotor(false)
	m.ApplyKnockback(mathutil.NewVec3(0, 8, 0))
	if m.Velocity().Y != 0 {
		t.Fatalf("expected no vertical launch in the air, got %v", m.Velocity().Y)
	}
}

func TestKnockbackDecays(t *testing.T) {
	m, _, _ := newMotor(true)
	m.ApplyKnockback(mathutil.NewVec3(50, 0, 0))

	prev := m.Knockback().Length()
	for i := 0; i < 10; i++ {
		m.Update(1.0 / 60)
		if l := m.Knockback().Length(); l >= prev {
			t.Fatalf("expected knockback to shrink, %v -> %v", prev, l)
		} else {
			prev = l
		}
	}
	for i := 0; i < 600; i++ {
		m.Update(1.0 / 60)
	}
	if !m.Knockback().IsZero() {
		t.Fatalf("expected knockback to settle to zero, got %+v", m.Knockback())
	}
}

func TestResistanceScalesKnockback(t *testing.T) {
	m, _, _ := newMotor(false)
	m.SetMaskModifiers(1, 0.5)
	m.ApplyKnockback(mathutil.NewVec3(10, 0, 0))
	if m.Knockback().X != 5 {
		t.Fatalf("expected half knockback, got %+v", m.Knockback())
	}
}

func TestStunBlocksMovementAndJump(t *testing.T) {
	m, c, s := newMotor(true)
	m.Stun(2)
	m.SetInput(mathutil.NewVec3(1, 0, 0))
	m.Jump()
	m.Update(0.1)

	if c.transform.Position.X != 0 {
		t.Fatalf("stunned actor moved to %+v", c.transform.Position)
	}
	if m.Velocity().Y > 0 {
		t.Fatal("stunned actor jumped")
	}

	s.Advance(2)
	if m.IsStunned() {
		t.Fatal("expected stun to expire")
	}
	m.SetInput(mathutil.NewVec3(1, 0, 0))
	m.Update(0.1)
	if c.transform.Position.X <= 0 {
		t.Fatal("expected movement after stun")
	}
}

func TestJumpVelocity(t *testing.T) {
	m, _, _ := newMotor(true)
	m.Jump()
	m.Update(1.0 / 60)

	want := math.Sqrt(config.Motor.JumpHeight*-2*config.Motor.Gravity) + config.Motor.Gravity/60
	if math.Abs(m.Velocity().Y-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, m.Velocity().Y)
	}
}

func TestSpeedModifierScalesMove(t *testing.T) {
	m, c, _ := newMotor(true)
	m.SetSpeedModifier(0.3)
	m.SetInput(mathutil.NewVec3(0, 0, 1))
	m.Update(1)

	if got := c.moves[0].Z; math.Abs(got-config.Motor.MoveSpeed*0.3) > 1e-9 {
		t.Fatalf("expected slowed move, got %v", got)
	}
}

func TestExternalForceHeldWhileInContact(t *testing.T) {
	m, _, _ := newMotor(true)
	push := mathutil.NewVec3(4, 0, 0)
	m.SetExternalForce(push)
	m.Update(1.0 / 60)
	if m.External() != push {
		t.Fatalf("expected push held during contact, got %+v", m.External())
	}
	m.Update(1.0 / 60)
	if m.External().X >= push.X {
		t.Fatalf("expected push to decay after contact, got %+v", m.External())
	}
}
