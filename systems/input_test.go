package systems

import (
	"testing"

	"github.com/automoto/maskbrawl/components"
	cfg "github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/systems/factory"
	"github.com/yohamta/donburi"
)

func TestInputMovesActor(t *testing.T) {
	e := newTestECS(t)
	p := addPlayer(e, "p", mathutil.NewVec3(10, 0, 10))
	components.Input.Get(p).Move = mathutil.NewVec3(1, 0, 0)

	run(e, 30, UpdateInput, UpdateActors)

	pos := components.Actor.Get(p).Transform.Position
	want := 10 + cfg.Motor.MoveSpeed*30*testDT
	if pos.X < want-0.01 || pos.X > want+0.01 {
		t.Fatalf("x = %v, want about %v", pos.X, want)
	}
	if pos.Y != 0 {
		t.Fatalf("expected actor to stay on the floor, y = %v", pos.Y)
	}
}

func TestStunnedActorIgnoresInput(t *testing.T) {
	e := newTestECS(t)
	p := addPlayer(e, "p", mathutil.NewVec3(10, 0, 10))
	q := addPlayer(e, "q", mathutil.NewVec3(10, 0, 11))
	actor := components.Actor.Get(p)
	actor.Motor.Stun(1)

	in := components.Input.Get(p)
	in.Move = mathutil.NewVec3(1, 0, 0)
	in.Attack = true
	run(e, 10, UpdateInput, UpdateActors)

	if got := actor.Transform.Position.X; got != 10 {
		t.Fatalf("expected stunned actor to stay put, x = %v", got)
	}
	if got := components.Actor.Get(q).Health.CurrentHealth(); got != 100 {
		t.Fatalf("expected stunned actor not to attack, q health %v", got)
	}
	if components.Input.Get(p).Attack {
		t.Fatal("expected attack intent consumed")
	}
	if !components.Animation.Get(p).Stunned {
		t.Fatal("expected stun cue recorded")
	}
}

func TestDepletedHealthStunsActor(t *testing.T) {
	e := newTestECS(t)
	p := addPlayer(e, "p", mathutil.NewVec3(10, 0, 10))
	actor := components.Actor.Get(p)

	var depleted []components.HealthDepletedEvent
	components.HealthDepleted.Subscribe(e.World, func(_ donburi.World, ev components.HealthDepletedEvent) {
		depleted = append(depleted, ev)
	})

	actor.Health.TakeDamage(actor.Health.MaxHealth())
	ProcessEvents(e)
	if !actor.Motor.IsStunned() {
		t.Fatal("expected depleted actor to be stunned")
	}
	if len(depleted) != 1 || depleted[0].Victim != "p" || depleted[0].StunDuration != cfg.Health.StunDuration {
		t.Fatalf("unexpected depleted events %+v", depleted)
	}

	run(e, int(cfg.Health.StunDuration/testDT)+2, UpdateActors)
	if actor.Motor.IsStunned() {
		t.Fatal("expected stun to wear off")
	}
	if components.Animation.Get(p).Last != "Recovered" {
		t.Fatalf("expected recovery cue, got %q", components.Animation.Get(p).Last)
	}
}

func TestThrownProjectileStopsAtWall(t *testing.T) {
	e := newTestECS(t)
	factory.CreateWall(e, 5, 14, 10, 1)
	a := addPlayer(e, "a", mathutil.NewVec3(10, 0, 10))
	b := addPlayer(e, "b", mathutil.NewVec3(10, 0, 17))
	EquipMask(e, a, cfg.Masks["kitsune"])

	components.Input.Get(a).Attack = true
	run(e, int(1/testDT), UpdateInput, UpdateProjectiles)
	if n := countProjectiles(e); n != 1 {
		t.Fatalf("expected one projectile in flight, got %d", n)
	}

	run(e, int(1/testDT), UpdateProjectiles)
	if n := countProjectiles(e); n != 0 {
		t.Fatalf("expected projectile retired at the wall, got %d", n)
	}
	if got := components.Actor.Get(b).Health.CurrentHealth(); got != 100 {
		t.Fatalf("expected actor behind the wall unharmed, health %v", got)
	}
}

func TestThrownProjectileHitsActor(t *testing.T) {
	e := newTestECS(t)
	a := addPlayer(e, "a", mathutil.NewVec3(10, 0, 10))
	b := addPlayer(e, "b", mathutil.NewVec3(10, 0, 16))
	EquipMask(e, a, cfg.Masks["kitsune"])

	components.Input.Get(a).Attack = true
	run(e, int(2/testDT), UpdateInput, UpdateProjectiles)

	want := 100 - cfg.Attacks[cfg.AttackWhack].Damage
	if got := components.Actor.Get(b).Health.CurrentHealth(); got != want {
		t.Fatalf("victim health = %v, want %v", got, want)
	}
	if sc := score(e, "a"); sc.Hits != 1 {
		t.Fatalf("expected one hit scored, got %+v", sc)
	}
	if n := countProjectiles(e); n != 0 {
		t.Fatalf("expected projectile gone after its linger, got %d", n)
	}
}
