package systems

import (
	"math"
	"testing"

	"github.com/automoto/maskbrawl/components"
	cfg "github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/systems/factory"
)

func TestExplodeFallsOffWithDistance(t *testing.T) {
	e := newTestECS(t)
	origin := mathutil.NewVec3(10, 0, 10)
	near := addPlayer(e, "near", mathutil.NewVec3(11, 0, 10))
	far := addPlayer(e, "far", mathutil.NewVec3(14, 0, 10))
	out := addPlayer(e, "out", mathutil.NewVec3(16, 0, 10))

	c := cfg.Hazards.Barrel.Explosion
	if got := Explode(e, origin, c, nil); got != 2 {
		t.Fatalf("expected 2 hits, got %d", got)
	}

	nearActor := components.Actor.Get(near)
	farActor := components.Actor.Get(far)
	if got, want := nearActor.Health.CurrentHealth(), 100-c.Damage*0.8; math.Abs(got-want) > 1e-9 {
		t.Errorf("near health = %v, want %v", got, want)
	}
	if got, want := farActor.Health.CurrentHealth(), 100-c.Damage*0.2; math.Abs(got-want) > 1e-9 {
		t.Errorf("far health = %v, want %v", got, want)
	}
	if got := components.Actor.Get(out).Health.CurrentHealth(); got != 100 {
		t.Errorf("actor outside the radius took damage: %v", got)
	}

	nk, fk := nearActor.Motor.Knockback(), farActor.Motor.Knockback()
	if nk.X <= fk.X || fk.X <= 0 {
		t.Errorf("expected knockback away from origin falling off with distance, near=%v far=%v", nk, fk)
	}
	if want := c.CharacterKnockback * 0.8 * c.ControllerMultiplier; math.Abs(nk.X-want) > 1e-9 {
		t.Errorf("expected kinematic knockback %v through the controller multiplier, got %v", want, nk.X)
	}
}

func TestExplodeSkipsSourceAndPushesProps(t *testing.T) {
	e := newTestECS(t)
	origin := mathutil.NewVec3(10, 0, 10)
	source := factory.CreateBarrel(e, "source", origin, cfg.Hazards.Barrel)
	crate := factory.CreateProp(e, "crate", mathutil.NewVec3(8, 0, 10), cfg.Prop)

	sourceProp := components.Prop.Get(source)
	if got := Explode(e, origin, cfg.Hazards.Barrel.Explosion, sourceProp.Target); got != 1 {
		t.Fatalf("expected only the crate to be hit, got %d", got)
	}
	if v := components.Prop.Get(crate).Body.Velocity; v.X >= 0 {
		t.Errorf("expected crate pushed toward -X, got %v", v)
	}
	if v := sourceProp.Body.Velocity; !v.IsZero() {
		t.Errorf("expected source untouched, got %v", v)
	}
}

func TestBarrelFuseExplodeRespawn(t *testing.T) {
	e := newTestECS(t)
	c := cfg.Hazards.Barrel
	barrel := factory.CreateBarrel(e, "barrel", mathutil.NewVec3(10, 0, 10), c)
	victim := addPlayer(e, "victim", mathutil.NewVec3(12, 0, 10))

	prop := components.Prop.Get(barrel)
	b := components.Barrel.Get(barrel)

	prop.Health.TakeDamage(c.Health)
	if b.Phase != components.BarrelFusing {
		t.Fatalf("expected depleted barrel to start fusing, got %v", b.Phase)
	}
	if factory.LightFuse(barrel) {
		t.Fatal("expected a lit fuse not to be relit")
	}

	fuseTicks := int(c.FlashDuration/testDT) - 10
	run(e, fuseTicks, UpdateBarrels)
	if b.Phase != components.BarrelFusing {
		t.Fatalf("expected barrel still fusing before the fuse runs out, got %v", b.Phase)
	}
	if b.Flash < 0 || b.Flash > 1 {
		t.Fatalf("flash out of range: %v", b.Flash)
	}

	run(e, 30, UpdateBarrels)
	if b.Phase != components.BarrelRespawning {
		t.Fatalf("expected barrel to explode, got %v", b.Phase)
	}
	if prop.Body.Object.Space != nil {
		t.Fatal("expected exploded barrel removed from the space")
	}
	if got := components.Actor.Get(victim).Health.CurrentHealth(); got >= 100 {
		t.Fatalf("expected victim damaged by the blast, health %v", got)
	}
	if ExplodeBarrel(e, barrel) {
		t.Fatal("expected a respawning barrel not to explode again")
	}

	run(e, int(c.RespawnDelay/testDT)+2, UpdateBarrels)
	if b.Phase != components.BarrelIdle {
		t.Fatalf("expected barrel back after the respawn delay, got %v", b.Phase)
	}
	if prop.Health.CurrentHealth() != c.Health {
		t.Fatalf("expected full barrel health, got %v", prop.Health.CurrentHealth())
	}
	if prop.Target.Position() != b.Origin {
		t.Fatalf("expected barrel at origin, got %v", prop.Target.Position())
	}
}
