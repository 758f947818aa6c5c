package systems

import (
	"testing"

	"github.com/automoto/maskbrawl/components"
	cfg "github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/systems/factory"
	"github.com/yohamta/donburi"
)

func TestFallAfterHitCreditsAttacker(t *testing.T) {
	e := newTestECS(t)
	arena := components.MustArena(e.World)
	arena.Spawns = []components.SpawnPoint{{X: 5, Z: 5}, {X: 30, Z: 30}}

	a := addPlayer(e, "a", mathutil.NewVec3(10, 0, 10))
	b := addPlayer(e, "b", mathutil.NewVec3(10, 0, 11))
	victim := components.Actor.Get(b)

	var killed []components.ActorKilledEvent
	components.ActorKilled.Subscribe(e.World, func(_ donburi.World, ev components.ActorKilledEvent) {
		killed = append(killed, ev)
	})

	components.Input.Get(a).Attack = true
	run(e, 1, UpdateInput)
	if got := victim.Health.CurrentHealth(); got != 100-cfg.Attacks[cfg.AttackSlash].Damage {
		t.Fatalf("expected slash to land, victim health %v", got)
	}
	if victim.LastAttacker != "a" {
		t.Fatalf("expected hit credited to a, got %q", victim.LastAttacker)
	}
	if sc := score(e, "a"); sc.Hits != 1 || sc.DamageDealt != cfg.Attacks[cfg.AttackSlash].Damage {
		t.Fatalf("unexpected attacker score %+v", sc)
	}

	victim.Controller.Teleport(mathutil.NewVec3(10, cfg.Motor.KillHeight-1, 11))
	run(e, 1, UpdateDeaths)

	if victim.Alive {
		t.Fatal("expected victim dead after falling")
	}
	if len(killed) != 1 || killed[0].Killer != "a" || killed[0].Cause != CauseFell {
		t.Fatalf("unexpected kill events %+v", killed)
	}
	if sc := score(e, "a"); sc.KOs != 1 {
		t.Fatalf("expected a KO for a, got %+v", sc)
	}
	if sc := score(e, "b"); sc.Deaths != 1 {
		t.Fatalf("expected a death for b, got %+v", sc)
	}
	if victim.Controller.Object.Space != nil {
		t.Fatal("expected dead actor removed from the space")
	}

	run(e, int(cfg.Sim.RespawnDelay/testDT)+2, UpdateDeaths)
	if !victim.Alive {
		t.Fatal("expected victim respawned")
	}
	if got := victim.Transform.Position; got != mathutil.NewVec3(30, 0, 30) {
		t.Fatalf("expected respawn at own spawn point, got %v", got)
	}
	if got := victim.Health.CurrentHealth(); got != victim.Health.MaxHealth() {
		t.Fatalf("expected full health on respawn, got %v", got)
	}
	if victim.Controller.Object.Space == nil {
		t.Fatal("expected respawned actor back in the space")
	}
}

func TestStaleHitEarnsNoCredit(t *testing.T) {
	e := newTestECS(t)
	a := addPlayer(e, "a", mathutil.NewVec3(10, 0, 10))
	b := addPlayer(e, "b", mathutil.NewVec3(10, 0, 11))
	victim := components.Actor.Get(b)

	components.Input.Get(a).Attack = true
	run(e, 1, UpdateInput)
	run(e, int((cfg.Sim.KillCreditWindow+1)/testDT))

	KillActor(e, b, CauseFell)
	ProcessEvents(e)
	if sc := score(e, "a"); sc.KOs != 0 {
		t.Fatalf("expected no KO for a stale hit, got %+v", sc)
	}
	if victim.LastAttacker != "" {
		t.Fatalf("expected last attacker cleared, got %q", victim.LastAttacker)
	}
}

func TestDeathZoneKills(t *testing.T) {
	e := newTestECS(t)
	factory.CreateDeathZone(e, 0, 0, 5, 5)
	p := addPlayer(e, "p", mathutil.NewVec3(2, 0, 2))
	safe := addPlayer(e, "safe", mathutil.NewVec3(10, 0, 10))

	var cause string
	components.ActorKilled.Subscribe(e.World, func(_ donburi.World, ev components.ActorKilledEvent) {
		cause = ev.Cause
	})

	run(e, 1, UpdateDeaths)
	if components.Actor.Get(p).Alive {
		t.Fatal("expected actor in the death zone to die")
	}
	if !components.Actor.Get(safe).Alive {
		t.Fatal("expected actor outside the death zone to live")
	}
	if cause != CauseDeathZone {
		t.Fatalf("cause = %q, want %q", cause, CauseDeathZone)
	}
}

func TestDeathDropsMask(t *testing.T) {
	e := newTestECS(t)
	p := addPlayer(e, "p", mathutil.NewVec3(5, 0, 5))
	EquipMask(e, p, cfg.Masks["hannya"])

	KillActor(e, p, CauseFell)
	if components.Mask.Get(p).Mask != nil {
		t.Fatal("expected mask dropped on death")
	}
	if got := components.Loadout.Get(p).Active; got != cfg.AttackSlash {
		t.Fatalf("expected slash after death, got %v", got)
	}
}

func TestRespawnSkipsOccupiedSpawn(t *testing.T) {
	e := newTestECS(t)
	arena := components.MustArena(e.World)
	arena.Spawns = []components.SpawnPoint{{X: 5, Z: 5}, {X: 15, Z: 5}}

	addPlayer(e, "blocker", mathutil.NewVec3(5, 0, 5))
	p := addPlayer(e, "p", mathutil.NewVec3(20, 0, 20))
	actor := components.Actor.Get(p)
	actor.Index = 0

	KillActor(e, p, CauseFell)
	RespawnActor(e, p)
	if got := actor.Transform.Position; got != mathutil.NewVec3(15, 0, 5) {
		t.Fatalf("expected the free spawn, got %v", got)
	}
}
