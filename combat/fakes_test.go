package combat_test

import (
	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
)

var testHealth = config.HealthConfig{
	MaxHealth:     100,
	RegenRate:     10,
	RegenWaitTime: 2,
	StunDuration:  2,
}

// sphereQuery treats every target as a vertical cylinder of the given radius.
type sphereQuery struct {
	targets []*combat.Target
	radius  float64
}

func (q *sphereQuery) OverlapSphere(origin mathutil.Vec3, r float64, _ ...string) []*combat.Target {
	var out []*combat.Target
	for _, t := range q.targets {
		if t.Position().Sub(origin).Flat().Length() <= r+q.radius {
			out = append(out, t)
		}
	}
	return out
}

func (q *sphereQuery) Raycast(mathutil.Vec3, mathutil.Vec3, float64, ...string) (combat.RayHit, bool) {
	return combat.RayHit{}, false
}

func (q *sphereQuery) CheckBox(mathutil.Vec3, mathutil.Vec3, float64, ...string) bool {
	return false
}

type spawner struct {
	live      []*combat.Projectile
	spawned   int
	despawned int
}

func (s *spawner) Spawn(p *combat.Projectile) {
	s.spawned++
	s.live = append(s.live, p)
}

func (s *spawner) Despawn(p *combat.Projectile) {
	s.despawned++
	for i, q := range s.live {
		if q == p {
			s.live = append(s.live[:i], s.live[i+1:]...)
			return
		}
	}
}

func (s *spawner) step(dt float64) {
	for _, p := range append([]*combat.Projectile(nil), s.live...) {
		p.Step(dt)
	}
}

type registry []*combat.Target

func (r registry) Actors() []*combat.Target { return r }

type stunGate bool

func (s stunGate) IsStunned() bool { return bool(s) }

type receiver struct {
	got []mathutil.Vec3
}

func (r *receiver) ApplyKnockback(v mathutil.Vec3) {
	r.got = append(r.got, v)
}

func newTarget(name string, pos mathutil.Vec3, clock combat.Clock) *combat.Target {
	return &combat.Target{
		Name:      name,
		Transform: &mathutil.Transform{Position: pos, Forward: mathutil.Forward},
		Health:    combat.NewHealth(testHealth, clock),
		Receiver:  &receiver{},
	}
}

// run advances the scheduler and steps every live projectile for d seconds.
func run(s *combat.Scheduler, sp *spawner, d float64) {
	const dt = 1.0 / 60
	for elapsed := 0.0; elapsed < d-1e-9; elapsed += dt {
		s.Advance(dt)
		if sp != nil {
			sp.step(dt)
		}
	}
}
