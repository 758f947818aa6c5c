package combat

import (
	"github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
)

const firePurpose = "projectile-fire"

// ConeStrategy hits every target inside the profile's range and cone at the
// moment of resolution. Slash and bash share it; bash differs only in its
// profile.
type ConeStrategy struct{}

func (ConeStrategy) Resolve(e *Executor) []HitEvent {
	p := e.Profile()
	return e.Detector().Cone(e.Owner(), e.Origin(), e.Forward(), p.Range, p.HalfAngle())
}

// ThrownStrategy launches a fresh projectile along the owner's facing after
// the fire delay. The projectile strikes the first thing it touches and is
// despawned when it retires.
type ThrownStrategy struct {
	Spawner ProjectileSpawner
	Query   SpatialQuery
	Layers  []string
}

func (s *ThrownStrategy) Resolve(e *Executor) []HitEvent {
	e.Defer(e.Profile().Projectile.FireDelay, func() {
		s.fire(e)
	})
	return nil
}

func (s *ThrownStrategy) fire(e *Executor) {
	pc := e.Profile().Projectile
	p := NewProjectile(ProjectileOptions{
		Name:           e.Owner().String() + "/whack",
		Query:          s.Query,
		Layers:         s.Layers,
		Scheduler:      e.Scheduler(),
		Radius:         pc.Radius,
		Lifetime:       pc.Lifetime,
		LingerAfterHit: pc.LingerAfterHit,
	})
	p.Position = e.Origin()
	p.OnContact = func(p *Projectile, c Contact) {
		to := c.Target.Position().Sub(p.Position)
		e.Strike(HitEvent{
			Attacker:  e.Owner(),
			Target:    c.Target,
			Direction: to.FlatNormalized(),
			Distance:  to.Length(),
		})
	}
	p.OnRetired = func(p *Projectile) {
		if s.Spawner != nil {
			s.Spawner.Despawn(p)
		}
	}
	if s.Spawner != nil {
		s.Spawner.Spawn(p)
	}
	p.Launch(e.Ignore(), e.Forward(), pc.Speed)
	e.Logger().Debug("projectile launched", "projectile", p.Name)
}

// AutoAimOptions configures an AutoAimStrategy.
type AutoAimOptions struct {
	Name           string
	Registry       ActorRegistry
	Spawner        ProjectileSpawner
	Query          SpatialQuery
	Layers         []string
	BlockingLayers []string
	Scheduler      *Scheduler
	Projectile     config.ProjectileConfig
}

// AutoAimStrategy owns a single reusable projectile. Each fire re-aims it at
// the actor most directly ahead of the owner, if one lies within the aim
// threshold, and launches it again. Firing while the projectile is still in
// flight does nothing.
type AutoAimStrategy struct {
	registry       ActorRegistry
	spawner        ProjectileSpawner
	query          SpatialQuery
	blockingLayers []string
	threshold      float64
	lineOfSight    bool
	projectile     *Projectile
	spawned        bool
}

func NewAutoAimStrategy(o AutoAimOptions) *AutoAimStrategy {
	return &AutoAimStrategy{
		registry:       o.Registry,
		spawner:        o.Spawner,
		query:          o.Query,
		blockingLayers: o.BlockingLayers,
		threshold:      o.Projectile.AimThreshold,
		lineOfSight:    o.Projectile.LineOfSight,
		projectile: NewProjectile(ProjectileOptions{
			Name:           o.Name,
			Query:          o.Query,
			Layers:         o.Layers,
			Scheduler:      o.Scheduler,
			Radius:         o.Projectile.Radius,
			Lifetime:       o.Projectile.Lifetime,
			LingerAfterHit: o.Projectile.LingerAfterHit,
		}),
	}
}

// Projectile returns the reusable instance.
func (s *AutoAimStrategy) Projectile() *Projectile {
	return s.projectile
}

func (s *AutoAimStrategy) Resolve(e *Executor) []HitEvent {
	e.Defer(e.Profile().Projectile.FireDelay, func() {
		s.fire(e)
	})
	return nil
}

func (s *AutoAimStrategy) fire(e *Executor) {
	p := s.projectile
	if p.Active() {
		e.Logger().Debug("blast still in flight")
		return
	}
	if !s.spawned && s.spawner != nil {
		s.spawner.Spawn(p)
		s.spawned = true
	}

	p.Position = e.Origin()
	p.OnContact = func(p *Projectile, c Contact) {
		to := c.Target.Position().Sub(e.Origin())
		e.Strike(HitEvent{
			Attacker:  e.Owner(),
			Target:    c.Target,
			Direction: to.FlatNormalized(),
			Distance:  to.Length(),
		})
	}
	p.Launch(e.Ignore(), s.Aim(e.Owner(), e.Origin(), e.Forward()), e.Profile().Projectile.Speed)
}

// Aim picks the launch direction: toward the registered actor with the
// highest dot product against forward, provided it beats the threshold,
// otherwise straight ahead.
func (s *AutoAimStrategy) Aim(owner *Target, origin, forward mathutil.Vec3) mathutil.Vec3 {
	ahead := forward.FlatNormalized()
	if ahead.IsZero() {
		ahead = mathutil.Forward
	}
	if s.registry == nil || s.threshold <= 0 {
		return ahead
	}

	best := s.threshold
	var aim mathutil.Vec3
	for _, t := range s.registry.Actors() {
		if t == nil || t == owner {
			continue
		}
		to := t.Position().Sub(origin)
		dir := to.Normalized()
		if dir.IsZero() {
			continue
		}
		dot := ahead.Dot(dir)
		if dot <= best {
			continue
		}
		if s.lineOfSight && s.blocked(origin, dir, to.Length()) {
			continue
		}
		best = dot
		aim = dir.FlatNormalized()
	}
	if aim.IsZero() {
		return ahead
	}
	return aim
}

func (s *AutoAimStrategy) blocked(origin, dir mathutil.Vec3, dist float64) bool {
	if s.query == nil || len(s.blockingLayers) == 0 {
		return false
	}
	hit, ok := s.query.Raycast(origin, dir, dist, s.blockingLayers...)
	return ok && hit.Distance < dist
}
