package combat

import "github.com/automoto/maskbrawl/mathutil"

const (
	retirePurpose = "projectile-retire"
)

// Contact describes the first non-ignored thing a projectile touched.
type Contact struct {
	Target *Target
	Point  mathutil.Vec3
}

// ProjectileOptions configures a Projectile.
type ProjectileOptions struct {
	Name           string
	Query          SpatialQuery
	Layers         []string
	Scheduler      *Scheduler
	Radius         float64
	Lifetime       float64
	LingerAfterHit float64
}

// Projectile is a sphere travelling in a straight line. It reports at most
// one contact per launch and retires itself after a linger period following
// the contact, or after its lifetime if nothing was hit.
type Projectile struct {
	Name     string
	Position mathutil.Vec3
	Velocity mathutil.Vec3
	Radius   float64

	lifetime float64
	linger   float64
	query    SpatialQuery
	layers   []string
	sched    *Scheduler

	ignore     map[*Target]struct{}
	active     bool
	struck     bool
	generation uint64

	// OnContact is cleared on retirement; set it again before each launch.
	OnContact func(p *Projectile, c Contact)
	OnRetired func(p *Projectile)
}

func NewProjectile(o ProjectileOptions) *Projectile {
	return &Projectile{
		Name:     o.Name,
		Radius:   o.Radius,
		lifetime: o.Lifetime,
		linger:   o.LingerAfterHit,
		query:    o.Query,
		layers:   o.Layers,
		sched:    o.Scheduler,
	}
}

// Launch activates the projectile from its current position. Targets in
// ignore are never reported.
func (p *Projectile) Launch(ignore []*Target, direction mathutil.Vec3, speed float64) {
	p.ignore = make(map[*Target]struct{}, len(ignore))
	for _, t := range ignore {
		if t != nil {
			p.ignore[t] = struct{}{}
		}
	}
	p.Velocity = direction.Normalized().Scale(speed)
	p.active = true
	p.struck = false
	p.generation++
	if p.lifetime > 0 {
		p.scheduleRetire(p.lifetime)
	}
}

// Step advances the projectile by dt and checks for contact.
func (p *Projectile) Step(dt float64) {
	if !p.active {
		return
	}
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	if p.struck || p.query == nil {
		return
	}

	for _, c := range p.query.OverlapSphere(p.Position, p.Radius, p.layers...) {
		if c == nil {
			continue
		}
		if _, skip := p.ignore[c]; skip {
			continue
		}
		p.struck = true
		p.Velocity = mathutil.Zero
		if p.OnContact != nil {
			p.OnContact(p, Contact{Target: c, Point: p.Position})
		}
		p.scheduleRetire(p.linger)
		return
	}
}

// Retire deactivates the projectile and detaches its contact listener.
func (p *Projectile) Retire() {
	if !p.active {
		return
	}
	p.active = false
	p.generation++
	p.Velocity = mathutil.Zero
	p.OnContact = nil
	if p.sched != nil {
		p.sched.Cancel(TimerKey{Owner: p, Purpose: retirePurpose})
	}
	if p.OnRetired != nil {
		p.OnRetired(p)
	}
}

func (p *Projectile) Active() bool { return p.active }

// Struck reports whether the current flight has already hit something.
func (p *Projectile) Struck() bool { return p.struck }

func (p *Projectile) scheduleRetire(after float64) {
	if p.sched == nil {
		return
	}
	gen := p.generation
	p.sched.After(TimerKey{Owner: p, Purpose: retirePurpose}, after, func() {
		if p.generation != gen {
			return
		}
		p.Retire()
	})
}
