package combat

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
)

const delayPurpose = "attack-delay"

// State is the phase of an Executor.
type State int

const (
	StateReady State = iota
	StateDelayPending
	StateOnCooldown
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateDelayPending:
		return "DelayPending"
	case StateOnCooldown:
		return "OnCooldown"
	default:
		return "Unknown"
	}
}

// Strategy resolves the hits of one attack variant. Immediate variants
// return their hits; projectile variants strike later through the executor.
type Strategy interface {
	Resolve(e *Executor) []HitEvent
}

// ExecutorOptions wires an Executor to its collaborators. Strategy is chosen
// from Profile.Kind when left nil.
type ExecutorOptions struct {
	Profile   config.AttackConfig
	Owner     *Target
	Scheduler *Scheduler
	Detector  HitDetector
	Animator  Animator
	Stun      StunGate
	Strategy  Strategy
	Logger    *slog.Logger

	// Used by projectile variants.
	Spawner          ProjectileSpawner
	Registry         ActorRegistry
	ProjectileLayers []string
	BlockingLayers   []string
}

// Executor runs one attack variant through delay and cooldown and applies
// damage and knockback to whatever its strategy hits.
type Executor struct {
	profile   config.AttackConfig
	owner     *Target
	ignore    []*Target
	sched     *Scheduler
	detector  HitDetector
	knockback KnockbackResolver
	anim      Animator
	stun      StunGate
	strategy  Strategy
	logger    *slog.Logger

	damageModifier     float64
	cooldownMultiplier float64
	lastAttackTime     float64
	pending            bool
	generation         uint64
	epoch              uint64
	launches           uint64
	deferred           map[TimerKey]struct{}

	// OnHit fires after damage and knockback were applied to a target.
	OnHit func(hit HitEvent, damage float64)
}

func NewExecutor(o ExecutorOptions) *Executor {
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}
	e := &Executor{
		profile:            o.Profile,
		owner:              o.Owner,
		ignore:             []*Target{o.Owner},
		sched:              o.Scheduler,
		detector:           o.Detector,
		knockback:          NewKnockbackResolver(o.Profile.Knockback, o.Profile.UpwardBias),
		anim:               o.Animator,
		stun:               o.Stun,
		strategy:           o.Strategy,
		logger:             logger.With("attack", o.Profile.Kind.String(), "owner", o.Owner.String()),
		damageModifier:     1,
		cooldownMultiplier: 1,
		lastAttackTime:     math.Inf(-1),
		deferred:           make(map[TimerKey]struct{}),
	}
	if e.strategy == nil {
		e.strategy = strategyFor(o)
	}
	return e
}

func strategyFor(o ExecutorOptions) Strategy {
	switch o.Profile.Kind {
	case config.AttackSlash, config.AttackBash:
		return ConeStrategy{}
	case config.AttackWhack:
		return &ThrownStrategy{Spawner: o.Spawner, Query: o.Detector.Query, Layers: o.ProjectileLayers}
	case config.AttackBlast:
		return NewAutoAimStrategy(AutoAimOptions{
			Registry:       o.Registry,
			Spawner:        o.Spawner,
			Query:          o.Detector.Query,
			Layers:         o.ProjectileLayers,
			BlockingLayers: o.BlockingLayers,
			Scheduler:      o.Scheduler,
			Projectile:     o.Profile.Projectile,
			Name:           o.Owner.String() + "/blast",
		})
	}
	return nil
}

// State derives the phase from the pending delay and the cooldown clock.
func (e *Executor) State() State {
	if e.pending {
		return StateDelayPending
	}
	if !e.CanAttack() {
		return StateOnCooldown
	}
	return StateReady
}

// CanAttack reports whether the cooldown has elapsed.
func (e *Executor) CanAttack() bool {
	return e.sched.Now() >= e.lastAttackTime+e.Cooldown()
}

func (e *Executor) Cooldown() float64 {
	return e.profile.Cooldown * e.cooldownMultiplier
}

// CooldownRemaining returns the seconds until CanAttack turns true.
func (e *Executor) CooldownRemaining() float64 {
	return math.Max(0, e.lastAttackTime+e.Cooldown()-e.sched.Now())
}

// PerformAttack starts an attack. It is a silent no-op while stunned, during
// the wind-up delay, or on cooldown, and reports whether an attack started.
func (e *Executor) PerformAttack() bool {
	if e.stun != nil && e.stun.IsStunned() {
		return false
	}
	if e.State() != StateReady {
		return false
	}
	if e.strategy == nil {
		e.logger.Error("attack has no hit resolution bound")
		return false
	}

	e.lastAttackTime = e.sched.Now()
	if e.anim != nil {
		e.anim.Trigger(e.profile.Kind.String())
	}

	if e.profile.Delay <= 0 {
		e.resolve()
		return true
	}

	e.pending = true
	e.generation++
	gen := e.generation
	e.sched.After(TimerKey{Owner: e, Purpose: delayPurpose}, e.profile.Delay, func() {
		if gen != e.generation {
			return
		}
		e.pending = false
		e.resolve()
	})
	return true
}

// Cancel drops a pending wind-up and every queued launch without resolving
// them. Projectiles already in flight keep going. The cooldown stands.
func (e *Executor) Cancel() {
	if e.pending {
		e.pending = false
		e.generation++
		e.sched.Cancel(TimerKey{Owner: e, Purpose: delayPurpose})
	}
	e.epoch++
	for key := range e.deferred {
		e.sched.Cancel(key)
		delete(e.deferred, key)
	}
}

// Defer runs fn after delay unless Cancel is called first. Every call gets
// its own timer, so overlapping launches all fire.
func (e *Executor) Defer(delay float64, fn func()) {
	e.launches++
	key := TimerKey{Owner: e, Purpose: fmt.Sprintf("%s-%d", firePurpose, e.launches)}
	epoch := e.epoch
	e.deferred[key] = struct{}{}
	e.sched.After(key, delay, func() {
		delete(e.deferred, key)
		if epoch != e.epoch {
			return
		}
		fn()
	})
}

func (e *Executor) resolve() {
	hits := e.strategy.Resolve(e)
	for _, hit := range hits {
		e.Strike(hit)
	}
	if len(hits) > 0 {
		e.logger.Debug("attack resolved", "hits", len(hits))
	}
}

// Strike applies damage, then knockback, to hit.Target. Pull profiles push
// the target back toward the attacker.
func (e *Executor) Strike(hit HitEvent) {
	if hit.Target == nil {
		return
	}
	damage := e.Damage()
	if hit.Target.Health != nil {
		hit.Target.Health.TakeDamage(damage)
	}
	dir := hit.Direction
	if e.profile.Pull {
		dir = dir.Neg()
	}
	e.knockback.Apply(hit.Target, dir)
	if e.OnHit != nil {
		e.OnHit(hit, damage)
	}
}

// Damage is the base damage scaled by the current modifier.
func (e *Executor) Damage() float64 {
	return e.profile.Damage * e.damageModifier
}

// SetDamageModifier sets the damage multiplier. Negative values clamp to 0.
func (e *Executor) SetDamageModifier(m float64) {
	if !(m > 0) {
		m = 0
	}
	e.damageModifier = m
}

func (e *Executor) DamageModifier() float64 { return e.damageModifier }

// SetCooldownMultiplier scales the profile cooldown. Negative values clamp to 0.
func (e *Executor) SetCooldownMultiplier(m float64) {
	if !(m > 0) {
		m = 0
	}
	e.cooldownMultiplier = m
}

func (e *Executor) Profile() config.AttackConfig { return e.profile }
func (e *Executor) Owner() *Target               { return e.owner }
func (e *Executor) Scheduler() *Scheduler        { return e.sched }
func (e *Executor) Detector() HitDetector        { return e.detector }
func (e *Executor) Strategy() Strategy           { return e.strategy }
func (e *Executor) Logger() *slog.Logger         { return e.logger }

// Ignore is the set of targets this executor's projectiles pass through.
func (e *Executor) Ignore() []*Target { return e.ignore }

// Origin is the point attacks are measured from.
func (e *Executor) Origin() mathutil.Vec3 {
	return e.owner.Position()
}

// Forward is the owner's facing on the ground plane.
func (e *Executor) Forward() mathutil.Vec3 {
	if e.owner == nil || e.owner.Transform == nil {
		return mathutil.Forward
	}
	return e.owner.Transform.FlatForward()
}
