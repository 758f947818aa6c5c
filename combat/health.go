package combat

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
)

var ErrInvalidHealthProperty = errors.New("invalid health property")

// Clock supplies the simulation time in seconds.
type Clock interface {
	Now() float64
}

// HealthProperties is a partial update; nil fields are left unchanged.
type HealthProperties struct {
	MaxHealth     *float64
	RegenRate     *float64
	RegenWaitTime *float64
}

// Value is a helper for building HealthProperties literals.
func Value(v float64) *float64 {
	return &v
}

// Health is a hit-point pool that regenerates after a quiet period.
type Health struct {
	clock        Clock
	current      float64
	max          float64
	regenRate    float64
	regenWait    float64
	stunDuration float64
	lastHit      float64

	// OnDamaged fires for every hit with the amount and the remaining health.
	OnDamaged func(amount, remaining float64)
	// OnDepleted fires once when health crosses to zero.
	OnDepleted func(stunDuration float64)
}

func NewHealth(cfg config.HealthConfig, clock Clock) *Health {
	max := cfg.MaxHealth
	if max <= 0 {
		max = config.DefaultMaxHealth
	}
	return &Health{
		clock:        clock,
		current:      max,
		max:          max,
		regenRate:    math.Max(0, cfg.RegenRate),
		regenWait:    math.Max(0, cfg.RegenWaitTime),
		stunDuration: cfg.StunDuration,
		lastHit:      math.Inf(-1),
	}
}

func (h *Health) TakeDamage(amount float64) {
	if amount < 0 || math.IsNaN(amount) {
		return
	}
	wasAlive := h.current > 0
	h.current -= amount
	if h.current <= 0 {
		h.current = 0
	}
	h.lastHit = h.clock.Now()

	if h.OnDamaged != nil {
		h.OnDamaged(amount, h.current)
	}
	if wasAlive && h.current == 0 && h.OnDepleted != nil {
		h.OnDepleted(h.stunDuration)
	}
}

func (h *Health) Heal(amount float64) {
	if amount <= 0 || math.IsNaN(amount) {
		return
	}
	h.current = math.Min(h.current+amount, h.max)
}

// SetProperties merges p into the pool. Current health keeps its fraction of
// the old maximum.
func (h *Health) SetProperties(p HealthProperties) error {
	if p.MaxHealth != nil && !(*p.MaxHealth > 0) {
		return fmt.Errorf("%w: max health %v", ErrInvalidHealthProperty, *p.MaxHealth)
	}
	if p.RegenRate != nil && !(*p.RegenRate >= 0) {
		return fmt.Errorf("%w: regen rate %v", ErrInvalidHealthProperty, *p.RegenRate)
	}
	if p.RegenWaitTime != nil && !(*p.RegenWaitTime >= 0) {
		return fmt.Errorf("%w: regen wait %v", ErrInvalidHealthProperty, *p.RegenWaitTime)
	}

	fraction := 1.0
	if h.max > 0 {
		fraction = h.current / h.max
	}
	if p.MaxHealth != nil {
		h.max = *p.MaxHealth
	}
	h.current = mathutil.ClampFloat(h.max*fraction, 0, h.max)

	if p.RegenRate != nil {
		h.regenRate = *p.RegenRate
	}
	if p.RegenWaitTime != nil {
		h.regenWait = *p.RegenWaitTime
	}
	return nil
}

// Tick regenerates health once regenWait seconds have passed since the last hit.
func (h *Health) Tick(dt float64) {
	if dt <= 0 || h.current >= h.max {
		return
	}
	if h.clock.Now()-h.lastHit < h.regenWait {
		return
	}
	h.current = math.Min(h.current+h.regenRate*dt, h.max)
}

// Reset refills the pool and forgets the last hit, as on respawn.
func (h *Health) Reset() {
	h.current = h.max
	h.lastHit = math.Inf(-1)
}

func (h *Health) CurrentHealth() float64 { return h.current }
func (h *Health) MaxHealth() float64     { return h.max }
func (h *Health) RegenRate() float64     { return h.regenRate }
func (h *Health) RegenWaitTime() float64 { return h.regenWait }
func (h *Health) LastHitTime() float64   { return h.lastHit }
func (h *Health) IsAlive() bool          { return h.current > 0 }

// Fraction returns current/max in [0, 1].
func (h *Health) Fraction() float64 {
	if h.max <= 0 {
		return 0
	}
	return h.current / h.max
}
