package combat_test

import (
	"errors"
	"testing"

	"github.com/automoto/maskbrawl/combat"
	"pgregory.net/rapid"
)

func TestHealthDepletedFiresOnce(t *testing.T) {
	s := combat.NewScheduler()
	h := combat.NewHealth(testHealth, s)

	depleted := 0
	var stun float64
	h.OnDepleted = func(d float64) {
		depleted++
		stun = d
	}

	h.TakeDamage(60)
	h.TakeDamage(60)
	h.TakeDamage(10)

	if h.CurrentHealth() != 0 {
		t.Fatalf("expected health clamped to 0, got %v", h.CurrentHealth())
	}
	if depleted != 1 {
		t.Fatalf("expected one depleted notification, got %d", depleted)
	}
	if stun != testHealth.StunDuration {
		t.Fatalf("expected stun duration %v, got %v", testHealth.StunDuration, stun)
	}
}

func TestHealthIgnoresNegativeDamage(t *testing.T) {
	h := combat.NewHealth(testHealth, combat.NewScheduler())
	h.TakeDamage(-25)
	if h.CurrentHealth() != 100 {
		t.Fatalf("expected 100, got %v", h.CurrentHealth())
	}
}

func TestHealthRegeneratesAfterWait(t *testing.T) {
	s := combat.NewScheduler()
	h := combat.NewHealth(testHealth, s)
	h.TakeDamage(100)

	s.Advance(1)
	h.Tick(1)
	if h.CurrentHealth() != 0 {
		t.Fatalf("expected no regen before wait, got %v", h.CurrentHealth())
	}

	s.Advance(1)
	h.Tick(0.5)
	if h.CurrentHealth() != 5 {
		t.Fatalf("expected 5 after half a second of regen, got %v", h.CurrentHealth())
	}

	h.TakeDamage(1)
	h.Tick(1)
	if h.CurrentHealth() != 4 {
		t.Fatalf("expected a fresh hit to pause regen, got %v", h.CurrentHealth())
	}
}

func TestHealthSetPropertiesKeepsFraction(t *testing.T) {
	h := combat.NewHealth(testHealth, combat.NewScheduler())
	h.TakeDamage(50)

	if err := h.SetProperties(combat.HealthProperties{MaxHealth: combat.Value(200)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.CurrentHealth() != 100 || h.MaxHealth() != 200 {
		t.Fatalf("expected 100/200, got %v/%v", h.CurrentHealth(), h.MaxHealth())
	}

	err := h.SetProperties(combat.HealthProperties{MaxHealth: combat.Value(0)})
	if !errors.Is(err, combat.ErrInvalidHealthProperty) {
		t.Fatalf("expected ErrInvalidHealthProperty, got %v", err)
	}
	if h.MaxHealth() != 200 {
		t.Fatalf("rejected update must not change max, got %v", h.MaxHealth())
	}
}

func TestHealthInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := combat.NewScheduler()
		h := combat.NewHealth(testHealth, s)
		depleted := 0
		h.OnDepleted = func(float64) { depleted++ }

		crossings := 0
		steps := rapid.IntRange(1, 50).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			before := h.CurrentHealth()
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				h.TakeDamage(rapid.Float64Range(-20, 80).Draw(t, "damage"))
			case 1:
				h.Heal(rapid.Float64Range(0, 50).Draw(t, "heal"))
			case 2:
				dt := rapid.Float64Range(0, 3).Draw(t, "dt")
				s.Advance(dt)
				h.Tick(dt)
			}
			if before > 0 && h.CurrentHealth() == 0 {
				crossings++
			}
			if h.CurrentHealth() < 0 || h.CurrentHealth() > h.MaxHealth() {
				t.Fatalf("health %v outside [0, %v]", h.CurrentHealth(), h.MaxHealth())
			}
		}
		if depleted != crossings {
			t.Fatalf("expected %d depleted notifications, got %d", crossings, depleted)
		}
	})
}
