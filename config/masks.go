package config

import "sort"

// MaskConfig is a wearable power-up. Equipping one rewrites the wearer's
// health pool, movement and damage modifiers and picks its attack variant.
type MaskConfig struct {
	Name                string
	AttackKind          AttackKind
	MaxHealth           float64
	RegenRate           float64
	RegenWaitTime       float64
	SpeedMultiplier     float64
	DamageMultiplier    float64
	KnockbackResistance float64 // 0 = normal, 1 = immune
	CooldownMultiplier  float64
}

// MaskSpawnConfig controls the pickup spawner.
type MaskSpawnConfig struct {
	SpawnInterval    float64
	MaxSpawnCount    int
	SpawnSpaceRadius float64
	MaxAttempts      int
	PickupRadius     float64
}

// DefaultMaxHealth is restored when a mask is removed.
const DefaultMaxHealth = 100.0

var Masks map[string]MaskConfig
var MaskSpawn MaskSpawnConfig

func init() {
	Masks = map[string]MaskConfig{
		"oni": {
			Name:               "oni",
			AttackKind:         AttackSlash,
			MaxHealth:          100,
			RegenRate:          10,
			RegenWaitTime:      2,
			SpeedMultiplier:    1,
			DamageMultiplier:   1.5,
			CooldownMultiplier: 1,
		},
		"tengu": {
			Name:                "tengu",
			AttackKind:          AttackBlast,
			MaxHealth:           80,
			RegenRate:           8,
			RegenWaitTime:       3,
			SpeedMultiplier:     1.25,
			DamageMultiplier:    1,
			KnockbackResistance: 0,
			CooldownMultiplier:  0.8,
		},
		"hannya": {
			Name:                "hannya",
			AttackKind:          AttackBash,
			MaxHealth:           150,
			RegenRate:           5,
			RegenWaitTime:       4,
			SpeedMultiplier:     0.8,
			DamageMultiplier:    1.2,
			KnockbackResistance: 0.5,
			CooldownMultiplier:  1.2,
		},
		"kitsune": {
			Name:               "kitsune",
			AttackKind:         AttackWhack,
			MaxHealth:          90,
			RegenRate:          12,
			RegenWaitTime:      2,
			SpeedMultiplier:    1.1,
			DamageMultiplier:   1,
			CooldownMultiplier: 1,
		},
	}

	MaskSpawn = MaskSpawnConfig{
		SpawnInterval:    5,
		MaxSpawnCount:    4,
		SpawnSpaceRadius: 0.75,
		MaxAttempts:      16,
		PickupRadius:     0.6,
	}
}

// MaskNames returns the configured mask names in a stable order.
func MaskNames() []string {
	names := make([]string, 0, len(Masks))
	for name := range Masks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
