package config

// AttackKind selects an attack variant. Its string form doubles as the
// animation cue fired when the attack starts.
type AttackKind int

const (
	AttackNone AttackKind = iota
	AttackSlash
	AttackBash
	AttackWhack
	AttackBlast
)

func (k AttackKind) String() string {
	switch k {
	case AttackSlash:
		return "Slash"
	case AttackBash:
		return "Bash"
	case AttackWhack:
		return "Whack"
	case AttackBlast:
		return "Blast"
	default:
		return "None"
	}
}

// ParseAttackKind maps a name such as "slash" or "Blast" to its kind.
func ParseAttackKind(name string) (AttackKind, bool) {
	switch name {
	case "slash", "Slash":
		return AttackSlash, true
	case "bash", "Bash":
		return AttackBash, true
	case "whack", "Whack":
		return AttackWhack, true
	case "blast", "Blast":
		return AttackBlast, true
	}
	return AttackNone, false
}

// AllAttackKinds lists every variant a player loadout carries.
var AllAttackKinds = []AttackKind{AttackSlash, AttackBash, AttackWhack, AttackBlast}

// KnockbackConfig describes the push an attack imparts.
type KnockbackConfig struct {
	Force                float64 // horizontal component
	UpwardForce          float64 // vertical component
	ControllerMultiplier float64 // kinematic actors have no inherited momentum
}

// ProjectileConfig is used by the thrown and auto-aim variants.
type ProjectileConfig struct {
	Speed          float64
	FireDelay      float64 // seconds after the attack resolves before launch
	Lifetime       float64 // absolute lifetime without a hit
	LingerAfterHit float64
	Radius         float64
	Reusable       bool    // one instance toggled active/inactive instead of spawning
	AimThreshold   float64 // min dot(forward, toTarget) for auto-aim, 0 disables
	LineOfSight    bool    // auto-aim skips candidates behind solid geometry
}

// AttackConfig is the static profile of one attack variant.
type AttackConfig struct {
	Kind       AttackKind
	Damage     float64
	Range      float64
	ConeAngle  float64 // full cone width in degrees
	Cooldown   float64
	Delay      float64 // wind-up before hit resolution
	Knockback  KnockbackConfig
	UpwardBias float64 // multiplier on the upward knockback force
	Pull       bool    // invert knockback toward the attacker
	Projectile ProjectileConfig
}

// HalfAngle returns half the cone width.
func (a AttackConfig) HalfAngle() float64 {
	return a.ConeAngle / 2
}

// Attacks holds the default profile for each variant.
var Attacks map[AttackKind]AttackConfig

func init() {
	base := AttackConfig{
		Damage:    10,
		Range:     2,
		ConeAngle: 90,
		Cooldown:  0.5,
		Delay:     0,
		Knockback: KnockbackConfig{
			Force:                10,
			UpwardForce:          2,
			ControllerMultiplier: 5,
		},
		UpwardBias: 1,
	}

	slash := base
	slash.Kind = AttackSlash

	bash := base
	bash.Kind = AttackBash
	bash.Damage = 15
	bash.Cooldown = 0.8
	bash.UpwardBias = 5

	whack := base
	whack.Kind = AttackWhack
	whack.Delay = 0.2
	whack.Cooldown = 1.0
	whack.Projectile = ProjectileConfig{
		Speed:          10,
		FireDelay:      0.5,
		Lifetime:       5,
		LingerAfterHit: 0.1,
		Radius:         0.3,
	}

	blast := base
	blast.Kind = AttackBlast
	blast.Cooldown = 1.0
	blast.Pull = true
	blast.Projectile = ProjectileConfig{
		Speed:          10,
		FireDelay:      0.5,
		Lifetime:       2,
		LingerAfterHit: 0.1,
		Radius:         0.3,
		Reusable:       true,
		AimThreshold:   0.7, // cos ~45 degrees
		LineOfSight:    true,
	}

	Attacks = map[AttackKind]AttackConfig{
		AttackSlash: slash,
		AttackBash:  bash,
		AttackWhack: whack,
		AttackBlast: blast,
	}
}
