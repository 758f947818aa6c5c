package config

// HealthConfig contains the hit-point pool of an actor.
type HealthConfig struct {
	MaxHealth     float64
	RegenRate     float64 // units per second
	RegenWaitTime float64 // seconds without a hit before regen starts
	StunDuration  float64 // carried by the depleted notification
}

// MotorConfig contains movement values for kinematically controlled actors.
type MotorConfig struct {
	MoveSpeed           float64
	JumpHeight          float64
	Gravity             float64
	TurnRate            float64 // facing slerp rate per second
	KnockbackDecay      float64 // exponential decay rate per second
	ExternalDecay       float64 // push decay once contact ends
	GroundStickVelocity float64 // vertical velocity held while grounded
	MinForce            float64 // below this magnitude a decaying force is dropped
	KillHeight          float64 // falling below this kills the actor
	Radius              float64
	Height              float64
}

// BodyConfig contains rigid body integration values.
type BodyConfig struct {
	Mass    float64
	Drag    float64 // linear damping per second
	Gravity float64
	Radius  float64
}

// ExplosionConfig contains area-of-effect blast values.
type ExplosionConfig struct {
	Radius         float64
	Force          float64
	UpwardModifier float64
	Damage         float64
	// Kinematic actors have no body to push; they take this as knockback,
	// scaled by the same falloff as damage.
	CharacterKnockback   float64
	CharacterUpward      float64
	ControllerMultiplier float64
}

// BarrelConfig contains explosive barrel values.
type BarrelConfig struct {
	Health        float64
	FlashDuration float64 // fuse length after health depletes
	FlashSpeed    float64 // pulses per second
	RespawnDelay  float64
	Explosion     ExplosionConfig
	Body          BodyConfig
}

// FanConfig contains wind hazard values.
type FanConfig struct {
	Force                       float64
	MaxFloatHeight              float64 // falloff distance
	StartOn                     bool
	MinOnTime                   float64
	MaxOnTime                   float64
	MinOffTime                  float64
	MaxOffTime                  float64
	CharacterForceMultiplier    float64
	CharacterMovementMultiplier float64
	BladeSpeed                  float64 // degrees per second at full power
	BladeAcceleration           float64 // degrees per second squared
}

// RollerConfig contains rotating pusher values.
type RollerConfig struct {
	PushForce   float64
	UpwardForce float64 // keeps actors on top of the roller
	RotateSpeed float64 // signed; the sign picks the push direction
	Radius      float64 // drum radius; the top of the drum is flush with the floor
}

// HazardConfig groups all environmental hazard defaults.
type HazardConfig struct {
	Barrel BarrelConfig
	Fan    FanConfig
	Roller RollerConfig
}

// ArenaConfig contains spatial index values.
type ArenaConfig struct {
	Width       float64
	Depth       float64
	CellSize    int
	// NavCellSize is the resolution of the bot navigation grid.
	NavCellSize float64
}

// SimConfig contains simulation loop values.
type SimConfig struct {
	TickRate     int
	RespawnDelay float64
	Seed         int64
	// KillCreditWindow is how long after a hit a fall still counts as a KO.
	KillCreditWindow float64
}

// Global configuration instances
var Health HealthConfig
var Motor MotorConfig
var Prop BodyConfig
var Hazards HazardConfig
var Arena ArenaConfig
var Sim SimConfig

func init() {
	Health = HealthConfig{
		MaxHealth:     100,
		RegenRate:     10,
		RegenWaitTime: 2,
		StunDuration:  2,
	}

	Motor = MotorConfig{
		MoveSpeed:           5,
		JumpHeight:          1.5,
		Gravity:             -9.81,
		TurnRate:            10,
		KnockbackDecay:      8,
		ExternalDecay:       10,
		GroundStickVelocity: -2,
		MinForce:            0.01,
		KillHeight:          -10,
		Radius:              0.4,
		Height:              1.8,
	}

	Prop = BodyConfig{
		Mass:    1,
		Drag:    2,
		Gravity: -9.81,
		Radius:  0.5,
	}

	Hazards = HazardConfig{
		Barrel: BarrelConfig{
			Health:        10,
			FlashDuration: 3,
			FlashSpeed:    5,
			RespawnDelay:  5,
			Explosion: ExplosionConfig{
				Radius:               5,
				Force:                500,
				UpwardModifier:       1,
				Damage:               50,
				CharacterKnockback:   12,
				CharacterUpward:      3,
				ControllerMultiplier: 5,
			},
			Body: BodyConfig{
				Mass:    5,
				Drag:    2,
				Gravity: -9.81,
				Radius:  0.5,
			},
		},
		Fan: FanConfig{
			Force:                       15,
			MaxFloatHeight:              10,
			StartOn:                     false,
			MinOnTime:                   3,
			MaxOnTime:                   8,
			MinOffTime:                  2,
			MaxOffTime:                  6,
			CharacterForceMultiplier:    0.1,
			CharacterMovementMultiplier: 0.3,
			BladeSpeed:                  720,
			BladeAcceleration:           360,
		},
		Roller: RollerConfig{
			PushForce:   10,
			UpwardForce: 0.5,
			RotateSpeed: 10,
			Radius:      1,
		},
	}

	Arena = ArenaConfig{
		Width:       64,
		Depth:       64,
		CellSize:    2,
		NavCellSize: 1,
	}

	Sim = SimConfig{
		TickRate:         60,
		RespawnDelay:     3,
		Seed:             42,
		KillCreditWindow: 5,
	}
}
