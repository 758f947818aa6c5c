package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

func (d BotDifficulty) String() string {
	switch d {
	case BotDifficultyEasy:
		return "easy"
	case BotDifficultyHard:
		return "hard"
	default:
		return "normal"
	}
}

// ParseBotDifficulty maps a flag value to a difficulty, defaulting to normal.
func ParseBotDifficulty(s string) BotDifficulty {
	switch s {
	case "easy":
		return BotDifficultyEasy
	case "hard":
		return BotDifficultyHard
	default:
		return BotDifficultyNormal
	}
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    float64 // seconds between re-evaluations
	AttackRange      float64 // distance to start attacking
	ChaseRange       float64 // distance to start chasing
	RetreatThreshold float64 // health fraction to start retreating
	AttackChance     float64 // chance per decision to swing when in range
	JumpChance       float64
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
	WanderRadius float64
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    0.5,
				AttackRange:      1.5,
				ChaseRange:       10,
				RetreatThreshold: 0.2,
				AttackChance:     0.4,
				JumpChance:       0.02,
			},
			BotDifficultyNormal: {
				ReactionDelay:    0.25,
				AttackRange:      1.8,
				ChaseRange:       14,
				RetreatThreshold: 0.3,
				AttackChance:     0.7,
				JumpChance:       0.05,
			},
			BotDifficultyHard: {
				ReactionDelay:    0.08,
				AttackRange:      2,
				ChaseRange:       20,
				RetreatThreshold: 0.15,
				AttackChance:     0.95,
				JumpChance:       0.05,
			},
		},
		WanderRadius: 6,
	}
}
