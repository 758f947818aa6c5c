package components

import (
	"github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/yohamta/donburi"
)

type BotState int

const (
	BotIdle BotState = iota
	BotChase
	BotAttack
	BotRetreat
	BotWander
)

func (s BotState) String() string {
	switch s {
	case BotChase:
		return "chase"
	case BotAttack:
		return "attack"
	case BotRetreat:
		return "retreat"
	case BotWander:
		return "wander"
	default:
		return "idle"
	}
}

// BotData holds the decision state of an AI-driven actor.
type BotData struct {
	Difficulty    config.BotDifficulty
	State         BotState
	DecisionTimer float64 // seconds until the next re-think
	Target        string
	Distance      float64
	Wander        mathutil.Vec3
	// Path is the remaining route to the target when walls block sight.
	Path          []mathutil.Vec3
}

var Bot = donburi.NewComponentType[BotData]()
