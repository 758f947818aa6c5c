package components

import (
	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/motion"
	"github.com/automoto/maskbrawl/physics"
	"github.com/yohamta/donburi"
)

// ActorData is a player-controlled (or bot-controlled) brawler.
type ActorData struct {
	Name       string
	Index      int
	Target     *combat.Target
	Transform  *mathutil.Transform
	Motor      *motion.Motor
	Controller *physics.Controller
	Health     *combat.Health
	Alive      bool

	// LastAttacker is credited with the KO if this actor dies soon after.
	LastAttacker string
	LastHitAt    float64
}

var Actor = donburi.NewComponentType[ActorData]()
