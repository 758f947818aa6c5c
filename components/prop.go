package components

import (
	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/physics"
	"github.com/yohamta/donburi"
)

// PropData is a dynamic object pushed around by attacks and hazards.
// Health is nil for indestructible props.
type PropData struct {
	Target *combat.Target
	Body   *physics.RigidBody
	Health *combat.Health
}

var Prop = donburi.NewComponentType[PropData]()
