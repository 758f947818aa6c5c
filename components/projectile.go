package components

import (
	"github.com/automoto/maskbrawl/combat"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	*combat.Projectile
	Owner string
}

var Projectile = donburi.NewComponentType[ProjectileData]()
