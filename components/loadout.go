package components

import (
	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/config"
	"github.com/yohamta/donburi"
)

// LoadoutData holds one executor per attack variant. Only Active fires.
type LoadoutData struct {
	Executors map[config.AttackKind]*combat.Executor
	Active    config.AttackKind
}

// Current returns the active executor, or nil when none is bound.
func (l *LoadoutData) Current() *combat.Executor {
	if l.Executors == nil {
		return nil
	}
	return l.Executors[l.Active]
}

var Loadout = donburi.NewComponentType[LoadoutData]()
