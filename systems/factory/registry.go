package factory

import (
	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/components"
	"github.com/automoto/maskbrawl/tags"
	"github.com/yohamta/donburi"
)

// Registry lists the live actors of a world. It replaces scene-wide object
// searches for auto-aim.
type Registry struct {
	world donburi.World
}

func NewRegistry(w donburi.World) *Registry {
	return &Registry{world: w}
}

func (r *Registry) Actors() []*combat.Target {
	var out []*combat.Target
	tags.Player.Each(r.world, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		if actor.Alive && actor.Target != nil {
			out = append(out, actor.Target)
		}
	})
	return out
}

// Find returns the entry of the actor with the given name.
func (r *Registry) Find(name string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Player.Each(r.world, func(e *donburi.Entry) {
		if found == nil && components.Actor.Get(e).Name == name {
			found = e
		}
	})
	return found, found != nil
}
