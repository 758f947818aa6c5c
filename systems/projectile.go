package systems

import (
	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/components"
	"github.com/automoto/maskbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves every projectile in flight. A projectile that
// runs into a wall or leaves the arena retires without a contact.
func UpdateProjectiles(e *ecs.ECS) {
	arena := components.MustArena(e.World)

	var spent []*combat.Projectile
	components.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry).Projectile
		if !p.Active() {
			return
		}
		p.Step(arena.DT)
		if p.Struck() {
			return
		}
		pos := p.Position
		if pos.X < 0 || pos.Z < 0 || pos.X > arena.Space.Width || pos.Z > arena.Space.Depth ||
			arena.Space.PointIn(pos, tags.ResolvSolid) {
			spent = append(spent, p)
		}
	})

	// Retiring may despawn the entity, so it happens outside the query.
	for _, p := range spent {
		p.Retire()
	}
}
