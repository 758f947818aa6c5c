package factory

import (
	"github.com/automoto/maskbrawl/archetypes"
	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ProjectileSpawner gives each launched projectile an entity so the
// projectile system can step it. It implements combat.ProjectileSpawner.
type ProjectileSpawner struct {
	ecs     *ecs.ECS
	owner   string
	entries map[*combat.Projectile]donburi.Entity
}

func NewProjectileSpawner(ecs *ecs.ECS, owner string) *ProjectileSpawner {
	return &ProjectileSpawner{
		ecs:     ecs,
		owner:   owner,
		entries: make(map[*combat.Projectile]donburi.Entity),
	}
}

func (s *ProjectileSpawner) Spawn(p *combat.Projectile) {
	if _, ok := s.entries[p]; ok {
		return
	}
	entry := archetypes.Projectile.Spawn(s.ecs)
	components.Projectile.SetValue(entry, components.ProjectileData{Projectile: p, Owner: s.owner})
	s.entries[p] = entry.Entity()
}

func (s *ProjectileSpawner) Despawn(p *combat.Projectile) {
	entity, ok := s.entries[p]
	if !ok {
		return
	}
	delete(s.entries, p)
	if s.ecs.World.Valid(entity) {
		s.ecs.World.Remove(entity)
	}
}

// Live returns the number of projectiles this spawner still owns.
func (s *ProjectileSpawner) Live() int {
	return len(s.entries)
}
