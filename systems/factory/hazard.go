package factory

import (
	"github.com/automoto/maskbrawl/archetypes"
	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/components"
	cfg "github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFan creates a wind zone over area blowing along direction. The fan
// itself sits at origin; force falls off with distance from it.
func CreateFan(ecs *ecs.ECS, area components.Rect, origin, direction mathutil.Vec3, c cfg.FanConfig) *donburi.Entry {
	fan := archetypes.Fan.Spawn(ecs)

	dir := direction.Normalized()
	if dir.IsZero() {
		dir = mathutil.Up
	}
	data := components.FanData{
		Area:      area,
		Origin:    origin,
		Direction: dir,
		On:        c.StartOn,
		Config:    c,
		Slowed:    make(map[*combat.Target]bool),
	}
	if c.StartOn {
		data.BladeSpeed = c.BladeSpeed
	}
	components.Fan.SetValue(fan, data)

	scheduleFanToggle(ecs, fan)
	return fan
}

// scheduleFanToggle flips the fan after a random on or off period.
func scheduleFanToggle(ecs *ecs.ECS, fan *donburi.Entry) {
	arena := components.MustArena(ecs.World)
	f := components.Fan.Get(fan)

	lo, hi := f.Config.MinOffTime, f.Config.MaxOffTime
	if f.On {
		lo, hi = f.Config.MinOnTime, f.Config.MaxOnTime
	}
	wait := lo
	if hi > lo {
		wait = lo + arena.Rand.Float64()*(hi-lo)
	}

	entity := fan.Entity()
	arena.Scheduler.After(combat.TimerKey{Owner: entity, Purpose: "fan-toggle"}, wait, func() {
		if !ecs.World.Valid(entity) {
			return
		}
		entry := ecs.World.Entry(entity)
		SetFan(entry, !components.Fan.Get(entry).On)
		scheduleFanToggle(ecs, entry)
	})
}

// SetFan switches a fan and starts its blade ramp toward the new speed.
func SetFan(fan *donburi.Entry, on bool) {
	f := components.Fan.Get(fan)
	if f.On == on {
		return
	}
	f.On = on
	target := 0.0
	if on {
		target = f.Config.BladeSpeed
	}
	f.Blade = NewBladeRamp(f.BladeSpeed, target, f.Config.BladeAcceleration)
}

// CreateRoller creates a spinning drum across area, turning about axis.
func CreateRoller(ecs *ecs.ECS, area components.Rect, axis mathutil.Vec3, c cfg.RollerConfig) *donburi.Entry {
	arena := components.MustArena(ecs.World)
	roller := archetypes.Roller.Spawn(ecs)

	a := axis.Flat().Normalized()
	if a.IsZero() {
		a = mathutil.NewVec3(1, 0, 0)
	}
	components.Roller.SetValue(roller, components.RollerData{
		Area:   area,
		Center: area.Center().Add(mathutil.NewVec3(0, -c.Radius, 0)),
		Axis:   a,
		Config: c,
	})
	arena.Space.AddBox(area.X, area.Z, area.W, area.D, roller, tags.ResolvRoller, tags.ResolvHazard)
	return roller
}
