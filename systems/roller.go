package systems

import (
	"math"

	"github.com/automoto/maskbrawl/components"
	cfg "github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRollers turns each drum and carries the actors standing on it along
// the direction of spin.
func UpdateRollers(e *ecs.ECS) {
	arena := components.MustArena(e.World)

	components.Roller.Each(e.World, func(entry *donburi.Entry) {
		roller := components.Roller.Get(entry)
		roller.Angle = math.Mod(roller.Angle+roller.Config.RotateSpeed*arena.DT, 360)

		reach := math.Hypot(roller.Area.W, roller.Area.D)/2 + cfg.Motor.Radius
		for _, t := range arena.Space.OverlapColumn(roller.Area.Center(), reach, tags.ResolvPlayer) {
			actor, ok := actorOf(t)
			if !ok || !actor.Alive || !touching(roller.Area, t.Position(), cfg.Motor.Radius) {
				continue
			}
			actor.Motor.SetExternalForce(RollerPush(roller, t.Position()))
		}
	})
}

// RollerPush is the push a roller gives something touching it at contact:
// tangent to the drum in the direction of spin, with a little lift.
func RollerPush(roller *components.RollerData, contact mathutil.Vec3) mathutil.Vec3 {
	c := roller.Config
	axis := roller.Axis
	if c.RotateSpeed < 0 {
		axis = axis.Neg()
	}

	toContact := contact.Sub(roller.Center)
	toContact = toContact.Sub(roller.Axis.Scale(toContact.Dot(roller.Axis)))

	push := axis.Cross(toContact.Normalized())
	push.Y += c.UpwardForce
	return push.Normalized().Scale(c.PushForce)
}

func touching(r components.Rect, p mathutil.Vec3, radius float64) bool {
	return p.X >= r.X-radius && p.X <= r.X+r.W+radius && p.Z >= r.Z-radius && p.Z <= r.Z+r.D+radius
}
