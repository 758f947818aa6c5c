package physics

import (
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/solarlune/resolv"
)

// Controller is a kinematic capsule. It goes exactly where it is told unless
// a wall or the floor is in the way.
type Controller struct {
	Space     *Space
	Object    *resolv.Object
	Transform *mathutil.Transform
	Radius    float64

	grounded bool
}

func NewController(space *Space, transform *mathutil.Transform, radius float64, data any, tags ...string) *Controller {
	return &Controller{
		Space:     space,
		Object:    space.AddFootprint(transform.Position, radius, data, tags...),
		Transform: transform,
		Radius:    radius,
	}
}

// Move applies delta. Horizontal motion slides along walls; vertical motion
// lands on the floor unless the controller is over a pit.
func (c *Controller) Move(delta mathutil.Vec3) {
	p, _, _ := c.Space.Slide(c.Object, c.Transform.Position, delta, c.Radius)
	p.Y += delta.Y

	c.grounded = false
	if p.Y <= 0 && c.Transform.Position.Y >= -floorSnap && c.Space.HasFloor(p) {
		p.Y = 0
		c.grounded = true
	}
	c.Transform.Position = p
	Track(c.Object, p)
}

func (c *Controller) IsGrounded() bool {
	return c.grounded
}

// Teleport places the controller at p without collision.
func (c *Controller) Teleport(p mathutil.Vec3) {
	c.Transform.Position = p
	c.grounded = false
	Track(c.Object, p)
}

// Detach removes the controller's footprint from the space.
func (c *Controller) Detach() {
	c.Space.Remove(c.Object)
}

// Attach re-adds a detached footprint.
func (c *Controller) Attach() {
	Track(c.Object, c.Transform.Position)
	c.Space.Add(c.Object)
}
