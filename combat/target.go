package combat

import "github.com/automoto/maskbrawl/mathutil"

// Target is anything an attack or hazard can touch. Capabilities are
// resolved once when the owner is built; a nil field means the capability
// is absent and the matching effect is skipped.
type Target struct {
	Name      string
	Transform *mathutil.Transform
	Health    Damageable
	Body      PhysicsBody
	Receiver  KnockbackReceiver
	Movement  SpeedModifiable

	// Data lets the owning world map a target back to its entity.
	Data any
}

// Position returns the target's current world position.
func (t *Target) Position() mathutil.Vec3 {
	if t == nil || t.Transform == nil {
		return mathutil.Zero
	}
	return t.Transform.Position
}

func (t *Target) String() string {
	if t == nil {
		return "<nil>"
	}
	if t.Name == "" {
		return "target"
	}
	return t.Name
}
