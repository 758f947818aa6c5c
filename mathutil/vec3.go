package mathutil

import "math"

// Vec3 is a world-space vector. Y is up; the arena floor is the X/Z plane.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Zero    = Vec3{}
	Up      = Vec3{Y: 1}
	Forward = Vec3{Z: 1}
)

func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Normalized returns the unit vector in the direction of v, or the zero
// vector when v is too short to have a direction.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l < 1e-9 {
		return Zero
	}
	return v.Scale(1 / l)
}

// Flat drops the vertical component.
func (v Vec3) Flat() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// FlatNormalized projects v onto the ground plane and normalizes it.
func (v Vec3) FlatNormalized() Vec3 {
	return v.Flat().Normalized()
}

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Lerp moves v toward o by t, clamped to [0, 1].
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	t = Clamp01(t)
	return v.Add(o.Sub(v).Scale(t))
}

// AngleDeg returns the unsigned angle between a and b in degrees. Zero-length
// inputs yield 0.
func AngleDeg(a, b Vec3) float64 {
	la, lb := a.Length(), b.Length()
	if la < 1e-9 || lb < 1e-9 {
		return 0
	}
	cos := ClampFloat(a.Dot(b)/(la*lb), -1, 1)
	return math.Acos(cos) * 180 / math.Pi
}

// Transform is an actor's pose: where it is and which way it faces.
type Transform struct {
	Position Vec3
	Forward  Vec3
}

// FlatForward returns the facing projected to the ground plane, defaulting to
// +Z when the stored facing has no horizontal component.
func (t Transform) FlatForward() Vec3 {
	f := t.Forward.FlatNormalized()
	if f.IsZero() {
		return Forward
	}
	return f
}
