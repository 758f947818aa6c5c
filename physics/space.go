// Package physics is a minimal arena physics layer over resolv. The ground
// plane (X, Z) maps onto resolv's 2D space; height is handled analytically
// with a flat floor at Y=0 that is missing over pits.
package physics

import (
	"math"
	"sort"

	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/tags"
	"github.com/solarlune/resolv"
)

// PixelsPerUnit is the resolv resolution of one world unit. resolv rounds
// cell bounds to whole pixels.
const PixelsPerUnit = 16

// Space is the collision world. Every object's Data is the *combat.Target it
// belongs to, or nil for pure geometry.
type Space struct {
	*resolv.Space
	Width, Depth float64
}

func NewSpace(width, depth, cellSize int) *Space {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Space{
		Space: resolv.NewSpace(width*PixelsPerUnit, depth*PixelsPerUnit, cellSize*PixelsPerUnit, cellSize*PixelsPerUnit),
		Width: float64(width),
		Depth: float64(depth),
	}
}

// AddBox adds an axis-aligned box covering [x, x+w] by [z, z+d] in world units.
func (s *Space) AddBox(x, z, w, d float64, data any, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x*PixelsPerUnit, z*PixelsPerUnit, w*PixelsPerUnit, d*PixelsPerUnit, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
	obj.Data = data
	s.Add(obj)
	return obj
}

// Bounds returns an object's box in world units.
func Bounds(obj *resolv.Object) (x, z, w, d float64) {
	return obj.X / PixelsPerUnit, obj.Y / PixelsPerUnit, obj.W / PixelsPerUnit, obj.H / PixelsPerUnit
}

// AddFootprint adds a square footprint of the given radius centered on p.
func (s *Space) AddFootprint(p mathutil.Vec3, radius float64, data any, tags ...string) *resolv.Object {
	return s.AddBox(p.X-radius, p.Z-radius, radius*2, radius*2, data, tags...)
}

// Track recenters a footprint on p.
func Track(obj *resolv.Object, p mathutil.Vec3) {
	obj.X = p.X*PixelsPerUnit - obj.W/2
	obj.Y = p.Z*PixelsPerUnit - obj.H/2
	obj.Update()
}

// probe returns the broad-phase candidates for a box in world units. The
// probe is padded by a pixel so edge contact is never lost to rounding.
func (s *Space) probe(x, z, w, d float64, layers []string) []*resolv.Object {
	obj := resolv.NewObject(x*PixelsPerUnit-1, z*PixelsPerUnit-1, w*PixelsPerUnit+2, d*PixelsPerUnit+2)
	s.Add(obj)
	defer s.Remove(obj)

	check := obj.Check(0, 0, layers...)
	if check == nil {
		return nil
	}
	return check.Objects
}

// OverlapSphere returns the targets within r of origin: the footprint must
// meet the circle on the ground plane and the target may sit at most r above
// or below origin. Geometry without a target is skipped.
func (s *Space) OverlapSphere(origin mathutil.Vec3, r float64, layers ...string) []*combat.Target {
	return s.overlap(origin, r, r, layers)
}

// OverlapColumn is OverlapSphere without the height limit. Hazard areas use
// it for everything above or below their footprint.
func (s *Space) OverlapColumn(origin mathutil.Vec3, r float64, layers ...string) []*combat.Target {
	return s.overlap(origin, r, math.Inf(1), layers)
}

func (s *Space) overlap(origin mathutil.Vec3, r, height float64, layers []string) []*combat.Target {
	if r <= 0 {
		return nil
	}
	var out []*combat.Target
	for _, obj := range s.probe(origin.X-r, origin.Z-r, r*2, r*2, layers) {
		t, ok := obj.Data.(*combat.Target)
		if !ok || t == nil {
			continue
		}
		if t.Transform != nil && math.Abs(t.Position().Y-origin.Y) > height {
			continue
		}
		if circleHitsBox(origin.X, origin.Z, r, obj) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position().Distance(origin) < out[j].Position().Distance(origin)
	})
	return out
}

// Raycast finds the nearest object with one of the layers along the ground
// projection of the ray.
func (s *Space) Raycast(origin, direction mathutil.Vec3, maxDistance float64, layers ...string) (combat.RayHit, bool) {
	dir := direction.FlatNormalized()
	if dir.IsZero() || maxDistance <= 0 {
		return combat.RayHit{}, false
	}

	best := combat.RayHit{Distance: math.Inf(1)}
	found := false
	for _, obj := range s.Objects() {
		if len(layers) > 0 && !obj.HasTags(layers...) {
			continue
		}
		d, ok := rayHitsBox(origin.X, origin.Z, dir.X, dir.Z, obj)
		if !ok || d > maxDistance || d >= best.Distance {
			continue
		}
		t, _ := obj.Data.(*combat.Target)
		best = combat.RayHit{Target: t, Point: origin.Add(dir.Scale(d)), Distance: d}
		found = true
	}
	return best, found
}

// CheckBox reports whether a box overlaps anything on the layers. Rotated
// boxes are tested by their axis-aligned bounds.
func (s *Space) CheckBox(center, halfExtents mathutil.Vec3, yaw float64, layers ...string) bool {
	rad := yaw * math.Pi / 180
	cos, sin := math.Abs(math.Cos(rad)), math.Abs(math.Sin(rad))
	ex := cos*halfExtents.X + sin*halfExtents.Z
	ez := sin*halfExtents.X + cos*halfExtents.Z

	for _, obj := range s.probe(center.X-ex, center.Z-ez, ex*2, ez*2, layers) {
		if boxesOverlap(center.X-ex, center.Z-ez, ex*2, ez*2, obj) {
			return true
		}
	}
	return false
}

// PointIn reports whether p lies inside any object with one of the layers.
func (s *Space) PointIn(p mathutil.Vec3, layers ...string) bool {
	const e = 0.01
	for _, obj := range s.probe(p.X-e, p.Z-e, e*2, e*2, layers) {
		x, z, w, d := Bounds(obj)
		if p.X >= x && p.X <= x+w && p.Z >= z && p.Z <= z+d {
			return true
		}
	}
	return false
}

// HasFloor reports whether there is ground under p.
func (s *Space) HasFloor(p mathutil.Vec3) bool {
	return !s.PointIn(p, tags.ResolvPit)
}

// Slide moves a footprint of the given radius from p by delta on the ground
// plane, one axis at a time, stopping at solid boxes. It reports which axes
// were blocked.
func (s *Space) Slide(self *resolv.Object, p mathutil.Vec3, delta mathutil.Vec3, radius float64) (mathutil.Vec3, bool, bool) {
	blockedX, blockedZ := false, false
	if delta.X != 0 {
		next := p
		next.X += delta.X
		if s.solidAt(self, next, radius) {
			blockedX = true
		} else {
			p = next
		}
	}
	if delta.Z != 0 {
		next := p
		next.Z += delta.Z
		if s.solidAt(self, next, radius) {
			blockedZ = true
		} else {
			p = next
		}
	}
	return p, blockedX, blockedZ
}

func (s *Space) solidAt(self *resolv.Object, p mathutil.Vec3, radius float64) bool {
	x, z, w := p.X-radius, p.Z-radius, radius*2
	for _, obj := range s.probe(x, z, w, w, []string{tags.ResolvSolid}) {
		if obj == self {
			continue
		}
		if boxesOverlap(x, z, w, w, obj) {
			return true
		}
	}
	return false
}

func circleHitsBox(cx, cz, r float64, obj *resolv.Object) bool {
	x, z, w, d := Bounds(obj)
	nx := mathutil.ClampFloat(cx, x, x+w)
	nz := mathutil.ClampFloat(cz, z, z+d)
	dx, dz := cx-nx, cz-nz
	return dx*dx+dz*dz <= r*r
}

func boxesOverlap(x, z, w, d float64, obj *resolv.Object) bool {
	ox, oz, ow, od := Bounds(obj)
	return x < ox+ow && x+w > ox && z < oz+od && z+d > oz
}

// rayHitsBox is the slab test. A ray starting inside the box hits at 0.
func rayHitsBox(ox, oz, dx, dz float64, obj *resolv.Object) (float64, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	slab := func(o, d, lo, hi float64) bool {
		if d == 0 {
			return o >= lo && o <= hi
		}
		t1, t2 := (lo-o)/d, (hi-o)/d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		return tmin <= tmax
	}
	bx, bz, bw, bd := Bounds(obj)
	if !slab(ox, dx, bx, bx+bw) || !slab(oz, dz, bz, bz+bd) {
		return 0, false
	}
	if tmax < 0 {
		return 0, false
	}
	return math.Max(tmin, 0), true
}
