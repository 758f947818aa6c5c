package combat

import "github.com/automoto/maskbrawl/mathutil"

// coneEpsilon absorbs rounding so a target exactly on the cone edge counts.
const coneEpsilon = 1e-6

// HitEvent is one resolved contact between an attack and a target.
type HitEvent struct {
	Attacker *Target
	Target   *Target
	// Direction is the unit ground-plane vector from the hit origin to the target.
	Direction mathutil.Vec3
	Distance  float64
}

// HitDetector selects targets inside a horizontal cone.
type HitDetector struct {
	Query  SpatialQuery
	Layers []string
}

// Cone returns each distinct target within rng of origin whose ground-plane
// bearing is at most halfAngle degrees off forward. The attacker is never
// returned. A target directly above or below origin has no bearing and is
// treated as dead ahead.
func (d HitDetector) Cone(attacker *Target, origin, forward mathutil.Vec3, rng, halfAngle float64) []HitEvent {
	if d.Query == nil || rng <= 0 || halfAngle < 0 {
		return nil
	}
	candidates := d.Query.OverlapSphere(origin, rng, d.Layers...)
	if len(candidates) == 0 {
		return nil
	}

	ahead := forward.FlatNormalized()
	seen := make(map[*Target]struct{}, len(candidates))
	var hits []HitEvent
	for _, c := range candidates {
		if c == nil || c == attacker {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}

		to := c.Position().Sub(origin)
		bearing := to.FlatNormalized()
		if !bearing.IsZero() && mathutil.AngleDeg(ahead, bearing) > halfAngle+coneEpsilon {
			continue
		}
		hits = append(hits, HitEvent{
			Attacker:  attacker,
			Target:    c,
			Direction: bearing,
			Distance:  to.Length(),
		})
	}
	return hits
}
