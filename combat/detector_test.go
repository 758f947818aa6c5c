package combat_test

import (
	"math"
	"testing"

	"github.com/automoto/maskbrawl/combat"
	"github.com/automoto/maskbrawl/combat/mocks"
	"github.com/automoto/maskbrawl/mathutil"
	"go.uber.org/mock/gomock"
)

func at(deg, dist float64) *combat.Target {
	r := deg * math.Pi / 180
	return &combat.Target{
		Name:      "t",
		Transform: &mathutil.Transform{Position: mathutil.NewVec3(math.Sin(r)*dist, 0, math.Cos(r)*dist)},
	}
}

func TestConeBoundary(t *testing.T) {
	tests := []struct {
		name      string
		deg       float64
		halfAngle float64
		want      bool
	}{
		{"dead ahead", 0, 1, true},
		{"on the edge", 45, 45, true},
		{"just outside", 46, 45, false},
		{"behind the side", 91, 90, false},
		{"wide cone edge", 90, 90, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := mocks.NewMockSpatialQuery(ctrl)
			target := at(tt.deg, 1)
			q.EXPECT().OverlapSphere(mathutil.Zero, 2.0).Return([]*combat.Target{target})

			d := combat.HitDetector{Query: q}
			hits := d.Cone(nil, mathutil.Zero, mathutil.Forward, 2, tt.halfAngle)
			if got := len(hits) == 1; got != tt.want {
				t.Fatalf("expected hit=%v, got %d hits", tt.want, len(hits))
			}
		})
	}
}

func TestConeSkipsSelfAndDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := mocks.NewMockSpatialQuery(ctrl)
	self := at(0, 0)
	enemy := at(10, 1.5)
	q.EXPECT().OverlapSphere(gomock.Any(), gomock.Any(), "player").
		Return([]*combat.Target{self, enemy, enemy, nil})

	d := combat.HitDetector{Query: q, Layers: []string{"player"}}
	hits := d.Cone(self, mathutil.Zero, mathutil.Forward, 2, 45)
	if len(hits) != 1 || hits[0].Target != enemy {
		t.Fatalf("expected exactly the enemy once, got %+v", hits)
	}
	if hits[0].Direction.Y != 0 {
		t.Fatalf("expected a ground-plane direction, got %+v", hits[0].Direction)
	}
}

func TestConeIgnoresHeightDifference(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := mocks.NewMockSpatialQuery(ctrl)
	above := &combat.Target{Transform: &mathutil.Transform{Position: mathutil.NewVec3(0, 1.5, 1)}}
	q.EXPECT().OverlapSphere(gomock.Any(), gomock.Any()).Return([]*combat.Target{above})

	hits := combat.HitDetector{Query: q}.Cone(nil, mathutil.Zero, mathutil.Forward, 2, 10)
	if len(hits) != 1 {
		t.Fatalf("expected elevated target in a narrow cone to be hit, got %d", len(hits))
	}
}
