package components

import (
	"sort"

	"github.com/yohamta/donburi"
)

// Score tracks one actor's match statistics.
type Score struct {
	Name        string
	KOs         int
	Deaths      int
	DamageDealt float64
	Hits        int
}

// ScoreboardData is a singleton keyed by actor name.
type ScoreboardData struct {
	Scores map[string]*Score
}

func (s *ScoreboardData) Get(name string) *Score {
	if s.Scores == nil {
		s.Scores = make(map[string]*Score)
	}
	sc, ok := s.Scores[name]
	if !ok {
		sc = &Score{Name: name}
		s.Scores[name] = sc
	}
	return sc
}

// Ranked returns scores by KOs, then fewer deaths, then name.
func (s *ScoreboardData) Ranked() []Score {
	out := make([]Score, 0, len(s.Scores))
	for _, sc := range s.Scores {
		out = append(out, *sc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].KOs != out[j].KOs {
			return out[i].KOs > out[j].KOs
		}
		if out[i].Deaths != out[j].Deaths {
			return out[i].Deaths < out[j].Deaths
		}
		return out[i].Name < out[j].Name
	})
	return out
}

var Scoreboard = donburi.NewComponentType[ScoreboardData]()
