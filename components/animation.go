package components

import "github.com/yohamta/donburi"

// CueLog is a headless animator. It records the cues fired at an actor so
// systems, tests and logs can observe them.
type CueLog struct {
	Last   string
	Counts map[string]int
}

func NewCueLog() *CueLog {
	return &CueLog{Counts: make(map[string]int)}
}

func (c *CueLog) Trigger(cue string) {
	c.Last = cue
	c.Counts[cue]++
}

type AnimationData struct {
	*CueLog
	Stunned bool
}

var Animation = donburi.NewComponentType[AnimationData]()
