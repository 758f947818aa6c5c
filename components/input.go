package components

import (
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/yohamta/donburi"
)

// InputData is one tick of intent. Jump and Attack are edge triggered and
// cleared once consumed.
type InputData struct {
	Move   mathutil.Vec3
	Jump   bool
	Attack bool
}

var Input = donburi.NewComponentType[InputData]()
