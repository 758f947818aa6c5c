package components

import (
	"github.com/automoto/maskbrawl/config"
	"github.com/yohamta/donburi"
)

// MaskData is the mask an actor is wearing. Mask is nil when bare-faced.
type MaskData struct {
	Mask *config.MaskConfig
}

func (m *MaskData) Name() string {
	if m.Mask == nil {
		return ""
	}
	return m.Mask.Name
}

var Mask = donburi.NewComponentType[MaskData]()
