package components

import "github.com/yohamta/donburi"

// ZoneData marks a static trigger area such as a death zone.
type ZoneData struct {
	Area Rect
}

var Zone = donburi.NewComponentType[ZoneData]()
