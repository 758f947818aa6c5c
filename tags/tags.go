package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Bot        = donburi.NewTag().SetName("Bot")
	Wall       = donburi.NewTag().SetName("Wall")
	Pit        = donburi.NewTag().SetName("Pit")
	DeathZone  = donburi.NewTag().SetName("DeathZone")
	Projectile = donburi.NewTag().SetName("Projectile")
	Barrel     = donburi.NewTag().SetName("Barrel")
	Fan        = donburi.NewTag().SetName("Fan")
	Roller     = donburi.NewTag().SetName("Roller")
	MaskPickup = donburi.NewTag().SetName("MaskPickup")
)

// Resolv tags double as query layers.
const (
	ResolvSolid     = "solid"
	ResolvPit       = "pit"
	ResolvDeathZone = "deathzone"
	ResolvPlayer    = "Player"
	ResolvProp      = "prop"
	ResolvHazard    = "hazard"
	ResolvPickup    = "pickup"
	ResolvRoller    = "roller"
)

// Layer sets used by attacks.
var (
	// MeleeLayers are hit by cone attacks.
	MeleeLayers = []string{ResolvPlayer, ResolvProp}
	// ProjectileLayers stop projectiles.
	ProjectileLayers = []string{ResolvPlayer, ResolvProp, ResolvSolid}
	// BlockingLayers obstruct auto-aim line of sight.
	BlockingLayers = []string{ResolvSolid}
)
