package arena

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/lafriks/go-tiled"
)

var ErrNoSpawnPoints = errors.New("arena has no spawn points")

var (
	//go:embed all:levels
	levelFS embed.FS
)

// Default loads the arena shipped with the binary.
func Default() (*Layout, error) {
	return Load(levelFS, "levels/dojo.tmx")
}

// Load parses a TMX file into a layout. It takes an fs.FS so callers can
// pass the embedded levels or os.DirFS. One tile is one world unit.
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	box := func(o *tiled.Object) Box {
		return Box{X: o.X / tileW, Z: o.Y / tileH, W: o.Width / tileW, D: o.Height / tileH}
	}

	layout := &Layout{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: levelMap.Width,
		Depth: levelMap.Height,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				layout.Walls = append(layout.Walls, box(o))
			}
		case "Pits":
			for _, o := range og.Objects {
				layout.Pits = append(layout.Pits, box(o))
			}
		case "DeathZones":
			for _, o := range og.Objects {
				layout.DeathZones = append(layout.DeathZones, box(o))
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				layout.Spawns = append(layout.Spawns, SpawnPoint{
					X:     o.X / tileW,
					Z:     o.Y / tileH,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case "Hazards":
			for _, o := range og.Objects {
				h, err := parseHazard(o, box(o))
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: object %d: %w", tmxPath, o.ID, err)
				}
				layout.Hazards = append(layout.Hazards, h)
			}
		case "Props":
			for _, o := range og.Objects {
				mass := o.Properties.GetFloat("mass")
				if mass <= 0 {
					mass = config.Prop.Mass
				}
				layout.Props = append(layout.Props, Prop{
					Name: o.Name,
					X:    o.X / tileW,
					Z:    o.Y / tileH,
					Mass: mass,
				})
			}
		case "MaskSpawn":
			for _, o := range og.Objects {
				layout.MaskSpawns = append(layout.MaskSpawns, box(o))
				if masks := o.Properties.GetString("masks"); masks != "" {
					for _, m := range strings.Split(masks, ",") {
						layout.Masks = append(layout.Masks, strings.TrimSpace(m))
					}
				}
			}
		}
	}

	if len(layout.Spawns) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawnPoints)
	}

	// Sort spawns by index, then left to right, for consistent assignment
	sort.SliceStable(layout.Spawns, func(i, j int) bool {
		a, b := layout.Spawns[i], layout.Spawns[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.X < b.X
	})

	return layout, nil
}

func objectKind(o *tiled.Object) string {
	kind := o.Class
	if kind == "" {
		kind = o.Type //nolint:staticcheck // TMX uses type= attribute
	}
	if kind == "" {
		kind = o.Properties.GetString("kind")
	}
	return strings.ToLower(kind)
}

func parseHazard(o *tiled.Object, b Box) (Hazard, error) {
	h := Hazard{Kind: HazardKind(objectKind(o)), Box: b}
	p := o.Properties

	switch h.Kind {
	case HazardFan:
		h.Fan = config.Hazards.Fan
		overrideFloat(p, "force", &h.Fan.Force)
		overrideFloat(p, "maxFloatHeight", &h.Fan.MaxFloatHeight)
		if len(p.Get("startOn")) > 0 {
			h.Fan.StartOn = p.GetBool("startOn")
		}
		h.Direction = mathutil.NewVec3(p.GetFloat("dirX"), p.GetFloat("dirY"), p.GetFloat("dirZ"))
		if h.Direction.IsZero() {
			h.Direction = mathutil.Up
		}
	case HazardRoller:
		h.Roller = config.Hazards.Roller
		overrideFloat(p, "pushForce", &h.Roller.PushForce)
		overrideFloat(p, "upwardForce", &h.Roller.UpwardForce)
		overrideFloat(p, "rotateSpeed", &h.Roller.RotateSpeed)
		h.Axis = mathutil.NewVec3(1, 0, 0)
		if strings.EqualFold(p.GetString("axis"), "z") {
			h.Axis = mathutil.NewVec3(0, 0, 1)
		}
	case HazardBarrel:
		h.Barrel = config.Hazards.Barrel
		overrideFloat(p, "health", &h.Barrel.Health)
		overrideFloat(p, "respawnDelay", &h.Barrel.RespawnDelay)
		overrideFloat(p, "radius", &h.Barrel.Explosion.Radius)
		overrideFloat(p, "force", &h.Barrel.Explosion.Force)
		overrideFloat(p, "damage", &h.Barrel.Explosion.Damage)
	default:
		return h, fmt.Errorf("unknown hazard kind %q", h.Kind)
	}
	return h, nil
}

// overrideFloat replaces *dst with the named property when it is present.
func overrideFloat(p tiled.Properties, name string, dst *float64) {
	if len(p.Get(name)) == 0 {
		return
	}
	*dst = p.GetFloat(name)
}
