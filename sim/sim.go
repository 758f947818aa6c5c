// Package sim owns a running arena: the donburi world, its ordered systems
// and a command queue that lets other goroutines drive it safely.
package sim

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/automoto/maskbrawl/arena"
	"github.com/automoto/maskbrawl/components"
	cfg "github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/automoto/maskbrawl/systems"
	"github.com/automoto/maskbrawl/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ErrUnknownActor = errors.New("unknown actor")
	ErrDuplicate    = errors.New("actor already exists")
	ErrUnknownMask  = errors.New("unknown mask")
)

type Options struct {
	Layout   *arena.Layout
	Seed     int64
	TickRate int
	Logger   *slog.Logger
}

// Command runs on the simulation goroutine between ticks.
type Command func(s *Sim)

type Sim struct {
	id     string
	ecs    *ecs.ECS
	dt     float64
	logger *slog.Logger
	actors map[string]*donburi.Entry

	mu       sync.Mutex
	commands []Command
}

// New builds a world from the layout and registers the systems in tick order.
func New(o Options) (*Sim, error) {
	if o.Layout == nil {
		return nil, errors.New("sim: nil layout")
	}
	tickRate := o.TickRate
	if tickRate <= 0 {
		tickRate = cfg.Sim.TickRate
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Sim{
		id:     uuid.NewString(),
		dt:     1 / float64(tickRate),
		actors: make(map[string]*donburi.Entry),
	}
	s.logger = logger.With("match", s.id)

	world := donburi.NewWorld()
	s.ecs = ecs.NewECS(world)

	factory.CreateArena(s.ecs, factory.ArenaOptions{
		Width:    o.Layout.Width,
		Depth:    o.Layout.Depth,
		CellSize: cfg.Arena.CellSize,
		Seed:     o.Seed,
		Logger:   s.logger,
	})
	components.MustArena(world).DT = s.dt
	if err := Build(s.ecs, o.Layout); err != nil {
		return nil, fmt.Errorf("sim: build %s: %w", o.Layout.Name, err)
	}

	systems.SubscribeScoreboard(world)
	systems.SubscribeCombatLog(world, s.logger)

	s.ecs.AddSystem(systems.AdvanceClock)
	s.ecs.AddSystem(systems.UpdateBots)
	s.ecs.AddSystem(systems.UpdateInput)
	s.ecs.AddSystem(systems.UpdateFans)
	s.ecs.AddSystem(systems.UpdateRollers)
	s.ecs.AddSystem(systems.UpdateActors)
	s.ecs.AddSystem(systems.UpdatePhysics)
	s.ecs.AddSystem(systems.UpdateProjectiles)
	s.ecs.AddSystem(systems.UpdateBarrels)
	s.ecs.AddSystem(systems.UpdateDeaths)
	s.ecs.AddSystem(systems.UpdateMaskSpawners)
	s.ecs.AddSystem(systems.UpdateMaskPickups)
	s.ecs.AddSystem(systems.ProcessEvents)

	s.logger.Info("arena ready", "arena", o.Layout.Name, "tickRate", tickRate)
	return s, nil
}

func (s *Sim) ID() string           { return s.id }
func (s *Sim) ECS() *ecs.ECS        { return s.ecs }
func (s *Sim) World() donburi.World { return s.ecs.World }
func (s *Sim) DT() float64          { return s.dt }

// Now is the simulation time in seconds.
func (s *Sim) Now() float64 {
	return components.MustArena(s.ecs.World).Scheduler.Now()
}

// Enqueue schedules cmd to run before the next tick. Safe for concurrent use.
func (s *Sim) Enqueue(cmd Command) {
	s.mu.Lock()
	s.commands = append(s.commands, cmd)
	s.mu.Unlock()
}

// ProcessCommands runs everything queued since the last call.
func (s *Sim) ProcessCommands() {
	s.mu.Lock()
	cmds := s.commands
	s.commands = nil
	s.mu.Unlock()

	for _, cmd := range cmds {
		cmd(s)
	}
}

// Step processes queued commands and advances the world by one tick.
func (s *Sim) Step() {
	s.ProcessCommands()
	s.ecs.Update()
}

// Run advances the world by n ticks.
func (s *Sim) Run(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

// AddPlayer spawns an actor at the next spawn point.
func (s *Sim) AddPlayer(name string, bot bool, difficulty cfg.BotDifficulty) (*donburi.Entry, error) {
	if _, ok := s.actors[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	a := components.MustArena(s.ecs.World)
	index := len(s.actors)
	spawn := mathutil.NewVec3(a.Space.Width/2, 0, a.Space.Depth/2)
	if n := len(a.Spawns); n > 0 {
		p := a.Spawns[index%n]
		spawn = mathutil.NewVec3(p.X, 0, p.Z)
	}

	entry := factory.CreatePlayer(s.ecs, factory.PlayerOptions{
		Name:       name,
		Index:      index,
		Spawn:      spawn,
		Bot:        bot,
		Difficulty: difficulty,
	})
	s.actors[name] = entry
	components.Scoreboard.Get(components.Scoreboard.MustFirst(s.ecs.World)).Get(name)
	return entry, nil
}

// Actor returns the entry of a named actor.
func (s *Sim) Actor(name string) (*donburi.Entry, error) {
	entry, ok := s.actors[name]
	if !ok || !entry.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownActor, name)
	}
	return entry, nil
}

// SetInput replaces an actor's intent for the next tick.
func (s *Sim) SetInput(name string, in components.InputData) error {
	entry, err := s.Actor(name)
	if err != nil {
		return err
	}
	components.Input.SetValue(entry, in)
	return nil
}

// EquipMask puts a configured mask on an actor directly.
func (s *Sim) EquipMask(name, mask string) error {
	entry, err := s.Actor(name)
	if err != nil {
		return err
	}
	m, ok := cfg.Masks[mask]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMask, mask)
	}
	systems.EquipMask(s.ecs, entry, m)
	return nil
}

// Names returns the actor names in join order.
func (s *Sim) Names() []string {
	names := make([]string, 0, len(s.actors))
	for name := range s.actors {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return components.Actor.Get(s.actors[names[i]]).Index < components.Actor.Get(s.actors[names[j]]).Index
	})
	return names
}
