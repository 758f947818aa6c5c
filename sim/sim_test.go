package sim

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/automoto/maskbrawl/arena"
	"github.com/automoto/maskbrawl/components"
	cfg "github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/mathutil"
	"github.com/yohamta/donburi"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testLayout() *arena.Layout {
	return &arena.Layout{
		Name:  "test",
		Width: 30,
		Depth: 20,
		Walls: []arena.Box{{X: 0, Z: 0, W: 30, D: 1}, {X: 14, Z: 5, W: 1, D: 10}},
		Pits:  []arena.Box{{X: 20, Z: 14, W: 3, D: 3}},
		Spawns: []arena.SpawnPoint{
			{X: 4, Z: 10, Index: 0},
			{X: 26, Z: 10, Index: 1},
		},
		Hazards: []arena.Hazard{
			{Kind: arena.HazardFan, Box: arena.Box{X: 4, Z: 14, W: 4, D: 4}, Direction: mathutil.NewVec3(1, 0, 0), Fan: cfg.Hazards.Fan},
			{Kind: arena.HazardRoller, Box: arena.Box{X: 20, Z: 2, W: 4, D: 2}, Axis: mathutil.NewVec3(1, 0, 0), Roller: cfg.Hazards.Roller},
			{Kind: arena.HazardBarrel, Box: arena.Box{X: 9, Z: 4, W: 1, D: 1}, Barrel: cfg.Hazards.Barrel},
		},
		Props:      []arena.Prop{{Name: "crate", X: 10, Z: 12, Mass: 3}},
		MaskSpawns: []arena.Box{{X: 8, Z: 6, W: 4, D: 4}},
		Masks:      []string{"oni"},
	}
}

func newTestSim(t *testing.T, seed int64) *Sim {
	t.Helper()
	s, err := New(Options{Layout: testLayout(), Seed: seed, TickRate: 60, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func count[T any](w donburi.World, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestNewBuildsLayout(t *testing.T) {
	s := newTestSim(t, 1)
	w := s.World()

	if got := count(w, components.Zone); got != 3 {
		t.Errorf("zones = %d, want 3", got)
	}
	if got := count(w, components.Fan); got != 1 {
		t.Errorf("fans = %d, want 1", got)
	}
	if got := count(w, components.Roller); got != 1 {
		t.Errorf("rollers = %d, want 1", got)
	}
	if got := count(w, components.Barrel); got != 1 {
		t.Errorf("barrels = %d, want 1", got)
	}
	if got := count(w, components.Prop); got != 2 {
		t.Errorf("props = %d, want 2 (crate and barrel)", got)
	}
	if got := count(w, components.MaskSpawner); got != 1 {
		t.Errorf("mask spawners = %d, want 1", got)
	}

	a := components.MustArena(w)
	if len(a.Spawns) != 2 {
		t.Errorf("spawns = %d, want 2", len(a.Spawns))
	}
	if a.Nav == nil || a.Nav.Walkable(mathutil.NewVec3(14.5, 0, 8)) {
		t.Error("expected nav grid with the wall blocked")
	}
	if a.DT != 1.0/60 {
		t.Errorf("dt = %v", a.DT)
	}
	if s.ID() == "" {
		t.Error("expected a match id")
	}
}

func TestNewRejectsNilLayout(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Fatal("expected error for a nil layout")
	}
}

func TestNewRejectsUnknownHazard(t *testing.T) {
	layout := testLayout()
	layout.Hazards = append(layout.Hazards, arena.Hazard{Kind: "volcano"})
	if _, err := New(Options{Layout: layout, Logger: quietLogger()}); err == nil {
		t.Fatal("expected error for an unknown hazard kind")
	}
}

func TestAddPlayerUsesSpawnPoints(t *testing.T) {
	s := newTestSim(t, 1)
	p1, err := s.AddPlayer("p1", false, cfg.BotDifficultyNormal)
	if err != nil {
		t.Fatal(err)
	}
	p2, _ := s.AddPlayer("p2", false, cfg.BotDifficultyNormal)

	if got := components.Actor.Get(p1).Transform.Position; got != mathutil.NewVec3(4, 0, 10) {
		t.Errorf("p1 at %v", got)
	}
	if got := components.Actor.Get(p2).Transform.Position; got != mathutil.NewVec3(26, 0, 10) {
		t.Errorf("p2 at %v", got)
	}
	if _, err := s.AddPlayer("p1", false, cfg.BotDifficultyNormal); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
	if got := s.Names(); !reflect.DeepEqual(got, []string{"p1", "p2"}) {
		t.Errorf("names = %v", got)
	}
}

func TestCommandsForUnknownActors(t *testing.T) {
	s := newTestSim(t, 1)
	if err := s.SetInput("ghost", components.InputData{}); !errors.Is(err, ErrUnknownActor) {
		t.Errorf("SetInput: expected ErrUnknownActor, got %v", err)
	}
	if err := s.EquipMask("ghost", "oni"); !errors.Is(err, ErrUnknownActor) {
		t.Errorf("EquipMask: expected ErrUnknownActor, got %v", err)
	}

	s.AddPlayer("p", false, cfg.BotDifficultyNormal)
	if err := s.EquipMask("p", "gorgon"); !errors.Is(err, ErrUnknownMask) {
		t.Errorf("expected ErrUnknownMask, got %v", err)
	}
	if err := s.EquipMask("p", "oni"); err != nil {
		t.Errorf("EquipMask: %v", err)
	}
}

func TestQueuedCommandsRunBeforeTick(t *testing.T) {
	s := newTestSim(t, 1)
	s.AddPlayer("p", false, cfg.BotDifficultyNormal)

	var cmdErr error
	s.Enqueue(func(s *Sim) {
		cmdErr = s.SetInput("p", components.InputData{Move: mathutil.NewVec3(0, 0, -1)})
	})
	s.Run(30)

	if cmdErr != nil {
		t.Fatalf("command failed: %v", cmdErr)
	}
	snap := s.Snapshot()
	if snap.Tick != 30 {
		t.Fatalf("tick = %d, want 30", snap.Tick)
	}
	if got := snap.Actors[0].Position.Z; got >= 10 {
		t.Fatalf("expected actor to walk toward -Z, z = %v", got)
	}
}

func TestSnapshotReportsActors(t *testing.T) {
	s := newTestSim(t, 1)
	s.AddPlayer("p", false, cfg.BotDifficultyNormal)
	if err := s.EquipMask("p", "oni"); err != nil {
		t.Fatal(err)
	}
	s.Step()

	snap := s.Snapshot()
	if len(snap.Actors) != 1 {
		t.Fatalf("actors = %d, want 1", len(snap.Actors))
	}
	a := snap.Actors[0]
	if a.Name != "p" || !a.Alive || a.Mask != "oni" || a.Attack != "Slash" || a.State != "Ready" {
		t.Fatalf("unexpected actor snapshot %+v", a)
	}
	if len(snap.Scores) != 1 || snap.Scores[0].Name != "p" {
		t.Fatalf("unexpected scores %+v", snap.Scores)
	}
	if snap.Match != s.ID() {
		t.Fatalf("match = %q, want %q", snap.Match, s.ID())
	}
}

func TestBotMatchIsDeterministic(t *testing.T) {
	play := func() Snapshot {
		s := newTestSim(t, 42)
		for _, name := range []string{"a", "b", "c"} {
			if _, err := s.AddPlayer(name, true, cfg.BotDifficultyHard); err != nil {
				t.Fatal(err)
			}
		}
		s.Run(600)
		return s.Snapshot()
	}

	first, second := play(), play()
	first.Match, second.Match = "", ""
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical matches for one seed:\n%+v\n%+v", first, second)
	}

	moved := false
	for i, a := range first.Actors {
		spawn := testLayout().Spawns[i%2]
		if a.Position.Distance(mathutil.NewVec3(spawn.X, 0, spawn.Z)) > 0.5 {
			moved = true
		}
	}
	if !moved {
		t.Fatal("expected bots to move")
	}
}

func TestGameLoopStops(t *testing.T) {
	s := newTestSim(t, 1)
	loop := NewGameLoop(s, 1000)
	ticks := 0
	loop.OnTick = func(*Sim) {
		ticks++
		if ticks == 5 {
			loop.Stop()
		}
	}
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ticks < 5 {
		t.Fatalf("ticks = %d, want at least 5", ticks)
	}
	loop.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewGameLoop(s, 1000).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
