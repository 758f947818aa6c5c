package sim

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// GameLoop steps a Sim in real time at a fixed tick rate.
type GameLoop struct {
	sim      *Sim
	tickRate int
	logger   *slog.Logger
	stopOnce sync.Once
	stopChan chan struct{}

	// OnTick runs on the loop goroutine after every step.
	OnTick func(s *Sim)
}

func NewGameLoop(sim *Sim, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = int(1 / sim.DT())
	}
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		logger:   sim.logger,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called or ctx is done. It returns ctx.Err() in the
// latter case.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.logger.Info("game loop started", "tickRate", g.tickRate)

	for {
		select {
		case <-ctx.Done():
			g.logger.Info("game loop stopped", "reason", ctx.Err())
			return ctx.Err()
		case <-g.stopChan:
			g.logger.Info("game loop stopped")
			return nil
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop ends Run. Safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick() {
	g.sim.Step()
	if g.OnTick != nil {
		g.OnTick(g.sim)
	}
}
