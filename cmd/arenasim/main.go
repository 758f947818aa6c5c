// Command arenasim runs a bot-only match headless and prints the scoreboard.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/automoto/maskbrawl/arena"
	cfg "github.com/automoto/maskbrawl/config"
	"github.com/automoto/maskbrawl/sim"
	"golang.org/x/sync/errgroup"
)

func main() {
	arenaPath := flag.String("arena", "", "Path to a Tiled .tmx arena (empty = built-in dojo)")
	duration := flag.Duration("duration", 60*time.Second, "Match length in simulated time")
	tickRate := flag.Int("tickrate", cfg.Sim.TickRate, "Simulation ticks per second")
	seed := flag.Int64("seed", cfg.Sim.Seed, "Random seed")
	bots := flag.Int("bots", 4, "Number of bots")
	difficulty := flag.String("difficulty", "normal", "Bot difficulty: easy, normal or hard")
	realtime := flag.Bool("realtime", false, "Pace ticks against the wall clock")
	logFormat := flag.String("log-format", "text", "Log format: text or json")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	flag.Parse()

	logger, err := newLogger(os.Stderr, *logFormat, *logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := matchOptions{
		arenaPath:  *arenaPath,
		duration:   *duration,
		tickRate:   *tickRate,
		seed:       *seed,
		bots:       *bots,
		difficulty: cfg.ParseBotDifficulty(*difficulty),
		realtime:   *realtime,
	}
	s, err := runMatch(ctx, opts, logger)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("match failed", "error", err)
		os.Exit(1)
	}
	if s != nil {
		printScoreboard(os.Stdout, s)
	}
}

type matchOptions struct {
	arenaPath  string
	duration   time.Duration
	tickRate   int
	seed       int64
	bots       int
	difficulty cfg.BotDifficulty
	realtime   bool
}

func runMatch(ctx context.Context, o matchOptions, logger *slog.Logger) (*sim.Sim, error) {
	layout, err := loadLayout(o.arenaPath)
	if err != nil {
		return nil, err
	}

	s, err := sim.New(sim.Options{
		Layout:   layout,
		Seed:     o.seed,
		TickRate: o.tickRate,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}
	for i := 0; i < o.bots; i++ {
		if _, err := s.AddPlayer(fmt.Sprintf("bot-%d", i+1), true, o.difficulty); err != nil {
			return nil, err
		}
	}

	ticks := int(o.duration.Seconds() * float64(o.tickRate))
	logger.Info("match starting", "arena", layout.Name, "bots", o.bots,
		"difficulty", o.difficulty, "ticks", ticks, "realtime", o.realtime)

	g, ctx := errgroup.WithContext(ctx)
	if o.realtime {
		loop := sim.NewGameLoop(s, o.tickRate)
		done := 0
		loop.OnTick = func(*sim.Sim) {
			done++
			if done >= ticks {
				loop.Stop()
			}
		}
		g.Go(func() error { return loop.Run(ctx) })
	} else {
		g.Go(func() error {
			for i := 0; i < ticks; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				s.Step()
			}
			return nil
		})
	}

	err = g.Wait()
	logger.Info("match finished", "tick", s.Snapshot().Tick)
	return s, err
}

func loadLayout(path string) (*arena.Layout, error) {
	if path == "" {
		return arena.Default()
	}
	return arena.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func newLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

func printScoreboard(w io.Writer, s *sim.Sim) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "RANK\tNAME\tKOS\tDEATHS\tHITS\tDAMAGE\n")
	for i, sc := range s.Scoreboard() {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%.0f\n", i+1, sc.Name, sc.KOs, sc.Deaths, sc.Hits, sc.DamageDealt)
	}
	tw.Flush()
}
