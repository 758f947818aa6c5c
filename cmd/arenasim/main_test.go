package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	cfg "github.com/automoto/maskbrawl/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		format, level string
		wantErr       bool
	}{
		{"text", "info", false},
		{"json", "debug", false},
		{"xml", "info", true},
		{"text", "loud", true},
	}
	for _, tt := range tests {
		_, err := newLogger(io.Discard, tt.format, tt.level)
		if (err != nil) != tt.wantErr {
			t.Errorf("newLogger(%q, %q) error = %v, wantErr %v", tt.format, tt.level, err, tt.wantErr)
		}
	}
}

func TestRunMatchPrintsEveryBot(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := runMatch(context.Background(), matchOptions{
		duration:   2 * time.Second,
		tickRate:   30,
		seed:       7,
		bots:       3,
		difficulty: cfg.BotDifficultyHard,
	}, logger)
	if err != nil {
		t.Fatalf("runMatch: %v", err)
	}
	if got := s.Snapshot().Tick; got != 60 {
		t.Fatalf("expected 60 ticks, got %d", got)
	}

	var buf bytes.Buffer
	printScoreboard(&buf, s)
	out := buf.String()
	for _, name := range []string{"bot-1", "bot-2", "bot-3"} {
		if !strings.Contains(out, name) {
			t.Errorf("scoreboard missing %s:\n%s", name, out)
		}
	}
}

func TestRunMatchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runMatch(ctx, matchOptions{duration: time.Minute, tickRate: 60, bots: 1}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}
