package driver

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/automoto/rigid2d/physics"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newWorld(t *testing.T) (*physics.World, *physics.Body) {
	t.Helper()
	w := physics.NewWorld(0, 0, 100, 100)
	w.SetLogger(log.New(io.Discard, "", 0))
	b, err := w.Create(physics.NewBodyBuilder(0, 0, 1, 1).Velocity(physics.Vector2{X: 1}))
	if err != nil {
		t.Fatal(err)
	}
	return w, b
}

func TestRunMaxTicks(t *testing.T) {
	tests := []struct {
		name     string
		tickRate int
	}{
		{"unthrottled", 0},
		{"ticker", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, b := newWorld(t)
			l := NewLoop(w, tt.tickRate)
			l.SetMaxTicks(7)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := l.Run(ctx); err != nil {
				t.Fatalf("Run: %v", err)
			}
			if l.Ticks() != 7 || w.StepCount() != 7 {
				t.Errorf("ticks = %d, steps = %d, expected 7", l.Ticks(), w.StepCount())
			}
			if got := b.Position().X; got != 7 {
				t.Errorf("x = %v, expected 7 after 7 unit steps", got)
			}
		})
	}
}

func TestRunCancel(t *testing.T) {
	w, _ := newWorld(t)
	l := NewLoop(w, 1000)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run error = %v, expected context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestStop(t *testing.T) {
	w, _ := newWorld(t)
	l := NewLoop(w, 0)

	done := make(chan error, 1)
	go func() { done <- l.Run(context.Background()) }()
	l.Stop()
	l.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run error = %v, expected nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestCountsCollisions(t *testing.T) {
	w := physics.NewWorld(0, 0, 100, 100)
	w.SetLogger(log.New(io.Discard, "", 0))
	for _, bb := range []*physics.BodyBuilder{
		physics.NewBodyBuilder(20, 50, 10, 10).Shape(physics.Ellipse{}).Velocity(physics.Vector2{X: 2}),
		physics.NewBodyBuilder(29, 50, 10, 10).Shape(physics.Ellipse{}).Velocity(physics.Vector2{X: -2}),
	} {
		if _, err := w.Create(bb); err != nil {
			t.Fatal(err)
		}
	}

	l := NewLoop(w, 0)
	l.SetMaxTicks(1)
	if err := l.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if l.Collisions() != 1 {
		t.Errorf("Collisions() = %d, expected 1", l.Collisions())
	}
}
