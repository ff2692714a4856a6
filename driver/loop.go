// Package driver runs a physics world without a window, one fixed step per
// tick.
package driver

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/automoto/rigid2d/physics"
)

// Loop steps a world at a fixed tick rate. While Run is active the loop's
// goroutine is the only one touching the world.
type Loop struct {
	world    *physics.World
	tickRate int
	maxTicks uint64
	// statsEvery is the number of ticks between stats lines; 0 disables them.
	statsEvery uint64

	ticks      atomic.Uint64
	collisions atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
}

// NewLoop returns a loop stepping world tickRate times per second. A
// tickRate of zero or less steps as fast as possible; each step still
// advances the world by exactly one unit.
func NewLoop(world *physics.World, tickRate int) *Loop {
	l := &Loop{
		world:    world,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
	if tickRate > 0 {
		l.statsEvery = uint64(tickRate) * 5
	}
	world.OnCollision(func(_, _ *physics.Body) { l.collisions.Add(1) })
	return l
}

// SetMaxTicks makes Run return after n ticks. Zero means no limit.
func (l *Loop) SetMaxTicks(n uint64) { l.maxTicks = n }

// SetStatsEvery sets how many ticks pass between stats log lines.
func (l *Loop) SetStatsEvery(n uint64) { l.statsEvery = n }

func (l *Loop) Ticks() uint64      { return l.ticks.Load() }
func (l *Loop) Collisions() uint64 { return l.collisions.Load() }

// Run ticks until the context ends, Stop is called or the tick limit is
// reached. Only a cancelled context produces an error.
func (l *Loop) Run(ctx context.Context) error {
	var tickC <-chan time.Time
	if l.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
		defer ticker.Stop()
		tickC = ticker.C
		log.Printf("[loop] started at %d ticks/second with %d bodies", l.tickRate, l.world.Len())
	} else {
		log.Printf("[loop] started unthrottled with %d bodies", l.world.Len())
	}

	for {
		if l.maxTicks > 0 && l.ticks.Load() >= l.maxTicks {
			log.Printf("[loop] reached %d ticks", l.maxTicks)
			return nil
		}

		if tickC == nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-l.stopChan:
				log.Println("[loop] stopped")
				return nil
			default:
			}
			l.tick()
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stopChan:
			log.Println("[loop] stopped")
			return nil
		case <-tickC:
			l.tick()
		}
	}
}

// Stop ends Run. It is safe to call more than once and from any goroutine.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

func (l *Loop) tick() {
	l.world.Step()
	n := l.ticks.Add(1)
	if l.statsEvery > 0 && n%l.statsEvery == 0 {
		log.Printf("[loop] tick %d: %d bodies, %d collisions", n, l.world.Len(), l.collisions.Load())
	}
}
