// Command headless runs a scene without a window and logs the final body
// states when it stops.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/rigid2d/driver"
	"github.com/automoto/rigid2d/physics"
	"github.com/automoto/rigid2d/shared/leveldata"
	"github.com/automoto/rigid2d/worldbuild"
)

func main() {
	level := flag.String("level", "assets/levels/arena.tmx", "TMX scene to simulate")
	tickRate := flag.Int("tickrate", 60, "Steps per second (0 = as fast as possible)")
	ticks := flag.Uint64("ticks", 0, "Stop after this many steps (0 = run until interrupted)")
	edge := flag.String("edge", "", "Override the scene edge mode: none, hold, wrap or bounce")
	diagnostics := flag.Bool("diagnostics", false, "Log shape pairs without a collision test")
	flag.Parse()

	scene, err := leveldata.LoadScene(os.DirFS(filepath.Dir(*level)), filepath.Base(*level))
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	if *edge != "" {
		scene.EdgeMode = *edge
	}
	if *diagnostics {
		scene.Diagnostics = true
	}

	world, spawned, err := worldbuild.Build(scene)
	if err != nil {
		log.Fatalf("Failed to build world: %v", err)
	}

	loop := driver.NewLoop(world, *tickRate)
	loop.SetMaxTicks(*ticks)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down simulation...")
		loop.Stop()
	}()

	log.Printf("Simulating %q: %d bodies, edge mode %s, collisions %v",
		scene.Name, world.Len(), world.EdgeMode(), world.Collisions())
	if err := loop.Run(context.Background()); err != nil {
		log.Fatalf("Simulation error: %v", err)
	}

	names := make(map[*physics.Body]string, len(spawned))
	for _, s := range spawned {
		names[s.Body] = s.Spec.Name
	}
	for _, b := range world.Bodies() {
		st := b.State()
		log.Printf("[loop] %-12s %-9s pos (%.2f, %.2f) vel (%.2f, %.2f)",
			names[b], st.Kind, st.Position.X, st.Position.Y, st.Velocity.X, st.Velocity.Y)
	}
	log.Printf("[loop] %d ticks, %d collisions", loop.Ticks(), loop.Collisions())
}
