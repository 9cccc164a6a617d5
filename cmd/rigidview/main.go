// Command rigidview shows a simulation in a window. The scene file is
// reloaded whenever it changes on disk.
//
// Keys: space pauses, n runs a single step while paused, r restarts the
// scene, c toggles contacts and s toggles statistics.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
)

func main() {
	scenePath := flag.String("scene", "", "scene file to show")
	random := flag.Int("random", 0, "show a random scene with this many bodies instead of a scene file")
	seed := flag.Uint64("seed", 1, "seed for the random scene")
	cpuProfile := flag.Bool("profile", false, "write a cpu profile")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	if err := run(*scenePath, *random, *seed); err != nil {
		slog.Error("Viewer failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(scenePath string, random int, seed uint64) error {
	if scenePath == "" && random <= 0 {
		return errors.New("either -scene or -random is required")
	}

	g := &game{
		ScenePath: scenePath,
		Random:    random,
		Seed:      seed,
		Contacts:  true,
		Stats:     true,
	}

	if err := g.load(); err != nil {
		return err
	}

	if scenePath != "" {
		if err := g.watch(); err != nil {
			return err
		}

		defer g.Watcher.Close()
	}

	ebiten.SetWindowTitle("rigidview")
	ebiten.SetWindowSize(1024, 768)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	var options ebiten.RunGameOptions
	options.SingleThread = true

	return ebiten.RunGameWithOptions(g, &options)
}
