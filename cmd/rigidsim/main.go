// Command rigidsim runs a scene without a window and prints the final state of all bodies.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/oliverbestmann/rigid/physics"
	"github.com/oliverbestmann/rigid/scene"
	"github.com/pkg/profile"
)

type options struct {
	ScenePath   string
	Random      int
	Seed        uint64
	Steps       int
	Step        time.Duration
	Profile     string
	ProfilePath string
	Verbose     bool
}

func main() {
	var opts options

	flag.StringVar(&opts.ScenePath, "scene", "", "scene file to simulate")
	flag.IntVar(&opts.Random, "random", 0, "simulate a random scene with this many bodies instead of a scene file")
	flag.Uint64Var(&opts.Seed, "seed", 1, "seed for the random scene")
	flag.IntVar(&opts.Steps, "steps", 640, "number of fixed steps to simulate")
	flag.DurationVar(&opts.Step, "step", 0, "fixed step size, defaults to the scene step or 1/64s")
	flag.StringVar(&opts.Profile, "profile", "", "write a profile: cpu or mem")
	flag.StringVar(&opts.ProfilePath, "profile-path", ".", "directory for profile output")
	flag.BoolVar(&opts.Verbose, "v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts, os.Stdout); err != nil {
		slog.Error("Simulation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(opts options, out io.Writer) error {
	switch opts.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.ProfilePath), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(opts.ProfilePath), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", opts.Profile)
	}

	sc, err := loadScene(opts)
	if err != nil {
		return err
	}

	world := physics.NewWorld()
	named := sc.Build(world)

	stepper := physics.FixedStepper{StepInterval: stepInterval(opts, sc)}

	slog.Info("Starting simulation",
		slog.Int("bodies", world.Len()),
		slog.Int("steps", opts.Steps),
		slog.Duration("step", stepper.StepInterval))

	var contacts int
	for range opts.Steps {
		stepper.Advance(world, stepper.StepInterval)

		events := world.Events()
		contacts += len(world.Contacts())

		for _, ev := range events.Started {
			slog.Debug("Contact started",
				slog.Any("a", ev.A),
				slog.Any("b", ev.B),
				slog.String("position", ev.Position.String()))
		}

		for _, ev := range events.Ended {
			slog.Debug("Contact ended", slog.Any("a", ev.A), slog.Any("b", ev.B))
		}
	}

	stats := world.Stats()
	slog.Info("Finished simulation",
		slog.Duration("simulated", stepper.Elapsed),
		slog.Int("contacts", contacts),
		slog.Duration("step.avg", stats.Step.MovingAverage),
		slog.Duration("step.max", stats.Step.Max))

	return printBodies(out, world, named)
}

func loadScene(opts options) (scene.Scene, error) {
	switch {
	case opts.ScenePath != "":
		return scene.Load(opts.ScenePath)

	case opts.Random > 0:
		return scene.Random(opts.Random, opts.Seed), nil

	default:
		return scene.Scene{}, fmt.Errorf("either -scene or -random is required")
	}
}

func stepInterval(opts options, sc scene.Scene) time.Duration {
	switch {
	case opts.Step > 0:
		return opts.Step

	case sc.Step > 0:
		return time.Duration(sc.Step * float64(time.Second))

	default:
		return physics.DefaultStepInterval
	}
}

func printBodies(out io.Writer, world *physics.World, named map[string]physics.BodyHandle) error {
	names := make(map[physics.BodyHandle]string, len(named))
	for name, handle := range named {
		names[handle] = name
	}

	for handle, body := range world.Bodies() {
		name := names[handle]
		if name == "" {
			name = handle.String()
		}

		state := "awake"
		switch {
		case body.IsStatic():
			state = "static"
		case body.IsSleeping():
			state = "sleeping"
		}

		_, err := fmt.Fprintf(out, "%-12s %-8s pos=(%8.3f, %8.3f) rot=%7.3f vel=(%8.3f, %8.3f) angvel=%7.3f\n",
			name, state,
			body.Position().X, body.Position().Y,
			body.Rotation().Radians(),
			body.Velocity().X, body.Velocity().Y,
			body.AngularVelocity(),
		)

		if err != nil {
			return err
		}
	}

	return nil
}
