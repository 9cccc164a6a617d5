package main

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/rigid/debugdraw"
	"github.com/oliverbestmann/rigid/gm"
	"github.com/oliverbestmann/rigid/physics"
	"github.com/oliverbestmann/rigid/scene"
)

type game struct {
	ScenePath string
	Random    int
	Seed      uint64

	Watcher *scene.Watcher

	Scene   scene.Scene
	World   *physics.World
	Stepper physics.FixedStepper

	Paused   bool
	Contacts bool
	Stats    bool
}

func (g *game) load() error {
	var sc scene.Scene

	if g.ScenePath != "" {
		loaded, err := scene.Load(g.ScenePath)
		if err != nil {
			return err
		}

		sc = loaded
	} else {
		sc = scene.Random(g.Random, g.Seed)
	}

	world := physics.NewWorld()
	sc.Build(world)

	stepper := physics.FixedStepper{
		StepInterval: physics.DefaultStepInterval,
		MaxSteps:     8,
	}

	if sc.Step > 0 {
		stepper.StepInterval = time.Duration(sc.Step * float64(time.Second))
	}

	g.Scene = sc
	g.World = world
	g.Stepper = stepper

	slog.Info("Scene started", slog.Int("bodies", world.Len()))

	return nil
}

func (g *game) watch() error {
	watcher, err := scene.NewWatcher(g.ScenePath)
	if err != nil {
		return err
	}

	g.Watcher = watcher
	return nil
}

// reload restarts the scene. A scene that fails to load is logged
// and the current simulation keeps running.
func (g *game) reload() {
	if err := g.load(); err != nil {
		slog.Warn("Failed to reload scene", slog.String("error", err.Error()))
	}
}

func (g *game) pollWatcher() {
	if g.Watcher == nil {
		return
	}

	select {
	case <-g.Watcher.Events:
		slog.Info("Scene file changed", slog.String("path", g.ScenePath))
		g.reload()

	case err := <-g.Watcher.Errors:
		slog.Warn("Failed to watch scene", slog.String("error", err.Error()))

	default:
	}
}

func (g *game) Update() error {
	g.pollWatcher()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.Paused = !g.Paused

	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.reload()

	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.Contacts = !g.Contacts

	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.Stats = !g.Stats
	}

	if g.Paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyN) {
			g.World.Update(g.Stepper.StepInterval.Seconds())
		}

		return nil
	}

	delta := time.Second / time.Duration(ebiten.TPS())
	g.Stepper.Advance(g.World, delta)

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	screenRect := gm.RectWithSize(gm.Vec{X: float64(bounds.Dx()), Y: float64(bounds.Dy())})

	debugdraw.Draw(screen, g.World, debugdraw.Options{
		Transform: gm.FitRect(g.Scene.ViewBounds(), screenRect),
		Palette:   debugdraw.DefaultPalette,
		Contacts:  g.Contacts,
		Stats:     g.Stats,
	})
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}
