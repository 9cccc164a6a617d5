// Package scene describes the initial state of a simulation in YAML and
// builds a physics.World from it.
package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/oliverbestmann/rigid/gm"
	"github.com/oliverbestmann/rigid/physics"
	"gopkg.in/yaml.v3"
)

var ErrDuplicateName = errors.New("duplicate body name")

type Scene struct {
	// Gravity overrides physics.DefaultGravity if set.
	Gravity *gm.Vec `yaml:"gravity"`

	// Step is the fixed step size in seconds. Zero uses the default interval.
	Step float64 `yaml:"step"`

	// Bounds is the region of the world shown by viewers.
	Bounds *BoundsSpec `yaml:"bounds"`

	Bodies []BodySpec `yaml:"bodies"`
}

type BoundsSpec struct {
	Min gm.Vec `yaml:"min"`
	Max gm.Vec `yaml:"max"`
}

type BodySpec struct {
	Name            string  `yaml:"name"`
	Position        gm.Vec  `yaml:"position"`
	Rotation        float64 `yaml:"rotation"`
	Velocity        gm.Vec  `yaml:"velocity"`
	AngularVelocity float64 `yaml:"angular_velocity"`

	// Mass defaults to one
	Mass float64 `yaml:"mass"`

	// Inertia is taken from the first non zero value of Inertia,
	// InertiaDisc and InertiaBox, and defaults to one.
	Inertia     float64 `yaml:"inertia"`
	InertiaDisc float64 `yaml:"inertia_disc"`
	InertiaBox  *gm.Vec `yaml:"inertia_box"`

	Restitution float64 `yaml:"restitution"`
	Friction    float64 `yaml:"friction"`
	Static      bool    `yaml:"static"`
	Sleeping    bool    `yaml:"sleeping"`
}

// Load reads and parses the scene file at the given path.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: load %s: %w", path, err)
	}

	sc, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	slog.Debug("Loaded scene",
		slog.String("path", path),
		slog.Int("bodies", len(sc.Bodies)))

	return sc, nil
}

// Parse parses a scene from its YAML representation.
func Parse(data []byte) (Scene, error) {
	var sc Scene
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scene{}, err
	}

	if err := sc.Validate(); err != nil {
		return Scene{}, err
	}

	return sc, nil
}

// Validate checks that named bodies have unique names.
func (sc Scene) Validate() error {
	names := map[string]int{}

	for idx, body := range sc.Bodies {
		if body.Name == "" {
			continue
		}

		if prev, ok := names[body.Name]; ok {
			return fmt.Errorf("bodies %d and %d named %q: %w", prev, idx, body.Name, ErrDuplicateName)
		}

		names[body.Name] = idx
	}

	return nil
}

// ViewBounds returns the configured bounds, or a rectangle containing all
// bodies with some margin around them.
func (sc Scene) ViewBounds() gm.Rect {
	if sc.Bounds != nil {
		return gm.RectWithPoints(sc.Bounds.Min, sc.Bounds.Max)
	}

	if len(sc.Bodies) == 0 {
		return gm.RectWithCenterAndSize(gm.VecZero, gm.VecSplat(20.0))
	}

	bounds := gm.RectWithCenterAndSize(sc.Bodies[0].Position, gm.VecSplat(2.0))
	for _, body := range sc.Bodies[1:] {
		bounds = bounds.Union(gm.RectWithCenterAndSize(body.Position, gm.VecSplat(2.0)))
	}

	// leave some room around the outermost bodies
	margin := gm.VecSplat(2.0)
	return gm.Rect{Min: bounds.Min.Sub(margin), Max: bounds.Max.Add(margin)}
}

// Build creates the bodies of the scene in the given world and applies the
// scene gravity. It returns the handles of all named bodies.
func (sc Scene) Build(world *physics.World) map[string]physics.BodyHandle {
	if sc.Gravity != nil {
		world.SetGravity(*sc.Gravity)
	}

	named := map[string]physics.BodyHandle{}

	for _, spec := range sc.Bodies {
		handle, body := world.CreateBody()
		spec.apply(body)

		if spec.Name != "" {
			named[spec.Name] = handle
		}
	}

	return named
}

func (spec BodySpec) apply(body *physics.Body) {
	mass := spec.Mass
	if mass == 0 {
		mass = 1
	}

	body.SetMass(mass)
	body.SetInertia(spec.inertia(mass))

	body.SetPosition(spec.Position)
	body.SetRotation(gm.Rad(spec.Rotation))
	body.SetVelocity(spec.Velocity)
	body.SetAngularVelocity(spec.AngularVelocity)
	body.SetRestitution(spec.Restitution)
	body.SetFriction(spec.Friction)

	// after the velocities, a static body clears them
	body.SetStatic(spec.Static)

	if spec.Sleeping {
		body.SetSleeping(true)
	}
}

func (spec BodySpec) inertia(mass float64) float64 {
	switch {
	case spec.Inertia != 0:
		return spec.Inertia

	case spec.InertiaDisc != 0:
		return physics.MomentForDisc(mass, spec.InertiaDisc)

	case spec.InertiaBox != nil:
		return physics.MomentForBox(mass, spec.InertiaBox.X, spec.InertiaBox.Y)

	default:
		return 1
	}
}
