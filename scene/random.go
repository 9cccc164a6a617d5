package scene

import (
	"fmt"

	"github.com/oliverbestmann/rigid/gm"
)

// Random returns a scene with a static floor and count dynamic bodies
// dropped from random positions above it. The same seed yields the same scene.
func Random(count int, seed uint64) Scene {
	rng := gm.NewRandom(seed)

	const width = 40.0

	var bodies []BodySpec

	// floor of static bodies, spaced so that their unit circles overlap
	for x := -width / 2; x <= width/2; x += 1.5 {
		bodies = append(bodies, BodySpec{
			Position: gm.Vec{X: x, Y: 10},
			Static:   true,
		})
	}

	spawn := gm.Rect{
		Min: gm.Vec{X: -width/2 + 2, Y: -20},
		Max: gm.Vec{X: width/2 - 2, Y: 5},
	}

	for idx := range count {
		mass := rng.In(0.5, 3)

		bodies = append(bodies, BodySpec{
			Name:            fmt.Sprintf("body-%d", idx),
			Position:        rng.VecIn(spawn),
			Rotation:        float64(rng.Angle()),
			Velocity:        rng.Vec().Mul(2),
			AngularVelocity: rng.In(-1, 1),
			Mass:            mass,
			InertiaDisc:     1,
			Restitution:     rng.In(0, 0.8),
			Friction:        rng.In(0, 1),
		})
	}

	return Scene{
		Bounds: &BoundsSpec{
			Min: gm.Vec{X: -width/2 - 2, Y: -22},
			Max: gm.Vec{X: width/2 + 2, Y: 12},
		},
		Bodies: bodies,
	}
}
