package physics

import (
	"time"
)

// DefaultStepInterval is 1/64s, the same as the bevy fixed timestep.
const DefaultStepInterval = time.Second / 64

// FixedStepper advances a World in steps of a fixed size, independent of
// the frame rate of the caller.
//
// The caller reports elapsed time to Advance. Time that does not fill a
// complete step is carried over to the next call.
type FixedStepper struct {
	// StepInterval is the simulated time per step. A zero value uses DefaultStepInterval.
	StepInterval time.Duration

	// MaxSteps limits the number of steps per call to Advance. Time that
	// exceeds the limit is dropped, so a slow frame does not cause ever
	// growing catch up work. A zero value does not limit the steps.
	MaxSteps int

	// Elapsed is the total simulated time.
	Elapsed time.Duration

	overstep time.Duration
}

func (s *FixedStepper) interval() time.Duration {
	if s.StepInterval <= 0 {
		return DefaultStepInterval
	}

	return s.StepInterval
}

// Advance adds delta to the accumulated time and runs as many steps on
// the world as fit into it. It returns the number of steps run.
func (s *FixedStepper) Advance(world *World, delta time.Duration) int {
	s.overstep += delta

	step := s.interval()

	var steps int
	for s.overstep >= step {
		if s.MaxSteps > 0 && steps >= s.MaxSteps {
			// drop what we could not simulate
			s.overstep = s.overstep % step
			break
		}

		s.overstep -= step
		s.Elapsed += step

		world.Update(step.Seconds())
		steps += 1
	}

	return steps
}

// Overstep returns the accumulated time that did not yet fill a step,
// as a fraction of the step interval in [0, 1). It can be used to
// interpolate between the previous and the current state.
func (s *FixedStepper) Overstep() float64 {
	return float64(s.overstep) / float64(s.interval())
}
