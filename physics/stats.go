package physics

import (
	"time"
)

// Timings collects statistics about a repeatedly measured duration.
type Timings struct {
	Count         int
	Latest        time.Duration
	MovingAverage time.Duration
	Min, Max      time.Duration
}

func (t Timings) Add(d time.Duration) Timings {
	t.Latest = d

	if t.Count == 0 {
		t.Min = d
		t.Max = d
		t.MovingAverage = d
	} else {
		t.Min = min(t.Min, d)
		t.Max = max(t.Max, d)
		t.MovingAverage = (95*t.MovingAverage + 5*d) / 100
	}

	t.Count += 1

	return t
}

// Stage is a part of the pipeline run by World.Update.
type Stage uint8

const (
	StageGravity Stage = iota
	StageIntegrate
	StageCollide
	stageCount
)

func (s Stage) String() string {
	switch s {
	case StageGravity:
		return "gravity"
	case StageIntegrate:
		return "integrate"
	case StageCollide:
		return "collide"
	default:
		return "unknown"
	}
}

// Stages lists all stages in the order they run.
var Stages = [...]Stage{StageGravity, StageIntegrate, StageCollide}

// StepStats records timings of World.Update and its stages.
type StepStats struct {
	Step    Timings
	ByStage [stageCount]Timings

	// number of body pairs tested and contacts found in the latest step
	PairsTested   int
	ContactsFound int
}

// Stage returns the timings of the given stage.
func (s *StepStats) Stage(stage Stage) Timings {
	return s.ByStage[stage]
}

func (s *StepStats) measureStep() stopwatch {
	startTime := time.Now()

	return stopwatch{
		stop: func() {
			s.Step = s.Step.Add(time.Since(startTime))
		},
	}
}

func (s *StepStats) measureStage(stage Stage) stopwatch {
	startTime := time.Now()

	return stopwatch{
		stop: func() {
			s.ByStage[stage] = s.ByStage[stage].Add(time.Since(startTime))
		},
	}
}

type stopwatch struct {
	stop func()
}
