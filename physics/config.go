package physics

import "github.com/oliverbestmann/rigid/gm"

// MinMass is the lower bound for mass and inertia of a body.
const MinMass = 1e-3

// Slop is the penetration depth that is tolerated without positional correction.
const Slop = 0.01

// CorrectionPercent is the fraction of the penetration exceeding Slop that
// is removed by a single positional correction.
const CorrectionPercent = 0.8

// A body is considered at rest while its speed stays below these thresholds.
const (
	SleepLinearThreshold  = 0.01
	SleepAngularThreshold = 0.01
)

// TimeToSleep is the time a body needs to be at rest before it falls asleep.
const TimeToSleep = 1.0

// DefaultGravity points down in a coordinate system where +y is down.
var DefaultGravity = gm.Vec{Y: 9.81}
