package physics

import (
	"github.com/jakecoffman/cp/v2"
)

// MomentForDisc returns the rotational inertia of a solid disc
// with the given mass and radius around its center.
func MomentForDisc(mass, radius float64) float64 {
	return cp.MomentForCircle(mass, 0, radius, cp.Vector{})
}

// MomentForRing returns the rotational inertia of a ring with
// the given inner and outer radius around its center.
func MomentForRing(mass, innerRadius, outerRadius float64) float64 {
	return cp.MomentForCircle(mass, innerRadius, outerRadius, cp.Vector{})
}

// MomentForBox returns the rotational inertia of a solid box
// with the given mass and size around its center.
func MomentForBox(mass, width, height float64) float64 {
	return cp.MomentForBox(mass, width, height)
}
