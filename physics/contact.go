package physics

import (
	"github.com/oliverbestmann/rigid/gm"
)

// ContactInfo describes the contact between two bodies as found by
// the collision detection. It is only valid for the step it was created in.
type ContactInfo struct {
	A, B *Body

	// Point is the contact point in world space.
	Point gm.Vec

	// Normal is a unit vector pointing from A towards B.
	Normal gm.Vec

	// Penetration is the overlap along the normal.
	Penetration float64

	Colliding bool
}

// Flipped returns the same contact seen from B.
func (c ContactInfo) Flipped() ContactInfo {
	c.A, c.B = c.B, c.A
	c.Normal = c.Normal.Mul(-1)
	return c
}
