package physics

import (
	"github.com/oliverbestmann/rigid/gm"
)

// ContactStarted is emitted for the step in which two bodies start touching.
type ContactStarted struct {
	A, B     BodyHandle
	Position gm.Vec
	Normal   gm.Vec
}

// ContactEnded is emitted for the step in which two bodies stop touching.
// It is not emitted if one of the bodies was destroyed.
type ContactEnded struct {
	A, B BodyHandle
}

// Contact is a contact found and resolved during the latest World.Update.
type Contact struct {
	A, B BodyHandle
	Info ContactInfo
}

// StepEvents holds the contact events of the latest World.Update.
type StepEvents struct {
	Started []ContactStarted
	Ended   []ContactEnded
}

type pairKey struct {
	A, B BodyHandle
}

func makePairKey(a, b BodyHandle) pairKey {
	if b.less(a) {
		a, b = b, a
	}

	return pairKey{A: a, B: b}
}
