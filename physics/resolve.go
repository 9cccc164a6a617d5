package physics

// ResolveCollision applies an impulse to both bodies of the contact so
// that they stop approaching each other, and pushes them apart if they
// penetrate deeper than Slop.
//
// Contacts that are not colliding or whose bodies already separate
// are ignored.
func ResolveCollision(contact ContactInfo) {
	if !contact.Colliding {
		return
	}

	a, b := contact.A, contact.B
	normal := contact.Normal

	relativeVelocity := b.velocity.Sub(a.velocity)

	velocityAlongNormal := relativeVelocity.Dot(normal)
	if velocityAlongNormal >= 0 {
		return
	}

	invMassSum := a.invMass + b.invMass
	if invMassSum == 0 {
		// two static bodies
		return
	}

	restitution := min(a.restitution, b.restitution)

	j := -(1 + restitution) * velocityAlongNormal / invMassSum
	impulse := normal.Mul(j)

	if !a.static {
		a.ApplyImpulse(impulse.Mul(-1))
	}

	if !b.static {
		b.ApplyImpulse(impulse)
	}

	correctPositions(contact)
}

// ResolveCollisionWithFriction resolves the contact like ResolveCollision.
//
// Friction impulses along the contact tangent are not yet computed,
// the friction coefficients of the bodies are ignored.
func ResolveCollisionWithFriction(contact ContactInfo) {
	ResolveCollision(contact)
}

// correctPositions moves penetrating bodies apart. The heavier body moves less,
// static bodies do not move at all.
func correctPositions(contact ContactInfo) {
	if contact.Penetration <= Slop {
		return
	}

	a, b := contact.A, contact.B

	correction := CorrectionPercent * (contact.Penetration - Slop)

	var shareA, shareB float64
	switch {
	case a.static && b.static:
		return

	case a.static:
		shareB = 1

	case b.static:
		shareA = 1

	default:
		totalMass := a.mass + b.mass
		shareA = b.mass / totalMass
		shareB = a.mass / totalMass
	}

	a.position = a.position.Sub(contact.Normal.Mul(correction * shareA))
	b.position = b.position.Add(contact.Normal.Mul(correction * shareB))
}
