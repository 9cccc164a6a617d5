package physics

import (
	"math"

	"github.com/oliverbestmann/rigid/gm"
)

// Body is a rigid body with linear and angular state.
//
// A body integrates its own motion in Update using semi-implicit Euler.
// Static bodies never move and ignore forces and impulses. Dynamic bodies
// that stay slow for TimeToSleep fall asleep and are skipped by Update until
// a force, impulse or torque wakes them up again.
type Body struct {
	position gm.Vec
	rotation gm.Rad

	velocity        gm.Vec
	angularVelocity float64

	force  gm.Vec
	torque float64

	mass, invMass       float64
	inertia, invInertia float64

	restitution float64
	friction    float64

	static     bool
	sleeping   bool
	sleepTimer float64
}

// NewBody returns a dynamic, awake body at the origin with unit mass and inertia.
func NewBody() *Body {
	return &Body{
		mass:       1,
		invMass:    1,
		inertia:    1,
		invInertia: 1,
	}
}

func (b *Body) Position() gm.Vec {
	return b.position
}

func (b *Body) SetPosition(position gm.Vec) {
	b.position = position
}

func (b *Body) Rotation() gm.Rad {
	return b.rotation
}

func (b *Body) SetRotation(rotation gm.Rad) {
	b.rotation = rotation
}

func (b *Body) Velocity() gm.Vec {
	return b.velocity
}

func (b *Body) SetVelocity(velocity gm.Vec) {
	b.velocity = velocity
}

func (b *Body) AngularVelocity() float64 {
	return b.angularVelocity
}

func (b *Body) SetAngularVelocity(angularVelocity float64) {
	b.angularVelocity = angularVelocity
}

// Force returns the force accumulated since the last Update.
func (b *Body) Force() gm.Vec {
	return b.force
}

// Torque returns the torque accumulated since the last Update.
func (b *Body) Torque() float64 {
	return b.torque
}

func (b *Body) Mass() float64 {
	return b.mass
}

// InvMass returns the reciprocal of the mass, or zero for a static body.
func (b *Body) InvMass() float64 {
	return b.invMass
}

// SetMass sets the mass of the body. The value is clamped to MinMass.
func (b *Body) SetMass(mass float64) {
	b.mass = max(mass, MinMass)
	b.updateReciprocals()
}

func (b *Body) Inertia() float64 {
	return b.inertia
}

// InvInertia returns the reciprocal of the inertia, or zero for a static body.
func (b *Body) InvInertia() float64 {
	return b.invInertia
}

// SetInertia sets the rotational inertia of the body. The value is clamped to MinMass.
func (b *Body) SetInertia(inertia float64) {
	b.inertia = max(inertia, MinMass)
	b.updateReciprocals()
}

func (b *Body) Restitution() float64 {
	return b.restitution
}

func (b *Body) SetRestitution(restitution float64) {
	b.restitution = restitution
}

func (b *Body) Friction() float64 {
	return b.friction
}

func (b *Body) SetFriction(friction float64) {
	b.friction = friction
}

func (b *Body) IsStatic() bool {
	return b.static
}

// SetStatic turns the body into a static or a dynamic body. A static body
// loses all of its velocity and gets an infinite mass and inertia.
func (b *Body) SetStatic(static bool) {
	b.static = static

	if static {
		b.velocity = gm.Vec{}
		b.angularVelocity = 0
	}

	b.updateReciprocals()
}

func (b *Body) IsSleeping() bool {
	return b.sleeping
}

// SetSleeping puts the body to sleep or wakes it up. A body put to sleep
// loses its velocity, just like a body falling asleep on its own.
func (b *Body) SetSleeping(sleeping bool) {
	if sleeping {
		b.fallAsleep()
	} else {
		b.sleeping = false
	}
}

// Transform returns the local to world transformation of the body.
func (b *Body) Transform() gm.Affine {
	return gm.RigidAffine(b.position, b.rotation)
}

// ApplyForce adds a force acting on the center of mass. The force
// is consumed by the next call to Update.
func (b *Body) ApplyForce(force gm.Vec) {
	if b.static {
		return
	}

	b.force = b.force.Add(force)
	b.sleeping = false
}

// ApplyForceAtPoint adds a force acting on the given point in world
// space. A point away from the center of mass also results in a torque.
func (b *Body) ApplyForceAtPoint(force, point gm.Vec) {
	b.ApplyForce(force)
	b.ApplyTorque(point.Sub(b.position).Cross(force))
}

// ApplyImpulse changes the velocity of the body immediately.
func (b *Body) ApplyImpulse(impulse gm.Vec) {
	if b.static {
		return
	}

	b.velocity = b.velocity.Add(impulse.Mul(b.invMass))
	b.sleeping = false
}

// ApplyImpulseAtPoint applies an impulse at the given point in world space,
// changing both the linear and the angular velocity.
func (b *Body) ApplyImpulseAtPoint(impulse, point gm.Vec) {
	b.ApplyImpulse(impulse)

	if b.static {
		return
	}

	b.angularVelocity += point.Sub(b.position).Cross(impulse) * b.invInertia
}

// ApplyTorque adds a torque. The torque is consumed by the next call to Update.
func (b *Body) ApplyTorque(torque float64) {
	if b.static {
		return
	}

	b.torque += torque
	b.sleeping = false
}

// Update advances the body by dt using semi-implicit Euler. The velocity
// is updated first and the updated velocity then moves the body.
// Accumulated forces and torques are cleared afterwards.
func (b *Body) Update(dt float64) {
	if b.static || b.sleeping {
		return
	}

	b.velocity = b.velocity.Add(b.force.Mul(b.invMass).Mul(dt))
	b.position = b.position.Add(b.velocity.Mul(dt))

	b.angularVelocity += b.torque * b.invInertia * dt
	b.rotation += gm.Rad(b.angularVelocity * dt)

	b.updateSleep(dt)

	b.force = gm.Vec{}
	b.torque = 0
}

func (b *Body) updateSleep(dt float64) {
	slow := b.velocity.Length() < SleepLinearThreshold &&
		math.Abs(b.angularVelocity) < SleepAngularThreshold

	if !slow {
		b.sleepTimer = 0
		return
	}

	b.sleepTimer += dt
	if b.sleepTimer >= TimeToSleep {
		b.fallAsleep()
	}
}

func (b *Body) fallAsleep() {
	b.sleeping = true
	b.velocity = gm.Vec{}
	b.angularVelocity = 0
}

func (b *Body) updateReciprocals() {
	if b.static {
		b.invMass = 0
		b.invInertia = 0
		return
	}

	b.invMass = 1 / b.mass
	b.invInertia = 1 / b.inertia
}
