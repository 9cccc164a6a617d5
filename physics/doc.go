// Package physics implements a small 2D rigid body simulation.
//
// A World owns all bodies. Each call to World.Update applies gravity,
// integrates every body using semi-implicit Euler, tests all pairs of bodies
// for contact and resolves each contact with an impulse and a positional
// correction. Bodies carry no shape of their own, CheckCollision treats every
// body as a circle of radius one.
//
// Coordinates follow the screen convention: +y points down, which is why
// DefaultGravity has a positive y component.
package physics
