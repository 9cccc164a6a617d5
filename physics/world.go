package physics

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/oliverbestmann/rigid/gm"
	"github.com/oliverbestmann/rigid/internal/arena"
	"github.com/oliverbestmann/rigid/internal/set"
)

// World owns a set of bodies and advances them in a fixed pipeline:
// gravity, integration, collision detection and collision resolution.
//
// A World is not safe for concurrent use.
type World struct {
	bodies  arena.Arena[Body]
	gravity gm.Vec

	// scratch buffers reused for each step
	handles []BodyHandle
	active  []*Body

	contacts []Contact
	events   StepEvents

	// touching pairs of the current and the previous step
	touching set.Set[pairKey]
	previous set.Set[pairKey]

	stats StepStats
}

// NewWorld returns an empty world with DefaultGravity.
func NewWorld() *World {
	return &World{
		gravity: DefaultGravity,
	}
}

func (w *World) Gravity() gm.Vec {
	return w.gravity
}

func (w *World) SetGravity(gravity gm.Vec) {
	w.gravity = gravity
}

// CreateBody creates a new dynamic body at the origin. The returned pointer
// is valid until the body is destroyed, keep the handle to refer to the body
// for a longer time.
func (w *World) CreateBody() (BodyHandle, *Body) {
	body := NewBody()
	handle := BodyHandle{handle: w.bodies.Insert(body)}

	slog.Debug("Create body", slog.Any("body", handle))

	return handle, body
}

// Body returns the body of the given handle. It returns false
// if the body was destroyed.
func (w *World) Body(handle BodyHandle) (*Body, bool) {
	return w.bodies.Get(handle.handle)
}

// DestroyBody removes the body from the world. Destroying an unknown
// or already destroyed body does nothing.
func (w *World) DestroyBody(handle BodyHandle) {
	if _, ok := w.bodies.Remove(handle.handle); !ok {
		return
	}

	slog.Debug("Destroy body", slog.Any("body", handle))
}

// Clear destroys all bodies.
func (w *World) Clear() {
	w.bodies.Clear()
	w.touching.Clear()
	w.previous.Clear()
	w.contacts = w.contacts[:0]
	w.events = StepEvents{}
}

// Len returns the number of bodies in the world.
func (w *World) Len() int {
	return w.bodies.Len()
}

// Bodies iterates over all bodies in a stable order.
func (w *World) Bodies() iter.Seq2[BodyHandle, *Body] {
	return func(yield func(BodyHandle, *Body) bool) {
		for handle, body := range w.bodies.All() {
			if !yield(BodyHandle{handle: handle}, body) {
				return
			}
		}
	}
}

// Contacts returns the contacts resolved during the latest Update. The slice
// is reused by the next call to Update.
func (w *World) Contacts() []Contact {
	return w.contacts
}

// Events returns the contact events of the latest Update.
func (w *World) Events() StepEvents {
	return w.events
}

// Stats returns timing statistics of all previous calls to Update.
func (w *World) Stats() StepStats {
	return w.stats
}

// Update advances the simulation by dt.
//
// Gravity is applied as a force to every dynamic body, then every body
// integrates itself. Body.Update performs the complete semi-implicit Euler
// step, there is no separate velocity integration afterwards. Finally all
// pairs of bodies are tested for contact and each contact is resolved
// directly. There is no separate constraint solver.
func (w *World) Update(dt float64) {
	sw := w.stats.measureStep()
	defer sw.stop()

	w.collectBodies()

	w.applyGravity()
	w.integrate(dt)
	w.collide()
}

func (w *World) collectBodies() {
	w.handles = w.handles[:0]
	w.active = w.active[:0]

	for handle, body := range w.Bodies() {
		w.handles = append(w.handles, handle)
		w.active = append(w.active, body)
	}
}

func (w *World) applyGravity() {
	sw := w.stats.measureStage(StageGravity)
	defer sw.stop()

	for _, body := range w.active {
		if body.static {
			continue
		}

		body.ApplyForce(w.gravity.Mul(body.mass))
	}
}

func (w *World) integrate(dt float64) {
	sw := w.stats.measureStage(StageIntegrate)
	defer sw.stop()

	for _, body := range w.active {
		body.Update(dt)
	}
}

func (w *World) collide() {
	sw := w.stats.measureStage(StageCollide)
	defer sw.stop()

	w.contacts = w.contacts[:0]
	w.events = StepEvents{}

	w.touching.Clear()

	var pairs int

	for i := 0; i < len(w.active); i++ {
		a := w.active[i]

		for j := i + 1; j < len(w.active); j++ {
			b := w.active[j]

			pairs += 1

			contact := CheckCollision(a, b)
			if !contact.Colliding {
				continue
			}

			ResolveCollision(contact)

			handleA, handleB := w.handles[i], w.handles[j]

			w.contacts = append(w.contacts, Contact{
				A:    handleA,
				B:    handleB,
				Info: contact,
			})

			key := makePairKey(handleA, handleB)
			w.touching.Insert(key)

			if !w.previous.Has(key) {
				w.events.Started = append(w.events.Started, ContactStarted{
					A:        handleA,
					B:        handleB,
					Position: contact.Point,
					Normal:   contact.Normal,
				})
			}
		}
	}

	for key := range w.previous.Difference(&w.touching) {
		if !w.bodies.Contains(key.A.handle) || !w.bodies.Contains(key.B.handle) {
			continue
		}

		w.events.Ended = append(w.events.Ended, ContactEnded{A: key.A, B: key.B})
	}

	// map iteration order is random, keep events deterministic
	slices.SortFunc(w.events.Ended, func(lhs, rhs ContactEnded) int {
		switch {
		case lhs.A != rhs.A:
			return compareHandles(lhs.A, rhs.A)
		default:
			return compareHandles(lhs.B, rhs.B)
		}
	})

	w.previous, w.touching = w.touching, w.previous

	w.stats.PairsTested = pairs
	w.stats.ContactsFound = len(w.contacts)
}

func compareHandles(a, b BodyHandle) int {
	switch {
	case a.less(b):
		return -1
	case b.less(a):
		return 1
	default:
		return 0
	}
}
