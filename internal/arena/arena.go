// Package arena provides a slot storage addressed by generational handles.
//
// A Handle stays valid until its value is removed. Removing a value bumps
// the generation of its slot, so a stale Handle never resolves to a value
// that was inserted into the same slot later on.
package arena

import (
	"iter"
	"strconv"
)

// Handle identifies a value in an Arena. The zero Handle never resolves.
type Handle struct {
	index      uint32
	generation uint32
}

// IsZero returns true for the zero Handle.
func (h Handle) IsZero() bool {
	return h.generation == 0
}

// Index returns the slot index of the handle.
func (h Handle) Index() uint32 {
	return h.index
}

// Generation returns the generation of the handle.
func (h Handle) Generation() uint32 {
	return h.generation
}

func (h Handle) String() string {
	return strconv.Itoa(int(h.index)) + "v" + strconv.Itoa(int(h.generation))
}

type slot[T any] struct {
	value      *T
	generation uint32
}

// Arena owns pointers to values of type T. Pointers stay stable while the
// value is stored, as the arena only ever moves the pointers around.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	len   int
}

// Insert stores the value and returns a handle to it.
func (a *Arena[T]) Insert(value *T) Handle {
	var index uint32

	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		index = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}

	s := &a.slots[index]
	s.value = value

	// generation zero is reserved for the zero handle
	s.generation += 1
	if s.generation == 0 {
		s.generation = 1
	}

	a.len += 1

	return Handle{index: index, generation: s.generation}
}

// Get returns the value for the given handle.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if h.IsZero() || int(h.index) >= len(a.slots) {
		return nil, false
	}

	s := a.slots[h.index]
	if s.value == nil || s.generation != h.generation {
		return nil, false
	}

	return s.value, true
}

// Contains returns true if the handle resolves to a value.
func (a *Arena[T]) Contains(h Handle) bool {
	_, ok := a.Get(h)
	return ok
}

// Remove removes the value of the given handle and returns it.
// Removing an unknown or stale handle returns false and changes nothing.
func (a *Arena[T]) Remove(h Handle) (*T, bool) {
	value, ok := a.Get(h)
	if !ok {
		return nil, false
	}

	s := &a.slots[h.index]
	s.value = nil

	// invalidate all existing handles to this slot
	s.generation += 1
	if s.generation == 0 {
		s.generation = 1
	}

	a.free = append(a.free, h.index)
	a.len -= 1

	return value, true
}

// Len returns the number of values in the arena.
func (a *Arena[T]) Len() int {
	return a.len
}

// All iterates over all values in slot order.
func (a *Arena[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for idx := range a.slots {
			s := a.slots[idx]
			if s.value == nil {
				continue
			}

			if !yield(Handle{index: uint32(idx), generation: s.generation}, s.value) {
				return
			}
		}
	}
}

// Clear removes all values. Existing handles become stale.
func (a *Arena[T]) Clear() {
	for h := range a.All() {
		a.Remove(h)
	}
}
