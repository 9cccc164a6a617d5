package physics

import (
	"log/slog"

	"github.com/oliverbestmann/rigid/internal/arena"
)

// BodyHandle identifies a body within a World. A handle stays valid until
// the body is destroyed and never refers to a body created afterwards.
// The zero BodyHandle refers to no body.
type BodyHandle struct {
	handle arena.Handle
}

func (h BodyHandle) IsZero() bool {
	return h.handle.IsZero()
}

func (h BodyHandle) String() string {
	return h.handle.String()
}

func (h BodyHandle) LogValue() slog.Value {
	return slog.StringValue(h.String())
}

// less orders handles by slot index so pairs are stored in a canonical order.
func (h BodyHandle) less(other BodyHandle) bool {
	if h.handle.Index() != other.handle.Index() {
		return h.handle.Index() < other.handle.Index()
	}

	return h.handle.Generation() < other.handle.Generation()
}
