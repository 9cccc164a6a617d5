package gm

import (
	"fmt"
)

// Rect is an axis aligned rectangle given by its minimum and maximum corner.
type Rect struct {
	Min, Max Vec
}

func RectWithPoints(a, b Vec) Rect {
	return Rect{
		Min: Vec{
			X: min(a.X, b.X),
			Y: min(a.Y, b.Y),
		},
		Max: Vec{
			X: max(a.X, b.X),
			Y: max(a.Y, b.Y),
		},
	}
}

func RectWithSize(size Vec) Rect {
	return Rect{
		Min: VecZero,
		Max: size,
	}
}

func RectWithCenterAndSize(center, size Vec) Rect {
	half := size.Mul(0.5)
	return Rect{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (r Rect) Center() Vec {
	return r.Min.Add(r.Max).Mul(0.5)
}

func (r Rect) Size() Vec {
	return r.Max.Sub(r.Min)
}

func (r Rect) Translate(offset Vec) Rect {
	return Rect{
		Min: r.Min.Add(offset),
		Max: r.Max.Add(offset),
	}
}

func (r Rect) Contains(p Vec) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Intersection returns the overlapping region of both rectangles.
// If the rectangles do not overlap, the size of the result is not
// positive on at least one axis.
func (r Rect) Intersection(other Rect) Rect {
	return Rect{
		Min: Vec{
			X: max(r.Min.X, other.Min.X),
			Y: max(r.Min.Y, other.Min.Y),
		},
		Max: Vec{
			X: min(r.Max.X, other.Max.X),
			Y: min(r.Max.Y, other.Max.Y),
		},
	}
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	return RectWithPoints(
		Vec{X: min(r.Min.X, other.Min.X), Y: min(r.Min.Y, other.Min.Y)},
		Vec{X: max(r.Max.X, other.Max.X), Y: max(r.Max.Y, other.Max.Y)},
	)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(min=%s, max=%s)", r.Min, r.Max)
}
