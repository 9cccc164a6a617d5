package gm

import (
	"math"
	"math/rand/v2"
)

// Random wraps a rand.Rand to sample geometry values. The zero value
// samples from the global source, use NewRandom for reproducible values.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random seeded with the given seed.
func NewRandom(seed uint64) Random {
	return Random{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r Random) float64() float64 {
	if r.rng == nil {
		return rand.Float64()
	}

	return r.rng.Float64()
}

// In returns a random value uniformly sampled from the given range, excluding max.
func (r Random) In(min, max float64) float64 {
	return r.float64()*(max-min) + min
}

// Angle returns a random angle uniformly sampled from the full circle
func (r Random) Angle() Rad {
	return Rad(r.In(0, 2*math.Pi))
}

// Vec returns a vector uniformly sampled from within the unit circle.
func (r Random) Vec() Vec {
	for {
		v := Vec{
			X: r.In(-1, 1),
			Y: r.In(-1, 1),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}

// VecIn returns a vector uniformly sampled from within the given rectangle.
func (r Random) VecIn(rect Rect) Vec {
	return Vec{
		X: r.In(rect.Min.X, rect.Max.X),
		Y: r.In(rect.Min.Y, rect.Max.Y),
	}
}

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Scalar](min, max S) S {
	return S(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle() Rad {
	return Random{}.Angle()
}
