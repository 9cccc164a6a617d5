package gm

import (
	"fmt"
	"math"
)

type Scalar interface {
	float32 | float64 | int32
}

type Vec32 = VecType[float32]
type Vec64 = VecType[float64]

type Vec = Vec64

type IVec = VecType[int32]

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

// VecX and VecY are the unit vectors along the axes.
var VecX = Vec{X: 1}
var VecY = Vec{Y: 1}

func VecOf[S Scalar](x, y S) VecType[S] {
	return VecType[S]{X: x, Y: y}
}

func VecSplat[S Scalar](value S) VecType[S] {
	return VecType[S]{X: value, Y: value}
}

type VecType[S Scalar] struct {
	X, Y S
}

func (v VecType[S]) Add(other VecType[S]) VecType[S] {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v VecType[S]) Sub(other VecType[S]) VecType[S] {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v VecType[S]) Mul(scalar S) VecType[S] {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v VecType[S]) Div(scalar S) VecType[S] {
	v.X /= scalar
	v.Y /= scalar
	return v
}

func (v VecType[S]) MulEach(other VecType[S]) VecType[S] {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v VecType[S]) DivEach(other VecType[S]) VecType[S] {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

// Dot returns the dot product of both vectors.
func (v VecType[S]) Dot(other VecType[S]) S {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3d cross product of both vectors
// extended by z=0. For a lever arm r and a force f, r.Cross(f) is the torque.
func (v VecType[S]) Cross(other VecType[S]) S {
	return v.X*other.Y - v.Y*other.X
}

// Perp returns the vector rotated by 90°.
func (v VecType[S]) Perp() VecType[S] {
	return VecType[S]{X: -v.Y, Y: v.X}
}

func (v VecType[S]) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}

// Normalized returns a vector of length one pointing into the same direction.
// The zero vector has no direction, normalizing it yields NaN components.
func (v VecType[S]) Normalized() VecType[S] {
	length := v.Length()
	v.X /= length
	v.Y /= length
	return v
}

func (v VecType[S]) Length() S {
	return S(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

func (v VecType[S]) LengthSqr() S {
	return v.X*v.X + v.Y*v.Y
}

func (v VecType[S]) DistanceTo(other VecType[S]) S {
	return other.Sub(v).Length()
}

func (v VecType[S]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
