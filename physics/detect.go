package physics

import (
	"github.com/oliverbestmann/rigid/gm"
)

// fallbackNormal is used if two circles share the same center.
var fallbackNormal = gm.VecX

// CircleVsCircle tests two circles for overlap. The bodies
// of the returned contact are not set.
func CircleVsCircle(centerA gm.Vec, radiusA float64, centerB gm.Vec, radiusB float64) ContactInfo {
	delta := centerB.Sub(centerA)
	radius := radiusA + radiusB

	distSqr := delta.LengthSqr()
	if distSqr >= radius*radius {
		return ContactInfo{}
	}

	distance := delta.Length()

	normal := fallbackNormal
	if distance != 0 {
		normal = delta.Div(distance)
	}

	return ContactInfo{
		Point:       centerA.Add(normal.Mul(radiusA)),
		Normal:      normal,
		Penetration: radius - distance,
		Colliding:   true,
	}
}

// AABBvsAABB tests two axis aligned boxes for overlap. The normal
// is parallel to the axis with the smallest overlap and points
// from box A towards box B.
func AABBvsAABB(minA, maxA, minB, maxB gm.Vec) ContactInfo {
	boxA := gm.Rect{Min: minA, Max: maxA}
	boxB := gm.Rect{Min: minB, Max: maxB}

	overlap := boxA.Intersection(boxB)

	size := overlap.Size()
	if size.X <= 0 || size.Y <= 0 {
		return ContactInfo{}
	}

	delta := boxB.Center().Sub(boxA.Center())

	var normal gm.Vec
	var penetration float64

	if size.X <= size.Y {
		penetration = size.X
		normal = gm.VecX
		if delta.X < 0 {
			normal = normal.Mul(-1)
		}
	} else {
		penetration = size.Y
		normal = gm.VecY
		if delta.Y < 0 {
			normal = normal.Mul(-1)
		}
	}

	return ContactInfo{
		Point:       overlap.Center(),
		Normal:      normal,
		Penetration: penetration,
		Colliding:   true,
	}
}

// CheckCollision tests two bodies for contact.
//
// Bodies carry no shape, every body is treated as a circle
// with radius one around its position.
func CheckCollision(a, b *Body) ContactInfo {
	contact := CircleVsCircle(a.position, 1, b.position, 1)
	contact.A = a
	contact.B = b
	return contact
}
