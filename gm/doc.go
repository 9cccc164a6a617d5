// Package gm (stands for geometry math) provides some geometry primitives.
//
// It includes a simple 2d vector type called Vec, a 2d matrix type Mat, an
// affine transform matrix named Affine and an axis aligned rectangle Rect.
// The physics package builds on these types for positions, velocities,
// forces and bounding boxes.
//
// There is also a type named Rad to represent angle values in radian.
package gm
