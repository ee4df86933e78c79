// Package vec3 implements a three component single-precision vector.
package vec3

import (
	"fmt"

	"github.com/chewxy/math32"
)

// A Vec3 is a 3D vector of float32 components.
// Vec3s are values; no method modifies its receiver.
type Vec3 struct {
	X, Y, Z float32
}

// New returns the Vec3 (x, y, z).
// Any float32 is accepted, including NaN and infinities.
func New(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// FromArray returns the Vec3 with components a[0], a[1], a[2].
func FromArray(a [3]float32) Vec3 {
	return Vec3{a[0], a[1], a[2]}
}

// Array returns the components of v in X, Y, Z order.
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Equal reports whether all components of v and w compare equal.
// There is no tolerance, and a Vec3 with a NaN component
// is not equal to anything, not even itself.
func (v Vec3) Equal(w Vec3) bool {
	return v.X == w.X && v.Y == w.Y && v.Z == w.Z
}

// IsNaN reports whether any component of v is NaN.
func (v Vec3) IsNaN() bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y) || math32.IsNaN(v.Z)
}

// IsInf reports whether any component of v is an infinity.
func (v Vec3) IsInf() bool {
	return math32.IsInf(v.X, 0) || math32.IsInf(v.Y, 0) || math32.IsInf(v.Z, 0)
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
