// Inspired by Physically Based Rendering, 3rd edition

// Package vecmath provides a three component float32 vector used both as a
// point/direction in space and as an RGB color.
package vecmath

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector3 is a value type. Slots 0, 1 and 2 are addressed as X, Y, Z or as
// R, G, B; both names read the same storage. Indexing outside 0..2 panics.
type Vector3 [3]float32

func New(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// Splat returns a vector with all three components set to s.
func Splat(s float32) Vector3 {
	return Vector3{s, s, s}
}

func (v Vector3) X() float32 { return v[0] }
func (v Vector3) Y() float32 { return v[1] }
func (v Vector3) Z() float32 { return v[2] }

func (v Vector3) R() float32 { return v[0] }
func (v Vector3) G() float32 { return v[1] }
func (v Vector3) B() float32 { return v[2] }

func (v *Vector3) Set(x, y, z float32) {
	v[0], v[1], v[2] = x, y, z
}

func (v *Vector3) SetVector(o Vector3) {
	*v = o
}

// Equal reports exact component-wise equality, same as ==.
func (v Vector3) Equal(o Vector3) bool {
	return v == o
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}

func (a Vector3) Add(b Vector3) Vector3 {
	return Vector3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vector3) Sub(b Vector3) Vector3 {
	return Vector3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (a Vector3) MultiplyVector(b Vector3) Vector3 {
	return Vector3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// DivideVector divides component-wise. Zero components in b give Inf or NaN.
func (a Vector3) DivideVector(b Vector3) Vector3 {
	return Vector3{a[0] / b[0], a[1] / b[1], a[2] / b[2]}
}

func (v Vector3) AddScalar(f float32) Vector3 {
	return Vector3{v[0] + f, v[1] + f, v[2] + f}
}

func (v Vector3) SubScalar(f float32) Vector3 {
	return Vector3{v[0] - f, v[1] - f, v[2] - f}
}

func (v Vector3) Multiply(f float32) Vector3 {
	return Vector3{v[0] * f, v[1] * f, v[2] * f}
}

func (v Vector3) Divide(f float32) Vector3 {
	return Vector3{v[0] / f, v[1] / f, v[2] / f}
}

func (v Vector3) Negate() Vector3 {
	return Vector3{-v[0], -v[1], -v[2]}
}

func (v *Vector3) AddAssign(o Vector3)            { *v = v.Add(o) }
func (v *Vector3) SubAssign(o Vector3)            { *v = v.Sub(o) }
func (v *Vector3) MultiplyVectorAssign(o Vector3) { *v = v.MultiplyVector(o) }
func (v *Vector3) DivideVectorAssign(o Vector3)   { *v = v.DivideVector(o) }
func (v *Vector3) AddScalarAssign(f float32)      { *v = v.AddScalar(f) }
func (v *Vector3) SubScalarAssign(f float32)      { *v = v.SubScalar(f) }
func (v *Vector3) MultiplyAssign(f float32)       { *v = v.Multiply(f) }
func (v *Vector3) DivideAssign(f float32)         { *v = v.Divide(f) }

func (v Vector3) LengthSquared() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vector3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Normalize divides by the exact length. The zero vector yields NaNs.
func (v Vector3) Normalize() Vector3 {
	return v.Divide(v.Length())
}

// NormalFast returns v scaled to unit length using an approximate reciprocal
// square root (relative error below 1e-5). v must not be the zero vector.
func (v Vector3) NormalFast() Vector3 {
	return v.Multiply(invSqrtFast(v.LengthSquared()))
}

// NormalizeFast is the in-place form of NormalFast.
func (v *Vector3) NormalizeFast() {
	*v = v.NormalFast()
}

func (v Vector3) Dot(v2 Vector3) float32 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Cross returns v × v2.
func (v Vector3) Cross(v2 Vector3) Vector3 {
	// The conversions round each product so the compiler cannot fuse them
	// into an FMA; v.Cross(v) must be exactly zero.
	return Vector3{
		float32(v[1]*v2[2]) - float32(v[2]*v2[1]),
		float32(v[2]*v2[0]) - float32(v[0]*v2[2]),
		float32(v[0]*v2[1]) - float32(v[1]*v2[0]),
	}
}

func DotProduct(a, b Vector3) float32 {
	return a.Dot(b)
}

func CrossProduct(a, b Vector3) Vector3 {
	return a.Cross(b)
}
