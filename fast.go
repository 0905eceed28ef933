package vecmath

import "math"

// invSqrtFast approximates 1/sqrt(x) from the bit-level seed 0x5f3759df.
// Two Newton-Raphson steps bring the relative error under 5e-6.
func invSqrtFast(x float32) float32 {
	half := 0.5 * x
	i := math.Float32bits(x)
	i = 0x5f3759df - i>>1
	y := math.Float32frombits(i)
	y *= 1.5 - half*y*y
	y *= 1.5 - half*y*y
	return y
}
