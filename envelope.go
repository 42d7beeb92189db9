package cantus

// Scalar helpers shared by every pass. These mirror the GPU intrinsics
// the evaluators were written against, including smoothstep's tolerance
// for reversed edges (edge0 > edge1 inverts the ramp).

// progressEpsilon is the threshold below which an animation channel is
// considered fully idle.
const progressEpsilon = 1e-4

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Saturate restricts x to [0, 1].
func Saturate(x float64) float64 {
	return Clamp(x, 0, 1)
}

// Mix performs linear interpolation between a and b.
func Mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Step returns 0 if x < edge and 1 otherwise.
func Step(edge, x float64) float64 {
	if x < edge {
		return 0
	}
	return 1
}

// Smoothstep returns the Hermite interpolation of x between edge0 and
// edge1: 0 at edge0, 1 at edge1, with zero slope at both ends. Reversed
// edges (edge0 > edge1) produce the mirrored ramp, which the icon growth
// curve relies on.
func Smoothstep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// EnvelopeActive maps an animation progress value in [0, 1] to a
// visibility weight. A channel appears as soon as progress leaves zero,
// holds fully visible through progress 0.5, then fades out by 1. Stale
// events (progress past 1) therefore stop contributing without any
// explicit state transition.
func EnvelopeActive(progress float64) float64 {
	return Step(progressEpsilon, progress) * (1 - Smoothstep(0.5, 1.0, progress))
}
