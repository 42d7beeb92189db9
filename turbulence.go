package cantus

import "math"

// Domain-warped turbulence color synthesis for the pill background.
// Sampling coordinates are displaced by sinusoids of themselves over a
// fixed number of iterations, then reduced to three blend weights that
// chain-mix four anchor colors. Everything is a pure function of
// (position, time), so the field animates without storing any state.

const (
	// turbulenceIterations is the fixed warp depth. Four iterations are
	// enough to break up visible periodicity at panel scale.
	turbulenceIterations = 4

	// turbulenceTimeScale slows wall-clock time before it enters the
	// warp so the field drifts rather than boils.
	turbulenceTimeScale = 0.6
)

// Fixed rotation applied between warp iterations: cos/sin of the
// 3-4-5 angle, the usual choice for decorrelating octaves cheaply.
const (
	turbRotC = 0.8
	turbRotS = 0.6
)

// Turbulence warps a sampling position through the fixed iteration
// loop at wall-clock time t (already scaled by the caller).
func Turbulence(p Vec2, t float64) Vec2 {
	for i := range turbulenceIterations {
		fi := float64(i)
		p.X += math.Sin(p.Y+fi+t) * 0.5
		p.Y += math.Sin(p.X+1.5*fi+0.8*t) * 0.5
		p = Vec2{
			X: turbRotC*p.X - turbRotS*p.Y,
			Y: turbRotS*p.X + turbRotC*p.Y,
		}
	}
	return p
}

// TurbulenceWeights reduces a warped position to the three chained blend
// weights. Each weight is 0.5*sin(...)+0.5, so all three are in [0, 1]
// for every real input.
func TurbulenceWeights(p Vec2, t float64) (wa, wb, wc float64) {
	wa = 0.5 + 0.5*math.Sin(p.X*1.1+t*0.7)
	wb = 0.5 + 0.5*math.Sin(p.Y*0.9+p.X*0.4+t*0.5)
	wc = 0.5 + 0.5*math.Sin((p.X+p.Y)*0.7+t*0.9)
	return wa, wb, wc
}

// BlendAnchors chain-mixes the four anchor colors by the three weights:
// anchor0 toward 1 by wa, the result toward 2 by wb, then toward 3 by
// wc. Identical anchors therefore collapse to that single color no
// matter what the weights do.
func BlendAnchors(anchors [4]PackedColor, wa, wb, wc float64) RGBA {
	c := anchors[0].Unpack()
	c = c.Lerp(anchors[1].Unpack(), wa)
	c = c.Lerp(anchors[2].Unpack(), wb)
	c = c.Lerp(anchors[3].Unpack(), wc)
	return c
}

// TurbulenceColor runs the full synthesis for a point anchored to a
// pill's top-left corner: the pattern translates with the pill but does
// not stretch with it. anchor is the pill's top-left in pixels, scale
// the UI scale factor, now wall-clock seconds.
func TurbulenceColor(p, anchor Vec2, anchors [4]PackedColor, scale, now float64) RGBA {
	// World units: roughly one warp cell per 48 logical pixels.
	local := p.Sub(anchor).Div(48 * scale)
	t := now * turbulenceTimeScale
	warped := Turbulence(local, t)
	wa, wb, wc := TurbulenceWeights(warped, t)
	return BlendAnchors(anchors, wa, wb, wc)
}
