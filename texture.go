package cantus

import (
	"image"
	"math"
)

// Host-owned texture resources. The core samples these read-only; it
// never allocates, resizes, or frees them, and the host must not mutate
// them while a frame's passes are in flight.

// Texture wraps a single RGBA image sampled in [0,1] UV space with
// bilinear filtering and clamp-to-edge addressing.
type Texture struct {
	img *image.RGBA
}

// NewTexture wraps an *image.RGBA without copying.
func NewTexture(img *image.RGBA) *Texture {
	return &Texture{img: img}
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.img.Bounds().Dx() }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.img.Bounds().Dy() }

// Aspect returns width/height, or 1 for a degenerate texture.
func (t *Texture) Aspect() float64 {
	w, h := t.Width(), t.Height()
	if w == 0 || h == 0 {
		return 1
	}
	return float64(w) / float64(h)
}

// SampleUV returns the bilinear-filtered color at (u, v) in [0,1]^2.
// Coordinates outside the unit square clamp to the edge texel.
func (t *Texture) SampleUV(u, v float64) RGBA {
	return sampleBilinear(t.img, u, v)
}

// TextureArray is an indexed stack of equally-purposed image layers
// (cover art, playlist art). Layer indices are assigned by the host;
// negative instance indices mean "no image" and must be gated before
// sampling.
type TextureArray struct {
	layers []*image.RGBA
}

// NewTextureArray creates an array with the given layers.
func NewTextureArray(layers ...*image.RGBA) *TextureArray {
	return &TextureArray{layers: layers}
}

// Append adds a layer and returns its index.
func (a *TextureArray) Append(img *image.RGBA) int {
	a.layers = append(a.layers, img)
	return len(a.layers) - 1
}

// Layers returns the number of layers.
func (a *TextureArray) Layers() int { return len(a.layers) }

// Sample returns the bilinear-filtered color of layer index at (u, v).
// Out-of-range indices return transparent; the host contract is to gate
// on index >= 0 before submitting instances.
func (a *TextureArray) Sample(index int, u, v float64) RGBA {
	if a == nil || index < 0 || index >= len(a.layers) {
		return Transparent
	}
	return sampleBilinear(a.layers[index], u, v)
}

// MSDFAtlas is a prebuilt multi-channel signed distance field glyph
// atlas. The RGB channels each encode directional distance; the median
// of the three is the actual signed distance, which preserves sharp
// corners that a single-channel field would round off. Atlas generation
// is an external collaborator's job.
type MSDFAtlas struct {
	// Data is RGB pixel data, 3 bytes per pixel, row-major.
	Data []byte

	// Width and Height of the atlas in pixels.
	Width  int
	Height int

	// PxRange is the distance field range in atlas pixels; the text
	// pass scales it into screen space to derive the AA width.
	PxRange float64
}

// SampleRGB returns the three distance channels at (u, v) in [0,1]^2,
// bilinear filtered, each mapped to [0, 1].
func (a *MSDFAtlas) SampleRGB(u, v float64) (r, g, b float64) {
	if a == nil || a.Width <= 0 || a.Height <= 0 {
		return 0, 0, 0
	}
	x := u*float64(a.Width) - 0.5
	y := v*float64(a.Height) - 0.5
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	var acc [3]float64
	for dy := range 2 {
		for dx := range 2 {
			w := mixWeight(fx, dx) * mixWeight(fy, dy)
			if w == 0 {
				continue
			}
			px := clampInt(x0+dx, 0, a.Width-1)
			py := clampInt(y0+dy, 0, a.Height-1)
			off := (py*a.Width + px) * 3
			acc[0] += w * float64(a.Data[off])
			acc[1] += w * float64(a.Data[off+1])
			acc[2] += w * float64(a.Data[off+2])
		}
	}
	return acc[0] / 255, acc[1] / 255, acc[2] / 255
}

// sampleBilinear filters an RGBA image at (u, v) with clamp-to-edge
// addressing. Returns straight (non-premultiplied) color.
func sampleBilinear(img *image.RGBA, u, v float64) RGBA {
	if img == nil {
		return Transparent
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return Transparent
	}

	x := u*float64(w) - 0.5
	y := v*float64(h) - 0.5
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	var out RGBA
	for dy := range 2 {
		for dx := range 2 {
			wt := mixWeight(fx, dx) * mixWeight(fy, dy)
			if wt == 0 {
				continue
			}
			px := bounds.Min.X + clampInt(x0+dx, 0, w-1)
			py := bounds.Min.Y + clampInt(y0+dy, 0, h-1)
			i := img.PixOffset(px, py)
			out.R += wt * float64(img.Pix[i]) / 255
			out.G += wt * float64(img.Pix[i+1]) / 255
			out.B += wt * float64(img.Pix[i+2]) / 255
			out.A += wt * float64(img.Pix[i+3]) / 255
		}
	}
	return out
}

// mixWeight returns the bilinear weight of the dx-th (0 or 1) texel for
// fractional offset f.
func mixWeight(f float64, d int) float64 {
	if d == 0 {
		return 1 - f
	}
	return f
}

// clampInt restricts x to [lo, hi].
func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
