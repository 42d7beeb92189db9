package render

import (
	"image"

	"github.com/CodedNil/cantus"
	"golang.org/x/image/draw"
)

// Host-side resource ingestion. Cover and playlist art arrives from the
// network at arbitrary sizes; every layer in the texture array is
// normalized to a fixed square so instance records can address layers
// uniformly. This runs between frames, never while a Render is in
// flight.

// DefaultArtSize is the edge length in pixels that ingested art is
// resampled to.
const DefaultArtSize = 256

// IngestArt resamples src to size x size (DefaultArtSize when size <= 0)
// and appends it to the texture array, returning the new layer index.
func IngestArt(arr *cantus.TextureArray, src image.Image, size int) int {
	if size <= 0 {
		size = DefaultArtSize
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	index := arr.Append(dst)
	cantus.Logger().Info("art layer ingested",
		"index", index, "size", size, "sourceBounds", src.Bounds())
	return index
}

// WarpSource wraps an image as the warp pass's sample texture,
// resampling to size x size first so the distortion cost does not
// depend on the source resolution.
func WarpSource(src image.Image, size int) *cantus.Texture {
	if size <= 0 {
		size = DefaultArtSize
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return cantus.NewTexture(dst)
}
