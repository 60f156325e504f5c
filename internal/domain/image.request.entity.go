package domain

import "math"

// Size is a display size in logical points.
type Size struct {
	Width  float64
	Height float64
}

// PixelSize is a size in device pixels.
type PixelSize struct {
	Width  int
	Height int
}

// IsZero reports whether either dimension is empty.
func (p PixelSize) IsZero() bool {
	return p.Width <= 0 || p.Height <= 0
}

// MaxPixelDimension is the largest width or height ToPixels produces.
const MaxPixelDimension = math.MaxInt32

// ToPixels converts a logical size into device pixels, rounding up so a
// bitmap never ends up smaller than the surface it is drawn into. A dimension
// that is not finite or does not fit in MaxPixelDimension becomes 0, which
// callers treat as an invalid target.
func (s Size) ToPixels(scale float64) PixelSize {
	if !(scale > 0) || math.IsInf(scale, 0) {
		scale = 1
	}
	return PixelSize{
		Width:  toPixels(s.Width * scale),
		Height: toPixels(s.Height * scale),
	}
}

func toPixels(v float64) int {
	v = math.Ceil(v)
	if !(v > 0) || v > MaxPixelDimension {
		return 0
	}
	return int(v)
}

type LoadOptions struct {
	// UseCache stores freshly fetched bytes into the response cache.
	// Lookups are always performed.
	UseCache bool

	// Downsample decodes into a bitmap bounded by the target pixel size.
	// When false the image is decoded at its native resolution.
	Downsample bool

	// ScaleFactor overrides the registry's device scale factor when > 0.
	ScaleFactor float64
}

// DefaultLoadOptions caches and downsamples, using the registry scale factor.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{UseCache: true, Downsample: true}
}

// ResourceRequest is one load attempt for a consumer slot. ConsumerID names
// the slot (a list row, a tile), not the URL: the same slot is reused for many
// URLs over its lifetime.
type ResourceRequest struct {
	ConsumerID string
	URL        string
	TargetSize Size
	Options    LoadOptions
}
