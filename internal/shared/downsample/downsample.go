// Package downsample turns encoded image bytes into bitmaps bounded by a
// target pixel size.
package downsample

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/sync/semaphore"

	"github.com/joshuarp/remote-image-loader/internal/domain"
)

// Interpolation selects the resampling kernel.
type Interpolation string

const (
	InterpolationNearest  Interpolation = "nearest"
	InterpolationBilinear Interpolation = "bilinear"
	InterpolationBicubic  Interpolation = "bicubic"
	InterpolationLanczos3 Interpolation = "lanczos3"
)

// DefaultMaxSourcePixels caps the pixel count of a source accepted for
// decoding (64 megapixels, about 256 MiB as RGBA).
const DefaultMaxSourcePixels int64 = 64 * 1024 * 1024

// DefaultMaxInflightPixels caps the source pixels decoded at once across all
// callers.
const DefaultMaxInflightPixels int64 = 2 * DefaultMaxSourcePixels

var (
	ErrEmptyData      = errors.New("downsample: empty image data")
	ErrInvalidTarget  = errors.New("downsample: target size must be positive in both dimensions")
	ErrUnknownFormat  = errors.New("downsample: unrecognized image format")
	ErrSourceTooLarge = errors.New("downsample: source exceeds the decode pixel budget")
)

// Options configures the downsampler.
type Options struct {
	Interpolation Interpolation

	// MaxSourcePixels rejects sources with more pixels than this before any
	// pixel buffer is allocated. Zero uses DefaultMaxSourcePixels.
	MaxSourcePixels int64

	// MaxInflightPixels bounds the native-resolution buffers alive at the same
	// time. A decode waits until its source's pixels fit. Zero uses
	// DefaultMaxInflightPixels; values below MaxSourcePixels are raised to it.
	MaxInflightPixels int64
}

// Downsampler decodes encoded images. Implementations are pure: the same bytes
// and target always produce the same bitmap, and they are safe for concurrent use.
type Downsampler interface {
	// Decode returns a bitmap that fits within target, preserving aspect
	// ratio. Sources already within target are returned at native size.
	Decode(ctx context.Context, body []byte, target domain.PixelSize) (domain.Bitmap, error)

	// DecodeNative returns the bitmap at the source's own dimensions.
	DecodeNative(ctx context.Context, body []byte) (domain.Bitmap, error)
}

// New creates a Downsampler based on the provided options.
func New(opts Options) (Downsampler, error) {
	interp, err := interpolationFunc(opts.Interpolation)
	if err != nil {
		return nil, err
	}

	maxPixels := opts.MaxSourcePixels
	if maxPixels <= 0 {
		maxPixels = DefaultMaxSourcePixels
	}

	inflight := opts.MaxInflightPixels
	if inflight <= 0 {
		inflight = DefaultMaxInflightPixels
	}
	if inflight < maxPixels {
		inflight = maxPixels
	}

	return &thumbnailer{
		interp:          interp,
		maxSourcePixels: maxPixels,
		pixels:          semaphore.NewWeighted(inflight),
	}, nil
}

// ParseInterpolation maps a config value onto an Interpolation.
func ParseInterpolation(value string) (Interpolation, error) {
	interp := Interpolation(strings.ToLower(strings.TrimSpace(value)))
	if interp == "" {
		return InterpolationLanczos3, nil
	}
	if _, err := interpolationFunc(interp); err != nil {
		return "", err
	}
	return interp, nil
}

func interpolationFunc(interp Interpolation) (resize.InterpolationFunction, error) {
	switch interp {
	case InterpolationNearest:
		return resize.NearestNeighbor, nil
	case InterpolationBilinear:
		return resize.Bilinear, nil
	case InterpolationBicubic:
		return resize.Bicubic, nil
	case InterpolationLanczos3, "":
		return resize.Lanczos3, nil
	default:
		return 0, fmt.Errorf("downsample: unknown interpolation %q", interp)
	}
}
