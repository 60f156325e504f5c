package downsample

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/semaphore"

	"github.com/joshuarp/remote-image-loader/internal/domain"
)

var _ Downsampler = (*thumbnailer)(nil)

type thumbnailer struct {
	interp          resize.InterpolationFunction
	maxSourcePixels int64
	pixels          *semaphore.Weighted
}

func (t *thumbnailer) Decode(ctx context.Context, body []byte, target domain.PixelSize) (domain.Bitmap, error) {
	if target.IsZero() {
		return domain.Bitmap{}, ErrInvalidTarget
	}

	cfg, format, err := t.readHeader(body)
	if err != nil {
		return domain.Bitmap{}, err
	}

	release, err := t.reserve(ctx, cfg)
	if err != nil {
		return domain.Bitmap{}, err
	}
	defer release()

	if cfg.Width <= target.Width && cfg.Height <= target.Height {
		return t.decode(ctx, body)
	}

	src, err := t.decode(ctx, body)
	if err != nil {
		return domain.Bitmap{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Bitmap{}, err
	}

	thumb := resize.Thumbnail(uint(target.Width), uint(target.Height), src.Image, t.interp)
	return domain.NewBitmap(thumb, format), nil
}

func (t *thumbnailer) DecodeNative(ctx context.Context, body []byte) (domain.Bitmap, error) {
	cfg, _, err := t.readHeader(body)
	if err != nil {
		return domain.Bitmap{}, err
	}

	release, err := t.reserve(ctx, cfg)
	if err != nil {
		return domain.Bitmap{}, err
	}
	defer release()

	return t.decode(ctx, body)
}

// reserve blocks until the source's native-resolution buffer fits in the
// shared pixel budget. readHeader has already capped cfg at maxSourcePixels, which
// never exceeds the budget.
func (t *thumbnailer) reserve(ctx context.Context, cfg image.Config) (func(), error) {
	n := int64(cfg.Width) * int64(cfg.Height)
	if err := t.pixels.Acquire(ctx, n); err != nil {
		return nil, err
	}
	return func() { t.pixels.Release(n) }, nil
}

// readHeader reads only the image header, so oversized or corrupt sources are
// rejected before a pixel buffer exists.
func (t *thumbnailer) readHeader(body []byte) (image.Config, string, error) {
	if len(body) == 0 {
		return image.Config{}, "", ErrEmptyData
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(body))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return image.Config{}, "", ErrUnknownFormat
		}
		return image.Config{}, "", fmt.Errorf("downsample: failed to read %s header: %w", format, err)
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return image.Config{}, "", fmt.Errorf("downsample: %s header reports %dx%d", format, cfg.Width, cfg.Height)
	}

	if int64(cfg.Width)*int64(cfg.Height) > t.maxSourcePixels {
		return image.Config{}, "", fmt.Errorf("%w: %dx%d", ErrSourceTooLarge, cfg.Width, cfg.Height)
	}

	return cfg, format, nil
}

func (t *thumbnailer) decode(ctx context.Context, body []byte) (domain.Bitmap, error) {
	if err := ctx.Err(); err != nil {
		return domain.Bitmap{}, err
	}

	img, format, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return domain.Bitmap{}, fmt.Errorf("downsample: failed to decode %s: %w", format, err)
	}
	return domain.NewBitmap(img, format), nil
}
