package services

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"log/slog"
	"time"

	"github.com/joshuarp/remote-image-loader/internal/domain"
	"github.com/joshuarp/remote-image-loader/internal/domain/vo"
)

const defaultRenderWait = 20 * time.Second

type ImageLoader interface {
	Request(ctx context.Context, req domain.ResourceRequest, onComplete func(vo.DecodeResult)) *LoadSession
	CancelSession(session *LoadSession) bool
}

// ThumbnailRenderService turns a registry delivery into an encoded PNG for a
// synchronous caller.
type ThumbnailRenderService struct {
	loader      ImageLoader
	waitTimeout time.Duration
	logger      *slog.Logger
	encoder     png.Encoder
}

func NewThumbnailRenderService(loader ImageLoader, waitTimeout time.Duration, logger *slog.Logger) *ThumbnailRenderService {
	if waitTimeout <= 0 {
		waitTimeout = defaultRenderWait
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ThumbnailRenderService{
		loader:      loader,
		waitTimeout: waitTimeout,
		logger:      logger,
		encoder:     png.Encoder{CompressionLevel: png.BestSpeed},
	}
}

// Render requests the image and waits for its delivery. It returns
// vo.ErrSuperseded when a newer request for the same consumer won, and the
// delivered *vo.LoadError when the load failed.
func (s *ThumbnailRenderService) Render(ctx context.Context, request domain.ResourceRequest) (vo.ThumbnailRender, error) {
	results := make(chan vo.DecodeResult, 1)
	session := s.loader.Request(ctx, request, func(result vo.DecodeResult) {
		results <- result
	})

	timer := time.NewTimer(s.waitTimeout)
	defer timer.Stop()

	select {
	case result := <-results:
		return s.encode(result)
	case <-session.Done():
		select {
		case result := <-results:
			return s.encode(result)
		default:
			return vo.ThumbnailRender{}, vo.ErrSuperseded
		}
	case <-timer.C:
		s.loader.CancelSession(session)
		s.logger.WarnContext(ctx, "thumbnail wait timed out",
			"session_id", session.ID(),
			"consumer_id", request.ConsumerID,
			"state", session.State().String(),
		)
		return vo.ThumbnailRender{}, vo.ErrRenderTimeout
	case <-ctx.Done():
		s.loader.CancelSession(session)
		return vo.ThumbnailRender{}, ctx.Err()
	}
}

func (s *ThumbnailRenderService) encode(result vo.DecodeResult) (vo.ThumbnailRender, error) {
	if !result.OK() {
		return vo.ThumbnailRender{}, result.Err
	}

	var buf bytes.Buffer
	if err := s.encoder.Encode(&buf, result.Bitmap.Image); err != nil {
		return vo.ThumbnailRender{}, fmt.Errorf("services: failed to encode png: %w", err)
	}

	return vo.ThumbnailRender{
		SessionID:   result.SessionID,
		ContentType: "image/png",
		Body:        buf.Bytes(),
		Width:       result.Bitmap.Width,
		Height:      result.Bitmap.Height,
	}, nil
}
