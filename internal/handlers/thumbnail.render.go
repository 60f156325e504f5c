package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/remote-image-loader/internal/domain"
	"github.com/joshuarp/remote-image-loader/internal/domain/vo"
	"github.com/joshuarp/remote-image-loader/internal/middlewares"
)

type ThumbnailRenderService interface {
	Render(ctx context.Context, request domain.ResourceRequest) (vo.ThumbnailRender, error)
}

type ThumbnailRenderHandler struct {
	service ThumbnailRenderService
	logger  *slog.Logger
}

func NewThumbnailRenderHandler(service ThumbnailRenderService, logger *slog.Logger) *ThumbnailRenderHandler {
	return &ThumbnailRenderHandler{service: service, logger: logger}
}

func (h *ThumbnailRenderHandler) Register(router fiber.Router) {
	router.Get("/thumbnails", h.Handle)
}

func (h *ThumbnailRenderHandler) Handle(c fiber.Ctx) error {
	request, err := parseThumbnailQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	render, err := h.service.Render(c.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, vo.ErrInvalidRequest):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, vo.ErrSuperseded):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "superseded by a newer request"})
		case errors.Is(err, vo.ErrNetwork):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to fetch image"})
		case errors.Is(err, vo.ErrDecode):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "failed to decode image"})
		case errors.Is(err, vo.ErrRenderTimeout):
			return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{"error": "timed out waiting for image"})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return c.Status(fiber.StatusRequestTimeout).JSON(fiber.Map{"error": "request cancelled"})
		default:
			h.logger.Error("failed to render thumbnail",
				"consumer_id", request.ConsumerID,
				"url", request.URL,
				"error", err,
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
	}

	c.Set(middlewares.SessionIDHeader, render.SessionID)
	c.Set("X-Image-Width", strconv.Itoa(render.Width))
	c.Set("X-Image-Height", strconv.Itoa(render.Height))
	c.Set(fiber.HeaderContentType, render.ContentType)
	return c.Status(fiber.StatusOK).Send(render.Body)
}

func parseThumbnailQuery(c fiber.Ctx) (domain.ResourceRequest, error) {
	consumerID := strings.TrimSpace(c.Query("consumer_id"))
	if consumerID == "" {
		return domain.ResourceRequest{}, errors.New("consumer_id is required")
	}

	url := strings.TrimSpace(c.Query("url"))
	if url == "" {
		return domain.ResourceRequest{}, errors.New("url is required")
	}

	width, err := positiveFloatQuery(c, "width")
	if err != nil {
		return domain.ResourceRequest{}, err
	}

	height, err := positiveFloatQuery(c, "height")
	if err != nil {
		return domain.ResourceRequest{}, err
	}

	options := domain.DefaultLoadOptions()

	if raw := c.Query("scale"); raw != "" {
		scale, err := strconv.ParseFloat(raw, 64)
		if err != nil || !inPixelRange(scale) {
			return domain.ResourceRequest{}, errors.New("scale must be a positive number")
		}
		options.ScaleFactor = scale
	}

	if options.Downsample, err = boolQuery(c, "downsample", options.Downsample); err != nil {
		return domain.ResourceRequest{}, err
	}

	if options.UseCache, err = boolQuery(c, "cache", options.UseCache); err != nil {
		return domain.ResourceRequest{}, err
	}

	return domain.ResourceRequest{
		ConsumerID: consumerID,
		URL:        url,
		TargetSize: domain.Size{Width: width, Height: height},
		Options:    options,
	}, nil
}

func positiveFloatQuery(c fiber.Ctx, key string) (float64, error) {
	value, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil || !inPixelRange(value) {
		return 0, fmt.Errorf("%s must be a positive number", key)
	}
	return value, nil
}

// inPixelRange rejects NaN, infinities and sizes no bitmap could have.
func inPixelRange(value float64) bool {
	return value > 0 && value <= domain.MaxPixelDimension
}

func boolQuery(c fiber.Ctx, key string, fallback bool) (bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean", key)
	}
	return value, nil
}
