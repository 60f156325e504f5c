package middlewares

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"

	"github.com/joshuarp/remote-image-loader/internal/shared/uid"
)

const (
	RequestIDHeader = "X-Request-ID"
	SessionIDHeader = "X-Session-ID"
)

// NewHTTPRequestIDMiddleware tags every request with an ID drawn from ids, so
// request IDs and session IDs share one format. A nil generator keeps fiber's
// default.
func NewHTTPRequestIDMiddleware(ids uid.Generator) fiber.Handler {
	cfg := requestid.Config{Header: RequestIDHeader}
	if ids != nil {
		cfg.Generator = func() string {
			id, err := ids.Generate(context.Background())
			if err != nil {
				return uuid.NewString()
			}
			return id
		}
	}

	return requestid.New(cfg)
}

func RequestIDFromContext(c fiber.Ctx) string {
	requestID := requestid.FromContext(c)
	if requestID != "" {
		return requestID
	}

	return c.Get(RequestIDHeader)
}
