package middlewares

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

// NewHTTPCORSMiddleware lets browser clients fetch thumbnails directly. An
// empty origin list allows any origin.
func NewHTTPCORSMiddleware(allowOrigins []string) fiber.Handler {
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	return cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowHeaders:  []string{fiber.HeaderOrigin, fiber.HeaderAccept, RequestIDHeader},
		AllowMethods:  []string{fiber.MethodGet, fiber.MethodHead, fiber.MethodDelete, fiber.MethodOptions},
		ExposeHeaders: []string{RequestIDHeader, SessionIDHeader},
	})
}
