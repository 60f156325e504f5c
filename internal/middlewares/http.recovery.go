package middlewares

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

func NewHTTPRecoveryMiddleware(logger *slog.Logger) fiber.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, recovered any) {
			logger.Error("http handler panicked",
				"request_id", RequestIDFromContext(c),
				"method", c.Method(),
				"path", c.Path(),
				"panic", recovered,
			)
		},
	})
}
