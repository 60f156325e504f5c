package app

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/joshuarp/remote-image-loader/internal/handlers"
	"github.com/joshuarp/remote-image-loader/internal/services"
	"github.com/joshuarp/remote-image-loader/internal/shared/config"
)

func ThumbnailModule() fx.Option {
	return fx.Module("thumbnail",
		fx.Provide(
			fx.Annotate(
				provideThumbnailRenderService,
				fx.As(new(handlers.ThumbnailRenderService)),
			),
			handlers.NewThumbnailRenderHandler,
		),
		fx.Invoke(registerThumbnailRoutes),
	)
}

func provideThumbnailRenderService(cfg config.ConfigProvider, registry *services.ConsumerRegistry, logger *slog.Logger) *services.ThumbnailRenderService {
	return services.NewThumbnailRenderService(registry, cfg.GetDuration("thumbnails.wait_timeout"), logger)
}
