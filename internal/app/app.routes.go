package app

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/joshuarp/remote-image-loader/internal/handlers"
	"github.com/joshuarp/remote-image-loader/internal/middlewares"
	"github.com/joshuarp/remote-image-loader/internal/services"
	"github.com/joshuarp/remote-image-loader/internal/shared/config"
	"github.com/joshuarp/remote-image-loader/internal/shared/uid"
)

type routerGroupsIn struct {
	fx.In

	App      *fiber.App
	Config   config.ConfigProvider
	Logger   *slog.Logger
	IDs      uid.Generator
	Registry *prometheus.Registry
	Loader   *services.ConsumerRegistry
}

type routerGroupsOut struct {
	fx.Out
	API fiber.Router `name:"api"`
}

func provideRouterGroups(in routerGroupsIn) routerGroupsOut {
	app := in.App

	app.Use(middlewares.NewHTTPRecoveryMiddleware(in.Logger))
	app.Use(middlewares.NewHTTPRequestIDMiddleware(in.IDs))
	app.Use(middlewares.NewHTTPCORSMiddleware(in.Config.GetStringSlice("server.cors.allow_origins")))
	app.Use(middlewares.NewHTTPRequestResponseLogMiddleware(in.Logger))

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":          "ok",
			"active_sessions": in.Loader.Len(),
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(in.Registry, promhttp.HandlerOpts{})))

	return routerGroupsOut{
		API: app.Group("/api/v1"),
	}
}

type thumbnailRoutesIn struct {
	fx.In
	API     fiber.Router `name:"api"`
	Handler *handlers.ThumbnailRenderHandler
}

func registerThumbnailRoutes(in thumbnailRoutesIn) {
	in.Handler.Register(in.API)
}

type cacheRoutesIn struct {
	fx.In
	API     fiber.Router `name:"api"`
	Handler *handlers.CachePurgeHandler
}

func registerCacheRoutes(in cacheRoutesIn) {
	in.Handler.Register(in.API)
}
