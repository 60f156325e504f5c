package app

import (
	"go.uber.org/fx"

	"github.com/joshuarp/remote-image-loader/internal/handlers"
	"github.com/joshuarp/remote-image-loader/internal/repository"
)

// CacheModule exposes cache administration endpoints.
func CacheModule() fx.Option {
	return fx.Module("cache",
		fx.Provide(
			provideCachePurger,
			handlers.NewCachePurgeHandler,
		),
		fx.Invoke(registerCacheRoutes),
	)
}

func provideCachePurger(cache *repository.ResponseCache) handlers.ResponseCachePurger {
	return cache
}
