package app

import (
	"fmt"
	"log/slog"

	"github.com/joshuarp/remote-image-loader/internal/repository"
	"github.com/joshuarp/remote-image-loader/internal/services"
	"github.com/joshuarp/remote-image-loader/internal/shared/config"
	"github.com/joshuarp/remote-image-loader/internal/shared/downsample"
	"github.com/joshuarp/remote-image-loader/internal/shared/fetch"
	"github.com/joshuarp/remote-image-loader/internal/shared/metrics"
	"github.com/joshuarp/remote-image-loader/internal/shared/uid"
)

func provideFetcher(cfg config.ConfigProvider) fetch.Fetcher {
	return fetch.Coalesce(fetch.New(fetch.Options{
		Timeout:       cfg.GetDuration("fetch.timeout"),
		UserAgent:     cfg.GetString("fetch.user_agent"),
		MaxRedirects:  cfg.GetInt("fetch.max_redirects"),
		MaxBodyBytes:  cfg.GetInt64("fetch.max_body_bytes"),
		MaxConcurrent: cfg.GetInt64("fetch.max_concurrent"),
	}))
}

func provideDownsampler(cfg config.ConfigProvider) (downsample.Downsampler, error) {
	interpolation, err := downsample.ParseInterpolation(cfg.GetString("decode.interpolation"))
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	return downsample.New(downsample.Options{
		Interpolation:     interpolation,
		MaxSourcePixels:   cfg.GetInt64("decode.max_source_pixels"),
		MaxInflightPixels: cfg.GetInt64("decode.max_inflight_pixels"),
	})
}

func provideDispatcher(logger *slog.Logger) *services.SerialDispatcher {
	return services.NewSerialDispatcher(logger)
}

func provideConsumerRegistry(
	cfg config.ConfigProvider,
	cache *repository.ResponseCache,
	fetcher fetch.Fetcher,
	downsampler downsample.Downsampler,
	ids uid.Generator,
	dispatcher *services.SerialDispatcher,
	logger *slog.Logger,
	collector *metrics.Collector,
) *services.ConsumerRegistry {
	return services.NewConsumerRegistry(
		cache,
		fetcher,
		downsampler,
		ids,
		dispatcher,
		logger,
		collector,
		services.RegistryOptions{
			ScaleFactor:          cfg.GetFloat64("display.scale_factor"),
			MaxConcurrentDecodes: cfg.GetInt64("decode.max_concurrent"),
		},
	)
}
