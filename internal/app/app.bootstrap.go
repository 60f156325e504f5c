package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/joshuarp/remote-image-loader/internal/shared/config"
	sharedhash "github.com/joshuarp/remote-image-loader/internal/shared/hash"
	sharedlog "github.com/joshuarp/remote-image-loader/internal/shared/log"
	"github.com/joshuarp/remote-image-loader/internal/shared/metrics"
	"github.com/joshuarp/remote-image-loader/internal/shared/uid"
)

type configProfileIn struct {
	fx.In
	Profile string `name:"profile"`
}

func New(profile string, modules ...fx.Option) *fx.App {
	normalizedProfile := strings.TrimSpace(strings.ToLower(profile))
	opts := []fx.Option{
		fx.Supply(
			fx.Annotate(
				normalizedProfile,
				fx.ResultTags(`name:"profile"`),
			),
		),
		CoreModule(),
	}
	opts = append(opts, modules...)
	opts = append(opts, fx.Invoke(registerLifecycle))
	return fx.New(opts...)
}

func CoreModule() fx.Option {
	return fx.Module("core",
		fx.Provide(
			provideConfig,
			sharedlog.NewJSONLogger,
			metrics.NewRegistry,
			provideMetricsCollector,
			provideSessionIDGenerator,
			provideCacheKeyer,
			provideRedisClient,
			providePersistentTier,
			provideMemoryCache,
			provideResponseCache,
			provideFetcher,
			provideDownsampler,
			provideDispatcher,
			provideConsumerRegistry,
			provideFiberApp,
			provideRouterGroups,
		),
	)
}

func provideConfig(in configProfileIn) (config.ConfigProvider, error) {
	profile := strings.TrimSpace(strings.ToLower(in.Profile))

	loadOrder := make([]config.Options, 0, 4)
	if profile != "" && profile != "all" {
		loadOrder = append(loadOrder,
			config.Options{
				YAMLPath: fmt.Sprintf("config.%s.yaml", profile),
				EnvPath:  fmt.Sprintf(".env.%s", profile),
				Defaults: config.DefaultSettings(),
			},
		)
	}

	loadOrder = append(loadOrder,
		config.Options{
			YAMLPath: "config.yaml",
			EnvPath:  ".env",
			Defaults: config.DefaultSettings(),
		},
		config.Options{
			YAMLPath:     "config.yaml.example",
			EnvPath:      ".env.example",
			Defaults:     config.DefaultSettings(),
			AllowMissing: true,
		},
	)

	var lastErr error
	for _, opts := range loadOrder {
		provider, err := config.Init(opts)
		if err == nil {
			return provider, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func provideFiberApp(cfg config.ConfigProvider) *fiber.App {
	readTimeout := cfg.GetDuration("server.read_timeout")
	if readTimeout <= 0 {
		readTimeout = 30 * time.Second
	}

	writeTimeout := cfg.GetDuration("server.write_timeout")
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}

	return fiber.New(fiber.Config{
		AppName:      "remote-image-loader",
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})
}

func provideMetricsCollector(reg *prometheus.Registry) *metrics.Collector {
	return metrics.New(reg)
}

func provideSessionIDGenerator(cfg config.ConfigProvider) (uid.Generator, error) {
	generator, err := uid.New(uid.Options{
		Strategy: uid.ParseStrategy(cfg.GetString("session.id_strategy")),
		NodeID:   cfg.GetInt64("session.node_id"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init session id generator: %w", err)
	}

	return generator, nil
}

func provideCacheKeyer(cfg config.ConfigProvider) (sharedhash.Keyer, error) {
	return sharedhash.New(sharedhash.Options{
		Strategy: sharedhash.StrategyBlake2b,
		Salt:     cfg.GetString("cache.persistent.key_salt"),
	})
}
