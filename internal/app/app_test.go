package app

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"

	configmocks "github.com/joshuarp/remote-image-loader/internal/mock/shared/config"
	"github.com/joshuarp/remote-image-loader/internal/repository"
	sharedhash "github.com/joshuarp/remote-image-loader/internal/shared/hash"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type AppHelpersSuite struct {
	suite.Suite

	cfg *configmocks.ConfigProvider
}

func (s *AppHelpersSuite) SetupTest() {
	s.cfg = configmocks.NewConfigProvider(s.T())
}

func (s *AppHelpersSuite) TestDBString_TableDriven() {
	tests := []struct {
		name      string
		setupMock func()
		expect    string
	}{
		{
			name: "prefer yaml key",
			setupMock: func() {
				s.cfg.EXPECT().IsSet("database.host").Return(true)
				s.cfg.EXPECT().GetString("database.host").Return("cache-host")
			},
			expect: "cache-host",
		},
		{
			name: "fallback to env key",
			setupMock: func() {
				s.cfg.EXPECT().IsSet("database.host").Return(false)
				s.cfg.EXPECT().GetString("DATABASE_HOST").Return("cache-env-host")
			},
			expect: "cache-env-host",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMock()

			assert.Equal(s.T(), tc.expect, dbString(s.cfg, "host"))
		})
	}
}

func (s *AppHelpersSuite) TestDBInt_TableDriven() {
	tests := []struct {
		name      string
		setupMock func()
		expect    int
	}{
		{
			name: "prefer yaml int",
			setupMock: func() {
				s.cfg.EXPECT().IsSet("database.port").Return(true)
				s.cfg.EXPECT().GetInt("database.port").Return(5433)
			},
			expect: 5433,
		},
		{
			name: "fallback to env int",
			setupMock: func() {
				s.cfg.EXPECT().IsSet("database.port").Return(false)
				s.cfg.EXPECT().GetInt("DATABASE_PORT").Return(5432)
			},
			expect: 5432,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMock()

			assert.Equal(s.T(), tc.expect, dbInt(s.cfg, "port"))
		})
	}
}

func (s *AppHelpersSuite) TestProvideFiberApp_TableDriven() {
	tests := []struct {
		name       string
		readValue  time.Duration
		writeValue time.Duration
		expRead    time.Duration
		expWrite   time.Duration
	}{
		{name: "defaults when config missing", expRead: 30 * time.Second, expWrite: 30 * time.Second},
		{name: "uses configured timeout", readValue: 10 * time.Second, writeValue: 12 * time.Second, expRead: 10 * time.Second, expWrite: 12 * time.Second},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.cfg.EXPECT().GetDuration("server.read_timeout").Return(tc.readValue)
			s.cfg.EXPECT().GetDuration("server.write_timeout").Return(tc.writeValue)

			fiberApp := provideFiberApp(s.cfg)
			require.NotNil(s.T(), fiberApp)
			assert.Equal(s.T(), tc.expRead, fiberApp.Config().ReadTimeout)
			assert.Equal(s.T(), tc.expWrite, fiberApp.Config().WriteTimeout)
		})
	}
}

func (s *AppHelpersSuite) TestProvideRedisClient_TableDriven() {
	tests := []struct {
		name      string
		host      string
		port      int
		password  string
		db        int
		expAddr   string
		expDB     int
		expPasswd string
	}{
		{
			name:      "uses configured redis settings",
			host:      "redis.internal",
			port:      6380,
			password:  "topsecret",
			db:        2,
			expAddr:   "redis.internal:6380",
			expDB:     2,
			expPasswd: "topsecret",
		},
		{
			name:    "uses default host and port when not configured",
			expAddr: "localhost:6379",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.cfg.EXPECT().GetString("redis.host").Return(tc.host)
			s.cfg.EXPECT().GetInt("redis.port").Return(tc.port)
			s.cfg.EXPECT().GetString("redis.password").Return(tc.password)
			s.cfg.EXPECT().GetInt("redis.db").Return(tc.db)

			client := provideRedisClient(s.cfg)
			require.NotNil(s.T(), client)
			defer client.Close()

			opts := client.Options()
			assert.Equal(s.T(), tc.expAddr, opts.Addr)
			assert.Equal(s.T(), tc.expDB, opts.DB)
			assert.Equal(s.T(), tc.expPasswd, opts.Password)
		})
	}
}

func (s *AppHelpersSuite) TestProvideSessionIDGenerator_TableDriven() {
	tests := []struct {
		name     string
		strategy string
		wantErr  bool
	}{
		{name: "uuidv7 by default", strategy: ""},
		{name: "uuidv7", strategy: "UUIDv7"},
		{name: "snowflake", strategy: "snowflake"},
		{name: "unknown strategy", strategy: "ulid", wantErr: true},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.cfg.EXPECT().GetString("session.id_strategy").Return(tc.strategy)
			s.cfg.EXPECT().GetInt64("session.node_id").Return(int64(7))

			generator, err := provideSessionIDGenerator(s.cfg)
			if tc.wantErr {
				assert.Error(s.T(), err)
				assert.Nil(s.T(), generator)
				return
			}

			require.NoError(s.T(), err)
			id, err := generator.Generate(s.T().Context())
			require.NoError(s.T(), err)
			assert.NotEmpty(s.T(), id)
		})
	}
}

func (s *AppHelpersSuite) TestProvidePersistentTier_TableDriven() {
	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer redisClient.Close()

	tests := []struct {
		name      string
		backend   string
		setupMock func()
		assertion func(persistentTierOut, error)
	}{
		{
			name:    "disabled",
			backend: "none",
			assertion: func(out persistentTierOut, err error) {
				require.NoError(s.T(), err)
				assert.Nil(s.T(), out.Tier)
				assert.Nil(s.T(), out.CacheDB)
			},
		},
		{
			name:    "empty backend is disabled",
			backend: "",
			assertion: func(out persistentTierOut, err error) {
				require.NoError(s.T(), err)
				assert.Nil(s.T(), out.Tier)
			},
		},
		{
			name:    "redis",
			backend: " Redis ",
			setupMock: func() {
				s.cfg.EXPECT().GetString("cache.persistent.prefix").Return("thumbs")
			},
			assertion: func(out persistentTierOut, err error) {
				require.NoError(s.T(), err)
				require.NotNil(s.T(), out.Tier)
				assert.IsType(s.T(), &repository.RedisCache{}, out.Tier)
				assert.Equal(s.T(), repository.TierRedis, out.Tier.Name())
				assert.Nil(s.T(), out.CacheDB)
			},
		},
		{
			name:    "unknown backend",
			backend: "memcached",
			assertion: func(out persistentTierOut, err error) {
				assert.ErrorContains(s.T(), err, `unknown persistent cache backend "memcached"`)
				assert.Nil(s.T(), out.Tier)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.cfg.EXPECT().GetString("cache.persistent.backend").Return(tc.backend)
			s.cfg.EXPECT().GetInt64("cache.persistent.budget_bytes").Return(int64(1 << 20))
			if tc.setupMock != nil {
				tc.setupMock()
			}

			out, err := providePersistentTier(persistentTierIn{
				Config: s.cfg,
				Logger: newTestLogger(),
				Keyer:  sharedhash.NewBlake2b(""),
				Redis:  redisClient,
			})
			tc.assertion(out, err)
		})
	}
}

func (s *AppHelpersSuite) TestProvideDownsampler_TableDriven() {
	tests := []struct {
		name          string
		interpolation string
		wantErr       bool
	}{
		{name: "default interpolation", interpolation: ""},
		{name: "bilinear", interpolation: "bilinear"},
		{name: "unknown interpolation", interpolation: "sinc", wantErr: true},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.cfg.EXPECT().GetString("decode.interpolation").Return(tc.interpolation)
			if !tc.wantErr {
				s.cfg.EXPECT().GetInt64("decode.max_source_pixels").Return(int64(0))
				s.cfg.EXPECT().GetInt64("decode.max_inflight_pixels").Return(int64(0))
			}

			downsampler, err := provideDownsampler(s.cfg)
			if tc.wantErr {
				assert.ErrorContains(s.T(), err, "unknown interpolation")
				return
			}
			require.NoError(s.T(), err)
			assert.NotNil(s.T(), downsampler)
		})
	}
}

func (s *AppHelpersSuite) TestProvideFetcher() {
	s.cfg.EXPECT().GetDuration("fetch.timeout").Return(5 * time.Second)
	s.cfg.EXPECT().GetString("fetch.user_agent").Return("")
	s.cfg.EXPECT().GetInt("fetch.max_redirects").Return(3)
	s.cfg.EXPECT().GetInt64("fetch.max_body_bytes").Return(int64(1 << 20))
	s.cfg.EXPECT().GetInt64("fetch.max_concurrent").Return(int64(4))

	assert.NotNil(s.T(), provideFetcher(s.cfg))
}

func (s *AppHelpersSuite) TestProvideConfig_FallsBackToDefaults() {
	cfg, err := provideConfig(configProfileIn{Profile: "thumbnails"})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), "defaults", cfg.Source())
	assert.Equal(s.T(), 8080, cfg.GetInt("server.port"))
	assert.Equal(s.T(), "none", cfg.GetString("cache.persistent.backend"))
	assert.Equal(s.T(), 20*time.Second, cfg.GetDuration("thumbnails.wait_timeout"))
}

func TestAppHelpersSuite(t *testing.T) {
	suite.Run(t, new(AppHelpersSuite))
}

func TestAppGraph_Validates(t *testing.T) {
	err := fx.ValidateApp(
		fx.Supply(
			fx.Annotate(
				"all",
				fx.ResultTags(`name:"profile"`),
			),
		),
		CoreModule(),
		ThumbnailModule(),
		CacheModule(),
		fx.Invoke(registerLifecycle),
	)
	require.NoError(t, err)
}
