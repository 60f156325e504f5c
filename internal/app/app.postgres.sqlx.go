package app

import (
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/joshuarp/remote-image-loader/internal/shared/config"
)

func providePostgresSQLX(cfg config.ConfigProvider) (*sqlx.DB, error) {
	sslMode := dbString(cfg, "ssl_mode")
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbString(cfg, "host"),
		dbInt(cfg, "port"),
		dbString(cfg, "user"),
		dbString(cfg, "password"),
		dbString(cfg, "name"),
		sslMode,
	)

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db(cache): failed to open postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("db(cache): failed to ping postgres: %w", err)
	}

	return db, nil
}

func dbString(cfg config.ConfigProvider, key string) string {
	yamlKey := fmt.Sprintf("database.%s", key)
	if cfg.IsSet(yamlKey) {
		return cfg.GetString(yamlKey)
	}

	return cfg.GetString(dbEnvKey(key))
}

func dbInt(cfg config.ConfigProvider, key string) int {
	yamlKey := fmt.Sprintf("database.%s", key)
	if cfg.IsSet(yamlKey) {
		return cfg.GetInt(yamlKey)
	}

	return cfg.GetInt(dbEnvKey(key))
}

func dbEnvKey(key string) string {
	normalizedKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return fmt.Sprintf("DATABASE_%s", normalizedKey)
}
