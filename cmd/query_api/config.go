package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/company-query-builder/internal/config"
	"github.com/DjordjeVuckovic/company-query-builder/internal/es"
	"github.com/DjordjeVuckovic/company-query-builder/pkg/config/env"
	"github.com/DjordjeVuckovic/company-query-builder/pkg/utils"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type QueryAPIConfig struct {
	Builder  config.Config
	LogLevel slog.Level
	// Cluster is set when ES_ADDRESSES is configured; the health check then
	// also verifies that the company index exists.
	Cluster *es.ClientConfig
}

func (as *AppConfig) Load() (*QueryAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/query_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	builderCfg, err := config.FromEnv()
	if err != nil {
		slog.Error("Failed to load query builder configuration", "error", err)
		return nil, err
	}

	level := slog.LevelInfo
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			slog.Warn("Invalid LOG_LEVEL, using info", "value", raw)
			level = slog.LevelInfo
		}
	}

	return &QueryAPIConfig{
		Builder:  builderCfg,
		LogLevel: level,
		Cluster:  loadClusterConfig(),
	}, nil
}

func loadClusterConfig() *es.ClientConfig {
	addresses := utils.SplitAndTrim(os.Getenv("ES_ADDRESSES"), ",")
	if len(addresses) == 0 {
		return nil
	}

	indexName := strings.TrimSpace(os.Getenv("ES_INDEX_NAME"))
	if indexName == "" {
		indexName = "companies"
	}

	return &es.ClientConfig{
		Addresses: addresses,
		IndexName: indexName,
		Username:  os.Getenv("ES_USERNAME"),
		Password:  os.Getenv("ES_PASSWORD"),
	}
}
