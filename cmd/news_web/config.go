package main

import (
	"log/slog"
	"os"

	"github.com/ragadecode/ragadecode/internal/settings"
	"github.com/ragadecode/ragadecode/internal/upstream"
	"github.com/ragadecode/ragadecode/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type NewsWebConfig struct {
	Upstream upstream.Config
	Settings *settings.Settings
}

func (as *AppConfig) Load() (*NewsWebConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/news_web/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	upstreamCfg, err := upstream.LoadConfig()
	if err != nil {
		slog.Error("Failed to load upstream configuration from environment", "error", err)
		return nil, err
	}

	st := settings.Default()
	if path := os.Getenv("SETTINGS_PATH"); path != "" {
		st, err = settings.LoadFromFile(path)
		if err != nil {
			slog.Error("Failed to load settings file", "path", path, "error", err)
			return nil, err
		}
	}

	return &NewsWebConfig{
		Upstream: upstreamCfg,
		Settings: st,
	}, nil
}
