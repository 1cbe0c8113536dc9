package main

import (
	"log/slog"
	"os"

	"github.com/ragadecode/ragadecode/internal/catalog"
	"github.com/ragadecode/ragadecode/internal/geo"
	"github.com/ragadecode/ragadecode/internal/incidents"
	"github.com/ragadecode/ragadecode/internal/router"
	"github.com/ragadecode/ragadecode/internal/server"
	"github.com/ragadecode/ragadecode/internal/upstream"
	pkgserver "github.com/ragadecode/ragadecode/pkg/server"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	healthChecker := pkgserver.NewOkHealthChecker()

	s := server.New(sCfg).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health", healthChecker)

	client := upstream.NewClient(cfg.Upstream)

	incidentSvc := incidents.NewService(client)
	catalogSvc := catalog.NewService(client)
	heatmapSvc := geo.NewHeatmapService(client, cfg.Settings.Heatmap.Tags)

	newsRouter := router.NewNewsRouter(s.Echo, incidentSvc, catalogSvc, heatmapSvc,
		router.WithWindow(cfg.Settings.Timeline.DaysBefore, cfg.Settings.Timeline.DaysAfter),
		router.WithDecks(cfg.Settings.Decks.Hashtags, cfg.Settings.Decks.Limit),
	)
	newsRouter.Bind()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
