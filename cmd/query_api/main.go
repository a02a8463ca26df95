// Package main Company Query Builder API
// @title Company Query Builder API
// @version 2.19
// @description Translates company search parameters into Elasticsearch query documents
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"os"

	_ "github.com/DjordjeVuckovic/company-query-builder/docs"
	"github.com/DjordjeVuckovic/company-query-builder/internal/es"
	"github.com/DjordjeVuckovic/company-query-builder/internal/router"
	"github.com/DjordjeVuckovic/company-query-builder/internal/search"
	"github.com/DjordjeVuckovic/company-query-builder/internal/server"
	pkgserver "github.com/DjordjeVuckovic/company-query-builder/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
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
	slog.SetLogLoggerLevel(cfg.LogLevel)

	builder := search.NewCompanyQueryBuilder(cfg.Builder)

	healthChecker := pkgserver.NewProbeHealthChecker("company_query_builder", func(ctx context.Context) error {
		_, err := builder.Build(url.Values{})
		return err
	})
	if cfg.Cluster != nil {
		client, err := es.NewClient(*cfg.Cluster)
		if err != nil {
			slog.Error("Failed to create Elasticsearch client", "error", err)
			os.Exit(1)
		}
		builderProbe := healthChecker
		indexProbe := es.IndexProbe(client, cfg.Cluster.IndexName)
		healthChecker = pkgserver.NewProbeHealthChecker("company_index", func(ctx context.Context) error {
			if !builderProbe.Healthy(ctx) {
				return errors.New("query builder self-check failed")
			}
			return indexProbe(ctx)
		})
	}

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler(cfg.Builder.Version).
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Company Query Builder API is running")
	})

	companyRouter := router.NewCompanyRouter(s.Echo, builder, cfg.Builder.Version)
	companyRouter.Bind()

	slog.Info("Query builder configured",
		"version", cfg.Builder.Version,
		"results_limit", cfg.Builder.ResultsLimitDefault,
		"page_size", cfg.Builder.PageSizeDefault,
		"allowed_params", cfg.Builder.AllowedParams)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
