package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/seogestao/condogest/internal/config"
	"github.com/seogestao/condogest/internal/repository/local"
	"github.com/seogestao/condogest/internal/repository/mongodb"
	"github.com/seogestao/condogest/internal/repository/sheets"
	"github.com/seogestao/condogest/internal/scheduler"
	"github.com/seogestao/condogest/internal/server/auth"
	"github.com/seogestao/condogest/internal/server/handlers"
	"github.com/seogestao/condogest/internal/server/router"
	assemblysvc "github.com/seogestao/condogest/internal/service/assembly"
	maintenancesvc "github.com/seogestao/condogest/internal/service/maintenance"
	reportingsvc "github.com/seogestao/condogest/internal/service/reporting"
	"github.com/seogestao/condogest/pkg/clients/gemini"
	"github.com/seogestao/condogest/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoRepo, err := mongodb.NewRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	staffStore, err := local.NewStaffStore(cfg.Staff.Path)
	if err != nil {
		baseLogger.Fatal("failed to open staff store", zap.Error(err))
	}
	defer func() {
		if err := staffStore.Close(); err != nil {
			baseLogger.Error("failed to close staff store", zap.Error(err))
		}
	}()

	var exporter sheets.Exporter
	if cfg.Sheets.SpreadsheetID != "" {
		exporter, err = sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
	} else {
		baseLogger.Warn("spreadsheet id missing, report export disabled")
	}

	var bridge gemini.Client
	if cfg.Gemini.APIKey != "" {
		bridge = gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model, baseLogger.Named("clients.gemini"))
		baseLogger.Info("gemini drafting bridge enabled", zap.String("model", cfg.Gemini.Model))
	} else {
		bridge = gemini.NewDisabled()
		baseLogger.Warn("gemini api key missing, drafting degrades to fallback text")
	}

	reportingSvc := reportingsvc.NewService(mongoRepo, exporter, baseLogger.Named("svc.reporting"))
	maintenanceSvc := maintenancesvc.NewService(mongoRepo, baseLogger.Named("svc.maintenance"))
	ledger := assemblysvc.NewLedger(mongoRepo, bridge, cfg.Building, baseLogger.Named("svc.assembly"))

	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret)

	engine := router.New(router.Handlers{
		Auth:        handlers.NewAuthHandler(mongoRepo, issuer, baseLogger.Named("handlers.auth")),
		Dashboard:   handlers.NewDashboardHandler(mongoRepo, baseLogger.Named("handlers.dashboard")),
		Fractions:   handlers.NewFractionHandler(mongoRepo, baseLogger.Named("handlers.fractions")),
		Finance:     handlers.NewFinanceHandler(mongoRepo, baseLogger.Named("handlers.finance")),
		Maintenance: handlers.NewMaintenanceHandler(maintenanceSvc, baseLogger.Named("handlers.maintenance")),
		Assemblies:  handlers.NewAssemblyHandler(ledger, mongoRepo, baseLogger.Named("handlers.assemblies")),
		Legal:       handlers.NewLegalHandler(bridge, baseLogger.Named("handlers.legal")),
		Registry:    handlers.NewRegistryHandler(mongoRepo, baseLogger.Named("handlers.registry")),
		Staff:       handlers.NewStaffHandler(staffStore, baseLogger.Named("handlers.staff")),
	}, issuer, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Reporting, reportingSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
