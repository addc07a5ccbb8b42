package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gradePredictor/app/echo-server/router"
	"gradePredictor/business/grading"
	"gradePredictor/internal/middleware"
	"gradePredictor/internal/rest"
	"gradePredictor/pkg/config"
	"gradePredictor/pkg/logger"
	"gradePredictor/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Grade Predictor", "version", cfg.App.Version)

	metrics.Init()

	profiles, err := loadProfiles(cfg.Scoring)
	if err != nil {
		logger.Fatal("Failed to load scoring profiles", "error", err)
	}

	// Init service
	gradingService, err := grading.NewService(profiles, cfg.Scoring.DefaultProfile)
	if err != nil {
		logger.Fatal("Failed to init grading service", "error", err)
	}
	logger.Info("Scoring profiles ready",
		"profiles", gradingService.ProfileNames(),
		"default", gradingService.DefaultProfile(),
	)

	// Init handler
	gradingHandler := rest.NewGradingHandler(gradingService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestTrace())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetGradingRoutes(api, gradingHandler)
	router.SetMetricsRoutes(e)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

// loadProfiles applies env simulation settings to the built-in profiles,
// then merges the optional profiles file over them.
func loadProfiles(sc config.ScoringConfig) (map[string]grading.Config, error) {
	base := grading.DefaultProfiles()
	for name, p := range base {
		p.Simulation.Seed = sc.Seed
		p.Simulation.SampleCount = sc.SampleCount
		base[name] = p
	}

	if sc.ProfilesFile == "" {
		return base, nil
	}

	profiles, err := grading.LoadProfiles(sc.ProfilesFile, base)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded scoring profiles file", "path", sc.ProfilesFile, "count", len(profiles))
	return profiles, nil
}
