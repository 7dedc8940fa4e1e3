// Package main is the entry point for the flight offers service.
//
//	@title						Flight Offers API
//	@version					1.0.0
//	@description				A flight offers search service that normalizes upstream Amadeus results and derives facets, price badges and a price histogram for the search UI.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/skysearch/flight-offers-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/skysearch/flight-offers-service/docs"

	// Application layers
	"github.com/skysearch/flight-offers-service/internal/adapter/amadeus"
	flighthttp "github.com/skysearch/flight-offers-service/internal/adapter/http"
	"github.com/skysearch/flight-offers-service/internal/adapter/http/middleware"
	"github.com/skysearch/flight-offers-service/internal/config"
	"github.com/skysearch/flight-offers-service/internal/infrastructure/logger"
	"github.com/skysearch/flight-offers-service/internal/obs"
	"github.com/skysearch/flight-offers-service/internal/usecase"
)

const (
	shutdownTimeout    = 10 * time.Second
	airportLoadTimeout = 60 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-offers",
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Request ID, request logging and panic recovery
	middleware.Setup(e, log.Logger)

	// Prometheus instrumentation
	metrics := obs.NewMetrics(prometheus.NewRegistry())
	e.Use(metricsMiddleware(metrics))

	setupRoutes(e, cfg, log, metrics)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupRoutes wires the upstream adapter, use cases and HTTP handlers.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger, metrics *obs.Metrics) {
	tokens := amadeus.NewTokenSource(
		cfg.Amadeus.TokenURL,
		cfg.Amadeus.ClientID,
		cfg.Amadeus.ClientSecret,
		&http.Client{Timeout: cfg.Amadeus.Timeout},
		nil,
	)
	client := amadeus.NewClient(amadeus.ClientConfig{
		BaseURL:   cfg.Amadeus.BaseURL,
		Timeout:   cfg.Amadeus.Timeout,
		MaxOffers: cfg.Amadeus.MaxOffers,
	}, tokens, log, metrics)

	// The static airport dataset is optional; when configured it is loaded
	// in the background so startup does not block on a large download.
	var airports usecase.AirportSource
	if cfg.Airports.DatasetURL != "" {
		cache := amadeus.NewAirportCache(cfg.Airports.DatasetURL, nil, log)
		airports = cache
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), airportLoadTimeout)
			defer cancel()
			if err := cache.Load(ctx); err != nil {
				log.Error().Err(err).Msg("Failed to load static airport dataset")
			}
		}()
	}

	offerSearch := usecase.NewOfferSearchUseCase(client, &usecase.Config{
		BinSize:         cfg.Pipeline.HistogramBinSize,
		StrictIntegrity: cfg.Pipeline.StrictIntegrity,
	}, log, metrics)
	locationLookup := usecase.NewLocationLookupUseCase(client, airports, log)

	handler := flighthttp.NewFlightHandler(offerSearch, locationLookup)
	flighthttp.RegisterRoutes(e, handler)

	// Operational endpoints
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// metricsMiddleware records per-request counters and latency.
func metricsMiddleware(m *obs.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			method := c.Request().Method
			path := c.Path()
			status := strconv.Itoa(c.Response().Status)

			m.IncHTTPRequestsTotal(method, path, status)
			m.ObserveHTTPRequestDuration(method, path, status, time.Since(start).Seconds())
			return nil
		}
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
