package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/PronoFoot/internal/classifier"
	"github.com/Alias1177/PronoFoot/internal/config"
	"github.com/Alias1177/PronoFoot/internal/handlers"
	"github.com/Alias1177/PronoFoot/internal/predict"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// 2. Configure logging
	setupLogging(cfg.LogLevel)
	log.Info().Msg("Starting PronoFoot API")

	// 3. Print configuration
	printConfig(cfg)

	// 4. Load the classifier before accepting traffic
	var (
		source      predict.ArtifactSource
		modelStatus handlers.ModelStatus
	)
	if cfg.ClassifierEnabled {
		store := classifier.NewStore(classifier.StoreOptions{
			ModelPath:  cfg.ModelFile(),
			SchemaPath: cfg.FeatureColumnsFile(),
			MaxWait:    time.Duration(cfg.ArtifactLoadTimeout) * time.Second,
		})
		if err := store.Warm(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Serving without classifier")
		}
		source = store
		modelStatus = store
	} else {
		log.Info().Msg("Classifier disabled, predictions without odds use the demo distribution")
	}

	// 5. Build the HTTP stack
	h := handlers.NewHandler(predict.New(source), modelStatus, cfg.MaxUploadBytes())
	router := handlers.NewRouter(h, handlers.RouterOptions{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
		RateLimit:      cfg.RateLimitRPS,
		Burst:          cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: time.Duration(cfg.RequestTimeout)*time.Second + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 6. Serve until interrupted
	go func() {
		log.Info().Int("port", cfg.Port).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutdown signal received, draining connections...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
	log.Info().Msg("Server stopped")
}

// setupLogging configures the logger
func setupLogging(logLevel string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	// Set log level from config
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}

// printConfig outputs the current configuration
func printConfig(cfg *config.Config) {
	log.Info().
		Int("Port", cfg.Port).
		Str("ModelFile", cfg.ModelFile()).
		Str("FeatureColumnsFile", cfg.FeatureColumnsFile()).
		Bool("ClassifierEnabled", cfg.ClassifierEnabled).
		Int("ArtifactLoadTimeout", cfg.ArtifactLoadTimeout).
		Int("RequestTimeout", cfg.RequestTimeout).
		Float64("RateLimitRPS", cfg.RateLimitRPS).
		Int("RateLimitBurst", cfg.RateLimitBurst).
		Strs("CORSAllowedOrigins", cfg.CORSAllowedOrigins).
		Int("MaxUploadMB", cfg.MaxUploadMB).
		Msg("Configuration loaded")
}
