package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/PronoFoot/internal/api/predictor"
	"github.com/Alias1177/PronoFoot/internal/bot"
	"github.com/Alias1177/PronoFoot/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()

	if cfg.TelegramBotToken == "" {
		log.Fatal().Msg("TELEGRAM_BOT_TOKEN not set in environment")
	}

	// Initialize Telegram bot
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Telegram bot")
	}
	log.Info().Str("username", api.Self.UserName).Msg("Authorized on Telegram")

	requestTimeout := time.Duration(cfg.RequestTimeout) * time.Second
	client := predictor.NewClient(predictor.ClientOptions{
		BaseURL:        cfg.PredictorAPIURL,
		RequestTimeout: requestTimeout,
		RequestsPerSec: 5,
		MaxRetries:     2,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The bot still starts when the API is down; /predict replies with an error until it is back.
	healthCtx, healthCancel := context.WithTimeout(ctx, requestTimeout)
	health, err := client.Health(healthCtx)
	healthCancel()
	if err != nil {
		log.Warn().Err(err).Str("api", cfg.PredictorAPIURL).Msg("Prediction API not reachable")
	} else {
		log.Info().Str("api", cfg.PredictorAPIURL).Str("model", health["model"]).Msg("Prediction API reachable")
	}

	// Setup update configuration
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := api.GetUpdatesChan(updateConfig)

	log.Info().Str("api", cfg.PredictorAPIURL).Msg("Bot started")
	bot.New(api, client, requestTimeout).Run(ctx, updates)

	api.StopReceivingUpdates()
	log.Info().Msg("Bot stopped")
}
