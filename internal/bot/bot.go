package bot

import (
	"context"
	"errors"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/PronoFoot/internal/model"
	"github.com/Alias1177/PronoFoot/internal/odds"
)

// Sender is the subset of *tgbotapi.BotAPI used to reply
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// PredictionClient fetches predictions from the API
type PredictionClient interface {
	PredictOne(ctx context.Context, home, away string, o *odds.Odds) (model.PredictionResult, error)
}

// Bot answers chat commands. It keeps no per-user state.
type Bot struct {
	sender  Sender
	client  PredictionClient
	timeout time.Duration
	logger  zerolog.Logger
}

// New creates a bot. timeout bounds each API call; zero means 30s.
func New(sender Sender, client PredictionClient, timeout time.Duration) *Bot {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Bot{
		sender:  sender,
		client:  client,
		timeout: timeout,
		logger:  log.With().Str("component", "tgbot").Logger(),
	}
}

// Run handles updates until ctx is cancelled or the channel closes.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message != nil {
				b.HandleMessage(ctx, update.Message)
			}
		}
	}
}

// HandleMessage processes one incoming message
func (b *Bot) HandleMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if !message.IsCommand() {
		b.reply(chatID, helpText)
		return
	}

	switch message.Command() {
	case "start":
		b.reply(chatID, welcomeText)
	case "help":
		b.reply(chatID, helpText)
	case "predict":
		b.predict(ctx, chatID, message.CommandArguments())
	default:
		b.reply(chatID, "Commande inconnue. Tapez /help.")
	}
}

func (b *Bot) predict(ctx context.Context, chatID int64, args string) {
	match, err := ParsePredict(args)
	if err != nil {
		text := "Format : /predict <domicile> vs <extérieur> [cote 1] [cote N] [cote 2]"
		if errors.Is(err, ErrInvalidOdds) {
			text = "Les cotes doivent être des nombres décimaux supérieurs à 1.0."
		}
		b.reply(chatID, text)
		return
	}

	logger := b.logger.With().Int64("chat_id", chatID).Str("home", match.Home).Str("away", match.Away).Logger()

	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	result, err := b.client.PredictOne(ctx, match.Home, match.Away, match.Odds)
	if err != nil {
		logger.Error().Err(err).Msg("Prediction request failed")
		b.reply(chatID, "Le service de pronostic est indisponible, réessayez plus tard.")
		return
	}

	logger.Info().Str("prediction", result.Prediction).Str("source", result.Source).Msg("Prediction sent")
	b.reply(chatID, FormatPrediction(result))
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.sender.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send message")
	}
}
