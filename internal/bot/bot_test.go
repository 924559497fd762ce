package bot

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alias1177/PronoFoot/internal/model"
	"github.com/Alias1177/PronoFoot/internal/odds"
)

type recordingSender struct {
	sent []tgbotapi.MessageConfig
}

func (s *recordingSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		s.sent = append(s.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

type stubClient struct {
	calls  int
	home   string
	away   string
	odds   *odds.Odds
	result model.PredictionResult
	err    error
}

func (c *stubClient) PredictOne(ctx context.Context, home, away string, o *odds.Odds) (model.PredictionResult, error) {
	c.calls++
	c.home, c.away, c.odds = home, away, o
	return c.result, c.err
}

func command(text string, length int) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: 42},
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: length},
		},
	}
}

func TestHandleMessage_Predict(t *testing.T) {
	sender := &recordingSender{}
	client := &stubClient{result: model.PredictionResult{
		Status: model.StatusOK, Home: "PSG", Away: "Marseille",
		Prediction: "Victoire de PSG", PHome: 0.805, PDraw: 0.129, PAway: 0.066,
		Source: model.SourceOdds,
	}}
	b := New(sender, client, 0)

	b.HandleMessage(context.Background(), command("/predict PSG vs Marseille 1.15 7.20 14.0", len("/predict")))

	require.Equal(t, 1, client.calls)
	assert.Equal(t, "PSG", client.home)
	assert.Equal(t, "Marseille", client.away)
	require.NotNil(t, client.odds)
	assert.Equal(t, 1.15, client.odds.Home)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(42), sender.sent[0].ChatID)
	assert.Contains(t, sender.sent[0].Text, "Victoire de PSG")
}

func TestHandleMessage_Replies(t *testing.T) {
	tests := []struct {
		name     string
		message  *tgbotapi.Message
		wantText string
	}{
		{name: "Start", message: command("/start", 6), wantText: "Bienvenue"},
		{name: "Help", message: command("/help", 5), wantText: "Commandes disponibles"},
		{name: "Unknown command", message: command("/odds", 5), wantText: "Commande inconnue"},
		{name: "Plain text", message: &tgbotapi.Message{Text: "hello", Chat: &tgbotapi.Chat{ID: 42}}, wantText: "/predict"},
		{name: "Bad predict arguments", message: command("/predict PSG", 8), wantText: "Format"},
		{name: "Invalid odds", message: command("/predict A vs B 0.5 2 3", 8), wantText: "supérieurs à 1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &recordingSender{}
			client := &stubClient{}
			b := New(sender, client, 0)

			b.HandleMessage(context.Background(), tt.message)

			assert.Equal(t, 0, client.calls)
			require.Len(t, sender.sent, 1)
			assert.Contains(t, sender.sent[0].Text, tt.wantText)
		})
	}
}

func TestHandleMessage_APIFailure(t *testing.T) {
	sender := &recordingSender{}
	client := &stubClient{err: errors.New("connection refused")}
	b := New(sender, client, 0)

	b.HandleMessage(context.Background(), command("/predict A vs B", 8))

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].Text, "indisponible")
}

func TestRun_StopsWhenChannelCloses(t *testing.T) {
	sender := &recordingSender{}
	b := New(sender, &stubClient{}, 0)

	updates := make(chan tgbotapi.Update, 2)
	updates <- tgbotapi.Update{Message: command("/help", 5)}
	updates <- tgbotapi.Update{}
	close(updates)

	b.Run(context.Background(), updates)

	assert.Len(t, sender.sent, 1)
}
