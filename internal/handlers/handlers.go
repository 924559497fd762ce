package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/PronoFoot/internal/fixtures"
	"github.com/Alias1177/PronoFoot/internal/model"
	"github.com/Alias1177/PronoFoot/internal/odds"
	"github.com/Alias1177/PronoFoot/internal/predict"
)

// Predictor produces a prediction for one match
type Predictor interface {
	PredictOne(ctx context.Context, req predict.Request) model.PredictionResult
}

// ModelStatus reports whether the classifier artifact is loaded
type ModelStatus interface {
	Status(ctx context.Context) string
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	predictor      Predictor
	modelStatus    ModelStatus
	maxUploadBytes int64
	logger         zerolog.Logger
}

// NewHandler creates a new handler. modelStatus may be nil when no classifier is configured.
func NewHandler(predictor Predictor, modelStatus ModelStatus, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &Handler{
		predictor:      predictor,
		modelStatus:    modelStatus,
		maxUploadBytes: maxUploadBytes,
		logger:         log.With().Str("component", "http_handlers").Logger(),
	}
}

// Home is the liveness route polled by the mobile app
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "online",
		"message": "API pronostic foot OK",
	})
}

// HealthCheck returns service health and classifier state
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	modelState := "not_configured"
	if h.modelStatus != nil {
		modelState = h.modelStatus.Status(r.Context())
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "pronofoot-api",
		"model":   modelState,
	})
}

// PredictOne handles GET /predict_one?home=PSG&away=Marseille[&odds_home=..&odds_draw=..&odds_away=..]
func (h *Handler) PredictOne(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	home := strings.TrimSpace(q.Get("home"))
	away := strings.TrimSpace(q.Get("away"))
	if home == "" || away == "" {
		respondError(w, http.StatusBadRequest, "query parameters 'home' and 'away' are required")
		return
	}

	req := predict.Request{Home: home, Away: away}

	if q.Has("odds_home") || q.Has("odds_draw") || q.Has("odds_away") {
		if o, ok := odds.Parse(q.Get("odds_home"), q.Get("odds_draw"), q.Get("odds_away")); ok {
			req.Odds = &o
		} else {
			h.logger.Debug().
				Str("odds_home", q.Get("odds_home")).
				Str("odds_draw", q.Get("odds_draw")).
				Str("odds_away", q.Get("odds_away")).
				Msg("Ignoring unusable odds")
		}
	}

	respondJSON(w, http.StatusOK, h.predictor.PredictOne(r.Context(), req))
}

// FixturesResponse acknowledges an uploaded fixtures file
type FixturesResponse struct {
	Status   string `json:"status"`
	Filename string `json:"filename"`
	fixtures.Summary
	Message string `json:"message"`
}

// PredictFixtures handles POST /predict_fixtures with a multipart "file" field.
// It only summarizes the file for now.
func (h *Handler) PredictFixtures(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("file exceeds the %d byte limit", h.maxUploadBytes))
			return
		}
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid multipart upload: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "form field 'file' with a CSV file is required")
		return
	}
	defer file.Close()

	summary, err := fixtures.Summarize(file)
	if err != nil {
		h.logger.Info().Err(err).Str("filename", header.Filename).Msg("Rejected fixtures upload")
		respondError(w, http.StatusBadRequest, fmt.Sprintf("could not read %s as CSV: %v", header.Filename, err))
		return
	}

	h.logger.Info().
		Str("filename", header.Filename).
		Int("rows", summary.Rows).
		Int("columns", summary.Columns).
		Msg("Fixtures file received")

	respondJSON(w, http.StatusOK, FixturesResponse{
		Status:   model.StatusOK,
		Filename: header.Filename,
		Summary:  summary,
		Message: fmt.Sprintf("Fichier reçu : %d matchs, %d colonnes. La prédiction ligne par ligne n'est pas encore disponible.",
			summary.Rows, summary.Columns),
	})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
