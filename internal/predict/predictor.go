package predict

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/PronoFoot/internal/classifier"
	"github.com/Alias1177/PronoFoot/internal/features"
	"github.com/Alias1177/PronoFoot/internal/model"
	"github.com/Alias1177/PronoFoot/internal/odds"
)

// PredictionModelError is the prediction label returned in degraded mode.
const PredictionModelError = "erreur_modele"

// DemoProbabilities is served when neither odds nor a classifier are configured.
var DemoProbabilities = model.Probabilities{Home: 0.30, Draw: 0.20, Away: 0.50}

// ArtifactSource provides the loaded classifier and feature schema.
type ArtifactSource interface {
	Get(ctx context.Context) (classifier.Artifacts, error)
}

// Request is a single match to predict
type Request struct {
	Home string
	Away string
	// Odds is optional; ignored unless all three prices are usable.
	Odds *odds.Odds
}

// Predictor chooses a probability source per request: odds, then classifier,
// then a fixed fallback. It holds no per-request state.
type Predictor struct {
	source ArtifactSource
	logger zerolog.Logger
}

// New creates a predictor. A nil source means no classifier is configured
// and requests without odds get the demo distribution.
func New(source ArtifactSource) *Predictor {
	return &Predictor{
		source: source,
		logger: log.With().Str("component", "predictor").Logger(),
	}
}

// PredictOne never fails: every error on the classifier path degrades to a
// uniform distribution flagged with an error status.
func (p *Predictor) PredictOne(ctx context.Context, req Request) model.PredictionResult {
	logger := p.logger.With().Str("home", req.Home).Str("away", req.Away).Logger()

	if req.Odds != nil && req.Odds.Usable() {
		margin := odds.Overround(*req.Odds)
		logger.Debug().Float64("overround", margin).Msg("Using bookmaker odds")
		return Compose(odds.Normalize(*req.Odds), req.Home, req.Away, model.SourceOdds,
			fmt.Sprintf("Probabilités issues des cotes bookmaker (marge de %.1f%% retirée)", margin*100))
	}

	if p.source == nil {
		logger.Debug().Msg("No odds and no classifier configured, using demo distribution")
		return Compose(DemoProbabilities, req.Home, req.Away, model.SourceDemo,
			"Distribution de démonstration (ni cotes ni modèle disponibles)")
	}

	artifacts, err := p.source.Get(ctx)
	if err != nil {
		return p.degraded(logger, req, err)
	}

	row, err := features.Build(artifacts.Schema, req.Home, req.Away)
	if err != nil {
		return p.degraded(logger, req, err)
	}

	inference, err := classifier.Adapt(artifacts.Classifier, row.Values())
	if err != nil {
		return p.degraded(logger, req, err)
	}

	logger.Debug().
		Str("label", inference.Label).
		Str("outcome", inference.Outcome.String()).
		Float64("confidence", inference.Confidence).
		Msg("Classifier prediction")

	return Compose(inference.Probabilities, req.Home, req.Away, model.SourceClassifier,
		"Probabilités du modèle entraîné (identité des équipes uniquement)")
}

func (p *Predictor) degraded(logger zerolog.Logger, req Request, err error) model.PredictionResult {
	logger.Warn().Err(err).Msg("Classifier path failed, returning uniform distribution")

	u := model.Uniform()
	return model.PredictionResult{
		Status:     model.StatusError,
		Home:       req.Home,
		Away:       req.Away,
		Prediction: PredictionModelError,
		PHome:      model.Round3(u.Home),
		PDraw:      model.Round3(u.Draw),
		PAway:      model.Round3(u.Away),
		Source:     model.SourceDegraded,
		Comment:    "Modèle indisponible : distribution uniforme renvoyée (mode dégradé).",
	}
}
