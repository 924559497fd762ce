package predict

import (
	"fmt"

	"github.com/Alias1177/PronoFoot/internal/model"
)

// Resolve picks the most likely outcome. Ties favour home, then away; draw
// wins only when it is strictly above both.
func Resolve(p model.Probabilities) model.Outcome {
	return p.Favorite()
}

// OutcomePhrase is the user-facing label of an outcome
func OutcomePhrase(o model.Outcome, home, away string) string {
	switch o {
	case model.Home:
		return "Victoire de " + home
	case model.Away:
		return "Victoire de " + away
	default:
		return "Match nul"
	}
}

// Compose builds the response for a probability triple. description names
// where the probabilities come from and is embedded in the comment.
func Compose(p model.Probabilities, home, away, source, description string) model.PredictionResult {
	phrase := OutcomePhrase(Resolve(p), home, away)

	return model.PredictionResult{
		Status:     model.StatusOK,
		Home:       home,
		Away:       away,
		Prediction: phrase,
		PHome:      model.Round3(p.Home),
		PDraw:      model.Round3(p.Draw),
		PAway:      model.Round3(p.Away),
		Source:     source,
		Comment: fmt.Sprintf("%s : domicile %.3f, nul %.3f, extérieur %.3f. Pronostic : %s.",
			description, p.Home, p.Draw, p.Away, phrase),
	}
}
