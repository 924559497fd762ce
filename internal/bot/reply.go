package bot

import (
	"fmt"
	"strings"

	"github.com/Alias1177/PronoFoot/internal/model"
)

const welcomeText = "Bienvenue sur PronoFoot ⚽\n" +
	"Envoyez /predict <domicile> vs <extérieur> pour obtenir un pronostic 1X2.\n" +
	"Tapez /help pour plus de détails."

const helpText = "Commandes disponibles :\n" +
	"/predict <domicile> vs <extérieur> : pronostic à partir du modèle\n" +
	"/predict <domicile> vs <extérieur> <cote 1> <cote N> <cote 2> : pronostic à partir des cotes\n" +
	"Exemple : /predict PSG vs Marseille 1.15 7.20 14.0"

var sourceLabels = map[string]string{
	model.SourceOdds:       "cotes bookmaker",
	model.SourceClassifier: "modèle entraîné",
	model.SourceDegraded:   "mode dégradé",
	model.SourceDemo:       "démonstration",
}

// FormatPrediction renders a prediction as a chat message
func FormatPrediction(result model.PredictionResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("⚽ %s - %s\n\n", result.Home, result.Away))

	if result.Status == model.StatusError {
		b.WriteString("⚠️ Modèle indisponible, distribution uniforme.\n\n")
	} else {
		b.WriteString(fmt.Sprintf("Pronostic : %s\n\n", result.Prediction))
	}

	b.WriteString(fmt.Sprintf("1 (%s) : %s\n", result.Home, percent(result.PHome)))
	b.WriteString(fmt.Sprintf("N (nul) : %s\n", percent(result.PDraw)))
	b.WriteString(fmt.Sprintf("2 (%s) : %s\n", result.Away, percent(result.PAway)))

	source, ok := sourceLabels[result.Source]
	if !ok {
		source = result.Source
	}
	b.WriteString(fmt.Sprintf("\nSource : %s", source))

	return b.String()
}

func percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}
