package classifier

import (
	"errors"
	"fmt"

	"github.com/Alias1177/PronoFoot/internal/model"
)

// ErrUnavailable is returned when the classifier artifact could not be loaded.
var ErrUnavailable = errors.New("classifier artifact is unavailable")

// Classifier is a trained model loaded from disk.
type Classifier interface {
	// PredictProba returns one probability per class, in Classes() order.
	PredictProba(row []float64) ([]float64, error)
	// Classes returns the class labels, or nil if the artifact does not report them.
	Classes() []string
}

// Inference is the adapted output of a classifier call.
type Inference struct {
	Probabilities model.Probabilities
	Outcome       model.Outcome
	Label         string
	Confidence    float64
}

// Adapt runs the classifier on row and maps its classes to home/draw/away.
//
// The triple is filled from the positions of each label in the classifier's
// own class order; unknown labels count as home. Outcome uses the same
// tie-break as the response (home, then away, then draw), and Label is the
// highest-scoring class mapped to that outcome.
func Adapt(c Classifier, row []float64) (Inference, error) {
	if c == nil {
		return Inference{}, ErrUnavailable
	}

	labels := c.Classes()
	if len(labels) == 0 {
		labels = DefaultLabels
	}

	proba, err := c.PredictProba(row)
	if err != nil {
		return Inference{}, fmt.Errorf("predict proba: %w", err)
	}
	if len(proba) != len(labels) {
		return Inference{}, fmt.Errorf("classifier returned %d probabilities for %d classes", len(proba), len(labels))
	}

	var p model.Probabilities
	for i, v := range proba {
		switch OutcomeOrDefault(labels[i]) {
		case model.Home:
			p.Home += v
		case model.Draw:
			p.Draw += v
		case model.Away:
			p.Away += v
		}
	}

	outcome := p.Favorite()
	best := 0
	for i, v := range proba {
		if OutcomeOrDefault(labels[i]) == outcome && (OutcomeOrDefault(labels[best]) != outcome || v > proba[best]) {
			best = i
		}
	}

	return Inference{
		Probabilities: p,
		Outcome:       outcome,
		Label:         labels[best],
		Confidence:    p.Of(outcome),
	}, nil
}
