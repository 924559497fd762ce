package model

import "math"

// Outcome is one of the three 1X2 results.
type Outcome int

const (
	Home Outcome = iota
	Draw
	Away
)

func (o Outcome) String() string {
	switch o {
	case Home:
		return "home"
	case Draw:
		return "draw"
	case Away:
		return "away"
	default:
		return "unknown"
	}
}

// Prediction statuses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Probability sources, in fallback order.
const (
	SourceOdds       = "odds"
	SourceClassifier = "classifier"
	SourceDegraded   = "degraded"
	SourceDemo       = "demo"
)

// Probabilities is a 1X2 distribution. Values are in [0,1] and sum to 1.
type Probabilities struct {
	Home float64
	Draw float64
	Away float64
}

// Uniform returns (1/3, 1/3, 1/3).
func Uniform() Probabilities {
	return Probabilities{Home: 1.0 / 3, Draw: 1.0 / 3, Away: 1.0 / 3}
}

// Sum returns p_home + p_draw + p_away
func (p Probabilities) Sum() float64 {
	return p.Home + p.Draw + p.Away
}

// Of returns the probability assigned to o.
func (p Probabilities) Of(o Outcome) float64 {
	switch o {
	case Home:
		return p.Home
	case Draw:
		return p.Draw
	case Away:
		return p.Away
	}
	return 0
}

// Favorite returns the most likely outcome. Ties favour home, then away; draw
// wins only when it is strictly above both.
func (p Probabilities) Favorite() Outcome {
	if p.Home >= p.Draw && p.Home >= p.Away {
		return Home
	}
	if p.Away >= p.Home && p.Away >= p.Draw {
		return Away
	}
	return Draw
}

// PredictionResult is the payload returned for a single match
type PredictionResult struct {
	Status     string  `json:"status"`
	Home       string  `json:"home"`
	Away       string  `json:"away"`
	Prediction string  `json:"prediction"`
	PHome      float64 `json:"p_home"`
	PDraw      float64 `json:"p_draw"`
	PAway      float64 `json:"p_away"`
	Source     string  `json:"source"`
	Comment    string  `json:"comment"`
}

// Round3 rounds to three decimal digits.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
