package odds

import (
	"math"
	"strconv"
	"strings"

	"github.com/Alias1177/PronoFoot/internal/model"
)

// Odds holds decimal 1X2 odds for one match
type Odds struct {
	Home float64 `json:"odds_home"`
	Draw float64 `json:"odds_draw"`
	Away float64 `json:"odds_away"`
}

// Usable reports whether all three prices are finite and strictly above 1.0.
func (o Odds) Usable() bool {
	return usable(o.Home) && usable(o.Draw) && usable(o.Away)
}

func usable(v float64) bool {
	return v > 1.0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Normalize converts decimal odds to fair probabilities by removing the
// bookmaker margin (multiplicative method).
//
// Example:
// PSG 1.15 | Draw 7.20 | Marseille 14.0
// Implied: 86.96% + 13.89% + 7.14% = 107.99% (7.99% overround)
// Fair:    80.5%  / 12.9%  / 6.6%
func Normalize(o Odds) model.Probabilities {
	rawHome := 1.0 / o.Home
	rawDraw := 1.0 / o.Draw
	rawAway := 1.0 / o.Away
	total := rawHome + rawDraw + rawAway

	if !(total > 0) || math.IsInf(total, 0) {
		return model.Uniform()
	}

	return model.Probabilities{
		Home: rawHome / total,
		Draw: rawDraw / total,
		Away: rawAway / total,
	}
}

// Overround returns the bookmaker margin: sum of implied probabilities minus 1.
func Overround(o Odds) float64 {
	return 1.0/o.Home + 1.0/o.Draw + 1.0/o.Away - 1.0
}

// Parse reads three query values. ok is false when any value is missing,
// not a number, or not usable as a decimal price.
func Parse(home, draw, away string) (Odds, bool) {
	var o Odds
	var err error

	if o.Home, err = parseOne(home); err != nil {
		return Odds{}, false
	}
	if o.Draw, err = parseOne(draw); err != nil {
		return Odds{}, false
	}
	if o.Away, err = parseOne(away); err != nil {
		return Odds{}, false
	}

	if !o.Usable() {
		return Odds{}, false
	}
	return o, true
}

func parseOne(s string) (float64, error) {
	// accept "1,15" as sent by French locales
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}
