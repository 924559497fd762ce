package bot

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Alias1177/PronoFoot/internal/odds"
)

var (
	// ErrUsage means the /predict arguments do not name two teams.
	ErrUsage = errors.New("usage: /predict <home> vs <away> [odds_home odds_draw odds_away]")
	// ErrInvalidOdds means three prices were given but at least one is not above 1.0.
	ErrInvalidOdds = errors.New("odds must be decimal prices above 1.0")
)

// Match is a parsed /predict request
type Match struct {
	Home string
	Away string
	Odds *odds.Odds
}

// ParsePredict reads "Home vs Away [o1 o2 o3]". The separator is matched
// case-insensitively and team names may contain spaces. Three trailing
// numeric tokens are taken as home/draw/away odds.
func ParsePredict(args string) (Match, error) {
	tokens := strings.Fields(args)

	var match Match
	if n := len(tokens); n >= 3 && isNumber(tokens[n-3]) && isNumber(tokens[n-2]) && isNumber(tokens[n-1]) {
		o, ok := odds.Parse(tokens[n-3], tokens[n-2], tokens[n-1])
		if !ok {
			return Match{}, ErrInvalidOdds
		}
		match.Odds = &o
		tokens = tokens[:n-3]
	}

	sep := -1
	for i, tok := range tokens {
		if strings.EqualFold(tok, "vs") || strings.EqualFold(tok, "vs.") {
			sep = i
			break
		}
	}
	if sep <= 0 || sep == len(tokens)-1 {
		return Match{}, ErrUsage
	}

	match.Home = strings.Join(tokens[:sep], " ")
	match.Away = strings.Join(tokens[sep+1:], " ")
	return match, nil
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	return err == nil
}
