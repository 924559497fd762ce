package classifier

import (
	"math"
	"strconv"
	"strings"

	"github.com/Alias1177/PronoFoot/internal/model"
)

// DefaultLabels is the class order assumed when an artifact reports none.
var DefaultLabels = []string{"0", "1", "2"}

// labelOutcomes maps normalized class labels to outcomes. Training pipelines
// encode the target either as 0/1/2 or as H/D/A.
var labelOutcomes = map[string]model.Outcome{
	"0": model.Home,
	"1": model.Draw,
	"2": model.Away,
	"H": model.Home,
	"D": model.Draw,
	"A": model.Away,
}

// NormalizeLabel trims and upper-cases a label and renders integral numbers
// without a fractional part ("1.0" -> "1").
func NormalizeLabel(label string) string {
	l := strings.ToUpper(strings.TrimSpace(label))
	if f, err := strconv.ParseFloat(l, 64); err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatInt(int64(f), 10)
	}
	return l
}

// LabelOutcome resolves a raw class label. ok is false for unknown labels.
func LabelOutcome(label string) (model.Outcome, bool) {
	o, ok := labelOutcomes[NormalizeLabel(label)]
	return o, ok
}

// OutcomeOrDefault resolves a label and falls back to home for unknown labels.
func OutcomeOrDefault(label string) model.Outcome {
	if o, ok := LabelOutcome(label); ok {
		return o
	}
	return model.Home
}
