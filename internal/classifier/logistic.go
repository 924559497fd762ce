package classifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
)

// LogisticModel is a multinomial logistic regression exported by the
// training pipeline as JSON:
//
//	{
//	  "classes": ["H", "D", "A"],          // or [0, 1, 2]
//	  "coefficients": [[...], [...], [...]], // one row per class
//	  "intercepts": [0.1, -0.3, 0.2],
//	  "feature_names": ["home_team_PSG", ...] // optional
//	}
type LogisticModel struct {
	classes      []string
	coefficients [][]float64
	intercepts   []float64
	featureNames []string
}

type logisticFile struct {
	Classes      []json.RawMessage `json:"classes"`
	Coefficients [][]float64       `json:"coefficients"`
	Intercepts   []float64         `json:"intercepts"`
	FeatureNames []string          `json:"feature_names"`
}

// NewLogisticModel validates the parameters and builds a model. classes may be nil.
func NewLogisticModel(classes []string, coefficients [][]float64, intercepts []float64) (*LogisticModel, error) {
	if len(coefficients) == 0 {
		return nil, fmt.Errorf("no coefficients")
	}
	if len(intercepts) != len(coefficients) {
		return nil, fmt.Errorf("%d intercepts for %d classes", len(intercepts), len(coefficients))
	}
	if classes != nil && len(classes) != len(coefficients) {
		return nil, fmt.Errorf("%d class labels for %d coefficient rows", len(classes), len(coefficients))
	}
	width := len(coefficients[0])
	for i, row := range coefficients {
		if len(row) != width {
			return nil, fmt.Errorf("coefficient row %d has %d columns, want %d", i, len(row), width)
		}
	}

	return &LogisticModel{
		classes:      classes,
		coefficients: coefficients,
		intercepts:   intercepts,
	}, nil
}

// ParseLogisticModel decodes the JSON artifact
func ParseLogisticModel(data []byte) (*LogisticModel, error) {
	var f logisticFile
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding model: %w", err)
	}

	var classes []string
	for _, raw := range f.Classes {
		label, err := rawLabel(raw)
		if err != nil {
			return nil, err
		}
		classes = append(classes, label)
	}

	m, err := NewLogisticModel(classes, f.Coefficients, f.Intercepts)
	if err != nil {
		return nil, err
	}
	if f.FeatureNames != nil && len(f.FeatureNames) != m.Width() {
		return nil, fmt.Errorf("%d feature names for %d coefficient columns", len(f.FeatureNames), m.Width())
	}
	m.featureNames = f.FeatureNames
	return m, nil
}

// LoadLogisticModel reads and decodes the artifact at path.
func LoadLogisticModel(path string) (*LogisticModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLogisticModel(data)
}

// rawLabel accepts a JSON string or number.
func rawLabel(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("class label %s is neither a string nor a number", string(raw))
}

// Classes returns the class labels
func (m *LogisticModel) Classes() []string {
	if m.classes == nil {
		return nil
	}
	out := make([]string, len(m.classes))
	copy(out, m.classes)
	return out
}

// Width is the number of features the model expects.
func (m *LogisticModel) Width() int {
	return len(m.coefficients[0])
}

// FeatureNames returns the training columns if the artifact carries them.
func (m *LogisticModel) FeatureNames() []string {
	return m.featureNames
}

// PredictProba returns softmax(W·x + b).
func (m *LogisticModel) PredictProba(row []float64) ([]float64, error) {
	if len(row) != m.Width() {
		return nil, fmt.Errorf("feature row has %d values, model expects %d", len(row), m.Width())
	}

	scores := make([]float64, len(m.coefficients))
	maxScore := math.Inf(-1)
	for k, w := range m.coefficients {
		z := m.intercepts[k]
		for j, x := range row {
			z += w[j] * x
		}
		scores[k] = z
		if z > maxScore {
			maxScore = z
		}
	}

	// shift by the max score to keep exp() finite
	var total float64
	for k, z := range scores {
		scores[k] = math.Exp(z - maxScore)
		total += scores[k]
	}
	for k := range scores {
		scores[k] /= total
	}
	return scores, nil
}
