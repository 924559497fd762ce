package features

import (
	"errors"
	"strings"
)

// Column naming used by the training pipeline
const (
	HomeTeamPrefix = "home_team_"
	AwayTeamPrefix = "away_team_"
	IsHomeColumn   = "is_home"
	IsAwayColumn   = "is_away"
)

// ErrSchemaMissing is returned when no feature-column schema was loaded.
var ErrSchemaMissing = errors.New("feature column schema is not loaded")

// Schema is the ordered list of feature columns the classifier was trained on.
// It is never mutated after load.
type Schema struct {
	columns []string
	index   map[string]int
}

// NewSchema copies columns and indexes them by name. When a name is repeated
// the first position wins.
func NewSchema(columns []string) *Schema {
	s := &Schema{
		columns: make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	copy(s.columns, columns)
	for i, c := range s.columns {
		if _, ok := s.index[c]; !ok {
			s.index[c] = i
		}
	}
	return s
}

// Len returns the number of columns
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.columns)
}

// Columns returns a copy of the column names in schema order.
func (s *Schema) Columns() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

func (s *Schema) position(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Row is one feature vector aligned to a Schema.
type Row struct {
	schema *Schema
	values []float64
}

// Values returns the row in schema order.
func (r Row) Values() []float64 {
	out := make([]float64, len(r.values))
	copy(out, r.values)
	return out
}

// Get returns the value of a named column; ok is false if the column is not in the schema.
func (r Row) Get(name string) (float64, bool) {
	if r.schema == nil {
		return 0, false
	}
	i, ok := r.schema.position(name)
	if !ok {
		return 0, false
	}
	return r.values[i], true
}

// Build one-hot encodes the two teams against the schema. Every other
// feature the training pipeline derived (form, head-to-head, ...) stays at 0,
// so the row only matches the trained shape.
func Build(schema *Schema, home, away string) (Row, error) {
	if schema.Len() == 0 {
		return Row{}, ErrSchemaMissing
	}

	row := Row{schema: schema, values: make([]float64, schema.Len())}
	set := func(name string, v float64) {
		if i, ok := schema.position(name); ok {
			row.values[i] = v
		}
	}

	set(HomeTeamPrefix+strings.TrimSpace(home), 1)
	set(AwayTeamPrefix+strings.TrimSpace(away), 1)
	set(IsHomeColumn, 1)
	set(IsAwayColumn, 0)

	return row, nil
}
