package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	schema := NewSchema([]string{"home_team_PSG", "away_team_Marseille", "is_home", "is_away", "unrelated_col"})

	tests := []struct {
		name       string
		home, away string
		want       []float64
	}{
		{
			name: "Both teams known",
			home: "PSG",
			away: "Marseille",
			want: []float64{1, 1, 1, 0, 0},
		},
		{
			name: "Unknown teams",
			home: "Lens",
			away: "Nantes",
			want: []float64{0, 0, 1, 0, 0},
		},
		{
			name: "Teams swapped",
			home: "Marseille",
			away: "PSG",
			want: []float64{0, 0, 1, 0, 0},
		},
		{
			name: "Surrounding whitespace",
			home: " PSG ",
			away: "Marseille\n",
			want: []float64{1, 1, 1, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := Build(schema, tt.home, tt.away)
			require.NoError(t, err)
			assert.Equal(t, tt.want, row.Values())
		})
	}
}

func TestBuild_NamedColumns(t *testing.T) {
	schema := NewSchema([]string{"home_team_PSG", "away_team_Marseille", "is_home", "is_away", "unrelated_col"})

	row, err := Build(schema, "PSG", "Marseille")
	require.NoError(t, err)

	for name, want := range map[string]float64{
		"home_team_PSG":       1,
		"away_team_Marseille": 1,
		"is_home":             1,
		"is_away":             0,
		"unrelated_col":       0,
	} {
		got, ok := row.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := row.Get("away_team_PSG")
	assert.False(t, ok)
}

func TestBuild_WithoutIndicatorColumns(t *testing.T) {
	schema := NewSchema([]string{"home_team_Lyon", "away_team_Lille", "form_home"})

	row, err := Build(schema, "Nice", "Rennes")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, row.Values())
}

func TestBuild_SchemaMissing(t *testing.T) {
	_, err := Build(nil, "PSG", "Marseille")
	assert.ErrorIs(t, err, ErrSchemaMissing)

	_, err = Build(NewSchema(nil), "PSG", "Marseille")
	assert.ErrorIs(t, err, ErrSchemaMissing)
}

func TestSchema_IsReadOnly(t *testing.T) {
	cols := []string{"is_home", "is_away"}
	schema := NewSchema(cols)

	cols[0] = "mutated"
	got := schema.Columns()
	got[1] = "mutated"

	assert.Equal(t, []string{"is_home", "is_away"}, schema.Columns())
}
