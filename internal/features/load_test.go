package features

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchema(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    []string
		wantErr bool
	}{
		{
			name: "JSON array",
			data: `["home_team_PSG", "away_team_Marseille", "is_home"]`,
			want: []string{"home_team_PSG", "away_team_Marseille", "is_home"},
		},
		{
			name: "One column per line",
			data: "home_team_PSG\n\naway_team_Marseille\r\nis_home\n",
			want: []string{"home_team_PSG", "away_team_Marseille", "is_home"},
		},
		{name: "Empty file", data: "  \n", wantErr: true},
		{name: "Empty JSON array", data: "[]", wantErr: true},
		{name: "Malformed JSON", data: `["home_team_PSG",`, wantErr: true},
		{name: "Wrong JSON type", data: `[1, 2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := ParseSchema([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, schema.Columns())
		})
	}
}

func TestLoadSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feature_columns.json")
	require.NoError(t, os.WriteFile(path, []byte(`["is_home","is_away"]`), 0o644))

	schema, err := LoadSchema(path)
	require.NoError(t, err)
	assert.Equal(t, 2, schema.Len())

	_, err = LoadSchema(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
