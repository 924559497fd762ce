package predict

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alias1177/PronoFoot/internal/classifier"
	"github.com/Alias1177/PronoFoot/internal/model"
)

func bundledStore() *classifier.Store {
	dir := filepath.Join("..", "..", "models")
	return classifier.NewStore(classifier.StoreOptions{
		ModelPath:  filepath.Join(dir, "model_1x2.json"),
		SchemaPath: filepath.Join(dir, "feature_columns.json"),
	})
}

func TestPredictOne_BundledArtifacts(t *testing.T) {
	store := bundledStore()
	require.NoError(t, store.Warm(context.Background()))
	p := New(store)

	tests := []struct {
		name           string
		home           string
		away           string
		wantPrediction string
	}{
		{name: "Strong home side", home: "PSG", away: "Rennes", wantPrediction: "Victoire de PSG"},
		{name: "Strong away side", home: "Rennes", away: "PSG", wantPrediction: "Victoire de PSG"},
		{name: "Unknown teams fall back to intercepts", home: "Brest", away: "Metz", wantPrediction: "Victoire de Brest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.PredictOne(context.Background(), Request{Home: tt.home, Away: tt.away})

			assert.Equal(t, model.StatusOK, got.Status)
			assert.Equal(t, model.SourceClassifier, got.Source)
			assert.Equal(t, tt.wantPrediction, got.Prediction)
			assert.InDelta(t, 1.0, got.PHome+got.PDraw+got.PAway, 0.002)
		})
	}
}
