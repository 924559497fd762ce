package odds

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alias1177/PronoFoot/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		odds     Odds
		wantHome float64
		wantDraw float64
		wantAway float64
	}{
		{
			name:     "Heavy home favourite",
			odds:     Odds{Home: 1.15, Draw: 7.20, Away: 14.0},
			wantHome: 0.805,
			wantDraw: 0.129,
			wantAway: 0.066,
		},
		{
			name:     "Balanced market",
			odds:     Odds{Home: 2.80, Draw: 3.20, Away: 2.80},
			wantHome: 0.348,
			wantDraw: 0.304,
			wantAway: 0.348,
		},
		{
			name:     "Fair odds without margin",
			odds:     Odds{Home: 2.0, Draw: 4.0, Away: 4.0},
			wantHome: 0.5,
			wantDraw: 0.25,
			wantAway: 0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(tt.odds)

			assert.InDelta(t, tt.wantHome, p.Home, 0.001)
			assert.InDelta(t, tt.wantDraw, p.Draw, 0.001)
			assert.InDelta(t, tt.wantAway, p.Away, 0.001)
			assert.InDelta(t, 1.0, p.Sum(), 1e-9)
		})
	}
}

func TestNormalize_Properties(t *testing.T) {
	prices := []float64{1.01, 1.15, 1.5, 2.0, 3.4, 7.2, 14.0, 51.0}

	for _, h := range prices {
		for _, d := range prices {
			for _, a := range prices {
				o := Odds{Home: h, Draw: d, Away: a}
				p := Normalize(o)

				require.InDelta(t, 1.0, p.Sum(), 1e-9, "odds %+v", o)
				for _, v := range []float64{p.Home, p.Draw, p.Away} {
					require.Greater(t, v, 0.0)
					require.Less(t, v, 1.0)
				}

				// scaling every price by the same factor keeps the ratios of the
				// implied probabilities, so the fair distribution is unchanged
				scaled := Normalize(Odds{Home: h * 1.7, Draw: d * 1.7, Away: a * 1.7})
				require.InDelta(t, p.Home, scaled.Home, 1e-9)
				require.InDelta(t, p.Draw, scaled.Draw, 1e-9)
				require.InDelta(t, p.Away, scaled.Away, 1e-9)
			}
		}
	}
}

func TestNormalize_DegenerateSum(t *testing.T) {
	tests := []struct {
		name string
		odds Odds
	}{
		{name: "Negative prices", odds: Odds{Home: -2, Draw: -3, Away: -4}},
		{name: "Reciprocals cancel out", odds: Odds{Home: 2, Draw: -2, Away: math.Inf(1)}},
		{name: "Zero prices", odds: Odds{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, model.Uniform(), Normalize(tt.odds))
		})
	}
}

func TestOverround(t *testing.T) {
	assert.InDelta(t, 0.0799, Overround(Odds{Home: 1.15, Draw: 7.20, Away: 14.0}), 0.0001)
	assert.InDelta(t, 0.0, Overround(Odds{Home: 2.0, Draw: 4.0, Away: 4.0}), 1e-12)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name             string
		home, draw, away string
		want             Odds
		wantOK           bool
	}{
		{name: "Valid", home: "1.15", draw: "7.20", away: "14", want: Odds{1.15, 7.2, 14}, wantOK: true},
		{name: "Comma decimal separator", home: "1,15", draw: "7,2", away: "14", want: Odds{1.15, 7.2, 14}, wantOK: true},
		{name: "Missing value", home: "1.15", draw: "", away: "14"},
		{name: "Not a number", home: "abc", draw: "3.2", away: "2.1"},
		{name: "Price equal to one", home: "1.0", draw: "3.2", away: "2.1"},
		{name: "Price below one", home: "0.5", draw: "3.2", away: "2.1"},
		{name: "Infinite price", home: "Inf", draw: "3.2", away: "2.1"},
		{name: "NaN price", home: "NaN", draw: "3.2", away: "2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.home, tt.draw, tt.away)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want.Home, got.Home, 1e-12)
				assert.InDelta(t, tt.want.Draw, got.Draw, 1e-12)
				assert.InDelta(t, tt.want.Away, got.Away, 1e-12)
			}
		})
	}
}
