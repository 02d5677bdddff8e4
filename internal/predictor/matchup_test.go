package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stitts-dev/courtside/internal/valuation"
)

func TestPredict(t *testing.T) {
	tests := []struct {
		name           string
		home           float64
		visitor        float64
		expectedWinner string
		expectedGap    float64
	}{
		{"home wins on higher score", 5.4, 5.1, "DEN", 0.3},
		{"visitor wins on higher score", 4.8, 5.2, "LAL", 0.4},
		{"exact tie goes to the home side", 5.0, 5.0, "DEN", 0.0},
		{"both no-data scores tie at zero", 0.0, 0.0, "DEN", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Predict("DEN", "LAL",
				valuation.TeamPower{Score: tt.home},
				valuation.TeamPower{Score: tt.visitor})

			assert.Equal(t, tt.expectedWinner, got.Winner)
			assert.InDelta(t, tt.expectedGap, got.Gap, 1e-9)
			assert.GreaterOrEqual(t, got.Gap, 0.0, "gap is an absolute margin")
		})
	}
}
