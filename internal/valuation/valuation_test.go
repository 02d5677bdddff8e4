package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stitts-dev/courtside/internal/nba"
)

func TestUnitValue(t *testing.T) {
	tests := []struct {
		name     string
		pie      float64
		expected float64
	}{
		{"league average maps to 1.0", 0.10, 1.0},
		{"above average scales linearly", 0.15, 2.0},
		{"superstar clamps at ceiling", 0.30, 3.5},
		{"zero clamps at floor", 0.00, 0.1},
		{"negative clamps at floor", -0.05, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, UnitValue(tt.pie), 1e-9)
		})
	}
}

func TestUnitValueMonotonic(t *testing.T) {
	prev := UnitValue(0.0)
	for pie := 0.01; pie <= 0.35; pie += 0.01 {
		uv := UnitValue(pie)
		assert.GreaterOrEqual(t, uv, prev, "unit value must never decrease as PIE rises")
		prev = uv
	}
}

func TestValueRosterExcludesOutPlayers(t *testing.T) {
	roster := nba.TeamRoster{
		Team: "DEN",
		Players: []nba.RosterPlayer{
			{PlayerSeasonStat: nba.PlayerSeasonStat{Name: "Nikola Jokic", PIE: 0.20, MinutesPerGame: 34}, Availability: nba.AvailabilityOK},
			{PlayerSeasonStat: nba.PlayerSeasonStat{Name: "Jamal Murray", PIE: 0.12, MinutesPerGame: 32}, Availability: nba.AvailabilityOut},
		},
	}

	valued := ValueRoster(roster)

	assert.Len(t, valued, 1)
	assert.Equal(t, "Nikola Jokic", valued[0].Name)
	assert.InDelta(t, 3.0, valued[0].UnitValue, 1e-9)
	assert.InDelta(t, 3.0*34, valued[0].Contribution, 1e-9)
}
