package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stitts-dev/courtside/internal/nba"
)

func TestPartialRatio(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{"exact substring", "jokic", "nikola jokic", 100},
		{"identical strings", "lebron james", "lebron james", 100},
		{"one accent difference in five letters", "jokić", "nikola jokic", 80},
		{"empty input", "", "anything", 0},
		{"both empty", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PartialRatio(tt.a, tt.b))
		})
	}
}

func TestPartialRatioUnrelatedNamesScoreLow(t *testing.T) {
	score := PartialRatio("smith", "nikola jokic")
	assert.Less(t, score, MatchThreshold)
}

func TestResolve(t *testing.T) {
	players := []nba.PlayerSeasonStat{
		{Name: "Nikola Jokic"},
		{Name: "Jamal Murray"},
		{Name: "Aaron Gordon"},
	}

	t.Run("accent variants still rule players out", func(t *testing.T) {
		roster := Resolve("DEN", players, []string{"Nikola Jokić"})

		assert.Equal(t, "DEN", roster.Team)
		assert.Equal(t, nba.AvailabilityOut, roster.Players[0].Availability)
		assert.Equal(t, nba.AvailabilityOK, roster.Players[1].Availability)
		assert.Equal(t, []string{"Nikola Jokic"}, roster.OutNames())
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		roster := Resolve("DEN", players, []string{"JAMAL MURRAY"})
		assert.Equal(t, nba.AvailabilityOut, roster.Players[1].Availability)
	})

	t.Run("no out names leaves everyone available", func(t *testing.T) {
		roster := Resolve("DEN", players, nil)
		assert.Len(t, roster.Available(), 3)
		assert.Empty(t, roster.OutNames())
	})

	t.Run("unmatched report names change nothing", func(t *testing.T) {
		roster := Resolve("DEN", players, []string{"Someone Else Entirely"})
		assert.Len(t, roster.Available(), 3)
	})
}
