package nba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTeams(t *testing.T) {
	teams := DefaultTeams()

	assert.Len(t, teams.Codes(), 30)

	den, ok := teams.ByCode("DEN")
	require.True(t, ok)
	assert.Equal(t, "1610612743", den.ID)
	assert.Equal(t, "den/denver-nuggets", den.Slug)

	_, ok = teams.ByCode("XXX")
	assert.False(t, ok)

	assert.Equal(t, "LAL", teams.CodeForID("1610612747"))
	assert.Equal(t, "", teams.CodeForID("999"))
}

func TestGameStatus(t *testing.T) {
	t.Run("postponement markers", func(t *testing.T) {
		assert.True(t, Game{StatusText: "7:30 pm ET - PPD"}.IsPostponed())
		assert.True(t, Game{StatusText: "Postponed"}.IsPostponed())
		assert.False(t, Game{StatusText: "Final"}.IsPostponed())
	})

	t.Run("finished detection", func(t *testing.T) {
		assert.True(t, Game{StatusID: 3}.IsFinished())
		assert.True(t, Game{StatusText: "Final/OT"}.IsFinished())
		assert.False(t, Game{StatusID: 2, StatusText: "Q4 2:00"}.IsFinished())
	})

	t.Run("winner needs both scores", func(t *testing.T) {
		home, visitor := 110, 100
		game := Game{HomeTeam: "DEN", VisitorTeam: "LAL", HomeScore: &home, VisitorScore: &visitor}
		assert.Equal(t, "DEN", game.Winner())

		game.HomeScore = nil
		assert.Equal(t, "", game.Winner())
	})
}

func TestRosterAvailability(t *testing.T) {
	roster := TeamRoster{
		Team: "DEN",
		Players: []RosterPlayer{
			{PlayerSeasonStat: PlayerSeasonStat{Name: "Nikola Jokic"}, Availability: AvailabilityOK},
			{PlayerSeasonStat: PlayerSeasonStat{Name: "Jamal Murray"}, Availability: AvailabilityOut},
		},
	}

	available := roster.Available()
	require.Len(t, available, 1)
	assert.Equal(t, "Nikola Jokic", available[0].Name)
	assert.Equal(t, []string{"Jamal Murray"}, roster.OutNames())
}
