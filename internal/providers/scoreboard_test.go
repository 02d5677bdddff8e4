package providers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/courtside/internal/nba"
)

const scoreboardFixture = `{
	"resultSets": [
		{
			"name": "GameHeader",
			"headers": ["GAME_ID", "GAME_STATUS_ID", "GAME_STATUS_TEXT", "HOME_TEAM_ID", "VISITOR_TEAM_ID"],
			"rowSet": [
				["0022500551", 3, "Final", 1610612743, 1610612747],
				["0022500552", 1, "7:30 pm ET", 1610612738, 1610612752],
				["0022500553", 1, "8:00 pm ET - PPD", 1610612748, 1610612741],
				["0022500554", 3, "Final", 999, 1610612737]
			]
		},
		{
			"name": "LineScore",
			"headers": ["GAME_ID", "TEAM_ID", "PTS"],
			"rowSet": [
				["0022500551", 1610612743, 112],
				["0022500551", 1610612747, 105]
			]
		}
	]
}`

func TestParseScoreboard(t *testing.T) {
	var resp statsResponse
	require.NoError(t, json.Unmarshal([]byte(scoreboardFixture), &resp))

	games, err := parseScoreboard("2026-01-20", resp, nba.DefaultTeams())
	require.NoError(t, err)

	// The game against an unknown team ID is dropped.
	require.Len(t, games, 3)

	final := games[0]
	assert.Equal(t, "0022500551", final.GameID)
	assert.Equal(t, "2026-01-20", final.Date)
	assert.Equal(t, "DEN", final.HomeTeam)
	assert.Equal(t, "LAL", final.VisitorTeam)
	assert.True(t, final.IsFinished())
	require.NotNil(t, final.HomeScore)
	require.NotNil(t, final.VisitorScore)
	assert.Equal(t, 112, *final.HomeScore)
	assert.Equal(t, 105, *final.VisitorScore)
	assert.Equal(t, "DEN", final.Winner())

	scheduled := games[1]
	assert.Equal(t, "BOS", scheduled.HomeTeam)
	assert.Equal(t, "NYK", scheduled.VisitorTeam)
	assert.False(t, scheduled.IsFinished())
	assert.Nil(t, scheduled.HomeScore)
	assert.Nil(t, scheduled.VisitorScore)
	assert.Equal(t, "", scheduled.Winner())

	postponed := games[2]
	assert.Equal(t, "MIA", postponed.HomeTeam)
	assert.Equal(t, "CHI", postponed.VisitorTeam)
	assert.True(t, postponed.IsPostponed())
}

func TestParseScoreboardMissingHeader(t *testing.T) {
	var resp statsResponse
	require.NoError(t, json.Unmarshal([]byte(`{"resultSets": []}`), &resp))

	_, err := parseScoreboard("2026-01-20", resp, nba.DefaultTeams())
	assert.Error(t, err)
}
