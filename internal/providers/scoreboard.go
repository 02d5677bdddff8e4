package providers

import (
	"context"
	"fmt"

	"github.com/stitts-dev/courtside/internal/nba"
)

// GetGames returns the scoreboard for a game date (YYYY-MM-DD). Games
// between teams the table doesn't know are dropped.
func (c *NBAStatsClient) GetGames(ctx context.Context, date string) ([]nba.Game, error) {
	var resp statsResponse
	err := c.getJSON(ctx, "scoreboardv2", map[string]string{
		"GameDate":  date,
		"LeagueID":  "00",
		"DayOffset": "0",
	}, &resp)
	if err != nil {
		return nil, err
	}
	return parseScoreboard(date, resp, c.teams)
}

// parseScoreboard joins the GameHeader rows with the LineScore rows by
// game ID. Line scores are absent until a game tips off, so scores stay
// nil for scheduled games.
func parseScoreboard(date string, resp statsResponse, teams *nba.TeamTable) ([]nba.Game, error) {
	header, ok := resp.set("GameHeader")
	if !ok {
		return nil, fmt.Errorf("scoreboard response missing GameHeader result set")
	}
	headerCols := header.columns()

	type teamScore struct {
		teamID string
		points int
	}
	scoresByGame := make(map[string][]teamScore)
	if lineScore, ok := resp.set("LineScore"); ok {
		cols := lineScore.columns()
		for _, row := range lineScore.RowSet {
			gameID := colString(row, cols.idx("GAME_ID"))
			pts, hasPts := colFloat(row, cols.idx("PTS"))
			if gameID == "" || !hasPts {
				continue
			}
			scoresByGame[gameID] = append(scoresByGame[gameID], teamScore{
				teamID: colString(row, cols.idx("TEAM_ID")),
				points: int(pts),
			})
		}
	}

	var games []nba.Game
	for _, row := range header.RowSet {
		gameID := colString(row, headerCols.idx("GAME_ID"))
		homeID := colString(row, headerCols.idx("HOME_TEAM_ID"))
		visitorID := colString(row, headerCols.idx("VISITOR_TEAM_ID"))

		home := teams.CodeForID(homeID)
		visitor := teams.CodeForID(visitorID)
		if home == "" || visitor == "" {
			continue
		}

		game := nba.Game{
			GameID:      gameID,
			Date:        date,
			HomeTeam:    home,
			VisitorTeam: visitor,
			StatusText:  colString(row, headerCols.idx("GAME_STATUS_TEXT")),
		}
		if statusID, ok := colFloat(row, headerCols.idx("GAME_STATUS_ID")); ok {
			game.StatusID = int(statusID)
		}

		for _, score := range scoresByGame[gameID] {
			pts := score.points
			switch score.teamID {
			case homeID:
				game.HomeScore = &pts
			case visitorID:
				game.VisitorScore = &pts
			}
		}

		games = append(games, game)
	}
	return games, nil
}
