package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/stitts-dev/courtside/internal/nba"
)

const (
	teamStatsCacheTTL = 30 * time.Minute

	// The roster feed omits positions for two-way players; forward is
	// the safe fallback for lineup balancing.
	fallbackPosition = "F"
)

// GetTeamStats returns a team's rotation stat lines: the advanced
// per-game measure (which carries minutes) joined with the roster's
// positions, filtered to players with enough of a sample to value.
func (c *NBAStatsClient) GetTeamStats(ctx context.Context, teamCode string) ([]nba.PlayerSeasonStat, error) {
	team, ok := c.teams.ByCode(teamCode)
	if !ok {
		return nil, fmt.Errorf("unknown team code %q", teamCode)
	}

	cacheKey := fmt.Sprintf("team_stats:%s:%s", c.season, teamCode)
	if c.cache != nil {
		var cached []nba.PlayerSeasonStat
		if err := c.cache.GetSimple(cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	advanced, err := c.leagueDashPlayerStats(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	positions, err := c.rosterPositions(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	stats := mergeTeamStats(advanced, positions, c.minGames, c.minMinutes)

	if c.cache != nil {
		if err := c.cache.SetSimple(cacheKey, stats, teamStatsCacheTTL); err != nil {
			c.logger.Debugf("Failed to cache team stats for %s: %v", teamCode, err)
		}
	}
	return stats, nil
}

// leagueDashPlayerStats fetches the Advanced per-game measure, which
// carries MIN alongside PIE and the usage numbers. One request covers
// everything; the host throttles hard enough that extra measure-type
// fetches are not worth it.
func (c *NBAStatsClient) leagueDashPlayerStats(ctx context.Context, teamID string) (statsResponse, error) {
	var resp statsResponse
	err := c.getJSON(ctx, "leaguedashplayerstats", map[string]string{
		"Season":         c.season,
		"SeasonType":     "Regular Season",
		"TeamID":         teamID,
		"MeasureType":    "Advanced",
		"PerMode":        "PerGame",
		"LeagueID":       "00",
		"LastNGames":     "0",
		"Month":          "0",
		"OpponentTeamID": "0",
		"PaceAdjust":     "N",
		"Period":         "0",
		"PlusMinus":      "N",
		"Rank":           "N",
	}, &resp)
	return resp, err
}

func (c *NBAStatsClient) rosterPositions(ctx context.Context, teamID string) (map[string]string, error) {
	var resp statsResponse
	err := c.getJSON(ctx, "commonteamroster", map[string]string{
		"Season":   c.season,
		"TeamID":   teamID,
		"LeagueID": "00",
	}, &resp)
	if err != nil {
		return nil, err
	}

	roster, ok := resp.set("CommonTeamRoster")
	if !ok {
		return nil, fmt.Errorf("roster response missing CommonTeamRoster result set")
	}
	cols := roster.columns()
	nameIdx, posIdx := cols.idx("PLAYER"), cols.idx("POSITION")

	positions := make(map[string]string, len(roster.RowSet))
	for _, row := range roster.RowSet {
		name := colString(row, nameIdx)
		if name == "" {
			continue
		}
		positions[name] = colString(row, posIdx)
	}
	return positions, nil
}

// mergeTeamStats reads the advanced measure rows, attaches roster
// positions and drops small-sample players.
func mergeTeamStats(advanced statsResponse, positions map[string]string, minGames, minMinutes float64) []nba.PlayerSeasonStat {
	advSet, ok := advanced.set("LeagueDashPlayerStats")
	if !ok {
		return nil
	}
	advCols := advSet.columns()

	var stats []nba.PlayerSeasonStat
	for _, row := range advSet.RowSet {
		name := colString(row, advCols.idx("PLAYER_NAME"))
		if name == "" {
			continue
		}
		games, _ := colFloat(row, advCols.idx("GP"))
		minutes, _ := colFloat(row, advCols.idx("MIN"))
		if games < minGames || minutes < minMinutes {
			continue
		}

		pie, _ := colFloat(row, advCols.idx("PIE"))
		usage, _ := colFloat(row, advCols.idx("USG_PCT"))
		ts, _ := colFloat(row, advCols.idx("TS_PCT"))

		position := positions[name]
		if position == "" {
			position = fallbackPosition
		}

		stats = append(stats, nba.PlayerSeasonStat{
			Name:            name,
			Position:        position,
			MinutesPerGame:  minutes,
			PIE:             pie,
			UsagePct:        usage,
			TrueShootingPct: ts,
			GamesPlayed:     games,
		})
	}
	return stats
}
