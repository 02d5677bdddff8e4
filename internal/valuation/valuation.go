// Package valuation converts raw per-player stat lines into comparable
// team strength scores: per-player unit values, a position-balanced
// best five, and a single aggregate power score per team.
package valuation

import "github.com/stitts-dev/courtside/internal/nba"

const (
	// Unit values are centered on a league-average PIE of 0.10 and
	// clamped so no single player can dominate or zero out a team.
	leagueAveragePIE = 0.10
	pieScale         = 20.0
	unitValueFloor   = 0.1
	unitValueCeiling = 3.5
)

// UnitValue maps a player's efficiency index to a bounded strength
// score in [0.1, 3.5].
func UnitValue(pie float64) float64 {
	uv := 1.0 + (pie-leagueAveragePIE)*pieScale
	if uv < unitValueFloor {
		return unitValueFloor
	}
	if uv > unitValueCeiling {
		return unitValueCeiling
	}
	return uv
}

// ValuedPlayer is an available player with derived scoring weights.
type ValuedPlayer struct {
	nba.PlayerSeasonStat
	UnitValue    float64 `json:"unit_value"`
	Contribution float64 `json:"contribution"`
}

// ValueRoster derives unit values and contributions for the available
// players of a roster. Out players are excluded entirely, not zeroed.
func ValueRoster(roster nba.TeamRoster) []ValuedPlayer {
	available := roster.Available()
	valued := make([]ValuedPlayer, 0, len(available))
	for _, p := range available {
		uv := UnitValue(p.PIE)
		valued = append(valued, ValuedPlayer{
			PlayerSeasonStat: p.PlayerSeasonStat,
			UnitValue:        uv,
			Contribution:     uv * p.MinutesPerGame,
		})
	}
	return valued
}
