package predictor

import (
	"math"

	"github.com/stitts-dev/courtside/internal/valuation"
)

// MatchupPrediction is the winner call and margin for one game.
type MatchupPrediction struct {
	Winner string  `json:"winner"`
	Gap    float64 `json:"gap"`
}

// Predict compares the two power scores. The visitor must strictly
// outscore the home side to be picked; an exact tie goes to the home
// team.
func Predict(homeTeam, visitorTeam string, home, visitor valuation.TeamPower) MatchupPrediction {
	winner := homeTeam
	if visitor.Score > home.Score {
		winner = visitorTeam
	}
	return MatchupPrediction{
		Winner: winner,
		Gap:    math.Abs(home.Score - visitor.Score),
	}
}
