package valuation

import (
	"sort"
	"strings"
)

const starterCount = 5

// Lineup partitions an available roster into starters and bench.
type Lineup struct {
	Starters []ValuedPlayer `json:"starters"`
	Bench    []ValuedPlayer `json:"bench"`
}

// SelectLineup picks a position-balanced best five: rank everyone by
// contribution, fill 1 center, 2 guards and 2 forwards in that order
// from the ranking, then top up from the full ranking if a position is
// under-stocked. Everyone unselected is bench. Ties keep the ranking's
// stable original order.
func SelectLineup(roster []ValuedPlayer) Lineup {
	ranked := make([]ValuedPlayer, len(roster))
	copy(ranked, roster)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Contribution > ranked[j].Contribution
	})

	selected := make([]bool, len(ranked))
	lineup := Lineup{}

	pick := func(positionLetter string, count int) {
		picked := 0
		for i, p := range ranked {
			if picked >= count {
				break
			}
			if selected[i] || !strings.Contains(p.Position, positionLetter) {
				continue
			}
			lineup.Starters = append(lineup.Starters, p)
			selected[i] = true
			picked++
		}
	}

	pick("C", 1)
	pick("G", 2)
	pick("F", 2)

	// Top up when a position is under-stocked.
	for i, p := range ranked {
		if len(lineup.Starters) >= starterCount {
			break
		}
		if selected[i] {
			continue
		}
		lineup.Starters = append(lineup.Starters, p)
		selected[i] = true
	}

	for i, p := range ranked {
		if !selected[i] {
			lineup.Bench = append(lineup.Bench, p)
		}
	}
	return lineup
}
