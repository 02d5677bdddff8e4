package valuation

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// A regulation game is 5 positions times 48 minutes. Rosters with
	// fewer sampled minutes are padded at replacement level so small
	// samples cannot produce extreme per-minute rates.
	fullGameMinutes      = 240.0
	replacementUnitValue = 0.5

	// HomeAdvantage is the flat score bonus for the home side.
	HomeAdvantage = 0.15

	// Teams whose two highest usage shares exceed the cap are docked
	// for over-reliance on ball-dominant players.
	usageConcentrationCap     = 0.60
	concentrationPenaltyScale = 3.0

	lineupScale = 5.0
)

// TeamPower is one team's aggregate score in one game context.
type TeamPower struct {
	Score   float64 `json:"score"`
	Penalty float64 `json:"penalty"`
	Detail  string  `json:"detail"`
	NoData  bool    `json:"no_data,omitempty"`
}

// TeamPowerScore aggregates a valued, available roster (starters and
// bench both count) into a single scalar. An empty roster yields a zero
// score with a no-data marker rather than an error.
func TeamPowerScore(roster []ValuedPlayer, isHome bool) TeamPower {
	if len(roster) == 0 {
		return TeamPower{Score: 0.0, Penalty: 0.0, Detail: "no data", NoData: true}
	}

	totalMinutes := 0.0
	totalContribution := 0.0
	for _, p := range roster {
		totalMinutes += p.MinutesPerGame
		totalContribution += p.Contribution
	}

	if totalMinutes < fullGameMinutes {
		missing := fullGameMinutes - totalMinutes
		totalContribution += replacementUnitValue * missing
		totalMinutes = fullGameMinutes
	}

	rawScore := (totalContribution / totalMinutes) * lineupScale
	if isHome {
		rawScore += HomeAdvantage
	}

	penalty := 0.0
	if top2 := topTwoUsage(roster); top2 > usageConcentrationCap {
		penalty = (top2 - usageConcentrationCap) * concentrationPenaltyScale
	}

	return TeamPower{
		Score:   rawScore - penalty,
		Penalty: penalty,
		Detail:  composeDetail(roster, isHome, penalty),
	}
}

// topTwoUsage sums the two highest usage shares on the roster.
func topTwoUsage(roster []ValuedPlayer) float64 {
	usages := make([]float64, 0, len(roster))
	for _, p := range roster {
		usages = append(usages, p.UsagePct)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(usages)))
	total := 0.0
	for i := 0; i < len(usages) && i < 2; i++ {
		total += usages[i]
	}
	return total
}

// composeDetail builds the human-readable score breakdown used in
// reports: starters with unit values, bench size, and the home or
// penalty annotations. Presentation only.
func composeDetail(roster []ValuedPlayer, isHome bool, penalty float64) string {
	lineup := SelectLineup(roster)

	parts := make([]string, 0, len(lineup.Starters)+3)
	for _, p := range lineup.Starters {
		pos := p.Position
		if pos == "" {
			pos = "?"
		}
		parts = append(parts, fmt.Sprintf("%s(%s/%.1f)", p.Name, pos, p.UnitValue))
	}
	if len(lineup.Bench) > 0 {
		parts = append(parts, fmt.Sprintf("bench(%d)", len(lineup.Bench)))
	}
	if isHome {
		parts = append(parts, fmt.Sprintf("home(+%.2f)", HomeAdvantage))
	}
	if penalty > 0 {
		parts = append(parts, fmt.Sprintf("penalty(-%.2f)", penalty))
	}
	return strings.Join(parts, " + ")
}
