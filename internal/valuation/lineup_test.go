package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stitts-dev/courtside/internal/nba"
)

func valued(name, position string, contribution float64) ValuedPlayer {
	return ValuedPlayer{
		PlayerSeasonStat: nba.PlayerSeasonStat{Name: name, Position: position},
		Contribution:     contribution,
	}
}

func starterNames(l Lineup) []string {
	names := make([]string, 0, len(l.Starters))
	for _, p := range l.Starters {
		names = append(names, p.Name)
	}
	return names
}

func TestSelectLineupPositionBalance(t *testing.T) {
	roster := []ValuedPlayer{
		valued("BigOne", "C", 90),
		valued("BigTwo", "C", 85),
		valued("GuardOne", "G", 80),
		valued("GuardTwo", "G", 75),
		valued("GuardThree", "G", 70),
		valued("WingOne", "F", 65),
		valued("WingTwo", "F", 60),
	}

	lineup := SelectLineup(roster)

	// One center even though two centers out-rank every guard.
	assert.Equal(t, []string{"BigOne", "GuardOne", "GuardTwo", "WingOne", "WingTwo"}, starterNames(lineup))
	assert.Len(t, lineup.Bench, 2)
}

func TestSelectLineupCombinedPositionsCount(t *testing.T) {
	roster := []ValuedPlayer{
		valued("Swing", "G/F", 100),
		valued("Center", "C", 90),
		valued("GuardOne", "G", 80),
		valued("Forward", "F", 70),
		valued("Wing", "F", 60),
		valued("GuardTwo", "G", 50),
	}

	lineup := SelectLineup(roster)

	// The G/F swingman fills a guard slot first, leaving both forward
	// slots for pure forwards.
	assert.Equal(t, []string{"Center", "Swing", "GuardOne", "Forward", "Wing"}, starterNames(lineup))
}

func TestSelectLineupTopsUpWhenUnderstocked(t *testing.T) {
	roster := []ValuedPlayer{
		valued("GuardOne", "G", 90),
		valued("GuardTwo", "G", 80),
		valued("GuardThree", "G", 70),
		valued("GuardFour", "G", 60),
		valued("GuardFive", "G", 50),
		valued("GuardSix", "G", 40),
	}

	lineup := SelectLineup(roster)

	// No centers or forwards at all: best five by contribution.
	assert.Equal(t, []string{"GuardOne", "GuardTwo", "GuardThree", "GuardFour", "GuardFive"}, starterNames(lineup))
	assert.Equal(t, []string{"GuardSix"}, []string{lineup.Bench[0].Name})
}

func TestSelectLineupSmallRoster(t *testing.T) {
	roster := []ValuedPlayer{
		valued("Solo", "C", 50),
		valued("Duo", "G", 40),
	}

	lineup := SelectLineup(roster)

	assert.Len(t, lineup.Starters, 2)
	assert.Empty(t, lineup.Bench)
}

func TestSelectLineupStableOnTies(t *testing.T) {
	roster := []ValuedPlayer{
		valued("First", "F", 50),
		valued("Second", "F", 50),
		valued("Third", "F", 50),
	}

	lineup := SelectLineup(roster)

	assert.Equal(t, []string{"First", "Second", "Third"}, starterNames(lineup))
}
