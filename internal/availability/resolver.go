// Package availability marks roster players as out based on the
// free-text injury report. Names come from two different sources and
// rarely match byte-for-byte ("Jokic" vs "Jokić"), so matching is an
// approximate partial-ratio comparison.
package availability

import (
	"strings"

	"github.com/stitts-dev/courtside/internal/nba"
)

// MatchThreshold is the minimum partial-ratio score (0-100) for an
// injury-report name to rule a roster player out.
const MatchThreshold = 80

// Resolve attaches an availability flag to each stat line. A player is
// Out when any out-name scores at or above the threshold; the first
// match wins, there is no best-match search. Everyone else is OK.
func Resolve(team string, players []nba.PlayerSeasonStat, outNames []string) nba.TeamRoster {
	roster := nba.TeamRoster{
		Team:    team,
		Players: make([]nba.RosterPlayer, 0, len(players)),
	}
	for _, p := range players {
		status := nba.AvailabilityOK
		for _, outName := range outNames {
			if PartialRatio(strings.ToLower(outName), strings.ToLower(p.Name)) >= MatchThreshold {
				status = nba.AvailabilityOut
				break
			}
		}
		roster.Players = append(roster.Players, nba.RosterPlayer{
			PlayerSeasonStat: p,
			Availability:     status,
		})
	}
	return roster
}

// PartialRatio scores how well the shorter string matches any
// equal-length window of the longer one, on a 0-100 scale. 100 means
// the shorter string appears verbatim; single-character differences in
// a five-letter surname score 80.
func PartialRatio(a, b string) int {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		return 0
	}

	best := 0
	for start := 0; start+len(shorter) <= len(longer); start++ {
		window := longer[start : start+len(shorter)]
		dist := levenshtein(shorter, window)
		score := (len(shorter) - dist) * 100 / len(shorter)
		if score > best {
			best = score
		}
		if best == 100 {
			break
		}
	}
	return best
}

// levenshtein computes edit distance over runes with two rolling rows.
func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
