package grading

import (
	"fmt"
	"strings"

	"github.com/stitts-dev/courtside/internal/models"
)

// buildScorecardReport formats one date's graded predictions as the
// chat report: accuracy header, then one line per game.
func buildScorecardReport(card *Scorecard) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 *Prediction Scorecard* (%s)\n", card.Date)
	if card.Graded > 0 {
		fmt.Fprintf(&b, "Accuracy: *%.1f%%* (%d/%d)\n", card.Accuracy, card.Correct, card.Graded)
		b.WriteString("(postponed games excluded)\n")
	} else if len(card.Predictions) > 0 {
		b.WriteString("All games postponed or still in progress.\n")
	} else {
		b.WriteString("No finished games.\n")
	}
	b.WriteString("================================\n")

	for _, p := range card.Predictions {
		switch p.Status() {
		case models.StatusPostponed:
			fmt.Fprintf(&b, "🆖 %s vs %s (postponed)\n", p.VisitTeam, p.HomeTeam)
		case models.StatusFinal:
			icon := "❌"
			if p.IsCorrect != nil && *p.IsCorrect == 1 {
				icon = "✅"
			}
			fmt.Fprintf(&b, "%s %s vs %s (picked: %s / result: %s)\n",
				icon, p.VisitTeam, p.HomeTeam, p.PredictedWinner, *p.ActualWinner)
		default:
			fmt.Fprintf(&b, "⏳ %s vs %s still in progress\n", p.VisitTeam, p.HomeTeam)
		}
	}

	b.WriteString("================================")
	return b.String()
}
