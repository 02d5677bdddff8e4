package predictor

import (
	"fmt"
	"strings"
)

const strongEdgeGap = 1.0

// buildDailyReport formats a run's forecasts as the chat report: one
// block per game with the winning score in bold and out-player notes.
func (e *Engine) buildDailyReport(date string, forecasts []gameForecast) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🏀 *NBA Matchup Predictions* (%s)\n", date)
	b.WriteString("================================\n")

	for _, f := range forecasts {
		p := f.prediction
		fmt.Fprintf(&b, "\n[✈️%s] vs [🏠%s]\n", p.VisitTeam, p.HomeTeam)

		if f.visitPower.Score > f.homePower.Score {
			fmt.Fprintf(&b, "UV: *%.2f* > %.2f\n", f.visitPower.Score, f.homePower.Score)
		} else {
			fmt.Fprintf(&b, "UV: %.2f < *%.2f*\n", f.visitPower.Score, f.homePower.Score)
		}

		icon := "👉"
		if p.PredictedGap >= strongEdgeGap {
			icon = "💪"
		}
		if p.PredictedWinner == p.HomeTeam {
			fmt.Fprintf(&b, "%s [🏠%s] favored (`+%.2f`)\n", icon, p.HomeTeam, p.PredictedGap)
		} else {
			fmt.Fprintf(&b, "%s [✈️%s] favored (`+%.2f`)\n", icon, p.VisitTeam, p.PredictedGap)
		}

		if len(f.homeOut) > 0 || len(f.visitOut) > 0 {
			b.WriteString("🚑 Out:\n")
			if len(f.homeOut) > 0 {
				fmt.Fprintf(&b, "   %s: %s\n", p.HomeTeam, strings.Join(f.homeOut, ", "))
			}
			if len(f.visitOut) > 0 {
				fmt.Fprintf(&b, "   %s: %s\n", p.VisitTeam, strings.Join(f.visitOut, ", "))
			}
		}
		b.WriteString("--------------------------------\n")
	}

	if e.dashboardURL != "" {
		fmt.Fprintf(&b, "※ Details: %s", e.dashboardURL)
	} else {
		b.WriteString("※ See the dashboard for details.")
	}
	return b.String()
}
