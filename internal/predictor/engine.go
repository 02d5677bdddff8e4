// Package predictor runs the daily valuation pass: for every game on a
// date it values both rosters, predicts the winner and margin, persists
// the predictions, and posts the matchup report.
package predictor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/stitts-dev/courtside/internal/availability"
	"github.com/stitts-dev/courtside/internal/models"
	"github.com/stitts-dev/courtside/internal/nba"
	"github.com/stitts-dev/courtside/internal/notify"
	"github.com/stitts-dev/courtside/internal/valuation"
)

// Store is the persistence slice the daily run needs: idempotent
// replacement of a date's predictions and the stat snapshot upsert.
type Store interface {
	ReplaceForDate(date string, preds []models.Prediction) error
	SavePlayerStats(stats []models.PlayerStat) error
}

// RunSummary reports one prediction run.
type RunSummary struct {
	Date           string              `json:"date"`
	GamesScheduled int                 `json:"games_scheduled"`
	Predicted      int                 `json:"predicted"`
	Skipped        int                 `json:"skipped"`
	Predictions    []models.Prediction `json:"predictions"`
}

// Engine orchestrates a prediction run.
type Engine struct {
	schedule nba.ScheduleProvider
	stats    nba.StatProvider
	injuries nba.InjuryProvider
	store    Store
	notifier notify.Notifier
	teams    *nba.TeamTable
	logger   *logrus.Logger

	dashboardURL string
}

// NewEngine creates a prediction engine.
func NewEngine(
	schedule nba.ScheduleProvider,
	stats nba.StatProvider,
	injuries nba.InjuryProvider,
	store Store,
	notifier notify.Notifier,
	teams *nba.TeamTable,
	logger *logrus.Logger,
	dashboardURL string,
) *Engine {
	return &Engine{
		schedule:     schedule,
		stats:        stats,
		injuries:     injuries,
		store:        store,
		notifier:     notifier,
		teams:        teams,
		logger:       logger,
		dashboardURL: dashboardURL,
	}
}

// gameForecast carries everything one game contributes to the report.
type gameForecast struct {
	prediction models.Prediction
	homePower  valuation.TeamPower
	visitPower valuation.TeamPower
	homeOut    []string
	visitOut   []string
}

// RunDate predicts every game scheduled on the given date. The date's
// stored predictions are replaced wholesale, so re-running regenerates
// rather than accumulates. A failed team fetch skips that game only.
func (e *Engine) RunDate(ctx context.Context, date string) (*RunSummary, error) {
	e.logger.Infof("Starting prediction run for %s", date)

	games, err := e.schedule.GetGames(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule for %s: %w", date, err)
	}

	summary := &RunSummary{Date: date, GamesScheduled: len(games)}
	if len(games) == 0 {
		e.logger.Infof("No games scheduled on %s", date)
		return summary, nil
	}

	var forecasts []gameForecast
	seen := make(map[string]bool)
	for _, game := range games {
		if game.GameID == "" || seen[game.GameID] {
			continue
		}
		seen[game.GameID] = true

		if game.HomeTeam == "" || game.VisitorTeam == "" {
			e.logger.Warnf("Skipping game %s: unknown team code", game.GameID)
			summary.Skipped++
			continue
		}

		forecast, err := e.forecastGame(ctx, date, game)
		if err != nil {
			e.logger.Errorf("Skipping %s vs %s: %v", game.VisitorTeam, game.HomeTeam, err)
			summary.Skipped++
			continue
		}
		forecasts = append(forecasts, *forecast)
		summary.Predictions = append(summary.Predictions, forecast.prediction)
	}
	summary.Predicted = len(forecasts)

	if err := e.store.ReplaceForDate(date, summary.Predictions); err != nil {
		return nil, fmt.Errorf("failed to store predictions for %s: %w", date, err)
	}

	if e.notifier != nil && len(forecasts) > 0 {
		if err := e.notifier.Post(ctx, e.buildDailyReport(date, forecasts)); err != nil {
			e.logger.Errorf("Failed to post prediction report: %v", err)
		}
	}

	e.logger.Infof("Prediction run for %s done: %d predicted, %d skipped", date, summary.Predicted, summary.Skipped)
	return summary, nil
}

// forecastGame values both rosters and builds the prediction row.
func (e *Engine) forecastGame(ctx context.Context, date string, game nba.Game) (*gameForecast, error) {
	homeRoster, err := e.teamRoster(ctx, game.HomeTeam)
	if err != nil {
		return nil, err
	}
	visitRoster, err := e.teamRoster(ctx, game.VisitorTeam)
	if err != nil {
		return nil, err
	}

	homeValued := valuation.ValueRoster(homeRoster)
	visitValued := valuation.ValueRoster(visitRoster)

	homePower := valuation.TeamPowerScore(homeValued, true)
	visitPower := valuation.TeamPowerScore(visitValued, false)

	predicted := Predict(game.HomeTeam, game.VisitorTeam, homePower, visitPower)

	detail, err := json.Marshal(models.PredictionDetail{
		HomeScore:      homePower.Score,
		VisitorScore:   visitPower.Score,
		HomePenalty:    homePower.Penalty,
		VisitorPenalty: visitPower.Penalty,
		HomeSummary:    homePower.Detail,
		VisitorSummary: visitPower.Detail,
		HomeOut:        homeRoster.OutNames(),
		VisitorOut:     visitRoster.OutNames(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal detail: %w", err)
	}

	e.snapshotStats(date, homeRoster)
	e.snapshotStats(date, visitRoster)

	return &gameForecast{
		prediction: models.Prediction{
			GameID:          game.GameID,
			Date:            date,
			HomeTeam:        game.HomeTeam,
			VisitTeam:       game.VisitorTeam,
			PredictedWinner: predicted.Winner,
			PredictedGap:    predicted.Gap,
			Detail:          datatypes.JSON(detail),
		},
		homePower:  homePower,
		visitPower: visitPower,
		homeOut:    homeRoster.OutNames(),
		visitOut:   visitRoster.OutNames(),
	}, nil
}

// teamRoster fetches a team's stat lines and resolves availability.
// An unreachable injury feed degrades to an all-OK roster.
func (e *Engine) teamRoster(ctx context.Context, teamCode string) (nba.TeamRoster, error) {
	stats, err := e.stats.GetTeamStats(ctx, teamCode)
	if err != nil {
		return nba.TeamRoster{}, fmt.Errorf("stats unavailable for %s: %w", teamCode, err)
	}

	outNames, err := e.injuries.GetOutPlayers(ctx, teamCode)
	if err != nil {
		e.logger.Warnf("Injury report unavailable for %s, assuming all players OK: %v", teamCode, err)
		outNames = nil
	}

	return availability.Resolve(teamCode, stats, outNames), nil
}

// snapshotStats persists the day's stat lines. Failure is logged, not
// fatal: the snapshot is an audit trail, not part of the prediction.
func (e *Engine) snapshotStats(date string, roster nba.TeamRoster) {
	rows := make([]models.PlayerStat, 0, len(roster.Players))
	for _, p := range roster.Players {
		rows = append(rows, models.PlayerStat{
			Date:            date,
			PlayerName:      p.Name,
			Team:            roster.Team,
			Availability:    string(p.Availability),
			Position:        p.Position,
			Minutes:         p.MinutesPerGame,
			PIE:             p.PIE,
			UsagePct:        p.UsagePct,
			TrueShootingPct: p.TrueShootingPct,
		})
	}
	if err := e.store.SavePlayerStats(rows); err != nil {
		e.logger.Errorf("Failed to snapshot stats for %s: %v", roster.Team, err)
	}
}
