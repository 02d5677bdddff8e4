// Package grading resolves stored predictions against the official
// scoreboard feed. Each prediction moves PENDING -> FINAL or PENDING ->
// POSTPONED; the transition is a pure function of the feed, so re-runs
// over any historical range are safe and idempotent.
package grading

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/courtside/internal/models"
	"github.com/stitts-dev/courtside/internal/nba"
	"github.com/stitts-dev/courtside/internal/notify"
)

// MatchupKey joins a stored prediction to a feed entry. The ordered
// (home, visitor) pair under a date identifies a game.
type MatchupKey struct {
	Date    string
	Home    string
	Visitor string
}

// Outcome is the write a transition produces. Apply is false when the
// game is still pending and the row must not be touched.
type Outcome struct {
	Apply        bool
	ActualWinner *string
	IsCorrect    *int
}

// feedEntry is one game's graded view of the scoreboard.
type feedEntry struct {
	postponed bool
	winner    string // "" until both final scores are present
}

// FeedIndex is a date's scoreboard keyed by matchup.
type FeedIndex map[MatchupKey]feedEntry

// BuildFeedIndex grades a date's scoreboard into lookup form. A
// finished game with a missing score stays winnerless: grading never
// guesses.
func BuildFeedIndex(date string, games []nba.Game) FeedIndex {
	index := make(FeedIndex, len(games))
	for _, g := range games {
		if g.HomeTeam == "" || g.VisitorTeam == "" {
			continue
		}
		entry := feedEntry{postponed: g.IsPostponed()}
		if !entry.postponed && g.IsFinished() {
			entry.winner = g.Winner()
		}
		index[MatchupKey{Date: date, Home: g.HomeTeam, Visitor: g.VisitorTeam}] = entry
	}
	return index
}

// Transition evaluates one stored prediction against the feed:
//
//   - postponement marker in the status -> POSTPONED, overriding any
//     prior state
//   - finished with both scores -> FINAL with correctness
//   - no feed record for the matchup (game moved off this date) ->
//     POSTPONED
//   - otherwise -> still PENDING, no write
func Transition(pred models.Prediction, index FeedIndex) Outcome {
	key := MatchupKey{Date: pred.Date, Home: pred.HomeTeam, Visitor: pred.VisitTeam}
	entry, found := index[key]

	switch {
	case found && entry.postponed:
		return postponedOutcome()
	case found && entry.winner != "":
		correct := 0
		if entry.winner == pred.PredictedWinner {
			correct = 1
		}
		winner := entry.winner
		return Outcome{Apply: true, ActualWinner: &winner, IsCorrect: &correct}
	case !found:
		return postponedOutcome()
	default:
		return Outcome{Apply: false}
	}
}

func postponedOutcome() Outcome {
	marker := models.PostponedMarker
	return Outcome{Apply: true, ActualWinner: &marker, IsCorrect: nil}
}

// Accuracy computes hit rate over graded predictions only; postponed
// and pending rows are excluded from both sides of the ratio.
func Accuracy(preds []models.Prediction) (correct, graded int, pct float64) {
	for _, p := range preds {
		if p.IsCorrect == nil {
			continue
		}
		graded++
		if *p.IsCorrect == 1 {
			correct++
		}
	}
	if graded > 0 {
		pct = float64(correct) / float64(graded) * 100
	}
	return correct, graded, pct
}

// PredictionStore is the slice of persistence grading needs. A date's
// outcomes are handed over as one batch; the store commits them
// atomically.
type PredictionStore interface {
	ListByDate(date string) ([]models.Prediction, error)
	UpdateOutcomes(updates []models.OutcomeUpdate) error
}

// SyncSummary reports one reconciliation pass.
type SyncSummary struct {
	From         string `json:"from"`
	To           string `json:"to"`
	DatesChecked int    `json:"dates_checked"`
	UpdatedCount int    `json:"updated_count"`
	SkippedDates int    `json:"skipped_dates"`
}

// Engine reconciles stored predictions against the schedule feed.
type Engine struct {
	schedule nba.ScheduleProvider
	store    PredictionStore
	notifier notify.Notifier
	logger   *logrus.Logger
}

// NewEngine creates a grading engine.
func NewEngine(schedule nba.ScheduleProvider, store PredictionStore, notifier notify.Notifier, logger *logrus.Logger) *Engine {
	return &Engine{
		schedule: schedule,
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Reconcile walks every date in [from, to], fetches that date's feed
// once, and applies the transition to each stored prediction. Feed
// failures skip the date and the pass continues.
func (e *Engine) Reconcile(ctx context.Context, from, to time.Time) (*SyncSummary, error) {
	summary := &SyncSummary{
		From: from.Format(nba.DateFormat),
		To:   to.Format(nba.DateFormat),
	}

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := d.Format(nba.DateFormat)

		preds, err := e.store.ListByDate(date)
		if err != nil {
			return summary, fmt.Errorf("failed to load predictions for %s: %w", date, err)
		}
		if len(preds) == 0 {
			continue
		}
		summary.DatesChecked++

		games, err := e.schedule.GetGames(ctx, date)
		if err != nil {
			e.logger.Warnf("Feed unavailable for %s, skipping: %v", date, err)
			summary.SkippedDates++
			continue
		}

		updated, err := e.reconcileDate(date, preds, games)
		if err != nil {
			return summary, err
		}
		summary.UpdatedCount += updated
	}

	e.logger.Infof("Reconciliation complete: %d rows updated across %d dates", summary.UpdatedCount, summary.DatesChecked)
	return summary, nil
}

// reconcileDate evaluates every stored prediction against the date's
// feed and commits all resulting writes as one batch, so the date is
// never left partially graded.
func (e *Engine) reconcileDate(date string, preds []models.Prediction, games []nba.Game) (int, error) {
	index := BuildFeedIndex(date, games)
	var updates []models.OutcomeUpdate
	for _, pred := range preds {
		outcome := Transition(pred, index)
		if !outcome.Apply {
			continue
		}
		updates = append(updates, models.OutcomeUpdate{
			ID:           pred.ID,
			ActualWinner: outcome.ActualWinner,
			IsCorrect:    outcome.IsCorrect,
		})
	}
	if err := e.store.UpdateOutcomes(updates); err != nil {
		return 0, fmt.Errorf("failed to grade %s: %w", date, err)
	}
	return len(updates), nil
}

// Scorecard is the graded view of one date, for reporting.
type Scorecard struct {
	Date         string              `json:"date"`
	Predictions  []models.Prediction `json:"predictions"`
	Correct      int                 `json:"correct"`
	Graded       int                 `json:"graded"`
	Accuracy     float64             `json:"accuracy"`
	UpdatedCount int                 `json:"updated_count"`
}

// GradeDate reconciles a single date and posts the scorecard report.
// Used by the morning-after cron run.
func (e *Engine) GradeDate(ctx context.Context, date string) (*Scorecard, error) {
	preds, err := e.store.ListByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load predictions for %s: %w", date, err)
	}
	if len(preds) == 0 {
		e.logger.Infof("No stored predictions for %s", date)
		return &Scorecard{Date: date}, nil
	}

	games, err := e.schedule.GetGames(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("feed unavailable for %s: %w", date, err)
	}

	updated, err := e.reconcileDate(date, preds, games)
	if err != nil {
		return nil, err
	}

	// Re-read so the scorecard reflects what was written.
	graded, err := e.store.ListByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to reload predictions for %s: %w", date, err)
	}

	card := &Scorecard{Date: date, Predictions: graded, UpdatedCount: updated}
	card.Correct, card.Graded, card.Accuracy = Accuracy(graded)

	if e.notifier != nil {
		if err := e.notifier.Post(ctx, buildScorecardReport(card)); err != nil {
			e.logger.Errorf("Failed to post scorecard: %v", err)
		}
	}
	return card, nil
}
