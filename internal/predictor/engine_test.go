package predictor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/courtside/internal/models"
	"github.com/stitts-dev/courtside/internal/nba"
)

type fakeSchedule struct {
	games []nba.Game
	err   error
}

func (f *fakeSchedule) GetGames(ctx context.Context, date string) ([]nba.Game, error) {
	return f.games, f.err
}

type fakeStats struct {
	byTeam map[string][]nba.PlayerSeasonStat
}

func (f *fakeStats) GetTeamStats(ctx context.Context, teamCode string) ([]nba.PlayerSeasonStat, error) {
	stats, ok := f.byTeam[teamCode]
	if !ok {
		return nil, errors.New("stats host unreachable")
	}
	return stats, nil
}

type fakeInjuries struct {
	byTeam map[string][]string
	err    error
}

func (f *fakeInjuries) GetOutPlayers(ctx context.Context, teamCode string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byTeam[teamCode], nil
}

type fakeStore struct {
	replacedDate string
	saved        []models.Prediction
	stats        []models.PlayerStat
}

func (s *fakeStore) ReplaceForDate(date string, preds []models.Prediction) error {
	s.replacedDate = date
	s.saved = preds
	return nil
}

func (s *fakeStore) SavePlayerStats(stats []models.PlayerStat) error {
	s.stats = append(s.stats, stats...)
	return nil
}

type recordingNotifier struct {
	posts []string
}

func (n *recordingNotifier) Post(ctx context.Context, text string) error {
	n.posts = append(n.posts, text)
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func rotation(names []string, pies []float64) []nba.PlayerSeasonStat {
	positions := []string{"C", "G", "G", "F", "F", "G", "F", "C"}
	stats := make([]nba.PlayerSeasonStat, 0, len(names))
	for i, name := range names {
		stats = append(stats, nba.PlayerSeasonStat{
			Name:           name,
			Position:       positions[i%len(positions)],
			MinutesPerGame: 30,
			PIE:            pies[i],
			UsagePct:       0.12,
			GamesPlayed:    20,
		})
	}
	return stats
}

var (
	denNames = []string{"Nikola Jokic", "Jamal Murray", "Kentavious Caldwell-Pope", "Aaron Gordon", "Michael Porter", "Reggie Jackson", "Bruce Brown", "Jeff Green"}
	lalNames = []string{"Anthony Davis", "Austin Reaves", "Gabe Vincent", "Rui Hachimura", "Jarred Vanderbilt", "Max Christie", "Cam Reddish", "Christian Wood"}
)

func TestRunDate(t *testing.T) {
	date := "2026-01-20"
	schedule := &fakeSchedule{games: []nba.Game{
		{GameID: "001", Date: date, HomeTeam: "DEN", VisitorTeam: "LAL", StatusText: "7:00 pm ET"},
		{GameID: "001", Date: date, HomeTeam: "DEN", VisitorTeam: "LAL", StatusText: "7:00 pm ET"}, // feed duplicate
	}}
	stats := &fakeStats{byTeam: map[string][]nba.PlayerSeasonStat{
		"DEN": rotation(denNames, []float64{0.15, 0.12, 0.11, 0.10, 0.10, 0.09, 0.09, 0.08}),
		"LAL": rotation(lalNames, []float64{0.12, 0.11, 0.10, 0.10, 0.09, 0.09, 0.08, 0.08}),
	}}
	injuries := &fakeInjuries{byTeam: map[string][]string{"LAL": {"Christian Wood"}}}
	store := &fakeStore{}
	notifier := &recordingNotifier{}

	engine := NewEngine(schedule, stats, injuries, store, notifier, nba.DefaultTeams(), testLogger(), "https://example.com/dash")
	summary, err := engine.RunDate(context.Background(), date)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.GamesScheduled)
	assert.Equal(t, 1, summary.Predicted)
	assert.Equal(t, 0, summary.Skipped)

	require.Len(t, store.saved, 1)
	pred := store.saved[0]
	assert.Equal(t, date, store.replacedDate)
	assert.Equal(t, "001", pred.GameID)
	assert.Equal(t, "DEN", pred.PredictedWinner, "stronger roster plus home court")
	assert.Greater(t, pred.PredictedGap, 0.0)

	var detail models.PredictionDetail
	require.NoError(t, json.Unmarshal(pred.Detail, &detail))
	assert.Greater(t, detail.HomeScore, detail.VisitorScore)
	assert.Equal(t, []string{"Christian Wood"}, detail.VisitorOut)
	assert.Empty(t, detail.HomeOut)

	// Both rosters snapshotted, including the out player.
	assert.Len(t, store.stats, 16)

	require.Len(t, notifier.posts, 1)
	assert.Contains(t, notifier.posts[0], "NBA Matchup Predictions")
	assert.Contains(t, notifier.posts[0], "[✈️LAL] vs [🏠DEN]")
	assert.Contains(t, notifier.posts[0], "Christian Wood")
	assert.Contains(t, notifier.posts[0], "https://example.com/dash")
}

func TestRunDateSkipsFailedTeamFetch(t *testing.T) {
	date := "2026-01-20"
	schedule := &fakeSchedule{games: []nba.Game{
		{GameID: "001", Date: date, HomeTeam: "DEN", VisitorTeam: "LAL"},
		{GameID: "002", Date: date, HomeTeam: "BOS", VisitorTeam: "NYK"},
	}}
	// Only one matchup has stats for both sides.
	stats := &fakeStats{byTeam: map[string][]nba.PlayerSeasonStat{
		"DEN": rotation(denNames[:2], []float64{0.12, 0.10}),
		"LAL": rotation(lalNames[:2], []float64{0.10, 0.10}),
	}}
	store := &fakeStore{}

	engine := NewEngine(schedule, stats, &fakeInjuries{}, store, &recordingNotifier{}, nba.DefaultTeams(), testLogger(), "")
	summary, err := engine.RunDate(context.Background(), date)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Predicted)
	assert.Equal(t, 1, summary.Skipped)
	require.Len(t, store.saved, 1)
	assert.Equal(t, "001", store.saved[0].GameID)
}

func TestRunDateInjuryFeedDownDegradesToAllOK(t *testing.T) {
	date := "2026-01-20"
	schedule := &fakeSchedule{games: []nba.Game{
		{GameID: "001", Date: date, HomeTeam: "DEN", VisitorTeam: "LAL"},
	}}
	stats := &fakeStats{byTeam: map[string][]nba.PlayerSeasonStat{
		"DEN": rotation(denNames[:2], []float64{0.12, 0.10}),
		"LAL": rotation(lalNames[:2], []float64{0.10, 0.10}),
	}}
	injuries := &fakeInjuries{err: errors.New("scrape blocked")}
	store := &fakeStore{}

	engine := NewEngine(schedule, stats, injuries, store, &recordingNotifier{}, nba.DefaultTeams(), testLogger(), "")
	summary, err := engine.RunDate(context.Background(), date)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Predicted)

	var detail models.PredictionDetail
	require.NoError(t, json.Unmarshal(store.saved[0].Detail, &detail))
	assert.Empty(t, detail.HomeOut)
	assert.Empty(t, detail.VisitorOut)
}

func TestRunDateEmptySchedule(t *testing.T) {
	store := &fakeStore{}
	notifier := &recordingNotifier{}
	engine := NewEngine(&fakeSchedule{}, &fakeStats{}, &fakeInjuries{}, store, notifier, nba.DefaultTeams(), testLogger(), "")

	summary, err := engine.RunDate(context.Background(), "2026-01-20")

	require.NoError(t, err)
	assert.Equal(t, 0, summary.GamesScheduled)
	assert.Empty(t, notifier.posts)
}

func TestRunDateScheduleFailure(t *testing.T) {
	engine := NewEngine(&fakeSchedule{err: errors.New("feed down")}, &fakeStats{}, &fakeInjuries{}, &fakeStore{}, &recordingNotifier{}, nba.DefaultTeams(), testLogger(), "")

	_, err := engine.RunDate(context.Background(), "2026-01-20")

	assert.Error(t, err)
}
