package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/courtside/internal/models"
	"github.com/stitts-dev/courtside/pkg/database"
)

func newTestStore(t *testing.T) *PredictionStore {
	t.Helper()
	// One named in-memory database per test; shared cache keeps every
	// pooled connection on it.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.NewConnection(dsn, false)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })
	return NewPredictionStore(db)
}

func prediction(gameID, date, home, visitor, winner string) models.Prediction {
	return models.Prediction{
		GameID:          gameID,
		Date:            date,
		HomeTeam:        home,
		VisitTeam:       visitor,
		PredictedWinner: winner,
	}
}

func TestReplaceForDate(t *testing.T) {
	s := newTestStore(t)
	date := "2026-01-20"

	require.NoError(t, s.ReplaceForDate(date, []models.Prediction{
		prediction("001", date, "DEN", "LAL", "DEN"),
		prediction("002", date, "BOS", "NYK", "BOS"),
	}))

	// Re-running the date replaces, never accumulates.
	require.NoError(t, s.ReplaceForDate(date, []models.Prediction{
		prediction("001", date, "DEN", "LAL", "LAL"),
	}))

	preds, err := s.ListByDate(date)
	require.NoError(t, err)
	require.Len(t, preds, 1)
	assert.Equal(t, "001", preds[0].GameID)
	assert.Equal(t, "LAL", preds[0].PredictedWinner)
}

func TestReplaceForDateMovedGameTakesOverItsRow(t *testing.T) {
	s := newTestStore(t)
	oldDate := "2026-01-24"
	newDate := "2026-01-27"

	require.NoError(t, s.ReplaceForDate(oldDate, []models.Prediction{
		prediction("001", oldDate, "GSW", "LAL", "GSW"),
	}))

	// The provider shifted the game to a new date; re-predicting there
	// must absorb the stale row, not collide with its game id.
	require.NoError(t, s.ReplaceForDate(newDate, []models.Prediction{
		prediction("001", newDate, "GSW", "LAL", "LAL"),
	}))

	oldPreds, err := s.ListByDate(oldDate)
	require.NoError(t, err)
	assert.Empty(t, oldPreds)

	newPreds, err := s.ListByDate(newDate)
	require.NoError(t, err)
	require.Len(t, newPreds, 1)
	assert.Equal(t, "001", newPreds[0].GameID)
	assert.Equal(t, newDate, newPreds[0].Date)
	assert.Equal(t, "LAL", newPreds[0].PredictedWinner)
}

func TestUpdateOutcomes(t *testing.T) {
	s := newTestStore(t)
	date := "2026-01-20"

	require.NoError(t, s.ReplaceForDate(date, []models.Prediction{
		prediction("001", date, "DEN", "LAL", "DEN"),
		prediction("002", date, "BOS", "NYK", "NYK"),
	}))
	preds, err := s.ListByDate(date)
	require.NoError(t, err)

	winner := "DEN"
	postponed := models.PostponedMarker
	correct := 1
	require.NoError(t, s.UpdateOutcomes([]models.OutcomeUpdate{
		{ID: preds[0].ID, ActualWinner: &winner, IsCorrect: &correct},
		{ID: preds[1].ID, ActualWinner: &postponed, IsCorrect: nil},
	}))

	graded, err := s.ListByDate(date)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinal, graded[0].Status())
	assert.Equal(t, 1, *graded[0].IsCorrect)
	assert.Equal(t, models.StatusPostponed, graded[1].Status())
	assert.Nil(t, graded[1].IsCorrect)

	// Empty batches are a no-op.
	require.NoError(t, s.UpdateOutcomes(nil))
}
