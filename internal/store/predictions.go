// Package store owns prediction and stat-snapshot persistence.
package store

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stitts-dev/courtside/internal/models"
	"github.com/stitts-dev/courtside/pkg/database"
)

// PredictionStore persists predictions and daily stat snapshots.
type PredictionStore struct {
	db *database.DB
}

// NewPredictionStore creates a store over the shared connection.
func NewPredictionStore(db *database.DB) *PredictionStore {
	return &PredictionStore{db: db}
}

// ReplaceForDate clears a date's predictions and writes the new set in
// one transaction. Re-running a date regenerates, never accumulates.
// The insert upserts by game id so a game the provider shifted to this
// date takes over its stale row from the old date instead of colliding
// with it.
func (s *PredictionStore) ReplaceForDate(date string, preds []models.Prediction) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date = ?", date).Delete(&models.Prediction{}).Error; err != nil {
			return err
		}
		if len(preds) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "game_id"}},
			UpdateAll: true,
		}).Create(&preds).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace predictions for %s: %w", date, err)
	}
	return nil
}

// ListByDate returns a date's predictions in insertion order.
func (s *PredictionStore) ListByDate(date string) ([]models.Prediction, error) {
	var preds []models.Prediction
	if err := s.db.Where("date = ?", date).Order("id").Find(&preds).Error; err != nil {
		return nil, fmt.Errorf("failed to list predictions for %s: %w", date, err)
	}
	return preds, nil
}

// ListByDateRange returns predictions with date in [from, to].
func (s *PredictionStore) ListByDateRange(from, to string) ([]models.Prediction, error) {
	var preds []models.Prediction
	if err := s.db.Where("date BETWEEN ? AND ?", from, to).Order("date, id").Find(&preds).Error; err != nil {
		return nil, fmt.Errorf("failed to list predictions %s..%s: %w", from, to, err)
	}
	return preds, nil
}

// UpdateOutcomes writes a batch of graded outcomes in one transaction,
// so a reconciled date commits whole or not at all. Map updates are
// used so nil values reach the database as NULLs.
func (s *PredictionStore) UpdateOutcomes(updates []models.OutcomeUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			err := tx.Model(&models.Prediction{}).Where("id = ?", u.ID).Updates(map[string]interface{}{
				"actual_winner": u.ActualWinner,
				"is_correct":    u.IsCorrect,
			}).Error
			if err != nil {
				return fmt.Errorf("prediction %d: %w", u.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update outcomes: %w", err)
	}
	return nil
}

// SavePlayerStats upserts the day's stat snapshot by (date, player).
func (s *PredictionStore) SavePlayerStats(stats []models.PlayerStat) error {
	if len(stats) == 0 {
		return nil
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}, {Name: "player_name"}},
		UpdateAll: true,
	}).Create(&stats).Error
	if err != nil {
		return fmt.Errorf("failed to save player stats: %w", err)
	}
	return nil
}
