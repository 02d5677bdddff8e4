package models

import (
	"time"

	"gorm.io/datatypes"
)

// PostponedMarker is the sentinel stored in ActualWinner for games that
// were cancelled, postponed or shifted off their recorded date.
const PostponedMarker = "Postponed"

// Prediction states derived from ActualWinner / IsCorrect.
const (
	StatusPending   = "PENDING"
	StatusFinal     = "FINAL"
	StatusPostponed = "POSTPONED"
)

// Prediction is the durable record for one game on one date. Created by
// the morning prediction run; mutated only by grading. Invariant:
// IsCorrect is non-nil exactly when ActualWinner holds a team code.
type Prediction struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	GameID          string         `gorm:"uniqueIndex" json:"game_id"`
	Date            string         `gorm:"index;not null" json:"date"`
	HomeTeam        string         `gorm:"not null" json:"home_team"`
	VisitTeam       string         `gorm:"not null" json:"visit_team"`
	PredictedWinner string         `gorm:"not null" json:"predicted_winner"`
	PredictedGap    float64        `json:"predicted_gap"`
	ActualWinner    *string        `json:"actual_winner"`
	IsCorrect       *int           `json:"is_correct"`
	Detail          datatypes.JSON `json:"detail,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Prediction) TableName() string {
	return "predictions"
}

// Status derives the grading state from the stored outcome fields.
func (p *Prediction) Status() string {
	switch {
	case p.ActualWinner == nil:
		return StatusPending
	case *p.ActualWinner == PostponedMarker:
		return StatusPostponed
	default:
		return StatusFinal
	}
}

// OutcomeUpdate is one grading write: the outcome fields for one
// prediction row. A date's updates are applied as a single batch.
type OutcomeUpdate struct {
	ID           uint
	ActualWinner *string
	IsCorrect    *int
}

// PredictionDetail is the presentation payload stored alongside a
// prediction: score breakdowns and out-player lists for reports.
type PredictionDetail struct {
	HomeScore      float64  `json:"home_score"`
	VisitorScore   float64  `json:"visitor_score"`
	HomePenalty    float64  `json:"home_penalty"`
	VisitorPenalty float64  `json:"visitor_penalty"`
	HomeSummary    string   `json:"home_summary"`
	VisitorSummary string   `json:"visitor_summary"`
	HomeOut        []string `json:"home_out,omitempty"`
	VisitorOut     []string `json:"visitor_out,omitempty"`
}
