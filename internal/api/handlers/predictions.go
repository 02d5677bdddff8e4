package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/courtside/internal/grading"
	"github.com/stitts-dev/courtside/internal/models"
	"github.com/stitts-dev/courtside/internal/nba"
	"github.com/stitts-dev/courtside/internal/store"
	"github.com/stitts-dev/courtside/pkg/utils"
)

type PredictionHandler struct {
	store *store.PredictionStore
}

func NewPredictionHandler(s *store.PredictionStore) *PredictionHandler {
	return &PredictionHandler{store: s}
}

// GetPredictions lists predictions for one date (?date=) or a range
// (?from=&to=).
func (h *PredictionHandler) GetPredictions(c *gin.Context) {
	var (
		preds []models.Prediction
		err   error
	)

	switch {
	case c.Query("date") != "":
		date, ok := parseDate(c, c.Query("date"))
		if !ok {
			return
		}
		preds, err = h.store.ListByDate(date)
	case c.Query("from") != "" && c.Query("to") != "":
		from, ok := parseDate(c, c.Query("from"))
		if !ok {
			return
		}
		to, ok := parseDate(c, c.Query("to"))
		if !ok {
			return
		}
		preds, err = h.store.ListByDateRange(from, to)
	default:
		utils.SendValidationError(c, "Missing date filter", "provide date= or from= and to=")
		return
	}

	if err != nil {
		utils.SendInternalError(c, "Failed to load predictions")
		return
	}

	views := make([]predictionView, 0, len(preds))
	for _, p := range preds {
		views = append(views, toView(p))
	}
	utils.SendSuccess(c, views)
}

// GetSummary returns the accuracy scorecard over a date range. Defaults
// to the season to date when no range is given.
func (h *PredictionHandler) GetSummary(c *gin.Context) {
	from := c.DefaultQuery("from", "1970-01-01")
	to := c.DefaultQuery("to", time.Now().UTC().Format(nba.DateFormat))

	from, ok := parseDate(c, from)
	if !ok {
		return
	}
	to, ok = parseDate(c, to)
	if !ok {
		return
	}

	preds, err := h.store.ListByDateRange(from, to)
	if err != nil {
		utils.SendInternalError(c, "Failed to load predictions")
		return
	}

	correct, graded, pct := grading.Accuracy(preds)
	postponed := 0
	pending := 0
	for _, p := range preds {
		switch p.Status() {
		case models.StatusPostponed:
			postponed++
		case models.StatusPending:
			pending++
		}
	}

	utils.SendSuccess(c, gin.H{
		"from":      from,
		"to":        to,
		"total":     len(preds),
		"graded":    graded,
		"correct":   correct,
		"accuracy":  pct,
		"postponed": postponed,
		"pending":   pending,
	})
}

// predictionView flattens a row for the dashboard.
type predictionView struct {
	ID              uint    `json:"id"`
	Date            string  `json:"date"`
	HomeTeam        string  `json:"home_team"`
	VisitTeam       string  `json:"visit_team"`
	PredictedWinner string  `json:"predicted_winner"`
	PredictedGap    float64 `json:"predicted_gap"`
	ActualWinner    *string `json:"actual_winner"`
	IsCorrect       *int    `json:"is_correct"`
	Status          string  `json:"status"`
}

func toView(p models.Prediction) predictionView {
	return predictionView{
		ID:              p.ID,
		Date:            p.Date,
		HomeTeam:        p.HomeTeam,
		VisitTeam:       p.VisitTeam,
		PredictedWinner: p.PredictedWinner,
		PredictedGap:    p.PredictedGap,
		ActualWinner:    p.ActualWinner,
		IsCorrect:       p.IsCorrect,
		Status:          p.Status(),
	}
}

// parseDate validates a YYYY-MM-DD query value, writing the error
// response itself on failure.
func parseDate(c *gin.Context, value string) (string, bool) {
	t, err := time.Parse(nba.DateFormat, value)
	if err != nil {
		utils.SendValidationError(c, "Invalid date", "expected YYYY-MM-DD, got "+value)
		return "", false
	}
	return t.Format(nba.DateFormat), true
}
