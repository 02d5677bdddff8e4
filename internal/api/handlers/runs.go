package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/courtside/internal/grading"
	"github.com/stitts-dev/courtside/internal/nba"
	"github.com/stitts-dev/courtside/internal/predictor"
	"github.com/stitts-dev/courtside/pkg/utils"
)

const runTimeout = 30 * time.Minute

// RunHandler triggers prediction and grading runs on demand. Runs talk
// to slow external feeds, so they execute in the background and the
// request returns 202 immediately.
type RunHandler struct {
	predictor *predictor.Engine
	grader    *grading.Engine
	location  *time.Location
	logger    *logrus.Logger
}

func NewRunHandler(p *predictor.Engine, g *grading.Engine, location *time.Location, logger *logrus.Logger) *RunHandler {
	return &RunHandler{
		predictor: p,
		grader:    g,
		location:  location,
		logger:    logger,
	}
}

// TriggerPredict starts a prediction run for ?date= (default today).
func (h *RunHandler) TriggerPredict(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().In(h.location).Format(nba.DateFormat))
	date, ok := parseDate(c, date)
	if !ok {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		if _, err := h.predictor.RunDate(ctx, date); err != nil {
			h.logger.Errorf("Prediction run for %s failed: %v", date, err)
		}
	}()

	utils.SendAccepted(c, gin.H{"run": "predict", "date": date})
}

// TriggerGrade starts a grading run for ?date= (default yesterday).
func (h *RunHandler) TriggerGrade(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().In(h.location).AddDate(0, 0, -1).Format(nba.DateFormat))
	date, ok := parseDate(c, date)
	if !ok {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		if _, err := h.grader.GradeDate(ctx, date); err != nil {
			h.logger.Errorf("Grading run for %s failed: %v", date, err)
		}
	}()

	utils.SendAccepted(c, gin.H{"run": "grade", "date": date})
}

// TriggerReconcile starts a reconciliation sweep over [from, to],
// defaulting to yesterday for both ends.
func (h *RunHandler) TriggerReconcile(c *gin.Context) {
	yesterday := time.Now().In(h.location).AddDate(0, 0, -1).Format(nba.DateFormat)

	fromStr, ok := parseDate(c, c.DefaultQuery("from", yesterday))
	if !ok {
		return
	}
	toStr, ok := parseDate(c, c.DefaultQuery("to", yesterday))
	if !ok {
		return
	}
	if fromStr > toStr {
		utils.SendValidationError(c, "Invalid range", "from is after to")
		return
	}

	from, _ := time.Parse(nba.DateFormat, fromStr)
	to, _ := time.Parse(nba.DateFormat, toStr)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		if _, err := h.grader.Reconcile(ctx, from, to); err != nil {
			h.logger.Errorf("Reconciliation %s..%s failed: %v", fromStr, toStr, err)
		}
	}()

	utils.SendAccepted(c, gin.H{"run": "reconcile", "from": fromStr, "to": toStr})
}
