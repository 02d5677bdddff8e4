package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/courtside/internal/api/handlers"
	"github.com/stitts-dev/courtside/internal/grading"
	"github.com/stitts-dev/courtside/internal/predictor"
	"github.com/stitts-dev/courtside/internal/store"
	"github.com/stitts-dev/courtside/pkg/database"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, db *database.DB, predictionStore *store.PredictionStore, predictEngine *predictor.Engine, gradeEngine *grading.Engine, location *time.Location, logger *logrus.Logger) {
	healthHandler := handlers.NewHealthHandler(db)
	predictionHandler := handlers.NewPredictionHandler(predictionStore)
	runHandler := handlers.NewRunHandler(predictEngine, gradeEngine, location, logger)

	// Probes
	group.GET("/health", healthHandler.GetHealth)
	group.GET("/ready", healthHandler.GetReady)

	// Dashboard reads
	group.GET("/predictions", predictionHandler.GetPredictions)
	group.GET("/predictions/summary", predictionHandler.GetSummary)

	// On-demand runs (the cron schedule covers the normal path)
	group.POST("/runs/predict", runHandler.TriggerPredict)
	group.POST("/runs/grade", runHandler.TriggerGrade)
	group.POST("/runs/reconcile", runHandler.TriggerReconcile)
}
