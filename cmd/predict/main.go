package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/courtside/internal/grading"
	"github.com/stitts-dev/courtside/internal/nba"
	"github.com/stitts-dev/courtside/internal/notify"
	"github.com/stitts-dev/courtside/internal/predictor"
	"github.com/stitts-dev/courtside/internal/providers"
	"github.com/stitts-dev/courtside/internal/services"
	"github.com/stitts-dev/courtside/internal/store"
	"github.com/stitts-dev/courtside/pkg/config"
	"github.com/stitts-dev/courtside/pkg/database"
)

// One-shot runner for operating the pipeline without the server:
// predict today's games, grade yesterday's, or sweep a date range.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: predict [run|grade|reconcile] [date|from to]")
	}

	// Load configuration
	cfg := config.Load()
	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logger := logrus.StandardLogger()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	location, err := time.LoadLocation(cfg.LeagueTimezone)
	if err != nil {
		logrus.Fatalf("Invalid league timezone %q: %v", cfg.LeagueTimezone, err)
	}

	teams := nba.DefaultTeams()
	cacheService := services.NewCacheService(nil)
	statsClient := providers.NewNBAStatsClient(providers.NBAStatsConfig{
		BaseURL:          cfg.StatsBaseURL,
		Season:           cfg.Season,
		Timeout:          cfg.ExternalAPITimeout,
		RateLimit:        cfg.StatsRateLimit,
		RetryAttempts:    cfg.RetryAttempts,
		RetryDelay:       cfg.RetryDelay,
		BreakerThreshold: cfg.CircuitBreakerThreshold,
		MinGamesPlayed:   cfg.MinGamesPlayed,
		MinMinutes:       cfg.MinMinutes,
	}, teams, cacheService, logger)

	injuryRetry := providers.RetryPolicy{Attempts: cfg.RetryAttempts, Delay: cfg.RetryDelay, Logger: logger}
	injuryClient := providers.NewInjuryClient(cfg.InjuryBaseURL, cfg.ExternalAPITimeout, injuryRetry, teams, cacheService, logger)

	var notifier notify.Notifier
	if cfg.SlackBotToken != "" {
		notifier = notify.NewSlackNotifier(cfg.SlackBotToken, cfg.SlackChannelID(), cfg.IsTestMode())
	} else {
		notifier = notify.NewLogNotifier(logger)
	}

	predictionStore := store.NewPredictionStore(db)
	predictEngine := predictor.NewEngine(statsClient, statsClient, injuryClient, predictionStore, notifier, teams, logger, cfg.DashboardURL)
	gradeEngine := grading.NewEngine(statsClient, predictionStore, notifier, logger)

	ctx := context.Background()
	now := time.Now().In(location)

	switch os.Args[1] {
	case "run":
		date := argDate(2, now.Format(nba.DateFormat))
		summary, err := predictEngine.RunDate(ctx, date)
		if err != nil {
			logrus.Fatalf("Prediction run failed: %v", err)
		}
		logrus.Infof("Predicted %d of %d games on %s", summary.Predicted, summary.GamesScheduled, summary.Date)

	case "grade":
		date := argDate(2, now.AddDate(0, 0, -1).Format(nba.DateFormat))
		card, err := gradeEngine.GradeDate(ctx, date)
		if err != nil {
			logrus.Fatalf("Grading run failed: %v", err)
		}
		logrus.Infof("Graded %s: %d/%d correct (%.1f%%)", card.Date, card.Correct, card.Graded, card.Accuracy)

	case "reconcile":
		fromStr := argDate(2, cfg.ReconcileStartDate)
		toStr := argDate(3, now.AddDate(0, 0, -1).Format(nba.DateFormat))
		from, err := time.Parse(nba.DateFormat, fromStr)
		if err != nil {
			logrus.Fatalf("Invalid from date %q: %v", fromStr, err)
		}
		to, err := time.Parse(nba.DateFormat, toStr)
		if err != nil {
			logrus.Fatalf("Invalid to date %q: %v", toStr, err)
		}
		summary, err := gradeEngine.Reconcile(ctx, from, to)
		if err != nil {
			logrus.Fatalf("Reconciliation failed: %v", err)
		}
		logrus.Infof("Reconciled %s..%s: %d rows updated, %d dates skipped", summary.From, summary.To, summary.UpdatedCount, summary.SkippedDates)

	default:
		log.Fatalf("Unknown command: %s", os.Args[1])
	}
}

func argDate(pos int, fallback string) string {
	if len(os.Args) > pos {
		return os.Args[pos]
	}
	return fallback
}
