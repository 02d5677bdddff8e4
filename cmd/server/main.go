package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/courtside/internal/api"
	"github.com/stitts-dev/courtside/internal/api/middleware"
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

const runTimeout = 30 * time.Minute

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logging
	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
		gin.SetMode(gin.DebugMode)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
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

	// Connect to Redis. Optional: without it every provider call goes
	// upstream.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logrus.Warnf("Invalid Redis URL, caching disabled: %v", err)
		} else {
			redisClient = redis.NewClient(opt)
			if err := redisClient.Ping(context.Background()).Err(); err != nil {
				logrus.Warnf("Redis unreachable, caching disabled: %v", err)
				redisClient = nil
			} else {
				defer redisClient.Close()
			}
		}
	}
	cacheService := services.NewCacheService(redisClient)

	location, err := time.LoadLocation(cfg.LeagueTimezone)
	if err != nil {
		logrus.Fatalf("Invalid league timezone %q: %v", cfg.LeagueTimezone, err)
	}

	// Providers
	teams := nba.DefaultTeams()
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

	// Notifier
	var notifier notify.Notifier
	if cfg.SlackBotToken != "" {
		notifier = notify.NewSlackNotifier(cfg.SlackBotToken, cfg.SlackChannelID(), cfg.IsTestMode())
	} else {
		logrus.Warn("No Slack bot token configured, reports go to the log")
		notifier = notify.NewLogNotifier(logger)
	}

	// Engines
	predictionStore := store.NewPredictionStore(db)
	predictEngine := predictor.NewEngine(statsClient, statsClient, injuryClient, predictionStore, notifier, teams, logger, cfg.DashboardURL)
	gradeEngine := grading.NewEngine(statsClient, predictionStore, notifier, logger)

	// Scheduled runs
	var scheduler *cron.Cron
	if cfg.EnableBackgroundJobs {
		scheduler = cron.New(cron.WithLocation(location))

		if _, err := scheduler.AddFunc(cfg.PredictSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
			defer cancel()
			date := time.Now().In(location).Format(nba.DateFormat)
			if _, err := predictEngine.RunDate(ctx, date); err != nil {
				logrus.Errorf("Scheduled prediction run failed: %v", err)
			}
		}); err != nil {
			logrus.Fatalf("Invalid predict schedule %q: %v", cfg.PredictSchedule, err)
		}

		if _, err := scheduler.AddFunc(cfg.GradeSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
			defer cancel()
			date := time.Now().In(location).AddDate(0, 0, -1).Format(nba.DateFormat)
			if _, err := gradeEngine.GradeDate(ctx, date); err != nil {
				logrus.Errorf("Scheduled grading run failed: %v", err)
			}
		}); err != nil {
			logrus.Fatalf("Invalid grade schedule %q: %v", cfg.GradeSchedule, err)
		}

		scheduler.Start()
		defer scheduler.Stop()
		logrus.Infof("Background jobs enabled: predict %q, grade %q (%s)", cfg.PredictSchedule, cfg.GradeSchedule, cfg.LeagueTimezone)
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC(),
		})
	})

	// Setup API routes under /api/v1
	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, db, predictionStore, predictEngine, gradeEngine, location, logger)

	// Setup server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
