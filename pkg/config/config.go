package config

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	RedisURL    string

	// Stats provider
	Season                  string
	StatsBaseURL            string
	ExternalAPITimeout      time.Duration
	StatsRateLimit          float64
	RetryAttempts           int
	RetryDelay              time.Duration
	CircuitBreakerThreshold uint32

	// Player-pool thresholds
	MinGamesPlayed float64
	MinMinutes     float64

	// Injury report
	InjuryBaseURL string

	// Notifications
	SlackBotToken      string
	SlackRealChannelID string
	SlackTestChannelID string
	SlackMode          string
	DashboardURL       string

	// Scheduling
	EnableBackgroundJobs bool
	PredictSchedule      string
	GradeSchedule        string
	ReconcileStartDate   string
	LeagueTimezone       string
}

// Load reads configuration from the environment, with a .env file as
// fallback for local development.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DATABASE_URL", "nba_data.db")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("SEASON", "2025-26")
	viper.SetDefault("STATS_BASE_URL", "https://stats.nba.com/stats")
	viper.SetDefault("EXTERNAL_API_TIMEOUT", "60s")
	viper.SetDefault("STATS_RATE_LIMIT", 2.0)
	viper.SetDefault("RETRY_ATTEMPTS", 3)
	viper.SetDefault("RETRY_DELAY", "3s")
	viper.SetDefault("CIRCUIT_BREAKER_THRESHOLD", 5)
	viper.SetDefault("MIN_GAMES_PLAYED", 3.0)
	viper.SetDefault("MIN_MINUTES", 10.0)
	viper.SetDefault("INJURY_BASE_URL", "https://www.espn.com/nba/team/injuries/_/name")
	viper.SetDefault("SLACK_BOT_TOKEN", "")
	viper.SetDefault("SLACK_REAL_CHANNEL_ID", "")
	viper.SetDefault("SLACK_TEST_CHANNEL_ID", "")
	viper.SetDefault("SLACK_MODE", "TEST")
	viper.SetDefault("DASHBOARD_URL", "")
	viper.SetDefault("ENABLE_BACKGROUND_JOBS", true)
	viper.SetDefault("PREDICT_SCHEDULE", "0 13 * * *")
	viper.SetDefault("GRADE_SCHEDULE", "0 9 * * *")
	viper.SetDefault("RECONCILE_START_DATE", "2026-01-19")
	viper.SetDefault("LEAGUE_TIMEZONE", "America/New_York")

	return &Config{
		Port:        viper.GetString("PORT"),
		Env:         viper.GetString("ENV"),
		DatabaseURL: viper.GetString("DATABASE_URL"),
		RedisURL:    viper.GetString("REDIS_URL"),

		Season:                  viper.GetString("SEASON"),
		StatsBaseURL:            viper.GetString("STATS_BASE_URL"),
		ExternalAPITimeout:      viper.GetDuration("EXTERNAL_API_TIMEOUT"),
		StatsRateLimit:          viper.GetFloat64("STATS_RATE_LIMIT"),
		RetryAttempts:           viper.GetInt("RETRY_ATTEMPTS"),
		RetryDelay:              viper.GetDuration("RETRY_DELAY"),
		CircuitBreakerThreshold: viper.GetUint32("CIRCUIT_BREAKER_THRESHOLD"),

		MinGamesPlayed: viper.GetFloat64("MIN_GAMES_PLAYED"),
		MinMinutes:     viper.GetFloat64("MIN_MINUTES"),

		InjuryBaseURL: viper.GetString("INJURY_BASE_URL"),

		SlackBotToken:      viper.GetString("SLACK_BOT_TOKEN"),
		SlackRealChannelID: viper.GetString("SLACK_REAL_CHANNEL_ID"),
		SlackTestChannelID: viper.GetString("SLACK_TEST_CHANNEL_ID"),
		SlackMode:          viper.GetString("SLACK_MODE"),
		DashboardURL:       viper.GetString("DASHBOARD_URL"),

		EnableBackgroundJobs: viper.GetBool("ENABLE_BACKGROUND_JOBS"),
		PredictSchedule:      viper.GetString("PREDICT_SCHEDULE"),
		GradeSchedule:        viper.GetString("GRADE_SCHEDULE"),
		ReconcileStartDate:   viper.GetString("RECONCILE_START_DATE"),
		LeagueTimezone:       viper.GetString("LEAGUE_TIMEZONE"),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// IsTestMode reports whether notifications go to the test channel.
func (c *Config) IsTestMode() bool {
	return c.SlackMode != "REAL"
}

// SlackChannelID returns the channel matching the current mode.
func (c *Config) SlackChannelID() string {
	if c.IsTestMode() {
		return c.SlackTestChannelID
	}
	return c.SlackRealChannelID
}
