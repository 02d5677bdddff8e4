package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/stitts-dev/courtside/internal/nba"
)

// NBAStatsClient talks to the league stats host. The host throttles
// aggressively and drops connections under load, so every call goes
// through a rate limiter, a circuit breaker and the retry policy.
type NBAStatsClient struct {
	httpClient *http.Client
	baseURL    string
	season     string
	minGames   float64
	minMinutes float64
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	retry      RetryPolicy
	cache      nba.CacheProvider
	teams      *nba.TeamTable
	logger     *logrus.Logger
}

// NBAStatsConfig carries the tunables for NewNBAStatsClient.
type NBAStatsConfig struct {
	BaseURL          string
	Season           string
	Timeout          time.Duration
	RateLimit        float64
	RetryAttempts    int
	RetryDelay       time.Duration
	BreakerThreshold uint32
	MinGamesPlayed   float64
	MinMinutes       float64
}

// NewNBAStatsClient builds a stats client. Cache may be nil, in which
// case every call hits the host.
func NewNBAStatsClient(cfg NBAStatsConfig, teams *nba.TeamTable, cache nba.CacheProvider, logger *logrus.Logger) *NBAStatsClient {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "nba-stats",
		Timeout: 60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnf("Circuit breaker %s: %s -> %s", name, from, to)
		},
	})

	return &NBAStatsClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		season:     cfg.Season,
		minGames:   cfg.MinGamesPlayed,
		minMinutes: cfg.MinMinutes,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		breaker:    breaker,
		retry:      RetryPolicy{Attempts: cfg.RetryAttempts, Delay: cfg.RetryDelay, Logger: logger},
		cache:      cache,
		teams:      teams,
		logger:     logger,
	}
}

// getJSON fetches one stats endpoint into out, applying the limiter,
// breaker and retries. The browser-like headers are required; the host
// rejects plain clients.
func (c *NBAStatsClient) getJSON(ctx context.Context, endpoint string, params map[string]string, out *statsResponse) error {
	return c.retry.Do(ctx, endpoint, func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		_, err := c.breaker.Execute(func() (interface{}, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
			if err != nil {
				return nil, err
			}
			q := req.URL.Query()
			for k, v := range params {
				q.Set(k, v)
			}
			req.URL.RawQuery = q.Encode()

			req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36")
			req.Header.Set("Referer", "https://stats.nba.com/")
			req.Header.Set("Origin", "https://stats.nba.com")
			req.Header.Set("Accept", "application/json")
			req.Header.Set("x-nba-stats-origin", "stats")
			req.Header.Set("x-nba-stats-token", "true")

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
				return nil, fmt.Errorf("%s returned status %d: %s", endpoint, resp.StatusCode, string(body))
			}

			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return nil, fmt.Errorf("failed to decode %s response: %w", endpoint, err)
			}
			return nil, nil
		})
		return err
	})
}
