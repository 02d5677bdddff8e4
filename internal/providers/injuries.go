package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/courtside/internal/nba"
)

const injuryCacheTTL = 15 * time.Minute

// InjuryClient scrapes a team's injury-report page. The page has no
// JSON feed, so this reads the player rows straight out of the markup.
type InjuryClient struct {
	httpClient *http.Client
	baseURL    string
	retry      RetryPolicy
	cache      nba.CacheProvider
	teams      *nba.TeamTable
	logger     *logrus.Logger
}

// NewInjuryClient builds an injury scraper. Cache may be nil.
func NewInjuryClient(baseURL string, timeout time.Duration, retry RetryPolicy, teams *nba.TeamTable, cache nba.CacheProvider, logger *logrus.Logger) *InjuryClient {
	return &InjuryClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		retry:      retry,
		cache:      cache,
		teams:      teams,
		logger:     logger,
	}
}

// GetOutPlayers returns the names of a team's players listed as out.
func (c *InjuryClient) GetOutPlayers(ctx context.Context, teamCode string) ([]string, error) {
	team, ok := c.teams.ByCode(teamCode)
	if !ok {
		return nil, fmt.Errorf("unknown team code %q", teamCode)
	}

	cacheKey := "injuries:" + teamCode
	if c.cache != nil {
		var cached []string
		if err := c.cache.GetSimple(cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	url := c.baseURL + "/" + team.Slug
	var body string
	err := c.retry.Do(ctx, "injury page "+teamCode, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("injury page returned status %d", resp.StatusCode)
		}
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		body = string(raw)
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := parseInjuryPage(body)

	if c.cache != nil {
		if err := c.cache.SetSimple(cacheKey, out, injuryCacheTTL); err != nil {
			c.logger.Debugf("Failed to cache injuries for %s: %v", teamCode, err)
		}
	}
	return out, nil
}

// parseInjuryPage pulls the out-listed player names from the report
// markup. Each player row carries the name in an Athlete__PlayerName
// span and the status later in the same row.
func parseInjuryPage(body string) []string {
	var out []string
	for _, row := range strings.Split(body, "<tr") {
		if !strings.Contains(row, "Athlete__PlayerName") {
			continue
		}
		name := extractPlayerName(row)
		if name == "" {
			continue
		}
		if strings.Contains(strings.ToLower(stripTags(row)), "out") {
			out = append(out, name)
		}
	}
	return out
}

// extractPlayerName takes the text content of the name element: from
// the closing bracket of its opening tag to the next tag boundary.
func extractPlayerName(row string) string {
	marker := strings.Index(row, "Athlete__PlayerName")
	if marker < 0 {
		return ""
	}
	rest := row[marker:]
	start := strings.Index(rest, ">")
	if start < 0 {
		return ""
	}
	rest = rest[start+1:]
	end := strings.Index(rest, "<")
	if end < 0 {
		end = len(rest)
	}
	return strings.TrimSpace(rest[:end])
}

// stripTags drops everything between angle brackets.
func stripTags(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
