package nba

import (
	"context"
	"strings"
	"time"
)

// DateFormat is the canonical game-date layout used in storage and feeds.
const DateFormat = "2006-01-02"

// Availability is a player's injury-report status for a valuation run.
type Availability string

const (
	AvailabilityOK  Availability = "OK"
	AvailabilityOut Availability = "Out"
)

// PlayerSeasonStat is one player's season-to-date per-game line from the
// stats provider, already filtered to rotation players.
type PlayerSeasonStat struct {
	Name            string  `json:"name"`
	Position        string  `json:"position"` // "G", "F", "C" or slash combinations like "G/F"
	MinutesPerGame  float64 `json:"minutes_per_game"`
	PIE             float64 `json:"pie"`
	UsagePct        float64 `json:"usage_pct"`
	TrueShootingPct float64 `json:"true_shooting_pct"`
	GamesPlayed     float64 `json:"games_played"`
}

// RosterPlayer pairs a stat line with its resolved availability.
type RosterPlayer struct {
	PlayerSeasonStat
	Availability Availability `json:"availability"`
}

// TeamRoster is one team's roster at valuation time.
type TeamRoster struct {
	Team    string         `json:"team"`
	Players []RosterPlayer `json:"players"`
}

// Available returns the players not ruled out, in roster order.
func (r TeamRoster) Available() []RosterPlayer {
	out := make([]RosterPlayer, 0, len(r.Players))
	for _, p := range r.Players {
		if p.Availability != AvailabilityOut {
			out = append(out, p)
		}
	}
	return out
}

// OutNames returns the names of players ruled out, in roster order.
func (r TeamRoster) OutNames() []string {
	var names []string
	for _, p := range r.Players {
		if p.Availability == AvailabilityOut {
			names = append(names, p.Name)
		}
	}
	return names
}

// Game is one scheduled or played game from the scoreboard feed.
// Scores are nil until the feed reports them.
type Game struct {
	GameID       string `json:"game_id"`
	Date         string `json:"date"`
	HomeTeam     string `json:"home_team"`
	VisitorTeam  string `json:"visitor_team"`
	StatusID     int    `json:"status_id"`
	StatusText   string `json:"status_text"`
	HomeScore    *int   `json:"home_score,omitempty"`
	VisitorScore *int   `json:"visitor_score,omitempty"`
}

const statusIDFinal = 3

// IsPostponed reports whether the feed's status text carries a
// postponement marker.
func (g Game) IsPostponed() bool {
	status := strings.ToUpper(g.StatusText)
	return strings.Contains(status, "PPD") || strings.Contains(status, "POSTPONED")
}

// IsFinished reports whether the feed considers the game over.
func (g Game) IsFinished() bool {
	return g.StatusID == statusIDFinal || strings.Contains(strings.ToUpper(g.StatusText), "FINAL")
}

// Winner returns the higher-scoring team code, or "" while either score
// is missing. Scores never tie in this league.
func (g Game) Winner() string {
	if g.HomeScore == nil || g.VisitorScore == nil {
		return ""
	}
	if *g.HomeScore > *g.VisitorScore {
		return g.HomeTeam
	}
	return g.VisitorTeam
}

// StatProvider fetches a team's season stat lines.
type StatProvider interface {
	GetTeamStats(ctx context.Context, teamCode string) ([]PlayerSeasonStat, error)
}

// ScheduleProvider fetches the scoreboard for a game date.
type ScheduleProvider interface {
	GetGames(ctx context.Context, date string) ([]Game, error)
}

// InjuryProvider fetches the out-player names for a team. Best effort;
// callers fall back to an all-OK roster when it fails.
type InjuryProvider interface {
	GetOutPlayers(ctx context.Context, teamCode string) ([]string, error)
}

// CacheProvider is the minimal cache surface providers use.
type CacheProvider interface {
	SetSimple(key string, value interface{}, expiration time.Duration) error
	GetSimple(key string, dest interface{}) error
}
