package models

// PlayerStat is a daily snapshot of one player's season stat line, as
// used by that day's valuation run. Insert-or-replace by (date, name).
type PlayerStat struct {
	Date            string  `gorm:"primaryKey" json:"date"`
	PlayerName      string  `gorm:"primaryKey" json:"player_name"`
	Team            string  `gorm:"index" json:"team"`
	Availability    string  `json:"availability"`
	Position        string  `json:"position"`
	Minutes         float64 `json:"minutes"`
	PIE             float64 `json:"pie"`
	UsagePct        float64 `json:"usage_pct"`
	TrueShootingPct float64 `json:"true_shooting_pct"`
}

// TableName specifies the table name for GORM
func (PlayerStat) TableName() string {
	return "daily_stats"
}
