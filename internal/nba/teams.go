package nba

// Team maps a team's abbreviation to its stats-provider numeric ID and
// its injury-page slug.
type Team struct {
	Code string
	ID   string
	Slug string
}

// TeamTable is the immutable team configuration, built once at startup
// and passed to the components that need it.
type TeamTable struct {
	byCode map[string]Team
	byID   map[string]Team
	codes  []string
}

// NewTeamTable builds a table from the given teams.
func NewTeamTable(teams []Team) *TeamTable {
	t := &TeamTable{
		byCode: make(map[string]Team, len(teams)),
		byID:   make(map[string]Team, len(teams)),
		codes:  make([]string, 0, len(teams)),
	}
	for _, team := range teams {
		t.byCode[team.Code] = team
		t.byID[team.ID] = team
		t.codes = append(t.codes, team.Code)
	}
	return t
}

// ByCode looks a team up by abbreviation.
func (t *TeamTable) ByCode(code string) (Team, bool) {
	team, ok := t.byCode[code]
	return team, ok
}

// CodeForID translates a provider numeric ID to an abbreviation,
// returning "" when unknown.
func (t *TeamTable) CodeForID(id string) string {
	if team, ok := t.byID[id]; ok {
		return team.Code
	}
	return ""
}

// Codes returns all team abbreviations in table order.
func (t *TeamTable) Codes() []string {
	return t.codes
}

// DefaultTeams returns the league's 30 teams.
func DefaultTeams() *TeamTable {
	return NewTeamTable([]Team{
		{Code: "ATL", ID: "1610612737", Slug: "atl/atlanta-hawks"},
		{Code: "BOS", ID: "1610612738", Slug: "bos/boston-celtics"},
		{Code: "BKN", ID: "1610612751", Slug: "bkn/brooklyn-nets"},
		{Code: "CHA", ID: "1610612766", Slug: "cha/charlotte-hornets"},
		{Code: "CHI", ID: "1610612741", Slug: "chi/chicago-bulls"},
		{Code: "CLE", ID: "1610612739", Slug: "cle/cleveland-cavaliers"},
		{Code: "DAL", ID: "1610612742", Slug: "dal/dallas-mavericks"},
		{Code: "DEN", ID: "1610612743", Slug: "den/denver-nuggets"},
		{Code: "DET", ID: "1610612765", Slug: "det/detroit-pistons"},
		{Code: "GSW", ID: "1610612744", Slug: "gs/golden-state-warriors"},
		{Code: "HOU", ID: "1610612745", Slug: "hou/houston-rockets"},
		{Code: "IND", ID: "1610612754", Slug: "ind/indiana-pacers"},
		{Code: "LAC", ID: "1610612746", Slug: "lac/los-angeles-clippers"},
		{Code: "LAL", ID: "1610612747", Slug: "lal/los-angeles-lakers"},
		{Code: "MEM", ID: "1610612763", Slug: "mem/memphis-grizzlies"},
		{Code: "MIA", ID: "1610612748", Slug: "mia/miami-heat"},
		{Code: "MIL", ID: "1610612749", Slug: "mil/milwaukee-bucks"},
		{Code: "MIN", ID: "1610612750", Slug: "min/minnesota-timberwolves"},
		{Code: "NOP", ID: "1610612740", Slug: "no/new-orleans-pelicans"},
		{Code: "NYK", ID: "1610612752", Slug: "ny/new-york-knicks"},
		{Code: "OKC", ID: "1610612760", Slug: "okc/oklahoma-city-thunder"},
		{Code: "ORL", ID: "1610612753", Slug: "orl/orlando-magic"},
		{Code: "PHI", ID: "1610612755", Slug: "phi/philadelphia-76ers"},
		{Code: "PHX", ID: "1610612756", Slug: "phx/phoenix-suns"},
		{Code: "POR", ID: "1610612757", Slug: "por/portland-trail-blazers"},
		{Code: "SAC", ID: "1610612758", Slug: "sac/sacramento-kings"},
		{Code: "SAS", ID: "1610612759", Slug: "sa/san-antonio-spurs"},
		{Code: "TOR", ID: "1610612761", Slug: "tor/toronto-raptors"},
		{Code: "UTA", ID: "1610612762", Slug: "utah/utah-jazz"},
		{Code: "WAS", ID: "1610612764", Slug: "wsh/washington-wizards"},
	})
}
