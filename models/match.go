package models

type MatchStatus string

const (
	MatchStatusCompleted MatchStatus = "COMPLETED"
	MatchStatusToday     MatchStatus = "TODAY"
	MatchStatusUpcoming  MatchStatus = "UPCOMING"
)

type Winner string

const (
	WinnerNone Winner = ""
	WinnerHome Winner = "HOME_TEAM"
	WinnerAway Winner = "AWAY_TEAM"
	WinnerDraw Winner = "DRAW"
)

type Match struct {
	ID           int     `json:"match_id"`
	LeagueID     int     `json:"league_id"`
	LeagueName   string  `json:"league_name,omitempty"`
	SeasonID     int     `json:"season_id"`
	SeasonYear   *int    `json:"season_year,omitempty"`
	Matchday     int     `json:"matchday"`
	HomeTeamID   int     `json:"home_team_id"`
	AwayTeamID   int     `json:"away_team_id"`
	HomeTeam     string  `json:"home_team,omitempty"`
	AwayTeam     string  `json:"away_team,omitempty"`
	HomeCrest    *string `json:"home_crest,omitempty"`
	AwayCrest    *string `json:"away_crest,omitempty"`
	UTCDate      string  `json:"utc_date"`
	FullTimeHome *int    `json:"full_time_home"`
	FullTimeAway *int    `json:"full_time_away"`
	HalfTimeHome *int    `json:"half_time_home"`
	HalfTimeAway *int    `json:"half_time_away"`

	ServerStatus string `json:"match_status,omitempty"`

	// Status and Winner are recomputed on every request.
	Status MatchStatus `json:"status"`
	Winner Winner      `json:"winner"`
}

func (m Match) HasFullTimeScore() bool {
	return m.FullTimeHome != nil && m.FullTimeAway != nil
}

// MatchDay is a calendar day of fixtures in the order they were received.
type MatchDay struct {
	Date    string  `json:"date"`
	Matches []Match `json:"matches"`
}
