package models

type League struct {
	ID      int     `json:"league_id"`
	Name    string  `json:"name"`
	Country string  `json:"country,omitempty"`
	LogoURL *string `json:"logo_url,omitempty"`
}

type Season struct {
	ID   int `json:"season_id"`
	Year int `json:"year"`
}

type LeagueDetail struct {
	League    League         `json:"league"`
	Standings []StandingsRow `json:"standings"`
	Teams     []Team         `json:"teams"`
	SeasonID  *int           `json:"season_id"`
}

// LeagueStatistics is flattened from the nested single-row objects the
// upstream statistics endpoint returns.
type LeagueStatistics struct {
	LeagueID       int         `json:"league_id"`
	SeasonID       *int        `json:"season_id"`
	TotalGoals     int         `json:"total_goals"`
	TotalMatches   int         `json:"total_matches"`
	GoalsPerMatch  float64     `json:"goals_per_match"`
	TopScoringTeam *TeamFigure `json:"top_scoring_team,omitempty"`
	BestDefense    *TeamFigure `json:"best_defense,omitempty"`
}

type TeamFigure struct {
	TeamID       int     `json:"team_id"`
	TeamName     string  `json:"team_name"`
	GoalsFor     FlexInt `json:"goals_for,omitempty"`
	GoalsAgainst FlexInt `json:"goals_against,omitempty"`
}
