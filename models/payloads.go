package models

// Write payloads use the upstream field names. Optional fields are pointers
// so that an unset value is sent as null.

type TeamPayload struct {
	Name        string  `json:"name"`
	LeagueID    int     `json:"league_id"`
	FoundedYear *int    `json:"founded_year"`
	StadiumID   *int    `json:"stadium_id"`
	CoachID     *int    `json:"coach_id"`
	CrestURL    *string `json:"cresturl"`
}

type PlayerPayload struct {
	Name        string   `json:"name"`
	TeamID      int      `json:"team_id"`
	Position    Position `json:"position"`
	DateOfBirth *string  `json:"date_of_birth"`
	Nationality *string  `json:"nationality"`
}

type MatchPayload struct {
	SeasonID   int    `json:"season_id"`
	LeagueID   int    `json:"league_id"`
	Matchday   int    `json:"matchday"`
	HomeTeamID int    `json:"home_team_id"`
	AwayTeamID int    `json:"away_team_id"`
	UTCDate    string `json:"utc_date"`
}

type ScorePayload struct {
	FullTimeHome int `json:"full_time_home"`
	FullTimeAway int `json:"full_time_away"`
	HalfTimeHome int `json:"half_time_home"`
	HalfTimeAway int `json:"half_time_away"`
}

type PrivilegePayload struct {
	IsAdmin int `json:"is_admin"`
}

type RecomputePayload struct {
	LeagueID int `json:"league_id"`
	SeasonID int `json:"season_id"`
}
