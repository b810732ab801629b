package models

import "encoding/json"

type Band string

const (
	BandQualification Band = "qualification"
	BandRelegation    Band = "relegation"
	BandNeutral       Band = "neutral"
)

type StandingsRow struct {
	Position       int             `json:"position"`
	TeamID         int             `json:"team_id"`
	TeamName       string          `json:"team_name"`
	CrestURL       *string         `json:"cresturl,omitempty"`
	LeagueID       int             `json:"league_id,omitempty"`
	SeasonID       int             `json:"season_id,omitempty"`
	PlayedGames    FlexInt         `json:"played_games"`
	Won            FlexInt         `json:"won"`
	Draw           FlexInt         `json:"draw"`
	Lost           FlexInt         `json:"lost"`
	GoalsFor       FlexInt         `json:"goals_for"`
	GoalsAgainst   FlexInt         `json:"goals_against"`
	GoalDifference FlexInt         `json:"goal_difference"`
	Points         FlexInt         `json:"points"`
	RawForm        json.RawMessage `json:"form,omitempty"`

	Band          Band     `json:"band"`
	Qualification bool     `json:"in_qualification"`
	Relegation    bool     `json:"in_relegation"`
	Form          []string `json:"recent_form"`
}

type Standings struct {
	LeagueID int            `json:"league_id"`
	SeasonID *int           `json:"season_id"`
	Rows     []StandingsRow `json:"standings"`
}

type TopScorerEntry struct {
	ScorerID        int      `json:"scorer_id,omitempty"`
	PlayerID        int      `json:"player_id"`
	PlayerName      string   `json:"player_name"`
	TeamID          int      `json:"team_id,omitempty"`
	TeamName        string   `json:"team_name,omitempty"`
	LeagueName      string   `json:"league_name,omitempty"`
	SeasonID        int      `json:"season_id,omitempty"`
	SeasonYear      int      `json:"season_year,omitempty"`
	Goals           FlexInt  `json:"goals"`
	Assists         *FlexInt `json:"assists"`
	Penalties       *FlexInt `json:"penalties"`
	NonPenaltyGoals *FlexInt `json:"non_penalty_goals"`
}
