package models

import "encoding/json"

type Team struct {
	ID          int     `json:"team_id"`
	Name        string  `json:"team_name"`
	FoundedYear *int    `json:"founded_year,omitempty"`
	CrestURL    *string `json:"cresturl,omitempty"`
	LeagueID    *int    `json:"league_id,omitempty"`
	LeagueName  string  `json:"league_name,omitempty"`
	StadiumID   *int    `json:"stadium_id,omitempty"`
	StadiumName string  `json:"stadium_name,omitempty"`
	CoachID     *int    `json:"coach_id,omitempty"`
	CoachName   string  `json:"coach_name,omitempty"`
}

// UnmarshalJSON accepts both "team_name" (profile views) and "name" (raw
// team rows) for the team's name.
func (t *Team) UnmarshalJSON(data []byte) error {
	type alias Team
	aux := struct {
		*alias
		RawName string `json:"name"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if t.Name == "" {
		t.Name = aux.RawName
	}
	return nil
}

type TeamSeasonRecord struct {
	SeasonYear   int     `json:"season_year"`
	Position     *int    `json:"position,omitempty"`
	Points       FlexInt `json:"points"`
	PlayedGames  FlexInt `json:"played_games"`
	Won          FlexInt `json:"won"`
	Draw         FlexInt `json:"draw"`
	Lost         FlexInt `json:"lost"`
	GoalsFor     FlexInt `json:"goals_for"`
	GoalsAgainst FlexInt `json:"goals_against"`
}

type TeamDetail struct {
	Team    Team               `json:"team"`
	Players []Player           `json:"players"`
	History []TeamSeasonRecord `json:"history"`
}

type TeamStatistics struct {
	Team          Team             `json:"team"`
	SeasonID      *int             `json:"season_id"`
	Standing      *StandingsRow    `json:"standing"`
	RecentMatches []Match          `json:"recent_matches"`
	TopScorers    []TopScorerEntry `json:"top_scorers"`
}
