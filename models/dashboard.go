package models

type DashboardStats struct {
	LeaguesTotal     int `json:"leagues_total"`
	TeamsTotal       int `json:"teams_total"`
	PlayersTotal     int `json:"players_total"`
	MatchesUpcoming  int `json:"matches_upcoming"`
	MatchesToday     int `json:"matches_today"`
	MatchesCompleted int `json:"matches_completed"`
}
