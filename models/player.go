package models

type Position string

const (
	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"
)

var Positions = []Position{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward}

func (p Position) Valid() bool {
	for _, known := range Positions {
		if p == known {
			return true
		}
	}
	return false
}

type Player struct {
	ID          int      `json:"player_id"`
	Name        string   `json:"player_name"`
	Position    Position `json:"position"`
	DateOfBirth *string  `json:"date_of_birth,omitempty"`
	Nationality string   `json:"nationality,omitempty"`
	TeamID      *int     `json:"team_id,omitempty"`
	TeamName    string   `json:"team_name,omitempty"`
	LeagueName  string   `json:"league_name,omitempty"`

	// Age is filled by the service from DateOfBirth; nil renders as unknown.
	Age *int `json:"age"`
}

type PlayerDetail struct {
	Player     Player           `json:"player"`
	Statistics []TopScorerEntry `json:"statistics"`
}
