package models

type Stadium struct {
	ID       int      `json:"stadium_id"`
	Name     string   `json:"name"`
	Location string   `json:"location,omitempty"`
	Capacity *FlexInt `json:"capacity,omitempty"`
}

type Coach struct {
	ID          int    `json:"coach_id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality,omitempty"`
	TeamName    string `json:"team_name,omitempty"`
}

// ReferenceData groups the lookup lists the admin forms need.
type ReferenceData struct {
	Leagues  []League  `json:"leagues"`
	Seasons  []Season  `json:"seasons"`
	Stadiums []Stadium `json:"stadiums"`
	Coaches  []Coach   `json:"coaches"`
	Teams    []Team    `json:"teams"`
}
