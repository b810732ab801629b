package models

type SearchScope string

const (
	ScopeAll      SearchScope = "all"
	ScopePlayers  SearchScope = "players"
	ScopeTeams    SearchScope = "teams"
	ScopeStadiums SearchScope = "stadiums"
	ScopeCoaches  SearchScope = "coaches"
)

func (s SearchScope) Valid() bool {
	switch s {
	case ScopeAll, ScopePlayers, ScopeTeams, ScopeStadiums, ScopeCoaches:
		return true
	}
	return false
}

type SearchResults struct {
	Query    string      `json:"search_term"`
	Scope    SearchScope `json:"scope"`
	Players  []Player    `json:"players"`
	Teams    []Team      `json:"teams"`
	Stadiums []Stadium   `json:"stadiums"`
	Coaches  []Coach     `json:"coaches"`
	Total    int         `json:"total_count"`
}

// Reset empties every collection, keeping the query and scope.
func (r *SearchResults) Reset() {
	r.Players = []Player{}
	r.Teams = []Team{}
	r.Stadiums = []Stadium{}
	r.Coaches = []Coach{}
	r.Total = 0
}

func (r *SearchResults) Recount() {
	r.Total = len(r.Players) + len(r.Teams) + len(r.Stadiums) + len(r.Coaches)
}
