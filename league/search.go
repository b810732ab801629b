package league

import (
	"errors"
	"strings"

	"github.com/Dosada05/football-dashboard/models"
)

var (
	ErrEmptyQuery   = errors.New("search term is required")
	ErrInvalidScope = errors.New("unknown search scope")
)

// NormalizeQuery trims the query and rejects blank input.
func NormalizeQuery(query string) (string, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", ErrEmptyQuery
	}
	return q, nil
}

func ParseScope(value string) (models.SearchScope, error) {
	if strings.TrimSpace(value) == "" {
		return models.ScopeAll, nil
	}
	scope := models.SearchScope(strings.ToLower(strings.TrimSpace(value)))
	if !scope.Valid() {
		return "", ErrInvalidScope
	}
	return scope, nil
}

// ScopedResults builds the result set for a single-category search. Every
// collection other than the searched one is empty.
func ScopedResults(query string, scope models.SearchScope, players []models.Player, teams []models.Team, stadiums []models.Stadium, coaches []models.Coach) models.SearchResults {
	res := models.SearchResults{Query: query, Scope: scope}
	res.Reset()
	switch scope {
	case models.ScopePlayers:
		res.Players = nonNil(players)
	case models.ScopeTeams:
		res.Teams = nonNil(teams)
	case models.ScopeStadiums:
		res.Stadiums = nonNil(stadiums)
	case models.ScopeCoaches:
		res.Coaches = nonNil(coaches)
	case models.ScopeAll:
		res.Players = nonNil(players)
		res.Teams = nonNil(teams)
		res.Stadiums = nonNil(stadiums)
		res.Coaches = nonNil(coaches)
	}
	res.Recount()
	return res
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
