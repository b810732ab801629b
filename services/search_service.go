package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/football-dashboard/league"
	"github.com/Dosada05/football-dashboard/models"
	"github.com/Dosada05/football-dashboard/repositories"
)

type SearchService interface {
	Search(ctx context.Context, query, scope string) (*models.SearchResults, error)
}

type searchService struct {
	searchRepo repositories.SearchRepository
	now        Clock
}

func NewSearchService(searchRepo repositories.SearchRepository, clock Clock) SearchService {
	return &searchService{
		searchRepo: searchRepo,
		now:        clockOrSystem(clock),
	}
}

// Search runs one upstream request: the aggregate endpoint for scope "all",
// the category endpoint otherwise. Categories outside the scope are always
// returned empty. A blank query is rejected before any request.
func (s *searchService) Search(ctx context.Context, query, scope string) (*models.SearchResults, error) {
	q, err := league.NormalizeQuery(query)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"q": "is required"}, cause: err}
	}
	sc, err := league.ParseScope(scope)
	if err != nil {
		return nil, &ValidationError{Fields: map[string]string{"scope": "must be one of all, players, teams, stadiums, coaches"}, cause: err}
	}

	var (
		players  []models.Player
		teams    []models.Team
		stadiums []models.Stadium
		coaches  []models.Coach
	)
	switch sc {
	case models.ScopeAll:
		var all *models.SearchResults
		all, err = s.searchRepo.All(ctx, q)
		if all != nil {
			players, teams, stadiums, coaches = all.Players, all.Teams, all.Stadiums, all.Coaches
		}
	case models.ScopePlayers:
		players, err = s.searchRepo.Players(ctx, q)
	case models.ScopeTeams:
		teams, err = s.searchRepo.Teams(ctx, q)
	case models.ScopeStadiums:
		stadiums, err = s.searchRepo.Stadiums(ctx, q)
	case models.ScopeCoaches:
		coaches, err = s.searchRepo.Coaches(ctx, q)
	default:
		err = errors.New("unhandled search scope")
	}
	if err != nil {
		return nil, fmt.Errorf("search %q in %s failed: %w", q, sc, err)
	}

	now := s.now()
	for i := range players {
		players[i].Age = league.AgeFromString(players[i].DateOfBirth, now)
	}
	res := league.ScopedResults(q, sc, players, teams, stadiums, coaches)
	return &res, nil
}
