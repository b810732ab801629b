package repositories

import (
	"context"
	"net/url"

	"github.com/Dosada05/football-dashboard/models"
)

type SearchRepository interface {
	Players(ctx context.Context, query string) ([]models.Player, error)
	Teams(ctx context.Context, query string) ([]models.Team, error)
	Stadiums(ctx context.Context, query string) ([]models.Stadium, error)
	Coaches(ctx context.Context, query string) ([]models.Coach, error)
	All(ctx context.Context, query string) (*models.SearchResults, error)
}

type apiSearchRepository struct {
	api API
}

func NewAPISearchRepository(api API) SearchRepository {
	return &apiSearchRepository{api: api}
}

func searchQuery(q string) url.Values {
	return url.Values{"q": {q}}
}

func (r *apiSearchRepository) Players(ctx context.Context, query string) ([]models.Player, error) {
	var env struct {
		Results []models.Player `json:"results"`
	}
	if err := r.api.Get(ctx, userPath("/search/players"), searchQuery(query), &env); err != nil {
		return nil, err
	}
	return orEmpty(env.Results), nil
}

func (r *apiSearchRepository) Teams(ctx context.Context, query string) ([]models.Team, error) {
	var env struct {
		Results []models.Team `json:"results"`
	}
	if err := r.api.Get(ctx, userPath("/search/teams"), searchQuery(query), &env); err != nil {
		return nil, err
	}
	return orEmpty(env.Results), nil
}

func (r *apiSearchRepository) Stadiums(ctx context.Context, query string) ([]models.Stadium, error) {
	var env struct {
		Results []models.Stadium `json:"results"`
	}
	if err := r.api.Get(ctx, userPath("/search/stadiums"), searchQuery(query), &env); err != nil {
		return nil, err
	}
	return orEmpty(env.Results), nil
}

func (r *apiSearchRepository) Coaches(ctx context.Context, query string) ([]models.Coach, error) {
	var env struct {
		Results []models.Coach `json:"results"`
	}
	if err := r.api.Get(ctx, userPath("/search/coaches"), searchQuery(query), &env); err != nil {
		return nil, err
	}
	return orEmpty(env.Results), nil
}

func (r *apiSearchRepository) All(ctx context.Context, query string) (*models.SearchResults, error) {
	var env struct {
		Results struct {
			Players  []models.Player  `json:"players"`
			Teams    []models.Team    `json:"teams"`
			Stadiums []models.Stadium `json:"stadiums"`
			Coaches  []models.Coach   `json:"coaches"`
		} `json:"results"`
	}
	if err := r.api.Get(ctx, userPath("/search"), searchQuery(query), &env); err != nil {
		return nil, err
	}
	res := &models.SearchResults{
		Query:    query,
		Scope:    models.ScopeAll,
		Players:  orEmpty(env.Results.Players),
		Teams:    orEmpty(env.Results.Teams),
		Stadiums: orEmpty(env.Results.Stadiums),
		Coaches:  orEmpty(env.Results.Coaches),
	}
	res.Recount()
	return res, nil
}
