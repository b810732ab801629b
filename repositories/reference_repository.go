package repositories

import (
	"context"

	"github.com/Dosada05/football-dashboard/models"
)

// ReferenceRepository reads the admin mirrors of the lookup lists.
type ReferenceRepository interface {
	Leagues(ctx context.Context) ([]models.League, error)
	Seasons(ctx context.Context) ([]models.Season, error)
	Stadiums(ctx context.Context) ([]models.Stadium, error)
	Coaches(ctx context.Context) ([]models.Coach, error)
}

type apiReferenceRepository struct {
	api API
}

func NewAPIReferenceRepository(api API) ReferenceRepository {
	return &apiReferenceRepository{api: api}
}

func (r *apiReferenceRepository) Leagues(ctx context.Context) ([]models.League, error) {
	var env struct {
		Leagues []models.League `json:"leagues"`
	}
	if err := r.api.Get(ctx, adminPath("/leagues"), nil, &env); err != nil {
		return nil, err
	}
	return orEmpty(env.Leagues), nil
}

func (r *apiReferenceRepository) Seasons(ctx context.Context) ([]models.Season, error) {
	var env struct {
		Seasons []models.Season `json:"seasons"`
	}
	if err := r.api.Get(ctx, adminPath("/seasons"), nil, &env); err != nil {
		return nil, err
	}
	return orEmpty(env.Seasons), nil
}

func (r *apiReferenceRepository) Stadiums(ctx context.Context) ([]models.Stadium, error) {
	var env struct {
		Stadiums []models.Stadium `json:"stadiums"`
	}
	if err := r.api.Get(ctx, adminPath("/stadiums"), nil, &env); err != nil {
		return nil, err
	}
	return orEmpty(env.Stadiums), nil
}

func (r *apiReferenceRepository) Coaches(ctx context.Context) ([]models.Coach, error) {
	var env struct {
		Coaches []models.Coach `json:"coaches"`
	}
	if err := r.api.Get(ctx, adminPath("/coaches"), nil, &env); err != nil {
		return nil, err
	}
	return orEmpty(env.Coaches), nil
}
