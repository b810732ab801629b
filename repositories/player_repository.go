package repositories

import (
	"context"
	"errors"

	"github.com/Dosada05/football-dashboard/apiclient"
	"github.com/Dosada05/football-dashboard/models"
)

var ErrPlayerNotFound = errors.New("player not found")

// PlayerFilter holds the filters the server applies. Free-text filtering
// happens after the response arrives and is not part of it.
type PlayerFilter struct {
	TeamID   int
	LeagueID int
	Position models.Position
}

func (f PlayerFilter) query() apiclient.Params {
	return apiclient.NewParams().
		Int("team_id", f.TeamID).
		Int("league_id", f.LeagueID).
		Set("position", string(f.Position))
}

type PlayerRepository interface {
	List(ctx context.Context, filter PlayerFilter) ([]models.Player, error)
	GetByID(ctx context.Context, id int) (*models.PlayerDetail, error)
	Create(ctx context.Context, payload models.PlayerPayload) (int, error)
	Update(ctx context.Context, id int, payload models.PlayerPayload) error
	Delete(ctx context.Context, id int) error
}

type apiPlayerRepository struct {
	api API
}

func NewAPIPlayerRepository(api API) PlayerRepository {
	return &apiPlayerRepository{api: api}
}

func (r *apiPlayerRepository) List(ctx context.Context, filter PlayerFilter) ([]models.Player, error) {
	var env struct {
		Players []models.Player `json:"players"`
	}
	if err := r.api.Get(ctx, userPath("/players"), filter.query().Values(), &env); err != nil {
		return nil, err
	}
	return orEmpty(env.Players), nil
}

func (r *apiPlayerRepository) GetByID(ctx context.Context, id int) (*models.PlayerDetail, error) {
	var detail models.PlayerDetail
	if err := r.api.Get(ctx, userPath("/players/%d", id), nil, &detail); err != nil {
		return nil, mapNotFound(err, ErrPlayerNotFound)
	}
	detail.Statistics = orEmpty(detail.Statistics)
	return &detail, nil
}

func (r *apiPlayerRepository) Create(ctx context.Context, payload models.PlayerPayload) (int, error) {
	var created createdResponse
	if err := r.api.Post(ctx, adminPath("/players"), payload, &created); err != nil {
		return 0, err
	}
	if created.PlayerID == 0 {
		return 0, ErrMissingID
	}
	return created.PlayerID, nil
}

func (r *apiPlayerRepository) Update(ctx context.Context, id int, payload models.PlayerPayload) error {
	return mapNotFound(r.api.Put(ctx, adminPath("/players/%d", id), payload, nil), ErrPlayerNotFound)
}

func (r *apiPlayerRepository) Delete(ctx context.Context, id int) error {
	return mapNotFound(r.api.Delete(ctx, adminPath("/players/%d", id), nil), ErrPlayerNotFound)
}
