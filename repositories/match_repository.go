package repositories

import (
	"context"
	"errors"

	"github.com/Dosada05/football-dashboard/apiclient"
	"github.com/Dosada05/football-dashboard/models"
)

var ErrMatchNotFound = errors.New("match not found")

// MatchListStatus selects the upstream match view.
type MatchListStatus string

const (
	MatchesAll      MatchListStatus = "all"
	MatchesUpcoming MatchListStatus = "upcoming"
	MatchesPast     MatchListStatus = "past"
	MatchesToday    MatchListStatus = "today"
)

func (s MatchListStatus) Valid() bool {
	switch s {
	case MatchesAll, MatchesUpcoming, MatchesPast, MatchesToday:
		return true
	}
	return false
}

type MatchFilter struct {
	Status   MatchListStatus
	LeagueID int
	TeamID   int
	SeasonID int
	Matchday int
	Limit    int
}

func (f MatchFilter) query() apiclient.Params {
	return apiclient.NewParams().
		Set("status", string(f.Status)).
		Int("league_id", f.LeagueID).
		Int("team_id", f.TeamID).
		Int("season_id", f.SeasonID).
		Int("matchday", f.Matchday).
		Int("limit", f.Limit)
}

type MatchRepository interface {
	List(ctx context.Context, filter MatchFilter) ([]models.Match, error)
	GetByID(ctx context.Context, id int) (*models.Match, error)
	Create(ctx context.Context, payload models.MatchPayload) (int, error)
	Update(ctx context.Context, id int, payload models.MatchPayload) error
	Delete(ctx context.Context, id int) error
	UpdateScore(ctx context.Context, id int, payload models.ScorePayload) error
}

type apiMatchRepository struct {
	api API
}

func NewAPIMatchRepository(api API) MatchRepository {
	return &apiMatchRepository{api: api}
}

func (r *apiMatchRepository) List(ctx context.Context, filter MatchFilter) ([]models.Match, error) {
	var env struct {
		Matches []models.Match `json:"matches"`
	}
	if err := r.api.Get(ctx, userPath("/matches"), filter.query().Values(), &env); err != nil {
		return nil, err
	}
	return orEmpty(env.Matches), nil
}

func (r *apiMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	var env struct {
		Match *models.Match `json:"match"`
	}
	if err := r.api.Get(ctx, userPath("/matches/%d", id), nil, &env); err != nil {
		return nil, mapNotFound(err, ErrMatchNotFound)
	}
	if env.Match == nil {
		return nil, ErrMatchNotFound
	}
	return env.Match, nil
}

func (r *apiMatchRepository) Create(ctx context.Context, payload models.MatchPayload) (int, error) {
	var created createdResponse
	if err := r.api.Post(ctx, adminPath("/matches"), payload, &created); err != nil {
		return 0, err
	}
	if created.MatchID == 0 {
		return 0, ErrMissingID
	}
	return created.MatchID, nil
}

func (r *apiMatchRepository) Update(ctx context.Context, id int, payload models.MatchPayload) error {
	return mapNotFound(r.api.Put(ctx, adminPath("/matches/%d", id), payload, nil), ErrMatchNotFound)
}

func (r *apiMatchRepository) Delete(ctx context.Context, id int) error {
	return mapNotFound(r.api.Delete(ctx, adminPath("/matches/%d", id), nil), ErrMatchNotFound)
}

func (r *apiMatchRepository) UpdateScore(ctx context.Context, id int, payload models.ScorePayload) error {
	return mapNotFound(r.api.Put(ctx, adminPath("/matches/%d/score", id), payload, nil), ErrMatchNotFound)
}
