package repositories

import (
	"context"
	"errors"

	"github.com/Dosada05/football-dashboard/apiclient"
	"github.com/Dosada05/football-dashboard/models"
)

var ErrTeamNotFound = errors.New("team not found")

type TeamRepository interface {
	List(ctx context.Context, leagueID int) ([]models.Team, error)
	GetByID(ctx context.Context, id int) (*models.TeamDetail, error)
	Statistics(ctx context.Context, id, seasonID int) (*models.TeamStatistics, error)
	Create(ctx context.Context, payload models.TeamPayload) (int, error)
	Update(ctx context.Context, id int, payload models.TeamPayload) error
	Delete(ctx context.Context, id int) error
}

type apiTeamRepository struct {
	api API
}

func NewAPITeamRepository(api API) TeamRepository {
	return &apiTeamRepository{api: api}
}

func (r *apiTeamRepository) List(ctx context.Context, leagueID int) ([]models.Team, error) {
	var env struct {
		Teams []models.Team `json:"teams"`
	}
	query := apiclient.NewParams().Int("league_id", leagueID).Values()
	if err := r.api.Get(ctx, userPath("/teams"), query, &env); err != nil {
		return nil, err
	}
	return orEmpty(env.Teams), nil
}

func (r *apiTeamRepository) GetByID(ctx context.Context, id int) (*models.TeamDetail, error) {
	var detail models.TeamDetail
	if err := r.api.Get(ctx, userPath("/teams/%d", id), nil, &detail); err != nil {
		return nil, mapNotFound(err, ErrTeamNotFound)
	}
	detail.Players = orEmpty(detail.Players)
	detail.History = orEmpty(detail.History)
	return &detail, nil
}

func (r *apiTeamRepository) Statistics(ctx context.Context, id, seasonID int) (*models.TeamStatistics, error) {
	var env struct {
		Team       models.Team `json:"team"`
		SeasonID   *int        `json:"season_id"`
		Statistics struct {
			Standing      *models.StandingsRow    `json:"standing"`
			RecentMatches []models.Match          `json:"recent_matches"`
			TopScorers    []models.TopScorerEntry `json:"top_scorers"`
		} `json:"statistics"`
	}
	query := apiclient.NewParams().Int("season_id", seasonID).Values()
	if err := r.api.Get(ctx, userPath("/statistics/team/%d", id), query, &env); err != nil {
		return nil, mapNotFound(err, ErrTeamNotFound)
	}
	return &models.TeamStatistics{
		Team:          env.Team,
		SeasonID:      env.SeasonID,
		Standing:      env.Statistics.Standing,
		RecentMatches: orEmpty(env.Statistics.RecentMatches),
		TopScorers:    orEmpty(env.Statistics.TopScorers),
	}, nil
}

func (r *apiTeamRepository) Create(ctx context.Context, payload models.TeamPayload) (int, error) {
	var created createdResponse
	if err := r.api.Post(ctx, adminPath("/teams"), payload, &created); err != nil {
		return 0, err
	}
	if created.TeamID == 0 {
		return 0, ErrMissingID
	}
	return created.TeamID, nil
}

func (r *apiTeamRepository) Update(ctx context.Context, id int, payload models.TeamPayload) error {
	return mapNotFound(r.api.Put(ctx, adminPath("/teams/%d", id), payload, nil), ErrTeamNotFound)
}

func (r *apiTeamRepository) Delete(ctx context.Context, id int) error {
	return mapNotFound(r.api.Delete(ctx, adminPath("/teams/%d", id), nil), ErrTeamNotFound)
}
