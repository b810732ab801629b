package repositories

import (
	"context"
	"errors"

	"github.com/Dosada05/football-dashboard/apiclient"
	"github.com/Dosada05/football-dashboard/models"
)

var (
	ErrLeagueNotFound    = errors.New("league not found")
	ErrStandingsNotFound = errors.New("standings not found")
)

type TopScorerFilter struct {
	LeagueID int
	SeasonID int
	Limit    int
}

type LeagueRepository interface {
	List(ctx context.Context) ([]models.League, error)
	GetByID(ctx context.Context, id, seasonID int) (*models.LeagueDetail, error)
	Seasons(ctx context.Context) ([]models.Season, error)
	Standings(ctx context.Context, leagueID, seasonID int) (*models.Standings, error)
	TopScorers(ctx context.Context, filter TopScorerFilter) ([]models.TopScorerEntry, error)
	Statistics(ctx context.Context, leagueID, seasonID int) (*models.LeagueStatistics, error)
	RecomputeStandings(ctx context.Context, leagueID, seasonID int) error
}

type apiLeagueRepository struct {
	api API
}

func NewAPILeagueRepository(api API) LeagueRepository {
	return &apiLeagueRepository{api: api}
}

func (r *apiLeagueRepository) List(ctx context.Context) ([]models.League, error) {
	var env struct {
		Leagues []models.League `json:"leagues"`
	}
	if err := r.api.Get(ctx, userPath("/leagues"), nil, &env); err != nil {
		return nil, err
	}
	return orEmpty(env.Leagues), nil
}

func (r *apiLeagueRepository) GetByID(ctx context.Context, id, seasonID int) (*models.LeagueDetail, error) {
	var detail models.LeagueDetail
	query := apiclient.NewParams().Int("season_id", seasonID).Values()
	if err := r.api.Get(ctx, userPath("/leagues/%d", id), query, &detail); err != nil {
		return nil, mapNotFound(err, ErrLeagueNotFound)
	}
	detail.Standings = orEmpty(detail.Standings)
	detail.Teams = orEmpty(detail.Teams)
	return &detail, nil
}

func (r *apiLeagueRepository) Seasons(ctx context.Context) ([]models.Season, error) {
	var env struct {
		Seasons []models.Season `json:"seasons"`
	}
	if err := r.api.Get(ctx, userPath("/seasons"), nil, &env); err != nil {
		return nil, err
	}
	return orEmpty(env.Seasons), nil
}

func (r *apiLeagueRepository) Standings(ctx context.Context, leagueID, seasonID int) (*models.Standings, error) {
	var env struct {
		Standings []models.StandingsRow `json:"standings"`
		LeagueID  int                   `json:"league_id"`
		SeasonID  *int                  `json:"season_id"`
	}
	query := apiclient.NewParams().Int("league_id", leagueID).Int("season_id", seasonID).Values()
	if err := r.api.Get(ctx, userPath("/standings"), query, &env); err != nil {
		return nil, mapNotFound(err, ErrStandingsNotFound)
	}
	if env.LeagueID == 0 {
		env.LeagueID = leagueID
	}
	return &models.Standings{
		LeagueID: env.LeagueID,
		SeasonID: env.SeasonID,
		Rows:     orEmpty(env.Standings),
	}, nil
}

func (r *apiLeagueRepository) TopScorers(ctx context.Context, filter TopScorerFilter) ([]models.TopScorerEntry, error) {
	var env struct {
		TopScorers []models.TopScorerEntry `json:"top_scorers"`
	}
	query := apiclient.NewParams().
		Int("league_id", filter.LeagueID).
		Int("season_id", filter.SeasonID).
		Int("limit", filter.Limit).
		Values()
	if err := r.api.Get(ctx, userPath("/top-scorers"), query, &env); err != nil {
		return nil, err
	}
	return orEmpty(env.TopScorers), nil
}

func (r *apiLeagueRepository) Statistics(ctx context.Context, leagueID, seasonID int) (*models.LeagueStatistics, error) {
	// Each figure comes back as a one-row object, e.g. {"total_goals": {"total_goals": "312"}}.
	var env struct {
		SeasonID   *int `json:"season_id"`
		Statistics struct {
			TotalGoals *struct {
				Value models.FlexInt `json:"total_goals"`
			} `json:"total_goals"`
			TotalMatches *struct {
				Value models.FlexInt `json:"total_matches"`
			} `json:"total_matches"`
			TopScoringTeam *models.TeamFigure `json:"top_scoring_team"`
			BestDefense    *models.TeamFigure `json:"best_defense"`
		} `json:"statistics"`
	}
	query := apiclient.NewParams().Int("season_id", seasonID).Values()
	if err := r.api.Get(ctx, userPath("/statistics/league/%d", leagueID), query, &env); err != nil {
		return nil, mapNotFound(err, ErrLeagueNotFound)
	}

	stats := &models.LeagueStatistics{
		LeagueID:       leagueID,
		SeasonID:       env.SeasonID,
		TopScoringTeam: env.Statistics.TopScoringTeam,
		BestDefense:    env.Statistics.BestDefense,
	}
	if env.Statistics.TotalGoals != nil {
		stats.TotalGoals = env.Statistics.TotalGoals.Value.Int()
	}
	if env.Statistics.TotalMatches != nil {
		stats.TotalMatches = env.Statistics.TotalMatches.Value.Int()
	}
	if stats.TotalMatches > 0 {
		stats.GoalsPerMatch = float64(stats.TotalGoals) / float64(stats.TotalMatches)
	}
	return stats, nil
}

func (r *apiLeagueRepository) RecomputeStandings(ctx context.Context, leagueID, seasonID int) error {
	payload := models.RecomputePayload{LeagueID: leagueID, SeasonID: seasonID}
	return mapNotFound(r.api.Post(ctx, adminPath("/standings/recompute"), payload, nil), ErrLeagueNotFound)
}
