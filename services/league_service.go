package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Dosada05/football-dashboard/league"
	"github.com/Dosada05/football-dashboard/live"
	"github.com/Dosada05/football-dashboard/models"
	"github.com/Dosada05/football-dashboard/repositories"
)

const DefaultTopScorersLimit = 20

type LeagueService interface {
	ListLeagues(ctx context.Context) ([]models.League, error)
	GetLeague(ctx context.Context, id, seasonID int) (*models.LeagueDetail, error)
	ListSeasons(ctx context.Context) ([]models.Season, error)
	GetStandings(ctx context.Context, leagueID, seasonID int) (*models.Standings, error)
	TopScorers(ctx context.Context, input TopScorersInput) ([]models.TopScorerEntry, error)
	Statistics(ctx context.Context, leagueID, seasonID int) (*models.LeagueStatistics, error)
	RecomputeStandings(ctx context.Context, input RecomputeInput) (*RecomputeResult, error)
}

type TopScorersInput struct {
	LeagueID int `json:"league_id" validate:"gte=0"`
	SeasonID int `json:"season_id" validate:"gte=0"`
	Limit    int `json:"limit" validate:"gte=0,lte=100"`
}

type RecomputeInput struct {
	LeagueID int `json:"league_id" validate:"required,gt=0"`
	SeasonID int `json:"season_id" validate:"required,gt=0"`
}

// RecomputeResult holds the table before and after the server rebuilt it.
// Before is nil when no table existed yet.
type RecomputeResult struct {
	Before *models.Standings `json:"before"`
	After  *models.Standings `json:"after"`
}

type leagueService struct {
	leagueRepo repositories.LeagueRepository
	notifier   ChangeNotifier
}

func NewLeagueService(leagueRepo repositories.LeagueRepository, notifier ChangeNotifier) LeagueService {
	return &leagueService{
		leagueRepo: leagueRepo,
		notifier:   notifierOrNop(notifier),
	}
}

func (s *leagueService) ListLeagues(ctx context.Context) ([]models.League, error) {
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}
	return leagues, nil
}

func (s *leagueService) GetLeague(ctx context.Context, id, seasonID int) (*models.LeagueDetail, error) {
	if err := requirePositiveID("league_id", id); err != nil {
		return nil, err
	}
	detail, err := s.leagueRepo.GetByID(ctx, id, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get league %d: %w", id, err)
	}
	detail.Standings = league.PrepareStandings(detail.Standings)
	return detail, nil
}

// ListSeasons returns one season per year, keeping the first row seen.
func (s *leagueService) ListSeasons(ctx context.Context) ([]models.Season, error) {
	seasons, err := s.leagueRepo.Seasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons: %w", err)
	}
	return league.UniqueSeasonsByYear(seasons), nil
}

func (s *leagueService) GetStandings(ctx context.Context, leagueID, seasonID int) (*models.Standings, error) {
	if err := requirePositiveID("league_id", leagueID); err != nil {
		return nil, err
	}
	if err := requirePositiveID("season_id", seasonID); err != nil {
		return nil, err
	}
	table, err := s.leagueRepo.Standings(ctx, leagueID, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get standings for league %d season %d: %w", leagueID, seasonID, err)
	}
	table.Rows = league.PrepareStandings(table.Rows)
	return table, nil
}

func (s *leagueService) TopScorers(ctx context.Context, input TopScorersInput) ([]models.TopScorerEntry, error) {
	if err := validateInput(ctx, input); err != nil {
		return nil, err
	}
	limit := input.Limit
	if limit == 0 {
		limit = DefaultTopScorersLimit
	}
	entries, err := s.leagueRepo.TopScorers(ctx, repositories.TopScorerFilter{
		LeagueID: input.LeagueID,
		SeasonID: input.SeasonID,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get top scorers: %w", err)
	}
	return league.PrepareTopScorers(entries), nil
}

func (s *leagueService) Statistics(ctx context.Context, leagueID, seasonID int) (*models.LeagueStatistics, error) {
	if err := requirePositiveID("league_id", leagueID); err != nil {
		return nil, err
	}
	stats, err := s.leagueRepo.Statistics(ctx, leagueID, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics for league %d: %w", leagueID, err)
	}
	return stats, nil
}

// RecomputeStandings asks the server to rebuild a table from match results
// and returns the table as it was before and after.
func (s *leagueService) RecomputeStandings(ctx context.Context, input RecomputeInput) (*RecomputeResult, error) {
	if err := validateInput(ctx, input); err != nil {
		return nil, err
	}

	result := &RecomputeResult{}
	before, err := s.GetStandings(ctx, input.LeagueID, input.SeasonID)
	switch {
	case err == nil:
		result.Before = before
	case errors.Is(err, ErrStandingsNotFound):
	default:
		return nil, err
	}

	if err := s.leagueRepo.RecomputeStandings(ctx, input.LeagueID, input.SeasonID); err != nil {
		return nil, fmt.Errorf("failed to recompute standings: %w", err)
	}

	after, err := s.GetStandings(ctx, input.LeagueID, input.SeasonID)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Int("league_id", input.LeagueID).Int("season_id", input.SeasonID).Msg("standings re-fetch after recompute failed")
		after = &models.Standings{LeagueID: input.LeagueID, SeasonID: &input.SeasonID, Rows: []models.StandingsRow{}}
	}
	result.After = after

	s.notifier.NotifyChanged(live.RoomStandings, input)
	return result, nil
}
