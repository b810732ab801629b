package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Dosada05/football-dashboard/league"
	"github.com/Dosada05/football-dashboard/live"
	"github.com/Dosada05/football-dashboard/models"
	"github.com/Dosada05/football-dashboard/repositories"
)

const (
	DefaultMatchLimit = 100
	MaxMatchLimit     = 500

	// upstreamDateLayout is what the league API stores kickoffs as (UTC).
	upstreamDateLayout = "2006-01-02 15:04:05"
)

type MatchService interface {
	ListMatches(ctx context.Context, input MatchListInput) (*MatchList, error)
	GetMatch(ctx context.Context, id int) (*models.Match, error)
	CreateMatch(ctx context.Context, input MatchInput) (*MutationResult[models.Match], error)
	UpdateMatch(ctx context.Context, id int, input MatchInput) (*MutationResult[models.Match], error)
	DeleteMatch(ctx context.Context, id int) (*MutationResult[models.Match], error)
	UpdateScore(ctx context.Context, id int, input ScoreInput) (*MutationResult[models.Match], error)
}

type MatchListInput struct {
	Status   repositories.MatchListStatus `json:"status" validate:"omitempty,oneof=all upcoming past today"`
	LeagueID int                          `json:"league_id" validate:"gte=0"`
	TeamID   int                          `json:"team_id" validate:"gte=0"`
	SeasonID int                          `json:"season_id" validate:"gte=0"`
	Matchday int                          `json:"matchday" validate:"gte=0"`
	Limit    int                          `json:"limit" validate:"gte=0,lte=500"`
}

// MatchList carries the annotated matches together with the same matches
// grouped by calendar day and a count per status.
type MatchList struct {
	Matches []models.Match             `json:"matches"`
	Days    []models.MatchDay          `json:"days"`
	Counts  map[models.MatchStatus]int `json:"counts"`
	Total   int                        `json:"total"`
}

type MatchInput struct {
	SeasonID   int    `json:"season_id" validate:"required,gt=0"`
	LeagueID   int    `json:"league_id" validate:"required,gt=0"`
	Matchday   int    `json:"matchday" validate:"required,gt=0"`
	HomeTeamID int    `json:"home_team_id" validate:"required,gt=0"`
	AwayTeamID int    `json:"away_team_id" validate:"required,gt=0"`
	UTCDate    string `json:"utc_date" validate:"required,date"`
}

// ScoreInput sets a final score. Half-time goals default to 0.
type ScoreInput struct {
	FullTimeHome *int `json:"full_time_home" validate:"required,gte=0"`
	FullTimeAway *int `json:"full_time_away" validate:"required,gte=0"`
	HalfTimeHome *int `json:"half_time_home" validate:"omitempty,gte=0"`
	HalfTimeAway *int `json:"half_time_away" validate:"omitempty,gte=0"`
}

// ValidateMatchInput checks a schedule form without touching the network.
// Equal home and away teams are reported as ErrSameTeams.
func ValidateMatchInput(ctx context.Context, input MatchInput) error {
	if input.HomeTeamID != 0 && input.HomeTeamID == input.AwayTeamID {
		return &ValidationError{
			Fields: map[string]string{"away_team_id": "must differ from home_team_id"},
			cause:  ErrSameTeams,
		}
	}
	return validateInput(ctx, input)
}

func (in MatchInput) payload() models.MatchPayload {
	kickoff, _ := league.ParseDate(in.UTCDate)
	return models.MatchPayload{
		SeasonID:   in.SeasonID,
		LeagueID:   in.LeagueID,
		Matchday:   in.Matchday,
		HomeTeamID: in.HomeTeamID,
		AwayTeamID: in.AwayTeamID,
		UTCDate:    kickoff.UTC().Format(upstreamDateLayout),
	}
}

func (in ScoreInput) payload() models.ScorePayload {
	p := models.ScorePayload{
		FullTimeHome: *in.FullTimeHome,
		FullTimeAway: *in.FullTimeAway,
	}
	if in.HalfTimeHome != nil {
		p.HalfTimeHome = *in.HalfTimeHome
	}
	if in.HalfTimeAway != nil {
		p.HalfTimeAway = *in.HalfTimeAway
	}
	return p
}

type matchService struct {
	matchRepo repositories.MatchRepository
	notifier  ChangeNotifier
	now       Clock
}

func NewMatchService(matchRepo repositories.MatchRepository, notifier ChangeNotifier, clock Clock) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		notifier:  notifierOrNop(notifier),
		now:       clockOrSystem(clock),
	}
}

func (s *matchService) ListMatches(ctx context.Context, input MatchListInput) (*MatchList, error) {
	if err := validateInput(ctx, input); err != nil {
		return nil, err
	}
	limit := input.Limit
	if limit == 0 {
		limit = DefaultMatchLimit
	}
	status := input.Status
	if status == "" {
		status = repositories.MatchesAll
	}

	matches, err := s.matchRepo.List(ctx, repositories.MatchFilter{
		Status:   status,
		LeagueID: input.LeagueID,
		TeamID:   input.TeamID,
		SeasonID: input.SeasonID,
		Matchday: input.Matchday,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return s.buildList(matches), nil
}

func (s *matchService) buildList(matches []models.Match) *MatchList {
	now := s.now()
	league.AnnotateAll(matches, now)
	return &MatchList{
		Matches: matches,
		Days:    league.GroupByDay(matches, now.Location()),
		Counts:  league.CountByStatus(matches),
		Total:   len(matches),
	}
}

func (s *matchService) GetMatch(ctx context.Context, id int) (*models.Match, error) {
	if err := requirePositiveID("match_id", id); err != nil {
		return nil, err
	}
	m, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match %d: %w", id, err)
	}
	league.Annotate(m, s.now())
	return m, nil
}

func (s *matchService) CreateMatch(ctx context.Context, input MatchInput) (*MutationResult[models.Match], error) {
	if err := ValidateMatchInput(ctx, input); err != nil {
		return nil, err
	}
	id, err := s.matchRepo.Create(ctx, input.payload())
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	log.Ctx(ctx).Info().Int("match_id", id).Int("home_team_id", input.HomeTeamID).Int("away_team_id", input.AwayTeamID).Msg("match scheduled")
	return s.afterWrite(ctx, id, "Match created successfully", false), nil
}

func (s *matchService) UpdateMatch(ctx context.Context, id int, input MatchInput) (*MutationResult[models.Match], error) {
	if err := requirePositiveID("match_id", id); err != nil {
		return nil, err
	}
	if err := ValidateMatchInput(ctx, input); err != nil {
		return nil, err
	}
	if err := s.matchRepo.Update(ctx, id, input.payload()); err != nil {
		return nil, fmt.Errorf("failed to update match %d: %w", id, err)
	}
	return s.afterWrite(ctx, id, "Match updated successfully", false), nil
}

func (s *matchService) DeleteMatch(ctx context.Context, id int) (*MutationResult[models.Match], error) {
	if err := requirePositiveID("match_id", id); err != nil {
		return nil, err
	}
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete match %d: %w", id, err)
	}
	return s.afterWrite(ctx, id, "Match deleted successfully", true), nil
}

// UpdateScore records a result. The server updates the standings from it,
// so standings subscribers are notified as well.
func (s *matchService) UpdateScore(ctx context.Context, id int, input ScoreInput) (*MutationResult[models.Match], error) {
	if err := requirePositiveID("match_id", id); err != nil {
		return nil, err
	}
	if err := validateInput(ctx, input); err != nil {
		return nil, err
	}
	if err := s.matchRepo.UpdateScore(ctx, id, input.payload()); err != nil {
		return nil, fmt.Errorf("failed to update score of match %d: %w", id, err)
	}
	log.Ctx(ctx).Info().Int("match_id", id).Int("home", *input.FullTimeHome).Int("away", *input.FullTimeAway).Msg("score recorded")
	return s.afterWrite(ctx, id, "Match score updated successfully", true), nil
}

func (s *matchService) afterWrite(ctx context.Context, id int, message string, standingsChanged bool) *MutationResult[models.Match] {
	result := &MutationResult[models.Match]{ID: id, Message: message}
	refetch(ctx, live.RoomMatches, result, func(ctx context.Context) ([]models.Match, error) {
		list, err := s.ListMatches(ctx, MatchListInput{})
		if err != nil {
			return nil, err
		}
		return list.Matches, nil
	})
	s.notifier.NotifyChanged(live.RoomMatches, map[string]int{"match_id": id})
	if standingsChanged {
		s.notifier.NotifyChanged(live.RoomStandings, map[string]int{"match_id": id})
	}
	return result
}
