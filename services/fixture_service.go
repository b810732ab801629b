package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Dosada05/football-dashboard/fixtures"
	"github.com/Dosada05/football-dashboard/league"
	"github.com/Dosada05/football-dashboard/live"
	"github.com/Dosada05/football-dashboard/models"
	"github.com/Dosada05/football-dashboard/repositories"
)

type FixtureService interface {
	Generate(ctx context.Context, input FixtureInput) (*FixturePlan, error)
}

type FixtureInput struct {
	LeagueID int `json:"league_id" validate:"required,gt=0"`
	SeasonID int `json:"season_id" validate:"required,gt=0"`
	// TeamIDs defaults to every team of the league.
	TeamIDs      []int  `json:"team_ids" validate:"omitempty,dive,gt=0"`
	FirstKickoff string `json:"first_kickoff" validate:"required,date"`
	IntervalDays int    `json:"interval_days" validate:"gte=0,lte=60"`
	DoubleRound  bool   `json:"double_round"`
	DryRun       bool   `json:"dry_run"`
}

type FixtureFailure struct {
	Matchday   int    `json:"matchday"`
	HomeTeamID int    `json:"home_team_id"`
	AwayTeamID int    `json:"away_team_id"`
	Error      string `json:"error"`
}

type FixturePlan struct {
	Generator string             `json:"generator"`
	DryRun    bool               `json:"dry_run"`
	Fixtures  []fixtures.Fixture `json:"fixtures"`
	Created   []int              `json:"created_match_ids"`
	Failed    []FixtureFailure   `json:"failed"`
}

type fixtureService struct {
	generator fixtures.Generator
	teamRepo  repositories.TeamRepository
	matchRepo repositories.MatchRepository
	notifier  ChangeNotifier
}

func NewFixtureService(
	generator fixtures.Generator,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	notifier ChangeNotifier,
) FixtureService {
	return &fixtureService{
		generator: generator,
		teamRepo:  teamRepo,
		matchRepo: matchRepo,
		notifier:  notifierOrNop(notifier),
	}
}

// Generate builds a season schedule and, unless DryRun is set, creates every
// fixture upstream in matchday order. A failed fixture does not stop the
// rest; it is reported in Failed.
func (s *fixtureService) Generate(ctx context.Context, input FixtureInput) (*FixturePlan, error) {
	if err := validateInput(ctx, input); err != nil {
		return nil, err
	}
	kickoff, _ := league.ParseDate(input.FirstKickoff)

	teamIDs := input.TeamIDs
	if len(teamIDs) == 0 {
		teams, err := s.teamRepo.List(ctx, input.LeagueID)
		if err != nil {
			return nil, fmt.Errorf("failed to list teams of league %d: %w", input.LeagueID, err)
		}
		for _, t := range league.TeamsInLeague(teams, input.LeagueID) {
			teamIDs = append(teamIDs, t.ID)
		}
	}

	generated, err := s.generator.Generate(ctx, fixtures.GenerateParams{
		TeamIDs:      teamIDs,
		FirstKickoff: kickoff,
		Interval:     time.Duration(input.IntervalDays) * 24 * time.Hour,
		DoubleRound:  input.DoubleRound,
	})
	if err != nil {
		switch {
		case errors.Is(err, fixtures.ErrNotEnoughTeams), errors.Is(err, fixtures.ErrDuplicateTeam), errors.Is(err, fixtures.ErrInvalidTeamID):
			return nil, &ValidationError{Fields: map[string]string{"team_ids": err.Error()}, cause: err}
		default:
			return nil, fmt.Errorf("failed to generate fixtures: %w", err)
		}
	}

	plan := &FixturePlan{
		Generator: s.generator.Name(),
		DryRun:    input.DryRun,
		Fixtures:  generated,
		Created:   []int{},
		Failed:    []FixtureFailure{},
	}
	if input.DryRun {
		return plan, nil
	}

	for _, f := range generated {
		if err := ctx.Err(); err != nil {
			return plan, err
		}
		id, err := s.matchRepo.Create(ctx, models.MatchPayload{
			SeasonID:   input.SeasonID,
			LeagueID:   input.LeagueID,
			Matchday:   f.Matchday,
			HomeTeamID: f.HomeTeamID,
			AwayTeamID: f.AwayTeamID,
			UTCDate:    f.Kickoff.UTC().Format(upstreamDateLayout),
		})
		if err != nil {
			plan.Failed = append(plan.Failed, FixtureFailure{
				Matchday:   f.Matchday,
				HomeTeamID: f.HomeTeamID,
				AwayTeamID: f.AwayTeamID,
				Error:      err.Error(),
			})
			continue
		}
		plan.Created = append(plan.Created, id)
	}

	log.Ctx(ctx).Info().
		Int("league_id", input.LeagueID).
		Int("season_id", input.SeasonID).
		Int("created", len(plan.Created)).
		Int("failed", len(plan.Failed)).
		Msg("fixtures generated")

	if len(plan.Created) > 0 {
		s.notifier.NotifyChanged(live.RoomMatches, map[string]int{"league_id": input.LeagueID, "season_id": input.SeasonID})
	}
	return plan, nil
}
