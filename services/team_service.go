package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Dosada05/football-dashboard/league"
	"github.com/Dosada05/football-dashboard/live"
	"github.com/Dosada05/football-dashboard/models"
	"github.com/Dosada05/football-dashboard/repositories"
	"github.com/Dosada05/football-dashboard/storage"
)

type TeamService interface {
	ListTeams(ctx context.Context, input TeamListInput) ([]models.Team, error)
	GetTeam(ctx context.Context, id int) (*models.TeamDetail, error)
	TeamStatistics(ctx context.Context, id, seasonID int) (*models.TeamStatistics, error)
	CreateTeam(ctx context.Context, input TeamInput) (*MutationResult[models.Team], error)
	UpdateTeam(ctx context.Context, id int, input TeamInput) (*MutationResult[models.Team], error)
	DeleteTeam(ctx context.Context, id int) (*MutationResult[models.Team], error)
	UploadCrest(ctx context.Context, id int, file io.Reader, contentType string) (*MutationResult[models.Team], error)
}

// TeamListInput narrows the team list. LeagueID is sent upstream, Search is
// applied to the response.
type TeamListInput struct {
	LeagueID int
	Search   string
}

type TeamInput struct {
	Name        string  `json:"name" validate:"required"`
	LeagueID    int     `json:"league_id" validate:"required,gt=0"`
	FoundedYear *int    `json:"founded_year" validate:"omitempty,gte=1800,lte=2100"`
	StadiumID   *int    `json:"stadium_id" validate:"omitempty,gt=0"`
	CoachID     *int    `json:"coach_id" validate:"omitempty,gt=0"`
	CrestURL    *string `json:"cresturl" validate:"omitempty,url"`
}

func (in TeamInput) payload() models.TeamPayload {
	return models.TeamPayload{
		Name:        strings.TrimSpace(in.Name),
		LeagueID:    in.LeagueID,
		FoundedYear: in.FoundedYear,
		StadiumID:   in.StadiumID,
		CoachID:     in.CoachID,
		CrestURL:    in.CrestURL,
	}
}

type teamService struct {
	teamRepo repositories.TeamRepository
	uploader storage.FileUploader
	notifier ChangeNotifier
	now      Clock
}

// NewTeamService builds the team service. uploader may be nil, in which case
// crest uploads fail with ErrUploadsDisabled.
func NewTeamService(
	teamRepo repositories.TeamRepository,
	uploader storage.FileUploader,
	notifier ChangeNotifier,
	clock Clock,
) TeamService {
	return &teamService{
		teamRepo: teamRepo,
		uploader: uploader,
		notifier: notifierOrNop(notifier),
		now:      clockOrSystem(clock),
	}
}

func (s *teamService) ListTeams(ctx context.Context, input TeamListInput) ([]models.Team, error) {
	teams, err := s.teamRepo.List(ctx, input.LeagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return league.FilterTeams(teams, input.Search), nil
}

func (s *teamService) GetTeam(ctx context.Context, id int) (*models.TeamDetail, error) {
	if err := requirePositiveID("team_id", id); err != nil {
		return nil, err
	}
	detail, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}
	now := s.now()
	for i := range detail.Players {
		detail.Players[i].Age = league.AgeFromString(detail.Players[i].DateOfBirth, now)
	}
	return detail, nil
}

func (s *teamService) TeamStatistics(ctx context.Context, id, seasonID int) (*models.TeamStatistics, error) {
	if err := requirePositiveID("team_id", id); err != nil {
		return nil, err
	}
	stats, err := s.teamRepo.Statistics(ctx, id, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics for team %d: %w", id, err)
	}
	league.AnnotateAll(stats.RecentMatches, s.now())
	stats.TopScorers = league.PrepareTopScorers(stats.TopScorers)
	if stats.Standing != nil {
		rows := league.PrepareStandings([]models.StandingsRow{*stats.Standing})
		stats.Standing.GoalDifference = rows[0].GoalDifference
		stats.Standing.Form = rows[0].Form
	}
	return stats, nil
}

func (s *teamService) CreateTeam(ctx context.Context, input TeamInput) (*MutationResult[models.Team], error) {
	if err := validateInput(ctx, input); err != nil {
		return nil, err
	}
	id, err := s.teamRepo.Create(ctx, input.payload())
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	log.Ctx(ctx).Info().Int("team_id", id).Msg("team created")
	return s.afterWrite(ctx, id, "Team created successfully"), nil
}

func (s *teamService) UpdateTeam(ctx context.Context, id int, input TeamInput) (*MutationResult[models.Team], error) {
	if err := requirePositiveID("team_id", id); err != nil {
		return nil, err
	}
	if err := validateInput(ctx, input); err != nil {
		return nil, err
	}
	if err := s.teamRepo.Update(ctx, id, input.payload()); err != nil {
		return nil, fmt.Errorf("failed to update team %d: %w", id, err)
	}
	return s.afterWrite(ctx, id, "Team updated successfully"), nil
}

func (s *teamService) DeleteTeam(ctx context.Context, id int) (*MutationResult[models.Team], error) {
	if err := requirePositiveID("team_id", id); err != nil {
		return nil, err
	}
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete team %d: %w", id, err)
	}
	return s.afterWrite(ctx, id, "Team deleted successfully"), nil
}

// UploadCrest stores the image and points the team's crest URL at it. The
// object is removed again if the team update fails.
func (s *teamService) UploadCrest(ctx context.Context, id int, file io.Reader, contentType string) (*MutationResult[models.Team], error) {
	if s.uploader == nil {
		return nil, ErrUploadsDisabled
	}
	if err := requirePositiveID("team_id", id); err != nil {
		return nil, err
	}
	ext, err := storage.ExtensionForContentType(contentType)
	if err != nil {
		return nil, newValidationError("crest", err.Error())
	}

	detail, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team %d: %w", id, err)
	}
	team := detail.Team
	if team.LeagueID == nil {
		return nil, newValidationError("league_id", "team has no league")
	}

	key := fmt.Sprintf("crests/team-%d/%s%s", id, uuid.NewString(), ext)
	uploaded, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload crest for team %d: %w", id, err)
	}

	payload := models.TeamPayload{
		Name:        team.Name,
		LeagueID:    *team.LeagueID,
		FoundedYear: team.FoundedYear,
		StadiumID:   team.StadiumID,
		CoachID:     team.CoachID,
		CrestURL:    &uploaded.Location,
	}
	if err := s.teamRepo.Update(ctx, id, payload); err != nil {
		if delErr := s.uploader.Delete(context.WithoutCancel(ctx), uploaded.Key); delErr != nil {
			log.Ctx(ctx).Warn().Err(delErr).Str("key", uploaded.Key).Msg("failed to remove orphaned crest")
		}
		return nil, fmt.Errorf("failed to update crest for team %d: %w", id, err)
	}
	return s.afterWrite(ctx, id, "Crest uploaded successfully"), nil
}

func (s *teamService) afterWrite(ctx context.Context, id int, message string) *MutationResult[models.Team] {
	result := &MutationResult[models.Team]{ID: id, Message: message}
	refetch(ctx, live.RoomTeams, result, func(ctx context.Context) ([]models.Team, error) {
		return s.teamRepo.List(ctx, 0)
	})
	s.notifier.NotifyChanged(live.RoomTeams, map[string]int{"team_id": id})
	return result
}
