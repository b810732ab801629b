package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Dosada05/football-dashboard/league"
	"github.com/Dosada05/football-dashboard/live"
	"github.com/Dosada05/football-dashboard/models"
	"github.com/Dosada05/football-dashboard/repositories"
)

type PlayerService interface {
	// FetchPlayers applies only the server-side filters.
	FetchPlayers(ctx context.Context, query PlayerQuery) ([]models.Player, error)
	ListPlayers(ctx context.Context, query PlayerQuery, search string) (*PlayerList, error)
	GetPlayer(ctx context.Context, id int) (*models.PlayerDetail, error)
	CreatePlayer(ctx context.Context, input PlayerInput) (*MutationResult[models.Player], error)
	UpdatePlayer(ctx context.Context, id int, input PlayerInput) (*MutationResult[models.Player], error)
	DeletePlayer(ctx context.Context, id int) (*MutationResult[models.Player], error)
}

// PlayerQuery holds the filters sent upstream. Changing any of them requires
// a new fetch.
type PlayerQuery struct {
	TeamID   int             `json:"team_id" validate:"gte=0"`
	LeagueID int             `json:"league_id" validate:"gte=0"`
	Position models.Position `json:"position" validate:"omitempty,position"`
}

type PlayerList struct {
	Players        []models.Player         `json:"players"`
	Total          int                     `json:"total"`
	PositionCounts map[models.Position]int `json:"position_counts"`
}

// NewPlayerList narrows already fetched players by free text.
func NewPlayerList(players []models.Player, search string) *PlayerList {
	filtered := league.FilterPlayers(players, search)
	return &PlayerList{
		Players:        filtered,
		Total:          len(filtered),
		PositionCounts: league.CountByPosition(filtered),
	}
}

type PlayerInput struct {
	Name        string          `json:"name" validate:"required"`
	TeamID      int             `json:"team_id" validate:"required,gt=0"`
	Position    models.Position `json:"position" validate:"required,position"`
	DateOfBirth *string         `json:"date_of_birth" validate:"omitempty,date"`
	Nationality *string         `json:"nationality"`
}

func (in PlayerInput) payload() models.PlayerPayload {
	p := models.PlayerPayload{
		Name:        strings.TrimSpace(in.Name),
		TeamID:      in.TeamID,
		Position:    in.Position,
		Nationality: in.Nationality,
	}
	if in.DateOfBirth != nil {
		dob := league.DateOnly(*in.DateOfBirth)
		p.DateOfBirth = &dob
	}
	return p
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	notifier   ChangeNotifier
	now        Clock
}

func NewPlayerService(playerRepo repositories.PlayerRepository, notifier ChangeNotifier, clock Clock) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		notifier:   notifierOrNop(notifier),
		now:        clockOrSystem(clock),
	}
}

func (s *playerService) FetchPlayers(ctx context.Context, query PlayerQuery) ([]models.Player, error) {
	if err := validateInput(ctx, query); err != nil {
		return nil, err
	}
	players, err := s.playerRepo.List(ctx, repositories.PlayerFilter{
		TeamID:   query.TeamID,
		LeagueID: query.LeagueID,
		Position: query.Position,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	s.fillAges(players)
	return players, nil
}

func (s *playerService) ListPlayers(ctx context.Context, query PlayerQuery, search string) (*PlayerList, error) {
	players, err := s.FetchPlayers(ctx, query)
	if err != nil {
		return nil, err
	}
	return NewPlayerList(players, search), nil
}

func (s *playerService) GetPlayer(ctx context.Context, id int) (*models.PlayerDetail, error) {
	if err := requirePositiveID("player_id", id); err != nil {
		return nil, err
	}
	detail, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player %d: %w", id, err)
	}
	detail.Player.Age = league.AgeFromString(detail.Player.DateOfBirth, s.now())
	detail.Statistics = league.PrepareTopScorers(detail.Statistics)
	return detail, nil
}

func (s *playerService) CreatePlayer(ctx context.Context, input PlayerInput) (*MutationResult[models.Player], error) {
	if err := validateInput(ctx, input); err != nil {
		return nil, err
	}
	id, err := s.playerRepo.Create(ctx, input.payload())
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	log.Ctx(ctx).Info().Int("player_id", id).Msg("player created")
	return s.afterWrite(ctx, id, "Player created successfully"), nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id int, input PlayerInput) (*MutationResult[models.Player], error) {
	if err := requirePositiveID("player_id", id); err != nil {
		return nil, err
	}
	if err := validateInput(ctx, input); err != nil {
		return nil, err
	}
	if err := s.playerRepo.Update(ctx, id, input.payload()); err != nil {
		return nil, fmt.Errorf("failed to update player %d: %w", id, err)
	}
	return s.afterWrite(ctx, id, "Player updated successfully"), nil
}

func (s *playerService) DeletePlayer(ctx context.Context, id int) (*MutationResult[models.Player], error) {
	if err := requirePositiveID("player_id", id); err != nil {
		return nil, err
	}
	if err := s.playerRepo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete player %d: %w", id, err)
	}
	return s.afterWrite(ctx, id, "Player deleted successfully"), nil
}

func (s *playerService) afterWrite(ctx context.Context, id int, message string) *MutationResult[models.Player] {
	result := &MutationResult[models.Player]{ID: id, Message: message}
	refetch(ctx, live.RoomPlayers, result, func(ctx context.Context) ([]models.Player, error) {
		return s.FetchPlayers(ctx, PlayerQuery{})
	})
	s.notifier.NotifyChanged(live.RoomPlayers, map[string]int{"player_id": id})
	return result
}

func (s *playerService) fillAges(players []models.Player) {
	now := s.now()
	for i := range players {
		players[i].Age = league.AgeFromString(players[i].DateOfBirth, now)
	}
}
