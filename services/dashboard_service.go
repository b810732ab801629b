package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/football-dashboard/league"
	"github.com/Dosada05/football-dashboard/models"
	"github.com/Dosada05/football-dashboard/repositories"
)

type DashboardService interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	leagueRepo repositories.LeagueRepository
	teamRepo   repositories.TeamRepository
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
	now        Clock
}

func NewDashboardService(
	leagueRepo repositories.LeagueRepository,
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	clock Clock,
) DashboardService {
	return &dashboardService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		now:        clockOrSystem(clock),
	}
}

// GetStats loads the four lists in parallel. Match counts use the status
// computed here, not the one stored upstream.
func (s *dashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	var (
		stats   models.DashboardStats
		matches []models.Match
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		leagues, err := s.leagueRepo.List(gCtx)
		stats.LeaguesTotal = len(leagues)
		return err
	})
	g.Go(func() error {
		teams, err := s.teamRepo.List(gCtx, 0)
		stats.TeamsTotal = len(teams)
		return err
	})
	g.Go(func() error {
		players, err := s.playerRepo.List(gCtx, repositories.PlayerFilter{})
		stats.PlayersTotal = len(players)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.List(gCtx, repositories.MatchFilter{Status: repositories.MatchesAll, Limit: MaxMatchLimit})
		return err
	})
	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to load dashboard stats: %w", err)
	}

	league.AnnotateAll(matches, s.now())
	counts := league.CountByStatus(matches)
	stats.MatchesUpcoming = counts[models.MatchStatusUpcoming]
	stats.MatchesToday = counts[models.MatchStatusToday]
	stats.MatchesCompleted = counts[models.MatchStatusCompleted]
	return stats, nil
}
