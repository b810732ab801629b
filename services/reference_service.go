package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/football-dashboard/league"
	"github.com/Dosada05/football-dashboard/models"
	"github.com/Dosada05/football-dashboard/repositories"
)

// ReferenceService loads the lookup lists the admin forms are built from.
type ReferenceService interface {
	Load(ctx context.Context) (*models.ReferenceData, error)
	Leagues(ctx context.Context) ([]models.League, error)
	Seasons(ctx context.Context) ([]models.Season, error)
	Stadiums(ctx context.Context) ([]models.Stadium, error)
	Coaches(ctx context.Context) ([]models.Coach, error)
}

type referenceService struct {
	refRepo  repositories.ReferenceRepository
	teamRepo repositories.TeamRepository
}

func NewReferenceService(refRepo repositories.ReferenceRepository, teamRepo repositories.TeamRepository) ReferenceService {
	return &referenceService{refRepo: refRepo, teamRepo: teamRepo}
}

// Load fetches every list in parallel and fails if any of them fails.
func (s *referenceService) Load(ctx context.Context) (*models.ReferenceData, error) {
	var data models.ReferenceData

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		data.Leagues, err = s.refRepo.Leagues(gCtx)
		return err
	})
	g.Go(func() (err error) {
		data.Seasons, err = s.Seasons(gCtx)
		return err
	})
	g.Go(func() (err error) {
		data.Stadiums, err = s.refRepo.Stadiums(gCtx)
		return err
	})
	g.Go(func() (err error) {
		data.Coaches, err = s.refRepo.Coaches(gCtx)
		return err
	})
	g.Go(func() (err error) {
		data.Teams, err = s.teamRepo.List(gCtx, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}
	return &data, nil
}

func (s *referenceService) Leagues(ctx context.Context) ([]models.League, error) {
	return s.refRepo.Leagues(ctx)
}

func (s *referenceService) Seasons(ctx context.Context) ([]models.Season, error) {
	seasons, err := s.refRepo.Seasons(ctx)
	if err != nil {
		return nil, err
	}
	return league.UniqueSeasonsByYear(seasons), nil
}

func (s *referenceService) Stadiums(ctx context.Context) ([]models.Stadium, error) {
	return s.refRepo.Stadiums(ctx)
}

func (s *referenceService) Coaches(ctx context.Context) ([]models.Coach, error) {
	return s.refRepo.Coaches(ctx)
}
