package views

import (
	"context"
	"errors"

	"github.com/Dosada05/football-dashboard/models"
	"github.com/Dosada05/football-dashboard/services"
	"github.com/rs/zerolog/log"
)

// ManageMatchesView is the state behind the match administration screen.
// Every successful write is followed by a reload of the list with the
// filter currently shown.
type ManageMatchesView struct {
	svc   services.MatchService
	loads *latest

	filter services.MatchListInput
	list   *services.MatchList
	stale  bool
}

func NewManageMatchesView(ctx context.Context, svc services.MatchService) *ManageMatchesView {
	return &ManageMatchesView{svc: svc, loads: newLatest(ctx)}
}

func (v *ManageMatchesView) Load(filter services.MatchListInput) (*services.MatchList, error) {
	ctx, gen, err := v.loads.begin()
	if err != nil {
		return nil, err
	}

	list, fetchErr := v.svc.ListMatches(ctx, filter)

	err = v.loads.finish(gen, func() {
		if fetchErr != nil {
			return
		}
		v.filter = filter
		v.list = list
		v.stale = false
	})
	if err != nil {
		return nil, err
	}
	if fetchErr != nil {
		return nil, fetchErr
	}
	return list, nil
}

// Create schedules a match. Equal home and away teams are rejected without
// contacting the server.
func (v *ManageMatchesView) Create(input services.MatchInput) (*services.MutationResult[models.Match], error) {
	if err := services.ValidateMatchInput(v.loads.base, input); err != nil {
		return nil, err
	}
	return v.write(func(ctx context.Context) (*services.MutationResult[models.Match], error) {
		return v.svc.CreateMatch(ctx, input)
	})
}

func (v *ManageMatchesView) Update(id int, input services.MatchInput) (*services.MutationResult[models.Match], error) {
	if err := services.ValidateMatchInput(v.loads.base, input); err != nil {
		return nil, err
	}
	return v.write(func(ctx context.Context) (*services.MutationResult[models.Match], error) {
		return v.svc.UpdateMatch(ctx, id, input)
	})
}

func (v *ManageMatchesView) Delete(id int) (*services.MutationResult[models.Match], error) {
	return v.write(func(ctx context.Context) (*services.MutationResult[models.Match], error) {
		return v.svc.DeleteMatch(ctx, id)
	})
}

func (v *ManageMatchesView) SetScore(id int, input services.ScoreInput) (*services.MutationResult[models.Match], error) {
	return v.write(func(ctx context.Context) (*services.MutationResult[models.Match], error) {
		return v.svc.UpdateScore(ctx, id, input)
	})
}

func (v *ManageMatchesView) write(do func(ctx context.Context) (*services.MutationResult[models.Match], error)) (*services.MutationResult[models.Match], error) {
	if err := v.loads.base.Err(); err != nil {
		return nil, ErrClosed
	}
	result, err := do(v.loads.base)
	if err != nil {
		return nil, err
	}

	var filter services.MatchListInput
	v.loads.read(func() { filter = v.filter })
	if _, err := v.Load(filter); err != nil && !errors.Is(err, ErrSuperseded) {
		log.Ctx(v.loads.base).Warn().Err(err).Msg("match list reload after write failed")
		v.loads.read(func() { v.stale = true })
	}
	return result, nil
}

// Current returns the list last loaded and whether it may be out of date
// because the reload after a write failed.
func (v *ManageMatchesView) Current() (list *services.MatchList, stale bool) {
	v.loads.read(func() {
		list, stale = v.list, v.stale
	})
	return list, stale
}

func (v *ManageMatchesView) Close() {
	v.loads.close()
}
