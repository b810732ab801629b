package views

import (
	"context"

	"github.com/Dosada05/football-dashboard/models"
	"github.com/Dosada05/football-dashboard/services"
)

// SearchView keeps the results of the most recent search. A search that is
// overtaken by a newer one is cancelled and its results are dropped.
type SearchView struct {
	svc   services.SearchService
	loads *latest

	results *models.SearchResults
}

func NewSearchView(ctx context.Context, svc services.SearchService) *SearchView {
	return &SearchView{svc: svc, loads: newLatest(ctx)}
}

func (v *SearchView) Search(query, scope string) (*models.SearchResults, error) {
	ctx, gen, err := v.loads.begin()
	if err != nil {
		return nil, err
	}

	results, searchErr := v.svc.Search(ctx, query, scope)

	err = v.loads.finish(gen, func() {
		if searchErr == nil {
			v.results = results
		}
	})
	if err != nil {
		return nil, err
	}
	if searchErr != nil {
		return nil, searchErr
	}
	return results, nil
}

// Results returns the last successful results, or an empty set.
func (v *SearchView) Results() models.SearchResults {
	var res models.SearchResults
	v.loads.read(func() {
		if v.results != nil {
			res = *v.results
			return
		}
		res.Scope = models.ScopeAll
		res.Reset()
	})
	return res
}

func (v *SearchView) Close() {
	v.loads.close()
}
