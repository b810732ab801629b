package views

import (
	"context"

	"github.com/Dosada05/football-dashboard/models"
	"github.com/Dosada05/football-dashboard/services"
)

// PlayersView is the state behind a player list screen. Server-side filters
// (team, league, position) go through Load; the free-text filter is applied
// to the players already loaded and never causes a request.
type PlayersView struct {
	svc   services.PlayerService
	loads *latest

	query   services.PlayerQuery
	search  string
	players []models.Player
	loaded  bool
}

func NewPlayersView(ctx context.Context, svc services.PlayerService) *PlayersView {
	return &PlayersView{svc: svc, loads: newLatest(ctx)}
}

// Load fetches players for query. A Load started while another is in flight
// cancels the older one, which then returns ErrSuperseded.
func (v *PlayersView) Load(query services.PlayerQuery) (*services.PlayerList, error) {
	ctx, gen, err := v.loads.begin()
	if err != nil {
		return nil, err
	}

	players, fetchErr := v.svc.FetchPlayers(ctx, query)

	var list *services.PlayerList
	err = v.loads.finish(gen, func() {
		if fetchErr != nil {
			return
		}
		v.query = query
		v.players = players
		v.loaded = true
		list = services.NewPlayerList(v.players, v.search)
	})
	if err != nil {
		return nil, err
	}
	if fetchErr != nil {
		return nil, fetchErr
	}
	return list, nil
}

// Refresh reloads with the current filters, e.g. after a mutation.
func (v *PlayersView) Refresh() (*services.PlayerList, error) {
	var query services.PlayerQuery
	v.loads.read(func() { query = v.query })
	return v.Load(query)
}

// SetSearch changes the text filter and returns the narrowed list.
func (v *PlayersView) SetSearch(text string) *services.PlayerList {
	var list *services.PlayerList
	v.loads.read(func() {
		v.search = text
		list = services.NewPlayerList(v.players, v.search)
	})
	return list
}

// Current returns the list as last loaded and filtered. ok is false before
// the first successful Load.
func (v *PlayersView) Current() (list *services.PlayerList, ok bool) {
	v.loads.read(func() {
		list = services.NewPlayerList(v.players, v.search)
		ok = v.loaded
	})
	return list, ok
}

func (v *PlayersView) Query() services.PlayerQuery {
	var q services.PlayerQuery
	v.loads.read(func() { q = v.query })
	return q
}

// Close cancels any load in flight. The view cannot be used afterwards.
func (v *PlayersView) Close() {
	v.loads.close()
}
