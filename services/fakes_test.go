package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/Dosada05/football-dashboard/models"
	"github.com/Dosada05/football-dashboard/repositories"
	"github.com/Dosada05/football-dashboard/storage"
)

var errUpstream = errors.New("upstream exploded")

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

type notification struct {
	resource string
	payload  any
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notification
}

func (n *recordingNotifier) NotifyChanged(resource string, payload any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification{resource: resource, payload: payload})
}

func (n *recordingNotifier) resources() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.sent))
	for _, s := range n.sent {
		out = append(out, s.resource)
	}
	return out
}

type fakeMatchRepo struct {
	matches    []models.Match
	listErr    error
	createErr  map[int]error
	listCalls  int
	lastFilter repositories.MatchFilter
	created    []models.MatchPayload
	updated    []models.MatchPayload
	scores     []models.ScorePayload
	deleted    []int
	nextID     int
	writeCalls int
}

func (f *fakeMatchRepo) List(_ context.Context, filter repositories.MatchFilter) ([]models.Match, error) {
	f.listCalls++
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Match, len(f.matches))
	copy(out, f.matches)
	return out, nil
}

func (f *fakeMatchRepo) GetByID(_ context.Context, id int) (*models.Match, error) {
	for _, m := range f.matches {
		if m.ID == id {
			m := m
			return &m, nil
		}
	}
	return nil, repositories.ErrMatchNotFound
}

func (f *fakeMatchRepo) Create(_ context.Context, payload models.MatchPayload) (int, error) {
	f.writeCalls++
	if err := f.createErr[payload.HomeTeamID]; err != nil {
		return 0, err
	}
	f.nextID++
	f.created = append(f.created, payload)
	return f.nextID, nil
}

func (f *fakeMatchRepo) Update(_ context.Context, _ int, payload models.MatchPayload) error {
	f.writeCalls++
	f.updated = append(f.updated, payload)
	return nil
}

func (f *fakeMatchRepo) Delete(_ context.Context, id int) error {
	f.writeCalls++
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeMatchRepo) UpdateScore(_ context.Context, _ int, payload models.ScorePayload) error {
	f.writeCalls++
	f.scores = append(f.scores, payload)
	return nil
}

type fakePlayerRepo struct {
	players    []models.Player
	listCalls  int
	lastFilter repositories.PlayerFilter
	created    []models.PlayerPayload
}

func (f *fakePlayerRepo) List(_ context.Context, filter repositories.PlayerFilter) ([]models.Player, error) {
	f.listCalls++
	f.lastFilter = filter
	out := make([]models.Player, len(f.players))
	copy(out, f.players)
	return out, nil
}

func (f *fakePlayerRepo) GetByID(_ context.Context, id int) (*models.PlayerDetail, error) {
	for _, p := range f.players {
		if p.ID == id {
			return &models.PlayerDetail{Player: p}, nil
		}
	}
	return nil, repositories.ErrPlayerNotFound
}

func (f *fakePlayerRepo) Create(_ context.Context, payload models.PlayerPayload) (int, error) {
	f.created = append(f.created, payload)
	return 99, nil
}

func (f *fakePlayerRepo) Update(context.Context, int, models.PlayerPayload) error { return nil }
func (f *fakePlayerRepo) Delete(context.Context, int) error                       { return nil }

type fakeTeamRepo struct {
	teams     []models.Team
	detail    *models.TeamDetail
	updateErr error
	updated   []models.TeamPayload
	listCalls int
}

func (f *fakeTeamRepo) List(_ context.Context, _ int) ([]models.Team, error) {
	f.listCalls++
	out := make([]models.Team, len(f.teams))
	copy(out, f.teams)
	return out, nil
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id int) (*models.TeamDetail, error) {
	if f.detail == nil || f.detail.Team.ID != id {
		return nil, repositories.ErrTeamNotFound
	}
	d := *f.detail
	return &d, nil
}

func (f *fakeTeamRepo) Statistics(context.Context, int, int) (*models.TeamStatistics, error) {
	return &models.TeamStatistics{}, nil
}

func (f *fakeTeamRepo) Create(context.Context, models.TeamPayload) (int, error) { return 7, nil }

func (f *fakeTeamRepo) Update(_ context.Context, _ int, payload models.TeamPayload) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, payload)
	return nil
}

func (f *fakeTeamRepo) Delete(context.Context, int) error { return nil }

type fakeLeagueRepo struct {
	leagues      []models.League
	seasons      []models.Season
	standings    []*models.Standings
	standingsErr []error
	recomputed   []models.RecomputePayload
	calls        []string
}

func (f *fakeLeagueRepo) List(context.Context) ([]models.League, error) {
	return f.leagues, nil
}

func (f *fakeLeagueRepo) GetByID(context.Context, int, int) (*models.LeagueDetail, error) {
	return nil, repositories.ErrLeagueNotFound
}

func (f *fakeLeagueRepo) Seasons(context.Context) ([]models.Season, error) {
	return f.seasons, nil
}

// Standings answers from the queued tables and errors in call order.
func (f *fakeLeagueRepo) Standings(context.Context, int, int) (*models.Standings, error) {
	f.calls = append(f.calls, "standings")
	var (
		table *models.Standings
		err   error
	)
	if len(f.standings) > 0 {
		table, f.standings = f.standings[0], f.standings[1:]
	}
	if len(f.standingsErr) > 0 {
		err, f.standingsErr = f.standingsErr[0], f.standingsErr[1:]
	}
	return table, err
}

func (f *fakeLeagueRepo) TopScorers(context.Context, repositories.TopScorerFilter) ([]models.TopScorerEntry, error) {
	return []models.TopScorerEntry{}, nil
}

func (f *fakeLeagueRepo) Statistics(context.Context, int, int) (*models.LeagueStatistics, error) {
	return &models.LeagueStatistics{}, nil
}

func (f *fakeLeagueRepo) RecomputeStandings(_ context.Context, leagueID, seasonID int) error {
	f.calls = append(f.calls, "recompute")
	f.recomputed = append(f.recomputed, models.RecomputePayload{LeagueID: leagueID, SeasonID: seasonID})
	return nil
}

type fakeSearchRepo struct {
	calls []string
	all   *models.SearchResults
}

func (f *fakeSearchRepo) Players(_ context.Context, q string) ([]models.Player, error) {
	f.calls = append(f.calls, "players:"+q)
	return []models.Player{{ID: 1, Name: "Bukayo Saka"}}, nil
}

func (f *fakeSearchRepo) Teams(_ context.Context, q string) ([]models.Team, error) {
	f.calls = append(f.calls, "teams:"+q)
	return []models.Team{{ID: 2, Name: "Arsenal"}}, nil
}

func (f *fakeSearchRepo) Stadiums(_ context.Context, q string) ([]models.Stadium, error) {
	f.calls = append(f.calls, "stadiums:"+q)
	return nil, nil
}

func (f *fakeSearchRepo) Coaches(_ context.Context, q string) ([]models.Coach, error) {
	f.calls = append(f.calls, "coaches:"+q)
	return []models.Coach{}, nil
}

func (f *fakeSearchRepo) All(_ context.Context, q string) (*models.SearchResults, error) {
	f.calls = append(f.calls, "all:"+q)
	return f.all, nil
}

type fakeUserRepo struct {
	users    []models.User
	setAdmin map[int]bool
}

func (f *fakeUserRepo) List(context.Context) ([]models.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) SetAdmin(_ context.Context, id int, admin bool) error {
	if f.setAdmin == nil {
		f.setAdmin = map[int]bool{}
	}
	f.setAdmin[id] = admin
	return nil
}

func (f *fakeUserRepo) AuditLog(context.Context) ([]models.AuditLogEntry, error) {
	return []models.AuditLogEntry{}, nil
}

type fakeUploader struct {
	uploaded []string
	deleted  []string
	body     bytes.Buffer
}

func (f *fakeUploader) Upload(_ context.Context, key, _ string, r io.Reader) (*storage.UploadResult, error) {
	f.uploaded = append(f.uploaded, key)
	if _, err := io.Copy(&f.body, r); err != nil {
		return nil, err
	}
	return &storage.UploadResult{Key: key, Location: f.GetPublicURL(key)}, nil
}

func (f *fakeUploader) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}
