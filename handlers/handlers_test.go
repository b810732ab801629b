package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/football-dashboard/apiclient"
	"github.com/Dosada05/football-dashboard/models"
	"github.com/Dosada05/football-dashboard/repositories"
	"github.com/Dosada05/football-dashboard/services"
	"github.com/go-chi/chi/v5"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (%q)", err, rec.Body.String())
	}
	return body
}

func TestMapServiceErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantInBody string
	}{
		{
			name:       "validation",
			err:        &services.ValidationError{Fields: map[string]string{"away_team_id": "must differ from home_team_id"}},
			wantStatus: http.StatusUnprocessableEntity,
			wantInBody: "away_team_id",
		},
		{
			name:       "wrapped not found sentinel",
			err:        fmt.Errorf("failed to get team 3: %w", services.ErrTeamNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "upstream forbidden",
			err:        &apiclient.APIError{StatusCode: http.StatusForbidden, Message: "Admin access required"},
			wantStatus: http.StatusForbidden,
			wantInBody: "Admin access required",
		},
		{
			name:       "upstream 404",
			err:        &apiclient.APIError{StatusCode: http.StatusNotFound, Message: "Season not found"},
			wantStatus: http.StatusNotFound,
			wantInBody: "Season not found",
		},
		{
			name:       "upstream conflict",
			err:        &apiclient.APIError{StatusCode: http.StatusConflict, Message: "Team name taken"},
			wantStatus: http.StatusBadRequest,
			wantInBody: "Team name taken",
		},
		{
			name:       "upstream failure",
			err:        fmt.Errorf("list failed: %w", &apiclient.APIError{StatusCode: http.StatusInternalServerError, Message: "Database error"}),
			wantStatus: http.StatusBadGateway,
			wantInBody: "Database error",
		},
		{
			name:       "network",
			err:        &apiclient.NetworkError{Method: "GET", URL: "http://league/api/teams", Err: errors.New("connection refused")},
			wantStatus: http.StatusBadGateway,
			wantInBody: "upstream unavailable: connection refused",
		},
		{
			name:       "oversized upstream body",
			err:        fmt.Errorf("GET /api/matches: %w", apiclient.ErrResponseTooLarge),
			wantStatus: http.StatusBadGateway,
			wantInBody: "upstream response too large",
		},
		{
			name:       "uploads disabled",
			err:        services.ErrUploadsDisabled,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)

			mapServiceErrorToHTTP(rec, req, tt.err)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			body := decodeBody(t, rec)
			if _, ok := body["error"]; !ok {
				t.Fatalf("body has no error key: %v", body)
			}
			if tt.wantInBody != "" && !strings.Contains(rec.Body.String(), tt.wantInBody) {
				t.Errorf("body %q does not mention %q", rec.Body.String(), tt.wantInBody)
			}
		})
	}
}

func TestReadJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"name":"Arsenal"}`},
		{name: "empty", body: ``, wantErr: true},
		{name: "unknown field", body: `{"name":"Arsenal","colour":"red"}`, wantErr: true},
		{name: "two values", body: `{"name":"a"}{"name":"b"}`, wantErr: true},
		{name: "broken", body: `{"name":`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst payload
			err := readJSON(rec, req, &dst)
			if (err != nil) != tt.wantErr {
				t.Fatalf("readJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetIDFromURL(t *testing.T) {
	tests := []struct {
		path    string
		want    int
		wantErr bool
	}{
		{path: "/teams/12", want: 12},
		{path: "/teams/0", wantErr: true},
		{path: "/teams/-4", wantErr: true},
		{path: "/teams/abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var (
				got int
				err error
			)
			r := chi.NewRouter()
			r.Get("/teams/{teamID}", func(w http.ResponseWriter, r *http.Request) {
				got, err = getIDFromURL(r, "teamID")
			})
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			if (err != nil) != tt.wantErr {
				t.Fatalf("getIDFromURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("getIDFromURL() = %d, want %d", got, tt.want)
			}
		})
	}
}

type fakeMatchService struct {
	listInput   services.MatchListInput
	createInput services.MatchInput
	createCalls int
}

func (f *fakeMatchService) ListMatches(_ context.Context, input services.MatchListInput) (*services.MatchList, error) {
	f.listInput = input
	return &services.MatchList{Matches: []models.Match{{ID: 1}}, Total: 1}, nil
}

func (f *fakeMatchService) GetMatch(_ context.Context, id int) (*models.Match, error) {
	if id == 404 {
		return nil, fmt.Errorf("failed to get match %d: %w", id, services.ErrMatchNotFound)
	}
	return &models.Match{ID: id}, nil
}

func (f *fakeMatchService) CreateMatch(ctx context.Context, input services.MatchInput) (*services.MutationResult[models.Match], error) {
	f.createInput = input
	if err := services.ValidateMatchInput(ctx, input); err != nil {
		return nil, err
	}
	f.createCalls++
	return &services.MutationResult[models.Match]{ID: 9, Message: "Match created successfully"}, nil
}

func (f *fakeMatchService) UpdateMatch(context.Context, int, services.MatchInput) (*services.MutationResult[models.Match], error) {
	return &services.MutationResult[models.Match]{}, nil
}

func (f *fakeMatchService) DeleteMatch(_ context.Context, id int) (*services.MutationResult[models.Match], error) {
	return &services.MutationResult[models.Match]{ID: id}, nil
}

func (f *fakeMatchService) UpdateScore(_ context.Context, id int, _ services.ScoreInput) (*services.MutationResult[models.Match], error) {
	return &services.MutationResult[models.Match]{ID: id}, nil
}

func newMatchRouter(svc services.MatchService) http.Handler {
	h := NewMatchHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/matches", h.ListMatches)
	r.Get("/api/matches/{matchID}", h.GetMatch)
	r.Post("/api/admin/matches", h.CreateMatch)
	return r
}

func TestMatchHandler_ListMatchesQuery(t *testing.T) {
	svc := &fakeMatchService{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/matches?status=today&league_id=2&matchday=7&limit=100", nil)

	newMatchRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	want := services.MatchListInput{Status: repositories.MatchesToday, LeagueID: 2, Matchday: 7, Limit: 100}
	if svc.listInput != want {
		t.Errorf("service got %+v, want %+v", svc.listInput, want)
	}
}

func TestMatchHandler_BadQueryParameter(t *testing.T) {
	svc := &fakeMatchService{}
	rec := httptest.NewRecorder()
	newMatchRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/matches?league_id=abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestMatchHandler_GetMatchNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	newMatchRouter(&fakeMatchService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/matches/404", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestMatchHandler_CreateSameTeams(t *testing.T) {
	svc := &fakeMatchService{}
	body := `{"season_id":1,"league_id":1,"matchday":3,"home_team_id":5,"away_team_id":5,"utc_date":"2025-04-01T15:00:00Z"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/matches", strings.NewReader(body))

	newMatchRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (body %s)", rec.Code, rec.Body.String())
	}
	if svc.createCalls != 0 {
		t.Errorf("create went through %d times", svc.createCalls)
	}
}

func TestMatchHandler_CreateMatch(t *testing.T) {
	svc := &fakeMatchService{}
	body := `{"season_id":1,"league_id":1,"matchday":3,"home_team_id":5,"away_team_id":6,"utc_date":"2025-04-01T15:00:00Z"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/matches", strings.NewReader(body))

	newMatchRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	if svc.createInput.AwayTeamID != 6 || svc.createInput.UTCDate != "2025-04-01T15:00:00Z" {
		t.Errorf("service got %+v", svc.createInput)
	}
	if got := decodeBody(t, rec)["message"]; got != "Match created successfully" {
		t.Errorf("message = %v", got)
	}
}

type fakeSearchService struct {
	calls        int
	query, scope string
}

func (f *fakeSearchService) Search(ctx context.Context, query, scope string) (*models.SearchResults, error) {
	f.calls++
	f.query, f.scope = query, scope
	if strings.TrimSpace(query) == "" {
		return nil, &services.ValidationError{Fields: map[string]string{"q": "is required"}}
	}
	return &models.SearchResults{Query: query}, nil
}

func TestSearchHandler(t *testing.T) {
	svc := &fakeSearchService{}
	h := NewSearchHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/search", h.Search)
	r.Get("/api/search/{scope}", h.SearchScope)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search/teams?q=united", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.query != "united" || svc.scope != "teams" {
		t.Errorf("service got q=%q scope=%q", svc.query, svc.scope)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search?q=+", nil))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("blank query status = %d, want 422", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || decodeBody(t, rec)["status"] != "ok" {
		t.Fatalf("unexpected health response %d %s", rec.Code, rec.Body.String())
	}
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://dash.example.com"})
	req := httptest.NewRequest(http.MethodGet, "/ws/matches", nil)

	req.Header.Set("Origin", "https://dash.example.com")
	if !check(req) {
		t.Error("listed origin rejected")
	}
	req.Header.Set("Origin", "https://evil.example.com")
	if check(req) {
		t.Error("unlisted origin accepted")
	}
	if !originChecker([]string{"*"})(req) {
		t.Error("wildcard should accept any origin")
	}
}
