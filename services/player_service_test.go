package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/football-dashboard/live"
	"github.com/Dosada05/football-dashboard/models"
)

func samplePlayers() []models.Player {
	return []models.Player{
		{ID: 1, Name: "Bukayo Saka", Position: models.PositionForward, Nationality: "England", DateOfBirth: strPtr("2001-09-05")},
		{ID: 2, Name: "William Saliba", Position: models.PositionDefender, Nationality: "France", DateOfBirth: strPtr("Thu, 24 Mar 2001 00:00:00 GMT")},
		{ID: 3, Name: "Declan Rice", Position: models.PositionMidfielder, Nationality: "England"},
	}
}

func TestListPlayersFiltersTextLocally(t *testing.T) {
	repo := &fakePlayerRepo{players: samplePlayers()}
	svc := NewPlayerService(repo, nil, fixedClock(matchNow))

	list, err := svc.ListPlayers(context.Background(), PlayerQuery{TeamID: 4, Position: models.PositionForward}, "ENGL")
	if err != nil {
		t.Fatalf("ListPlayers: %v", err)
	}
	if repo.lastFilter.TeamID != 4 || repo.lastFilter.Position != models.PositionForward {
		t.Fatalf("server filter = %+v", repo.lastFilter)
	}
	if list.Total != 2 || list.Players[0].ID != 1 || list.Players[1].ID != 3 {
		t.Fatalf("filtered = %+v", list.Players)
	}
	if list.PositionCounts[models.PositionForward] != 1 || list.PositionCounts[models.PositionGoalkeeper] != 0 {
		t.Fatalf("counts = %v", list.PositionCounts)
	}

	if list.Players[0].Age == nil || *list.Players[0].Age != 23 {
		t.Fatalf("age of player 1 = %v", list.Players[0].Age)
	}
	if list.Players[1].Age != nil {
		t.Fatalf("player without birth date should have unknown age, got %d", *list.Players[1].Age)
	}
}

func TestFetchPlayersRejectsUnknownPosition(t *testing.T) {
	repo := &fakePlayerRepo{}
	_, err := NewPlayerService(repo, nil, fixedClock(matchNow)).FetchPlayers(context.Background(), PlayerQuery{Position: "Sweeper"})
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.listCalls != 0 {
		t.Fatal("upstream called")
	}
}

func TestCreatePlayerTruncatesBirthDate(t *testing.T) {
	repo := &fakePlayerRepo{players: samplePlayers()}
	notifier := &recordingNotifier{}
	svc := NewPlayerService(repo, notifier, fixedClock(matchNow))

	res, err := svc.CreatePlayer(context.Background(), PlayerInput{
		Name:        "  Martin Odegaard ",
		TeamID:      4,
		Position:    models.PositionMidfielder,
		DateOfBirth: strPtr("1998-12-17T00:00:00Z"),
	})
	if err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}
	got := repo.created[0]
	if got.Name != "Martin Odegaard" || got.DateOfBirth == nil || *got.DateOfBirth != "1998-12-17" {
		t.Fatalf("payload = %+v", got)
	}
	if res.ID != 99 || len(res.Items) != 3 || repo.listCalls != 1 {
		t.Fatalf("result = %+v, lists = %d", res, repo.listCalls)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].resource != live.RoomPlayers {
		t.Fatalf("notifications = %v", notifier.resources())
	}
}

func TestCreatePlayerValidation(t *testing.T) {
	tests := []struct {
		name  string
		in    PlayerInput
		field string
	}{
		{"missing name", PlayerInput{TeamID: 1, Position: models.PositionForward}, "name"},
		{"missing team", PlayerInput{Name: "A", Position: models.PositionForward}, "team_id"},
		{"bad position", PlayerInput{Name: "A", TeamID: 1, Position: "Winger"}, "position"},
		{"bad birth date", PlayerInput{Name: "A", TeamID: 1, Position: models.PositionForward, DateOfBirth: strPtr("soon")}, "date_of_birth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePlayerRepo{}
			_, err := NewPlayerService(repo, nil, fixedClock(matchNow)).CreatePlayer(context.Background(), tt.in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Fatalf("fields = %v, want %q", verr.Fields, tt.field)
			}
			if len(repo.created) != 0 {
				t.Fatal("upstream write issued")
			}
		})
	}
}

func TestGetPlayerNotFound(t *testing.T) {
	_, err := NewPlayerService(&fakePlayerRepo{}, nil, fixedClock(matchNow)).GetPlayer(context.Background(), 5)
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}
