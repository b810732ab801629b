package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/football-dashboard/models"
)

func TestDashboardStats(t *testing.T) {
	svc := NewDashboardService(
		&fakeLeagueRepo{leagues: []models.League{{ID: 1}, {ID: 2}}},
		&fakeTeamRepo{teams: []models.Team{{ID: 1}, {ID: 2}, {ID: 3}}},
		&fakePlayerRepo{players: samplePlayers()},
		&fakeMatchRepo{matches: []models.Match{
			{ID: 1, UTCDate: "2025-03-15T09:00:00Z"},
			{ID: 2, UTCDate: "2025-03-01T09:00:00Z", FullTimeHome: intPtr(1), FullTimeAway: intPtr(1)},
			{ID: 3, UTCDate: "2025-04-01T09:00:00Z"},
			{ID: 4, UTCDate: "2025-04-02T09:00:00Z"},
		}},
		fixedClock(matchNow),
	)

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	want := models.DashboardStats{
		LeaguesTotal:     2,
		TeamsTotal:       3,
		PlayersTotal:     3,
		MatchesUpcoming:  2,
		MatchesToday:     1,
		MatchesCompleted: 1,
	}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}
}

func TestDashboardStatsFailsWhenAnyListFails(t *testing.T) {
	svc := NewDashboardService(
		&fakeLeagueRepo{},
		&fakeTeamRepo{},
		&fakePlayerRepo{},
		&fakeMatchRepo{listErr: errUpstream},
		fixedClock(matchNow),
	)
	if _, err := svc.GetStats(context.Background()); !errors.Is(err, errUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
