package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/football-dashboard/fixtures"
	"github.com/Dosada05/football-dashboard/live"
	"github.com/Dosada05/football-dashboard/models"
)

func leagueTeams(leagueID int, ids ...int) []models.Team {
	teams := make([]models.Team, len(ids))
	for i, id := range ids {
		teams[i] = models.Team{ID: id, LeagueID: intPtr(leagueID)}
	}
	return teams
}

func TestGenerateFixturesDryRun(t *testing.T) {
	matches := &fakeMatchRepo{}
	notifier := &recordingNotifier{}
	svc := NewFixtureService(fixtures.NewRoundRobinGenerator(), &fakeTeamRepo{teams: leagueTeams(1, 1, 2, 3, 4)}, matches, notifier)

	plan, err := svc.Generate(context.Background(), FixtureInput{
		LeagueID:     1,
		SeasonID:     3,
		FirstKickoff: "2025-08-16T15:00",
		DoubleRound:  true,
		DryRun:       true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(plan.Fixtures) != 12 || plan.Generator != "RoundRobin" || !plan.DryRun {
		t.Fatalf("plan = %+v", plan)
	}
	if matches.writeCalls != 0 || len(notifier.sent) != 0 {
		t.Fatal("dry run must not write or notify")
	}
}

func TestGenerateFixturesCreatesMatches(t *testing.T) {
	matches := &fakeMatchRepo{createErr: map[int]error{}}
	notifier := &recordingNotifier{}
	svc := NewFixtureService(fixtures.NewRoundRobinGenerator(), &fakeTeamRepo{}, matches, notifier)

	plan, err := svc.Generate(context.Background(), FixtureInput{
		LeagueID:     1,
		SeasonID:     3,
		TeamIDs:      []int{10, 20, 30},
		FirstKickoff: "2025-08-16T15:00:00Z",
		IntervalDays: 3,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(plan.Created) != 3 || len(plan.Failed) != 0 || len(matches.created) != 3 {
		t.Fatalf("plan = %+v", plan)
	}
	for _, p := range matches.created {
		if p.LeagueID != 1 || p.SeasonID != 3 || p.HomeTeamID == p.AwayTeamID {
			t.Fatalf("bad payload %+v", p)
		}
	}
	if matches.created[0].UTCDate != "2025-08-16 15:00:00" {
		t.Fatalf("first kickoff = %q", matches.created[0].UTCDate)
	}
	if got := notifier.resources(); len(got) != 1 || got[0] != live.RoomMatches {
		t.Fatalf("notifications = %v", got)
	}
}

func TestGenerateFixturesReportsFailures(t *testing.T) {
	matches := &fakeMatchRepo{}
	svc := NewFixtureService(fixtures.NewRoundRobinGenerator(), &fakeTeamRepo{}, matches, nil)

	ids := []int{10, 20}
	plan, err := svc.Generate(context.Background(), FixtureInput{
		LeagueID:     1,
		SeasonID:     3,
		TeamIDs:      ids,
		FirstKickoff: "2025-08-16",
		DoubleRound:  true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(plan.Created) != 2 {
		t.Fatalf("created = %v", plan.Created)
	}

	matches = &fakeMatchRepo{createErr: map[int]error{20: errUpstream}}
	svc = NewFixtureService(fixtures.NewRoundRobinGenerator(), &fakeTeamRepo{}, matches, nil)
	plan, err = svc.Generate(context.Background(), FixtureInput{
		LeagueID:     1,
		SeasonID:     3,
		TeamIDs:      ids,
		FirstKickoff: "2025-08-16",
		DoubleRound:  true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(plan.Created) != 1 || len(plan.Failed) != 1 || plan.Failed[0].HomeTeamID != 20 {
		t.Fatalf("plan = %+v", plan)
	}
}

func TestGenerateFixturesValidation(t *testing.T) {
	svc := NewFixtureService(fixtures.NewRoundRobinGenerator(), &fakeTeamRepo{teams: leagueTeams(1, 5)}, &fakeMatchRepo{}, nil)

	_, err := svc.Generate(context.Background(), FixtureInput{LeagueID: 1, SeasonID: 1, FirstKickoff: "2025-08-16"})
	if !errors.Is(err, fixtures.ErrNotEnoughTeams) || !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("one team: %v", err)
	}

	_, err = svc.Generate(context.Background(), FixtureInput{LeagueID: 1, SeasonID: 1, TeamIDs: []int{1, 2}})
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("missing kickoff: %v", err)
	}
}
