package fixtures

import (
	"context"
	"errors"
	"testing"
	"time"
)

func teamIDs(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = 10 + i
	}
	return ids
}

func TestRoundRobinSingleLeg(t *testing.T) {
	start := time.Date(2025, time.August, 16, 14, 0, 0, 0, time.UTC)
	for _, n := range []int{2, 3, 4, 5, 6, 19, 20} {
		fixtures, err := NewRoundRobinGenerator().Generate(context.Background(), GenerateParams{
			TeamIDs:      teamIDs(n),
			FirstKickoff: start,
		})
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}

		if want := n * (n - 1) / 2; len(fixtures) != want {
			t.Fatalf("n=%d: %d fixtures, want %d", n, len(fixtures), want)
		}

		met := map[[2]int]int{}
		perDay := map[int]map[int]bool{}
		for _, f := range fixtures {
			if f.HomeTeamID == f.AwayTeamID {
				t.Fatalf("n=%d: team %d plays itself", n, f.HomeTeamID)
			}
			a, b := min(f.HomeTeamID, f.AwayTeamID), max(f.HomeTeamID, f.AwayTeamID)
			met[[2]int{a, b}]++

			if perDay[f.Matchday] == nil {
				perDay[f.Matchday] = map[int]bool{}
			}
			for _, id := range []int{f.HomeTeamID, f.AwayTeamID} {
				if perDay[f.Matchday][id] {
					t.Fatalf("n=%d: team %d plays twice on matchday %d", n, id, f.Matchday)
				}
				perDay[f.Matchday][id] = true
			}

			wantKickoff := start.Add(time.Duration(f.Matchday-1) * 7 * 24 * time.Hour)
			if !f.Kickoff.Equal(wantKickoff) {
				t.Fatalf("n=%d: matchday %d kickoff %v, want %v", n, f.Matchday, f.Kickoff, wantKickoff)
			}
		}
		for pair, count := range met {
			if count != 1 {
				t.Fatalf("n=%d: pair %v meets %d times", n, pair, count)
			}
		}

		wantDays := n - 1
		if n%2 == 1 {
			wantDays = n
		}
		if len(perDay) != wantDays {
			t.Fatalf("n=%d: %d matchdays, want %d", n, len(perDay), wantDays)
		}
	}
}

func TestRoundRobinDoubleLegSwapsVenues(t *testing.T) {
	fixtures, err := NewRoundRobinGenerator().Generate(context.Background(), GenerateParams{
		TeamIDs:     teamIDs(4),
		DoubleRound: true,
		Interval:    24 * time.Hour,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(fixtures) != 12 {
		t.Fatalf("%d fixtures, want 12", len(fixtures))
	}

	homeAway := map[[2]int]int{}
	for _, f := range fixtures {
		homeAway[[2]int{f.HomeTeamID, f.AwayTeamID}]++
	}
	for key, count := range homeAway {
		if count != 1 {
			t.Fatalf("%v hosted %d times", key, count)
		}
		if homeAway[[2]int{key[1], key[0]}] != 1 {
			t.Fatalf("return leg missing for %v", key)
		}
	}
	if last := fixtures[len(fixtures)-1]; last.Matchday != 6 {
		t.Fatalf("last matchday = %d, want 6", last.Matchday)
	}
}

func TestRoundRobinRejectsBadInput(t *testing.T) {
	gen := NewRoundRobinGenerator()
	ctx := context.Background()

	if _, err := gen.Generate(ctx, GenerateParams{TeamIDs: []int{1}}); !errors.Is(err, ErrNotEnoughTeams) {
		t.Errorf("one team: %v", err)
	}
	if _, err := gen.Generate(ctx, GenerateParams{TeamIDs: []int{1, 2, 1}}); !errors.Is(err, ErrDuplicateTeam) {
		t.Errorf("duplicate team: %v", err)
	}
	if _, err := gen.Generate(ctx, GenerateParams{TeamIDs: []int{1, 0}}); !errors.Is(err, ErrInvalidTeamID) {
		t.Errorf("zero id: %v", err)
	}
}
