package fixtures

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const defaultInterval = 7 * 24 * time.Hour

var (
	ErrNotEnoughTeams = errors.New("at least two teams are required")
	ErrDuplicateTeam  = errors.New("team listed more than once")
	ErrInvalidTeamID  = errors.New("team ids must be positive")
)

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() Generator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) Name() string {
	return "RoundRobin"
}

// Generate schedules every team against every other team once per leg using
// the circle method. With an odd number of teams one team rests each
// matchday. No team plays twice on the same matchday.
func (g *RoundRobinGenerator) Generate(ctx context.Context, params GenerateParams) ([]Fixture, error) {
	if len(params.TeamIDs) < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrNotEnoughTeams, len(params.TeamIDs))
	}
	seen := make(map[int]struct{}, len(params.TeamIDs))
	for _, id := range params.TeamIDs {
		if id <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidTeamID, id)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateTeam, id)
		}
		seen[id] = struct{}{}
	}

	interval := params.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	firstLeg := buildRounds(params.TeamIDs)
	rounds := len(firstLeg)

	fixtures := make([]Fixture, 0)
	for round, pairs := range firstLeg {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, p := range pairs {
			fixtures = append(fixtures, Fixture{
				Matchday:   round + 1,
				HomeTeamID: p.home,
				AwayTeamID: p.away,
				Kickoff:    params.FirstKickoff.Add(time.Duration(round) * interval),
			})
		}
	}

	if params.DoubleRound {
		for round, pairs := range firstLeg {
			matchday := rounds + round + 1
			for _, p := range pairs {
				fixtures = append(fixtures, Fixture{
					Matchday:   matchday,
					HomeTeamID: p.away,
					AwayTeamID: p.home,
					Kickoff:    params.FirstKickoff.Add(time.Duration(matchday-1) * interval),
				})
			}
		}
	}

	return fixtures, nil
}

type pair struct {
	home, away int
}

// buildRounds pairs teams with the circle method; 0 marks the bye slot.
func buildRounds(teamIDs []int) [][]pair {
	working := make([]int, len(teamIDs), len(teamIDs)+1)
	copy(working, teamIDs)
	if len(working)%2 == 1 {
		working = append(working, 0)
	}

	rounds := make([][]pair, 0, len(working)-1)
	for round := 0; round < len(working)-1; round++ {
		pairs := make([]pair, 0, len(working)/2)
		for i := 0; i < len(working)/2; i++ {
			left := working[i]
			right := working[len(working)-1-i]
			if left == 0 || right == 0 {
				continue
			}
			home, away := left, right
			// Alternate the fixed team's venue so it is not always at home.
			if i == 0 && round%2 == 1 {
				home, away = away, home
			}
			pairs = append(pairs, pair{home: home, away: away})
		}
		rounds = append(rounds, pairs)
		rotate(working)
	}
	return rounds
}

func rotate(teams []int) {
	if len(teams) <= 2 {
		return
	}
	last := teams[len(teams)-1]
	copy(teams[2:], teams[1:len(teams)-1])
	teams[1] = last
}
