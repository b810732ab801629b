package fixtures

import (
	"context"
	"time"
)

// Fixture is one scheduled game of a generated season.
type Fixture struct {
	Matchday   int       `json:"matchday"`
	HomeTeamID int       `json:"home_team_id"`
	AwayTeamID int       `json:"away_team_id"`
	Kickoff    time.Time `json:"utc_date"`
}

type GenerateParams struct {
	TeamIDs []int
	// FirstKickoff is the kickoff of every match on matchday 1.
	FirstKickoff time.Time
	// Interval separates consecutive matchdays; zero means one week.
	Interval time.Duration
	// DoubleRound adds the return leg with home and away swapped.
	DoubleRound bool
}

type Generator interface {
	Generate(ctx context.Context, params GenerateParams) ([]Fixture, error)

	Name() string
}
