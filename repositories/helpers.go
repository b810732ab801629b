package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/Dosada05/football-dashboard/apiclient"
)

// API is the subset of the league API client the repositories need.
type API interface {
	Get(ctx context.Context, path string, query url.Values, dst any) error
	Post(ctx context.Context, path string, body, dst any) error
	Put(ctx context.Context, path string, body, dst any) error
	Delete(ctx context.Context, path string, dst any) error
}

const (
	userPrefix  = "/api"
	adminPrefix = "/api/admin"
)

func userPath(format string, args ...any) string {
	return userPrefix + fmt.Sprintf(format, args...)
}

func adminPath(format string, args ...any) string {
	return adminPrefix + fmt.Sprintf(format, args...)
}

// mapNotFound turns an upstream 404 into the repository's sentinel while
// keeping the API error in the chain.
func mapNotFound(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if apiclient.IsNotFound(err) {
		return fmt.Errorf("%w: %w", notFound, err)
	}
	return err
}

// orEmpty turns a missing envelope key into an empty list.
func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// createdResponse is the upstream answer to every POST that creates a row.
type createdResponse struct {
	Message  string `json:"message"`
	TeamID   int    `json:"team_id"`
	PlayerID int    `json:"player_id"`
	MatchID  int    `json:"match_id"`
}

var ErrMissingID = errors.New("upstream did not return the new id")
