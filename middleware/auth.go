package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog/log"

	"github.com/Dosada05/football-dashboard/apiclient"
)

type contextKey string

const userIDContextKey contextKey = "user_id"

// IdentityHeader carries the caller's user id, both into the dashboard and
// on to the league API.
const IdentityHeader = "X-User-Id"

// IdentitySource names where the caller's identity came from.
type IdentitySource string

const (
	SourceToken  IdentitySource = "token"
	SourceHeader IdentitySource = "header"
	SourceDev    IdentitySource = "dev"
)

type IdentityConfig struct {
	// JWTSecret enables bearer tokens. Without it tokens are ignored.
	JWTSecret []byte
	// DevUserID is used when the request names no identity at all.
	DevUserID string
}

// Identity resolves who is calling and stores it in the request context
// so that every upstream request carries it. A bearer token is checked
// first, then the X-User-Id header, then the development user. An invalid
// token is rejected rather than silently downgraded.
func Identity(cfg IdentityConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, source, err := resolveIdentity(r, cfg)
			if err != nil {
				log.Ctx(r.Context()).Warn().Err(err).Msg("rejected caller identity")
				writeError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDContextKey, userID)
			ctx = apiclient.WithUserID(ctx, strconv.Itoa(userID))
			logger := log.Ctx(ctx).With().Int("user_id", userID).Str("identity_source", string(source)).Logger()
			ctx = logger.WithContext(ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveIdentity(r *http.Request, cfg IdentityConfig) (int, IdentitySource, error) {
	if len(cfg.JWTSecret) > 0 {
		if token, ok := bearerToken(r); ok {
			id, err := userIDFromToken(token, cfg.JWTSecret)
			return id, SourceToken, err
		}
	}
	if raw := strings.TrimSpace(r.Header.Get(IdentityHeader)); raw != "" {
		id, err := parseUserID(raw)
		if err != nil {
			return 0, SourceHeader, fmt.Errorf("invalid %s header: %w", IdentityHeader, err)
		}
		return id, SourceHeader, nil
	}
	id, err := parseUserID(cfg.DevUserID)
	if err != nil {
		return 0, SourceDev, fmt.Errorf("invalid development user id: %w", err)
	}
	return id, SourceDev, nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

func userIDFromToken(tokenString string, secret []byte) (int, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return 0, err
	}
	return userIDFromClaims(claims)
}

func parseUserID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("user id must be positive")
	}
	return id, nil
}
