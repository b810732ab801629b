package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var testSecret = []byte("test-secret")

func signedToken(t *testing.T, claims jwt.MapClaims, secret []byte) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestIdentityResolution(t *testing.T) {
	valid := signedToken(t, jwt.MapClaims{"user_id": 42, "exp": time.Now().Add(time.Hour).Unix()}, testSecret)
	stringClaim := signedToken(t, jwt.MapClaims{"user_id": "17"}, testSecret)
	expired := signedToken(t, jwt.MapClaims{"user_id": 42, "exp": time.Now().Add(-time.Hour).Unix()}, testSecret)
	wrongKey := signedToken(t, jwt.MapClaims{"user_id": 42}, []byte("other"))
	noClaim := signedToken(t, jwt.MapClaims{"sub": "42"}, testSecret)

	tests := []struct {
		name       string
		secret     []byte
		auth       string
		header     string
		wantStatus int
		wantUserID int
	}{
		{"dev fallback", nil, "", "", http.StatusOK, 1},
		{"header", nil, "", "7", http.StatusOK, 7},
		{"bad header", nil, "", "abc", http.StatusUnauthorized, 0},
		{"token ignored without secret", nil, "Bearer " + valid, "", http.StatusOK, 1},
		{"token", testSecret, "Bearer " + valid, "9", http.StatusOK, 42},
		{"token with string claim", testSecret, "bearer " + stringClaim, "", http.StatusOK, 17},
		{"expired token", testSecret, "Bearer " + expired, "", http.StatusUnauthorized, 0},
		{"wrong key", testSecret, "Bearer " + wrongKey, "", http.StatusUnauthorized, 0},
		{"missing claim", testSecret, "Bearer " + noClaim, "", http.StatusUnauthorized, 0},
		{"secret but no token", testSecret, "", "5", http.StatusOK, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int
			h := Identity(IdentityConfig{JWTSecret: tt.secret, DevUserID: "1"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, err := GetUserIDFromContext(r.Context())
				if err != nil {
					t.Fatalf("GetUserIDFromContext: %v", err)
				}
				gotID = id
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			if tt.header != "" {
				req.Header.Set(IdentityHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if gotID != tt.wantUserID {
				t.Fatalf("user id = %d, want %d", gotID, tt.wantUserID)
			}
		})
	}
}

func TestGetUserIDFromContextMissing(t *testing.T) {
	if _, err := GetUserIDFromContext(context.Background()); err == nil {
		t.Fatal("expected error for empty context")
	}
}

func TestUserIDFromClaims(t *testing.T) {
	tests := []struct {
		claims  jwt.MapClaims
		want    int
		wantErr bool
	}{
		{jwt.MapClaims{"user_id": float64(3)}, 3, false},
		{jwt.MapClaims{"user_id": "12"}, 12, false},
		{jwt.MapClaims{"user_id": 2.5}, 0, true},
		{jwt.MapClaims{"user_id": float64(0)}, 0, true},
		{jwt.MapClaims{"user_id": true}, 0, true},
		{jwt.MapClaims{}, 0, true},
	}
	for i, tt := range tests {
		got, err := userIDFromClaims(tt.claims)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("case %d: got %d, %v", i, got, err)
		}
	}
}

func TestRequestIDAndRecoverer(t *testing.T) {
	var seen string
	h := RequestID(Logger(Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
		panic("boom")
	}))))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if seen != "abc-123" || rec.Header().Get(RequestIDHeader) != "abc-123" {
		t.Fatalf("request id = %q / %q", seen, rec.Header().Get(RequestIDHeader))
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if id := rec.Header().Get(RequestIDHeader); len(id) != 36 {
		t.Fatalf("generated id = %q", id)
	}
}
