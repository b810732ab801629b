package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultUserID  = "1"
	DefaultTimeout = 15 * time.Second

	userIDHeader    = "X-User-Id"
	maxResponseSize = 8 << 20
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct {
	BaseURL    string
	UserID     string
	Timeout    time.Duration
	HTTPClient *http.Client
	// DisableDedup turns off coalescing of identical in-flight GETs.
	DisableDedup bool
}

// Client talks to the league REST API. Every call is a fresh round trip;
// nothing is cached between calls. Identical GETs in flight at the same time
// share one request, but never across a completed write.
type Client struct {
	baseURL    string
	userID     string
	httpClient *http.Client
	dedup      bool
	flight     singleflight.Group
	// writes counts completed POST/PUT/DELETE calls and is part of the
	// flight key.
	writes atomic.Uint64
}

func New(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("apiclient: base URL is required")
	}
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("apiclient: invalid base URL %q", cfg.BaseURL)
	}

	userID := strings.TrimSpace(cfg.UserID)
	if userID == "" {
		userID = DefaultUserID
	}

	// The caller's client is copied so that setting a timeout never touches
	// a shared value such as http.DefaultClient.
	httpClient := &http.Client{}
	if cfg.HTTPClient != nil {
		copied := *cfg.HTTPClient
		httpClient = &copied
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = timeout
	}

	return &Client{
		baseURL:    base,
		userID:     userID,
		httpClient: httpClient,
		dedup:      !cfg.DisableDedup,
	}, nil
}

type userIDKey struct{}

// WithUserID overrides the identity sent upstream for calls made with ctx.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

func (c *Client) identity(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey{}).(string); ok && strings.TrimSpace(id) != "" {
		return id
	}
	return c.userID
}

// Get issues a GET. Empty query values are dropped; with no values left the
// URL carries no query string.
func (c *Client) Get(ctx context.Context, path string, query url.Values, dst any) error {
	fullURL := c.buildURL(path, query)
	if !c.dedup {
		return c.do(ctx, http.MethodGet, fullURL, path, nil, dst)
	}

	userID := c.identity(ctx)
	key := fmt.Sprintf("%d %s %s", c.writes.Load(), userID, fullURL)
	ch := c.flight.DoChan(key, func() (any, error) {
		// The shared round trip outlives any single caller; the client
		// timeout still bounds it.
		shared := WithUserID(context.WithoutCancel(ctx), userID)
		return c.roundTrip(shared, http.MethodGet, fullURL, path, nil)
	})

	select {
	case <-ctx.Done():
		return &NetworkError{Method: http.MethodGet, URL: fullURL, Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return res.Err
		}
		return decodeInto(res.Val.(*response), dst)
	}
}

func (c *Client) Post(ctx context.Context, path string, body, dst any) error {
	return c.send(ctx, http.MethodPost, path, body, dst)
}

func (c *Client) Put(ctx context.Context, path string, body, dst any) error {
	return c.send(ctx, http.MethodPut, path, body, dst)
}

func (c *Client) Delete(ctx context.Context, path string, dst any) error {
	defer c.writes.Add(1)
	return c.do(ctx, http.MethodDelete, c.buildURL(path, nil), path, nil, dst)
}

func (c *Client) send(ctx context.Context, method, path string, body, dst any) error {
	defer c.writes.Add(1)
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
	}
	return c.do(ctx, method, c.buildURL(path, nil), path, payload, dst)
}

func (c *Client) do(ctx context.Context, method, fullURL, path string, payload []byte, dst any) error {
	resp, err := c.roundTrip(ctx, method, fullURL, path, payload)
	if err != nil {
		return err
	}
	return decodeInto(resp, dst)
}

type response struct {
	status int
	body   []byte
}

func (c *Client) roundTrip(ctx context.Context, method, fullURL, path string, payload []byte) (*response, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(userIDHeader, c.identity(ctx))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("method", method).Str("path", path).Msg("league API unreachable")
		return nil, &NetworkError{Method: method, URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, &NetworkError{Method: method, URL: fullURL, Err: fmt.Errorf("read response body: %w", err)}
	}
	if len(body) > maxResponseSize {
		return nil, fmt.Errorf("%s %s: %w (limit %d bytes)", method, path, ErrResponseTooLarge, maxResponseSize)
	}

	log.Ctx(ctx).Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("league API call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(method, path, resp.StatusCode, body)
	}
	return &response{status: resp.StatusCode, body: body}, nil
}

func newAPIError(method, path string, status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Method: method, Path: path, Message: genericStatusMessage(status)}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && strings.TrimSpace(payload.Error) != "" {
		apiErr.Message = payload.Error
	}
	return apiErr
}

// decodeInto parses every successful body as JSON, even when the caller
// does not want the result. An empty body counts as an empty object.
func decodeInto(resp *response, dst any) error {
	body := bytes.TrimSpace(resp.body)
	if len(body) == 0 {
		body = []byte("{}")
	}
	if dst == nil {
		var discard any
		dst = &discard
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &DecodeError{StatusCode: resp.status, Err: err}
	}
	return nil
}

func (c *Client) buildURL(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	full := c.baseURL + path
	if encoded := compactQuery(query).Encode(); encoded != "" {
		full += "?" + encoded
	}
	return full
}

func compactQuery(query url.Values) url.Values {
	out := url.Values{}
	for key, values := range query {
		for _, v := range values {
			if strings.TrimSpace(v) == "" {
				continue
			}
			out.Add(key, v)
		}
	}
	return out
}
