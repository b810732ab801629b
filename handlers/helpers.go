package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Dosada05/football-dashboard/apiclient"
	"github.com/Dosada05/football-dashboard/services"
	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1_048_576

type jsonResponse map[string]any

func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var maxBytesError *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		default:
			return fmt.Errorf("body contains badly-formed JSON: %w", err)
		}
	}

	if dec.More() {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

// respond writes data or falls back to a 500 if it cannot be encoded.
func respond(w http.ResponseWriter, r *http.Request, status int, data any) {
	if err := writeJSON(w, status, data, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message any) {
	env := jsonResponse{"error": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to write error response")
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	log.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("internal server error")
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, http.StatusInternalServerError, message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func failedValidationResponse(w http.ResponseWriter, r *http.Request, fields map[string]string) {
	errorResponse(w, r, http.StatusUnprocessableEntity, fields)
}

func notFoundResponse(w http.ResponseWriter, r *http.Request, message string) {
	if message == "" {
		message = "the requested resource could not be found"
	}
	errorResponse(w, r, http.StatusNotFound, message)
}

func upstreamUnavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	log.Ctx(r.Context()).Warn().Err(err).Msg("league API unreachable")
	errorResponse(w, r, http.StatusBadGateway, "upstream unavailable: "+err.Error())
}

// mapServiceErrorToHTTP turns an error from the service layer into a JSON
// error response.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *services.ValidationError
		apiErr        *apiclient.APIError
		networkErr    *apiclient.NetworkError
		decodeErr     *apiclient.DecodeError
	)

	switch {
	case errors.As(err, &validationErr):
		failedValidationResponse(w, r, validationErr.Fields)

	case r.Context().Err() != nil && errors.Is(err, r.Context().Err()):
		// client went away
		log.Ctx(r.Context()).Debug().Err(err).Msg("request cancelled")

	case errors.Is(err, services.ErrUploadsDisabled):
		errorResponse(w, r, http.StatusServiceUnavailable, err.Error())

	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrLeagueNotFound),
		errors.Is(err, services.ErrStandingsNotFound),
		errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrPlayerNotFound),
		errors.Is(err, services.ErrMatchNotFound),
		errors.Is(err, services.ErrUserNotFound):
		message := ""
		if errors.As(err, &apiErr) {
			message = apiErr.Message
		}
		notFoundResponse(w, r, message)

	case errors.As(err, &apiErr):
		switch {
		case apiErr.StatusCode == http.StatusNotFound:
			notFoundResponse(w, r, apiErr.Message)
		case apiErr.StatusCode == http.StatusUnauthorized, apiErr.StatusCode == http.StatusForbidden:
			errorResponse(w, r, apiErr.StatusCode, apiErr.Message)
		case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
			errorResponse(w, r, http.StatusBadRequest, apiErr.Message)
		default:
			log.Ctx(r.Context()).Warn().Err(err).Int("upstream_status", apiErr.StatusCode).Msg("league API error")
			errorResponse(w, r, http.StatusBadGateway, apiErr.Message)
		}

	case errors.As(err, &networkErr):
		upstreamUnavailableResponse(w, r, networkErr.Err)

	case errors.As(err, &decodeErr):
		log.Ctx(r.Context()).Warn().Err(err).Msg("malformed league API response")
		errorResponse(w, r, http.StatusBadGateway, "upstream returned a malformed response")

	case errors.Is(err, apiclient.ErrResponseTooLarge):
		log.Ctx(r.Context()).Warn().Err(err).Msg("league API response over limit")
		errorResponse(w, r, http.StatusBadGateway, "upstream response too large")

	default:
		serverErrorResponse(w, r, err)
	}
}

func getIDFromURL(r *http.Request, paramName string) (int, error) {
	idStr := chi.URLParam(r, paramName)
	if idStr == "" {
		return 0, fmt.Errorf("missing %s in URL path", paramName)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format: %q", paramName, idStr)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid %s value: %d", paramName, id)
	}
	return id, nil
}

// queryInt reads an optional non-negative integer query parameter. Missing
// or empty values yield 0.
func queryInt(q url.Values, name string) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s query parameter: %q", name, raw)
	}
	return v, nil
}

// queryInts reads several integer query parameters into the given targets
// and stops at the first bad one.
func queryInts(q url.Values, targets map[string]*int) error {
	for name, dst := range targets {
		v, err := queryInt(q, name)
		if err != nil {
			return err
		}
		*dst = v
	}
	return nil
}
