package handlers

import (
	"net/http"

	"github.com/Dosada05/football-dashboard/repositories"
	"github.com/Dosada05/football-dashboard/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(ms services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: ms}
}

// ListMatches godoc
// @Summary List matches with computed status and winner
// @Tags matches
// @Produce json
// @Param status query string false "all, upcoming, past or today"
// @Param league_id query int false "League ID"
// @Param team_id query int false "Team ID"
// @Param season_id query int false "Season ID"
// @Param matchday query int false "Matchday"
// @Param limit query int false "Maximum number of matches (default 100)"
// @Success 200 {object} services.MatchList
// @Failure 422 {object} map[string]interface{}
// @Router /api/matches [get]
func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := services.MatchListInput{
		Status: repositories.MatchListStatus(q.Get("status")),
	}
	err := queryInts(q, map[string]*int{
		"league_id": &input.LeagueID,
		"team_id":   &input.TeamID,
		"season_id": &input.SeasonID,
		"matchday":  &input.Matchday,
		"limit":     &input.Limit,
	})
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	list, err := h.matchService.ListMatches(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, list)
}

func (h *MatchHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.GetMatch(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, jsonResponse{"match": match})
}

// CreateMatch godoc
// @Summary Schedule a match
// @Tags admin
// @Accept json
// @Produce json
// @Param input body services.MatchInput true "Match"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{} "Same home and away team, missing fields"
// @Router /api/admin/matches [post]
func (h *MatchHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var input services.MatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.matchService.CreateMatch(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, result)
}

func (h *MatchHandler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.MatchInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.matchService.UpdateMatch(r.Context(), matchID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, result)
}

func (h *MatchHandler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.matchService.DeleteMatch(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, result)
}

// UpdateScore godoc
// @Summary Enter a final score
// @Tags admin
// @Accept json
// @Produce json
// @Param matchID path int true "Match ID"
// @Param input body services.ScoreInput true "Score; half-time goals default to 0"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Router /api/admin/matches/{matchID}/score [put]
func (h *MatchHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ScoreInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.matchService.UpdateScore(r.Context(), matchID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, result)
}
