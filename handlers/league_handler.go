package handlers

import (
	"net/http"

	"github.com/Dosada05/football-dashboard/services"
)

type LeagueHandler struct {
	leagueService services.LeagueService
}

func NewLeagueHandler(ls services.LeagueService) *LeagueHandler {
	return &LeagueHandler{leagueService: ls}
}

func (h *LeagueHandler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	leagues, err := h.leagueService.ListLeagues(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"leagues": leagues})
}

func (h *LeagueHandler) GetLeague(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	seasonID, err := queryInt(r.URL.Query(), "season_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	detail, err := h.leagueService.GetLeague(r.Context(), leagueID, seasonID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, detail)
}

// ListSeasons returns one season per year.
func (h *LeagueHandler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.leagueService.ListSeasons(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"seasons": seasons})
}

// GetStandings godoc
// @Summary League table with qualification and relegation bands
// @Tags standings
// @Produce json
// @Param league_id query int true "League ID"
// @Param season_id query int true "Season ID"
// @Success 200 {object} models.Standings
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Router /api/standings [get]
func (h *LeagueHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	var leagueID, seasonID int
	err := queryInts(r.URL.Query(), map[string]*int{
		"league_id": &leagueID,
		"season_id": &seasonID,
	})
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	standings, err := h.leagueService.GetStandings(r.Context(), leagueID, seasonID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, standings)
}

func (h *LeagueHandler) TopScorers(w http.ResponseWriter, r *http.Request) {
	var input services.TopScorersInput
	err := queryInts(r.URL.Query(), map[string]*int{
		"league_id": &input.LeagueID,
		"season_id": &input.SeasonID,
		"limit":     &input.Limit,
	})
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	scorers, err := h.leagueService.TopScorers(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"top_scorers": scorers})
}

func (h *LeagueHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	seasonID, err := queryInt(r.URL.Query(), "season_id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stats, err := h.leagueService.Statistics(r.Context(), leagueID, seasonID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, stats)
}

// RecomputeStandings godoc
// @Summary Rebuild a league table from completed matches
// @Tags admin
// @Accept json
// @Produce json
// @Param input body services.RecomputeInput true "League and season"
// @Success 200 {object} services.RecomputeResult
// @Router /api/admin/standings/recompute [post]
func (h *LeagueHandler) RecomputeStandings(w http.ResponseWriter, r *http.Request) {
	var input services.RecomputeInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.leagueService.RecomputeStandings(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, result)
}
