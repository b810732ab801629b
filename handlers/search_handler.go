package handlers

import (
	"net/http"

	"github.com/Dosada05/football-dashboard/services"
	"github.com/go-chi/chi/v5"
)

type SearchHandler struct {
	searchService services.SearchService
}

func NewSearchHandler(ss services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: ss}
}

// Search godoc
// @Summary Search players, teams, stadiums and coaches
// @Tags search
// @Produce json
// @Param q query string true "Query"
// @Param scope query string false "all, players, teams, stadiums or coaches"
// @Success 200 {object} models.SearchResults
// @Failure 422 {object} map[string]interface{} "Empty query"
// @Router /api/search [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, r.URL.Query().Get("scope"))
}

// SearchScope serves /api/search/{scope}.
func (h *SearchHandler) SearchScope(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, chi.URLParam(r, "scope"))
}

func (h *SearchHandler) search(w http.ResponseWriter, r *http.Request, scope string) {
	results, err := h.searchService.Search(r.Context(), r.URL.Query().Get("q"), scope)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, results)
}
