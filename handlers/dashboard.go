package handlers

import (
	"net/http"

	"github.com/Dosada05/football-dashboard/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(s services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: s}
}

// Stats godoc
// @Summary Summary counts for the landing page
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Failure 502 {object} map[string]string
// @Router /api/dashboard [get]
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, stats)
}

// Health reports liveness only; the league API is not contacted.
func Health(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, jsonResponse{"status": "ok"})
}
