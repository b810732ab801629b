package handlers

import (
	"net/http"

	"github.com/Dosada05/football-dashboard/services"
)

// ReferenceHandler serves the lookup lists used by the admin forms.
type ReferenceHandler struct {
	referenceService services.ReferenceService
}

func NewReferenceHandler(rs services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: rs}
}

// LoadAll godoc
// @Summary All reference data for admin forms in one call
// @Tags admin
// @Produce json
// @Success 200 {object} models.ReferenceData
// @Router /api/admin/reference [get]
func (h *ReferenceHandler) LoadAll(w http.ResponseWriter, r *http.Request) {
	data, err := h.referenceService.Load(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, data)
}

func (h *ReferenceHandler) Leagues(w http.ResponseWriter, r *http.Request) {
	leagues, err := h.referenceService.Leagues(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"leagues": leagues})
}

func (h *ReferenceHandler) Seasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.referenceService.Seasons(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"seasons": seasons})
}

func (h *ReferenceHandler) Stadiums(w http.ResponseWriter, r *http.Request) {
	stadiums, err := h.referenceService.Stadiums(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"stadiums": stadiums})
}

func (h *ReferenceHandler) Coaches(w http.ResponseWriter, r *http.Request) {
	coaches, err := h.referenceService.Coaches(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"coaches": coaches})
}
