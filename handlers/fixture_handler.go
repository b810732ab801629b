package handlers

import (
	"net/http"

	"github.com/Dosada05/football-dashboard/services"
)

type FixtureHandler struct {
	fixtureService services.FixtureService
}

func NewFixtureHandler(fs services.FixtureService) *FixtureHandler {
	return &FixtureHandler{fixtureService: fs}
}

// Generate godoc
// @Summary Generate a round-robin fixture list
// @Tags admin
// @Description With dry_run the fixtures are only returned. Otherwise every
// @Description fixture is scheduled through the league API and failures are listed.
// @Accept json
// @Produce json
// @Param input body services.FixtureInput true "Fixture parameters"
// @Success 200 {object} services.FixturePlan "Preview"
// @Success 201 {object} services.FixturePlan "Scheduled"
// @Failure 422 {object} map[string]interface{}
// @Router /api/admin/fixtures/generate [post]
func (h *FixtureHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var input services.FixtureInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	plan, err := h.fixtureService.Generate(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	status := http.StatusCreated
	if plan.DryRun {
		status = http.StatusOK
	}
	respond(w, r, status, plan)
}
