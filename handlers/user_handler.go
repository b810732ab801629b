package handlers

import (
	"net/http"

	"github.com/Dosada05/football-dashboard/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(us services.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// ListUsers godoc
// @Summary List users with admin and regular counts
// @Tags admin
// @Produce json
// @Param search query string false "Username or email filter"
// @Param role query string false "all, admin or user"
// @Success 200 {object} models.UserListResponse
// @Router /api/admin/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.userService.ListUsers(r.Context(), services.UserListInput{
		Search: q.Get("search"),
		Role:   services.UserRole(q.Get("role")),
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, list)
}

func (h *UserHandler) SetPrivilege(w http.ResponseWriter, r *http.Request) {
	userID, err := getIDFromURL(r, "userID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.PrivilegeInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.userService.SetPrivilege(r.Context(), userID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, result)
}

func (h *UserHandler) AuditLog(w http.ResponseWriter, r *http.Request) {
	entries, err := h.userService.AuditLog(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"logs": entries})
}
