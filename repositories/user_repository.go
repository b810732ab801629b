package repositories

import (
	"context"
	"errors"

	"github.com/Dosada05/football-dashboard/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	SetAdmin(ctx context.Context, id int, admin bool) error
	AuditLog(ctx context.Context) ([]models.AuditLogEntry, error)
}

type apiUserRepository struct {
	api API
}

func NewAPIUserRepository(api API) UserRepository {
	return &apiUserRepository{api: api}
}

func (r *apiUserRepository) List(ctx context.Context) ([]models.User, error) {
	var env struct {
		Users []models.User `json:"users"`
	}
	if err := r.api.Get(ctx, adminPath("/users"), nil, &env); err != nil {
		return nil, err
	}
	return orEmpty(env.Users), nil
}

func (r *apiUserRepository) SetAdmin(ctx context.Context, id int, admin bool) error {
	payload := models.PrivilegePayload{}
	if admin {
		payload.IsAdmin = 1
	}
	return mapNotFound(r.api.Put(ctx, adminPath("/users/%d/privilege", id), payload, nil), ErrUserNotFound)
}

func (r *apiUserRepository) AuditLog(ctx context.Context) ([]models.AuditLogEntry, error) {
	var env struct {
		AuditLogs []models.AuditLogEntry `json:"audit_logs"`
	}
	if err := r.api.Get(ctx, adminPath("/users/audit-log"), nil, &env); err != nil {
		return nil, err
	}
	return orEmpty(env.AuditLogs), nil
}
