package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Dosada05/football-dashboard/league"
	"github.com/Dosada05/football-dashboard/live"
	"github.com/Dosada05/football-dashboard/models"
	"github.com/Dosada05/football-dashboard/repositories"
)

type UserRole string

const (
	RoleAll     UserRole = "all"
	RoleAdmin   UserRole = "admin"
	RoleRegular UserRole = "user"
)

type UserService interface {
	ListUsers(ctx context.Context, input UserListInput) (*models.UserListResponse, error)
	SetPrivilege(ctx context.Context, id int, input PrivilegeInput) (*MutationResult[models.User], error)
	AuditLog(ctx context.Context) ([]models.AuditLogEntry, error)
}

type UserListInput struct {
	Search string   `json:"search"`
	Role   UserRole `json:"role" validate:"omitempty,oneof=all admin user"`
}

type PrivilegeInput struct {
	IsAdmin *bool `json:"is_admin" validate:"required"`
}

type userService struct {
	userRepo repositories.UserRepository
	notifier ChangeNotifier
}

func NewUserService(userRepo repositories.UserRepository, notifier ChangeNotifier) UserService {
	return &userService{
		userRepo: userRepo,
		notifier: notifierOrNop(notifier),
	}
}

// ListUsers filters by text and role. The admin and regular counts are taken
// over the whole list so the summary does not change while typing.
func (s *userService) ListUsers(ctx context.Context, input UserListInput) (*models.UserListResponse, error) {
	if err := validateInput(ctx, input); err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	resp := &models.UserListResponse{TotalCount: len(users)}
	for _, u := range users {
		if u.Admin() {
			resp.AdminCount++
		} else {
			resp.UserCount++
		}
	}

	filtered := league.FilterUsers(users, input.Search)
	resp.Users = make([]models.User, 0, len(filtered))
	for _, u := range filtered {
		switch input.Role {
		case RoleAdmin:
			if !u.Admin() {
				continue
			}
		case RoleRegular:
			if u.Admin() {
				continue
			}
		}
		resp.Users = append(resp.Users, u)
	}
	return resp, nil
}

func (s *userService) SetPrivilege(ctx context.Context, id int, input PrivilegeInput) (*MutationResult[models.User], error) {
	if err := requirePositiveID("user_id", id); err != nil {
		return nil, err
	}
	if err := validateInput(ctx, input); err != nil {
		return nil, err
	}
	if err := s.userRepo.SetAdmin(ctx, id, *input.IsAdmin); err != nil {
		return nil, fmt.Errorf("failed to update privilege of user %d: %w", id, err)
	}
	log.Ctx(ctx).Info().Int("user_id", id).Bool("is_admin", *input.IsAdmin).Msg("user privilege changed")

	result := &MutationResult[models.User]{ID: id, Message: "User privileges updated successfully"}
	refetch(ctx, live.RoomUsers, result, s.userRepo.List)
	s.notifier.NotifyChanged(live.RoomUsers, map[string]any{"user_id": id, "is_admin": *input.IsAdmin})
	return result, nil
}

func (s *userService) AuditLog(ctx context.Context) ([]models.AuditLogEntry, error) {
	entries, err := s.userRepo.AuditLog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit log: %w", err)
	}
	return entries, nil
}
