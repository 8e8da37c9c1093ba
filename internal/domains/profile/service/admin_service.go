package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"newsportal-backend/internal/domains/audit"
	auditRepo "newsportal-backend/internal/domains/audit/repository"
	"newsportal-backend/internal/domains/profile/model"
	"newsportal-backend/internal/domains/profile/repository"
	"newsportal-backend/internal/shared"
	"newsportal-backend/internal/shared/utils"
	"newsportal-backend/pkg/logger"
)

// =====================================================
// USER ADMINISTRATION SERVICE
// =====================================================

type AdminServiceInterface interface {
	CreateUser(ctx context.Context, caller shared.Caller, req model.CreateUserRequest) (*model.Profile, error)
	ListUsers(ctx context.Context, caller shared.Caller, page, limit int) ([]*model.Profile, int, error)
	UpdateRole(ctx context.Context, caller shared.Caller, userID uuid.UUID, role string) (*model.Profile, error)
	SetBanned(ctx context.Context, caller shared.Caller, userID uuid.UUID, banned bool) (*model.Profile, error)
	GetStats(ctx context.Context, caller shared.Caller) (*model.UserStats, error)

	// GetRole serves role checks for other domains.
	GetRole(ctx context.Context, userID uuid.UUID) (string, error)
}

type adminService struct {
	profileRepo repository.ProfileRepository
	accessLogs  auditRepo.AccessLogRepository
	auditor     audit.Recorder
}

func NewAdminService(
	profileRepo repository.ProfileRepository,
	accessLogs auditRepo.AccessLogRepository,
	auditor audit.Recorder,
) AdminServiceInterface {
	return &adminService{
		profileRepo: profileRepo,
		accessLogs:  accessLogs,
		auditor:     auditor,
	}
}

// requireAdmin checks the stored role, not the token claim, so a
// demoted admin loses access immediately.
func (s *adminService) requireAdmin(ctx context.Context, caller shared.Caller) error {
	role, err := s.GetRole(ctx, caller.ID)
	if err != nil {
		return err
	}
	if role != model.RoleAdmin {
		return model.NewForbiddenError("Administrator access required")
	}
	return nil
}

func (s *adminService) CreateUser(ctx context.Context, caller shared.Caller, req model.CreateUserRequest) (*model.Profile, error) {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleSubscriber
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	profile := &model.Profile{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		DisplayName:  req.DisplayName,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			return nil, model.NewEmailTakenError()
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.auditor.Record(ctx, &caller.ID, "user_create", profile.ID.String(), true)

	return profile, nil
}

func (s *adminService) ListUsers(ctx context.Context, caller shared.Caller, page, limit int) ([]*model.Profile, int, error) {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return nil, 0, err
	}

	page, limit = utils.NormalizePagination(page, limit)
	return s.profileRepo.List(ctx, page, limit)
}

func (s *adminService) UpdateRole(ctx context.Context, caller shared.Caller, userID uuid.UUID, role string) (*model.Profile, error) {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	if !model.AssignableRole(role) {
		return nil, model.NewInvalidRoleError(role)
	}

	if err := s.profileRepo.SetRole(ctx, userID, role); err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.NewUserNotFoundError()
		}
		return nil, fmt.Errorf("failed to set role: %w", err)
	}

	s.auditor.Record(ctx, &caller.ID, "user_role_"+role, userID.String(), true)

	return s.reload(ctx, userID)
}

func (s *adminService) SetBanned(ctx context.Context, caller shared.Caller, userID uuid.UUID, banned bool) (*model.Profile, error) {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	// Admins cannot ban themselves; that would lock the console.
	if banned && userID == caller.ID {
		return nil, model.NewForbiddenError("You cannot ban your own account")
	}

	if err := s.profileRepo.SetBanned(ctx, userID, banned); err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.NewUserNotFoundError()
		}
		return nil, fmt.Errorf("failed to set banned state: %w", err)
	}

	action := "user_ban"
	if !banned {
		action = "user_unban"
	}
	s.auditor.Record(ctx, &caller.ID, action, userID.String(), true)

	return s.reload(ctx, userID)
}

func (s *adminService) GetStats(ctx context.Context, caller shared.Caller) (*model.UserStats, error) {
	if err := s.requireAdmin(ctx, caller); err != nil {
		return nil, err
	}

	stats, err := s.profileRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user stats: %w", err)
	}

	// Dashboard activity feed: last 100 audit rows from the past week.
	// The audit trail is best effort, so a failed read degrades to an
	// empty feed instead of failing the stats call.
	logs, err := s.accessLogs.ListSince(ctx, time.Now().AddDate(0, 0, -7), 100)
	if err != nil {
		logger.Warn("failed to load recent access logs", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		stats.RecentLogs = logs
	}

	return stats, nil
}

func (s *adminService) GetRole(ctx context.Context, userID uuid.UUID) (string, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return "", model.NewUserNotFoundError()
		}
		return "", fmt.Errorf("failed to get profile: %w", err)
	}
	return profile.Role, nil
}

func (s *adminService) reload(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}
	return profile, nil
}
