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
	"newsportal-backend/internal/domains/profile/model"
	"newsportal-backend/internal/domains/profile/repository"
	"newsportal-backend/internal/shared"
	"newsportal-backend/pkg/jwt"
)

// =====================================================
// AUTH SERVICE
// =====================================================

type AuthServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	Refresh(ctx context.Context, req model.RefreshRequest) (*model.AuthResponse, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	UpdateMe(ctx context.Context, caller shared.Caller, req model.UpdateMeRequest) (*model.Profile, error)
}

type authService struct {
	profileRepo repository.ProfileRepository
	jwtManager  *jwt.Manager
	auditor     audit.Recorder
}

func NewAuthService(
	profileRepo repository.ProfileRepository,
	jwtManager *jwt.Manager,
	auditor audit.Recorder,
) AuthServiceInterface {
	return &authService{
		profileRepo: profileRepo,
		jwtManager:  jwtManager,
		auditor:     auditor,
	}
}

func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Step 2: Hash the password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Step 3: Create the profile — self-registered accounts always
	// start as subscribers.
	now := time.Now()
	profile := &model.Profile{
		ID:           uuid.New(),
		Email:        email,
		DisplayName:  req.DisplayName,
		Role:         model.RoleSubscriber,
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

	// Step 4: Issue tokens
	return s.issueTokens(profile)
}

func (s *authService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	profile, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			// Same error as a wrong password; never reveal whether the
			// email exists.
			return nil, model.NewInvalidCredentialsError()
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		s.auditor.Record(ctx, &profile.ID, "login", profile.ID.String(), false)
		return nil, model.NewInvalidCredentialsError()
	}

	// Bans are enforced here, so a ban takes effect at the next login
	// even if an old token is still valid.
	if profile.IsBanned() {
		s.auditor.Record(ctx, &profile.ID, "login", profile.ID.String(), false)
		return nil, model.NewUserBannedError()
	}

	s.auditor.Record(ctx, &profile.ID, "login", profile.ID.String(), true)

	return s.issueTokens(profile)
}

func (s *authService) Refresh(ctx context.Context, req model.RefreshRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, model.NewInvalidCredentialsError()
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, model.NewInvalidCredentialsError()
	}

	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.NewInvalidCredentialsError()
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.IsBanned() {
		return nil, model.NewUserBannedError()
	}

	return s.issueTokens(profile)
}

func (s *authService) GetMe(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.NewUserNotFoundError()
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

func (s *authService) UpdateMe(ctx context.Context, caller shared.Caller, req model.UpdateMeRequest) (*model.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.NewUserNotFoundError()
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if req.DisplayName != "" {
		profile.DisplayName = req.DisplayName
	}
	if req.AvatarURL != "" {
		profile.AvatarURL = &req.AvatarURL
	}
	profile.UpdatedAt = time.Now()

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}

func (s *authService) issueTokens(profile *model.Profile) (*model.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(profile.ID.String(), profile.Email, profile.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(profile.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &model.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         profile,
	}, nil
}
