package repository

import (
	"context"

	"github.com/google/uuid"

	"newsportal-backend/internal/domains/profile/model"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	GetByEmail(ctx context.Context, email string) (*model.Profile, error)
	Update(ctx context.Context, profile *model.Profile) error

	SetRole(ctx context.Context, id uuid.UUID, role string) error
	SetBanned(ctx context.Context, id uuid.UUID, banned bool) error

	List(ctx context.Context, page, limit int) ([]*model.Profile, int, error)
	Stats(ctx context.Context) (*model.UserStats, error)
}
