package model

import (
	"time"

	"github.com/google/uuid"

	auditmodel "newsportal-backend/internal/domains/audit/model"
)

// Roles, least to most privileged.
const (
	RoleSubscriber = "subscriber"
	RoleAuthor     = "author"
	RoleEditor     = "editor"
	RoleAdmin      = "admin"
)

// ValidRole reports whether the role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleSubscriber, RoleAuthor, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

// AssignableRole reports whether the role can be granted through the
// promote action. Author accounts are provisioned by an admin, never
// reached by promotion.
func AssignableRole(role string) bool {
	switch role {
	case RoleSubscriber, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

// Profile is a portal account. A non-nil BannedAt blocks login; the ban
// is checked at authentication time, not baked into tokens.
type Profile struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	DisplayName  string     `json:"display_name"`
	Role         string     `json:"role"`
	PasswordHash string     `json:"-"`
	AvatarURL    *string    `json:"avatar_url,omitempty"`
	BannedAt     *time.Time `json:"banned_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (p *Profile) IsBanned() bool {
	return p.BannedAt != nil
}

// UserStats is the aggregate returned by the get_stats administration
// action. RecentLogs holds the last week's audit trail for the
// dashboard, newest first.
type UserStats struct {
	TotalUsers  int64                   `json:"total_users"`
	BannedUsers int64                   `json:"banned_users"`
	ByRole      map[string]int64        `json:"by_role"`
	RecentLogs  []*auditmodel.AccessLog `json:"recent_logs"`
}
