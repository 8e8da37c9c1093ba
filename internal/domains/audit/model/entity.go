package model

import (
	"time"

	"github.com/google/uuid"
)

// AccessLog is an append-only audit row recorded as a best-effort side
// effect of privileged operations. It is never a correctness dependency
// of the primary operation.
type AccessLog struct {
	ID        uuid.UUID  `json:"id"`
	ActorID   *uuid.UUID `json:"actor_id"` // nil for anonymous events
	Action    string     `json:"action"`
	Resource  string     `json:"resource"`
	Success   bool       `json:"success"`
	CreatedAt time.Time  `json:"created_at"`
}
