package shared

import "github.com/google/uuid"

// Caller is the authenticated identity threaded explicitly into every
// privileged service call. There is no ambient session.
type Caller struct {
	ID    uuid.UUID
	Email string
	Role  string
}
