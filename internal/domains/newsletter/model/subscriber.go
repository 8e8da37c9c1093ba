package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Subscriber is a newsletter recipient. Unsubscribing keeps the row and
// clears the active flag, so re-subscribing restores the same record.
type Subscriber struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	IsActive       bool       `json:"is_active"`
	SubscribedAt   time.Time  `json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
}

// Errors
var ErrSubscriberNotFound = errors.New("subscriber not found")

// Error codes
const ErrCodeSubscriberNotFound = "NWS001"

type SubscribeRequest struct {
	Email string `json:"email"`
}

func (r SubscribeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("invalid email address"),
		),
	)
}
