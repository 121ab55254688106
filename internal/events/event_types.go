package events

import (
	"time"

	"github.com/BuildForSDG/Team-083-Backend/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountCreated       EventType = "account_created"
	EventAccountStatusChanged EventType = "account_status_changed"
	EventAccountDeleted       EventType = "account_deleted"
	EventProfileVerified      EventType = "profile_verified"
	EventProfileUnverified    EventType = "profile_unverified"
	EventFundRequestCreated   EventType = "fund_request_created"
)

// Actor encapsulates the caller responsible for an event.
type Actor struct {
	ID   string      `json:"id"`
	Role domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccountCreatedPayload payload.
type AccountCreatedPayload struct {
	UserID   string      `json:"user_id"`
	Email    string      `json:"email"`
	UserType domain.Role `json:"user_type"`
}

// AccountStatusChangedPayload payload.
type AccountStatusChangedPayload struct {
	UserID    string            `json:"user_id"`
	NewStatus domain.UserStatus `json:"new_status"`
}

// AccountDeletedPayload payload.
type AccountDeletedPayload struct {
	UserID string `json:"user_id"`
}

// ProfileStatusPayload payload for verify/unverify events.
type ProfileStatusPayload struct {
	ProfileID    string                  `json:"profile_id"`
	BusinessName string                  `json:"business_name"`
	NewStatus    domain.SmeProfileStatus `json:"new_status"`
}

// FundRequestCreatedPayload payload.
type FundRequestCreatedPayload struct {
	RequestID string  `json:"request_id"`
	SmeID     string  `json:"sme_id"`
	Amount    float64 `json:"amount"`
}
