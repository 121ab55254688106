package domain

import "time"

// SmeProfileStatus represents verification states for a business profile.
type SmeProfileStatus string

const (
	SmeProfileStatusUnverified SmeProfileStatus = "UNVERIFIED"
	SmeProfileStatusVerified   SmeProfileStatus = "VERIFIED"
	SmeProfileStatusSuspended  SmeProfileStatus = "SUSPENDED"
)

// SmeProfile is the business profile an SME submits for verification.
// Each SME account owns at most one profile.
type SmeProfile struct {
	ID            string
	SmeID         string
	BusinessName  string
	Category      string
	Address       string
	ElevatorPitch string
	PitchDeck     string
	TinNumber     int64
	CacNumber     int64
	Logo          string
	Status        SmeProfileStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
