package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/BuildForSDG/Team-083-Backend/internal/domain"
)

// SmeProfileCreateRequest payload for business profile setup.
type SmeProfileCreateRequest struct {
	BusinessName  string `json:"businessName"`
	Category      string `json:"category"`
	Address       string `json:"address"`
	ElevatorPitch string `json:"elevatorPitch"`
	PitchDeck     string `json:"pitchDeck"`
	TinNumber     int64  `json:"tinNumber"`
	CacNumber     int64  `json:"cacNumber"`
}

// Validate enforces the business profile field rules.
func (r SmeProfileCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BusinessName, validation.Required, validation.Length(2, 0)),
		validation.Field(&r.Category, validation.Required),
		validation.Field(&r.Address, validation.Required, validation.Length(2, 0)),
		validation.Field(&r.ElevatorPitch, validation.Required, validation.Length(2, 0)),
		validation.Field(&r.TinNumber, validation.Required),
		validation.Field(&r.CacNumber, validation.Required),
	)
}

// SmeProfileResponse is the business profile shape returned to clients.
type SmeProfileResponse struct {
	ID            string                  `json:"_id"`
	SmeID         string                  `json:"smeId"`
	BusinessName  string                  `json:"businessName"`
	Category      string                  `json:"category"`
	Address       string                  `json:"address"`
	ElevatorPitch string                  `json:"elevatorPitch"`
	PitchDeck     string                  `json:"pitchDeck,omitempty"`
	TinNumber     int64                   `json:"tinNumber"`
	CacNumber     int64                   `json:"cacNumber"`
	Logo          string                  `json:"logo,omitempty"`
	Status        domain.SmeProfileStatus `json:"status"`
}
