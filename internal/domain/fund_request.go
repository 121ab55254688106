package domain

import "time"

// FundRequest is a funding milestone raised by an SME with a verified profile.
type FundRequest struct {
	ID          string
	SmeID       string
	Milestone   string
	Description string
	Amount      float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
