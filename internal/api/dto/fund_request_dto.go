package dto

import validation "github.com/go-ozzo/ozzo-validation"

// FundRequestCreateRequest payload for raising a fund request.
type FundRequestCreateRequest struct {
	Milestone   string  `json:"milestone"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Validate enforces the fund request field rules.
func (r FundRequestCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Milestone, validation.Required, validation.Length(5, 0)),
		validation.Field(&r.Amount, validation.Required, validation.Min(0.01)),
	)
}

// FundRequestResponse is the fund request shape returned to clients.
type FundRequestResponse struct {
	ID          string  `json:"_id"`
	SmeID       string  `json:"smeId"`
	Milestone   string  `json:"milestone"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}
