package dto

import validation "github.com/go-ozzo/ozzo-validation"

// CategoryCreateRequest payload for adding a category.
type CategoryCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate enforces the category name rule.
func (r CategoryCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 0)),
	)
}

// CategoryEditRequest payload for editing a category description.
type CategoryEditRequest struct {
	Description string `json:"description"`
}

// CategoryResponse is the category shape returned to clients.
type CategoryResponse struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
