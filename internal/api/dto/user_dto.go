package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/BuildForSDG/Team-083-Backend/internal/domain"
)

// SignupRequest payload for new accounts, public or admin-created.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

// Validate enforces the account field rules.
func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(4, 0)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 0)),
		validation.Field(&r.UserType, validation.Required),
	)
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate enforces login field presence.
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// AccountUpdateRequest payload for the self-service update.
type AccountUpdateRequest struct {
	Name    string `json:"name"`
	Bio     string `json:"bio"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Validate enforces the update field rules.
func (r AccountUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(4, 0)),
		validation.Field(&r.Bio, validation.Required),
		validation.Field(&r.Phone, validation.Required),
		validation.Field(&r.Address, validation.Required),
	)
}

// PasswordChangeRequest payload for authenticated password changes.
type PasswordChangeRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Validate enforces the eight character minimum on the new password.
func (r PasswordChangeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OldPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(8, 0)),
	)
}

// UserResponse is the account shape returned to clients, without the
// password hash.
type UserResponse struct {
	ID       string            `json:"_id"`
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Status   domain.UserStatus `json:"status"`
	UserType domain.Role       `json:"userType"`
}

// AuthResponse is the signup/login shape: the token plus the identity
// snapshot it embeds.
type AuthResponse struct {
	Token string `json:"token"`
	UserResponse
}

// AccountDetailResponse joins an account with its profile fields.
type AccountDetailResponse struct {
	UserResponse
	Avatar    string    `json:"avatar"`
	Bio       string    `json:"bio"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AvatarResponse returns the stored avatar path.
type AvatarResponse struct {
	Avatar string `json:"avatar"`
}
