package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/BuildForSDG/Team-083-Backend/internal/api/dto"
	"github.com/BuildForSDG/Team-083-Backend/internal/auth"
	"github.com/BuildForSDG/Team-083-Backend/internal/config"
	"github.com/BuildForSDG/Team-083-Backend/internal/domain"
	"github.com/BuildForSDG/Team-083-Backend/internal/service"
	"github.com/BuildForSDG/Team-083-Backend/internal/storage"
	apperrors "github.com/BuildForSDG/Team-083-Backend/pkg/util"
)

// UsersHandler exposes account and authentication endpoints.
type UsersHandler struct {
	accounts   *service.AccountService
	assets     storage.AssetStore
	storageCfg config.StorageConfig
}

// NewUsersHandler constructs handler.
func NewUsersHandler(accounts *service.AccountService, assets storage.AssetStore, storageCfg config.StorageConfig) *UsersHandler {
	return &UsersHandler{accounts: accounts, assets: assets, storageCfg: storageCfg}
}

// Signup handles POST /signup. ADMIN accounts cannot be created here.
func (h *UsersHandler) Signup(c *fiber.Ctx) error {
	return h.createAccount(c, nil)
}

// CreateUser handles POST /create_user, the admin-only variant that may
// create accounts of any role.
func (h *UsersHandler) CreateUser(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}
	return h.createAccount(c, claims)
}

func (h *UsersHandler) createAccount(c *fiber.Ctx, requester *auth.Claims) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	user, token, _, err := h.accounts.Signup(c.UserContext(), req.Name, req.Email, req.Password, req.UserType, requester)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Account created Successfully", dto.AuthResponse{
		Token:        token,
		UserResponse: userResponse(user),
	})
}

// Login handles POST /login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("Enter your email and password")
	}

	user, token, _, err := h.accounts.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "login Successfully", dto.AuthResponse{
		Token:        token,
		UserResponse: userResponse(user),
	})
}

// ListAccounts returns a handler serving accounts of the given role, or
// every account for RoleAll.
func (h *UsersHandler) ListAccounts(filter string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var role *domain.Role
		if filter != "ALL" {
			parsed, err := domain.ParseRole(filter)
			if err != nil {
				return apperrors.NewValidationError(err.Error())
			}
			role = &parsed
		}

		users, err := h.accounts.ListAccounts(c.UserContext(), role)
		if err != nil {
			return err
		}

		resp := make([]dto.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, userResponse(&users[i]))
		}
		return success(c, http.StatusOK, "Users Fetched Successfully", resp)
	}
}

// AccountDetail handles GET /user/:id.
func (h *UsersHandler) AccountDetail(c *fiber.Ctx) error {
	detail, err := h.accounts.AccountDetail(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Operation Successfully", detailResponse(detail))
}

// UpdateAccount handles PATCH /user/update for the authenticated caller.
func (h *UsersHandler) UpdateAccount(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}

	var req dto.AccountUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("name, bio, phone, and address required")
	}

	detail, err := h.accounts.UpdateAccount(c.UserContext(), claims, req.Name, req.Bio, req.Phone, req.Address)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Operation Successfully", detailResponse(detail))
}

// ChangePassword handles PATCH /change_password.
func (h *UsersHandler) ChangePassword(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}

	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("old_password and new_password field required (Eight character minimum)")
	}

	if err := h.accounts.ChangePassword(c.UserContext(), claims, req.OldPassword, req.NewPassword); err != nil {
		return err
	}
	return success(c, http.StatusOK, "Password Changed Successfully", nil)
}

var allowedAvatarTypes = map[string]string{
	"image/png":  "png",
	"image/jpg":  "jpg",
	"image/jpeg": "jpeg",
	"image/gif":  "gif",
}

// ChangeAvatar handles PUT /user/avatar. The uploaded image is written to
// the public asset directory under a fresh name before the profile row is
// updated; on update failure the freshly written file is released again.
func (h *UsersHandler) ChangeAvatar(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return apperrors.NewValidationError("Kindly upload your image")
	}
	if file.Size > h.storageCfg.MaxAvatarBytes {
		return apperrors.NewValidationError("Maximum allow file size is 1mb")
	}

	ext, ok := allowedAvatarTypes[strings.ToLower(file.Header.Get("Content-Type"))]
	if !ok {
		return apperrors.NewValidationError("Upload a valid Image file")
	}

	publicPath := h.storageCfg.AssetPath + "/" + uuid.NewString() + "." + ext
	if err := c.SaveFile(file, h.assets.DiskPath(publicPath)); err != nil {
		return apperrors.NewInternalError(err)
	}

	if err := h.accounts.SetAvatar(c.UserContext(), claims.ID, publicPath); err != nil {
		_ = h.assets.Release(publicPath)
		return err
	}
	return success(c, http.StatusOK, "Avatar Uploaded Successfully", dto.AvatarResponse{Avatar: publicPath})
}

// SetStatus returns a handler transitioning the target account to the given
// status. Used for both /suspend/:id and /activate/:id.
func (h *UsersHandler) SetStatus(status domain.UserStatus) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := auth.ClaimsFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("Authentication required")
		}

		if err := h.accounts.SetStatus(c.UserContext(), c.Params("id"), status, claims); err != nil {
			return err
		}
		return success(c, http.StatusOK, "Account Status Updated Successfully", nil)
	}
}

// DeleteUser handles DELETE /user/:id.
func (h *UsersHandler) DeleteUser(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}

	if err := h.accounts.DeleteAccount(c.UserContext(), c.Params("id"), claims); err != nil {
		return err
	}
	return success(c, http.StatusOK, "Account Deleted Successfully", nil)
}

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Status:   user.Status,
		UserType: user.UserType,
	}
}

func detailResponse(detail *service.AccountDetail) dto.AccountDetailResponse {
	return dto.AccountDetailResponse{
		UserResponse: userResponse(&detail.User),
		Avatar:       detail.Profile.Avatar,
		Bio:          detail.Profile.Bio,
		Phone:        detail.Profile.Phone,
		Address:      detail.Profile.Address,
		CreatedAt:    detail.Profile.CreatedAt,
		UpdatedAt:    detail.Profile.UpdatedAt,
	}
}
