package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/BuildForSDG/Team-083-Backend/internal/auth"
	"github.com/BuildForSDG/Team-083-Backend/internal/config"
	"github.com/BuildForSDG/Team-083-Backend/internal/domain"
	"github.com/BuildForSDG/Team-083-Backend/internal/events"
	"github.com/BuildForSDG/Team-083-Backend/internal/repository"
	"github.com/BuildForSDG/Team-083-Backend/internal/storage"
	apperrors "github.com/BuildForSDG/Team-083-Backend/pkg/util"
)

// AccountService coordinates signup, login and the account lifecycle.
type AccountService struct {
	users       repository.UserRepository
	profiles    repository.UserProfileRepository
	smeProfiles repository.SmeProfileRepository
	assets      storage.AssetStore
	dispatcher  events.Dispatcher
	tokenMgr    *auth.TokenManager
	bcryptCost  int
}

// AccountDependencies encapsulates collaborator requirements.
type AccountDependencies struct {
	UserRepo        repository.UserRepository
	UserProfileRepo repository.UserProfileRepository
	SmeProfileRepo  repository.SmeProfileRepository
	Assets          storage.AssetStore
	Dispatcher      events.Dispatcher
}

// NewAccountService builds the service.
func NewAccountService(cfg config.Config, deps AccountDependencies) *AccountService {
	return &AccountService{
		users:       deps.UserRepo,
		profiles:    deps.UserProfileRepo,
		smeProfiles: deps.SmeProfileRepo,
		assets:      deps.Assets,
		dispatcher:  deps.Dispatcher,
		tokenMgr:    auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLHours),
		bcryptCost:  cfg.Auth.BcryptCost,
	}
}

// AccountDetail joins an account with its self-service profile.
type AccountDetail struct {
	User    domain.User
	Profile domain.UserProfile
}

// Signup creates a new account of any role. ADMIN accounts can only be
// created by an authenticated admin; the public signup route passes a nil
// requester.
func (s *AccountService) Signup(ctx context.Context, name, email, password, userType string, requester *auth.Claims) (*domain.User, string, time.Time, error) {
	role, err := domain.ParseRole(userType)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewValidationError("Invalid user type")
	}
	if role == domain.RoleAdmin && requester == nil {
		return nil, "", time.Time{}, apperrors.NewValidationError("Invalid user type")
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	// The row is stored lowercased; normalize here too so the returned
	// struct and the token claims carry the same email as the store.
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		UserType:     role,
		Status:       domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, "", time.Time{}, apperrors.NewConflict("Email Address Already in use")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	if err := s.profiles.Create(ctx, user.ID); err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventAccountCreated, actorFor(requester, user), events.AccountCreatedPayload{
		UserID:   user.ID,
		Email:    user.Email,
		UserType: user.UserType,
	})
	return user, token, exp, nil
}

// Login authenticates an account. Only ACTIVE accounts can log in; a
// suspended or pending account is reported the same way as a missing one.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmailAndStatus(ctx, email, domain.UserStatusActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewForbidden("Account does not exist")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewForbidden("Incorrect email or password")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return user, token, exp, nil
}

// ListAccounts returns accounts of the given role, or every account when
// role is nil.
func (s *AccountService) ListAccounts(ctx context.Context, role *domain.Role) ([]domain.User, error) {
	users, err := s.users.List(ctx, role)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// AccountDetail returns an account joined with its profile.
func (s *AccountService) AccountDetail(ctx context.Context, id string) (*AccountDetail, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Account does not exist")
		}
		return nil, apperrors.MapError(err)
	}
	profile, err := s.profiles.GetByUserID(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &AccountDetail{User: *user, Profile: *profile}, nil
}

// UpdateAccount is the self-service update of name and profile fields.
func (s *AccountService) UpdateAccount(ctx context.Context, claims *auth.Claims, name, bio, phone, address string) (*AccountDetail, error) {
	if err := s.users.UpdateName(ctx, claims.ID, name); err != nil {
		return nil, apperrors.MapError(err)
	}
	if err := s.profiles.UpdateDetails(ctx, claims.ID, bio, phone, address); err != nil {
		return nil, apperrors.MapError(err)
	}
	return s.AccountDetail(ctx, claims.ID)
}

// ChangePassword verifies the old password before storing the new hash.
func (s *AccountService) ChangePassword(ctx context.Context, claims *auth.Claims, oldPassword, newPassword string) error {
	user, err := s.users.GetByEmail(ctx, claims.Email)
	if err != nil {
		return apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, oldPassword); err != nil {
		return apperrors.NewForbidden("Incorrect old password")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := s.users.UpdatePassword(ctx, claims.Email, hash); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// SetAvatar records the public path of a freshly stored avatar asset.
func (s *AccountService) SetAvatar(ctx context.Context, userID, publicPath string) error {
	if err := s.profiles.UpdateAvatar(ctx, userID, publicPath); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// SetStatus transitions the target account's status. An actor can never
// change their own status, regardless of role; the store-side condition on
// the requester's email keeps the check and the mutation atomic. Applying
// the current status again is a no-op success.
func (s *AccountService) SetStatus(ctx context.Context, targetID string, status domain.UserStatus, requester *auth.Claims) error {
	if targetID == requester.ID {
		return apperrors.NewForbidden("You cannot change the status of your own account")
	}

	matched, err := s.users.UpdateStatusExcludingEmail(ctx, targetID, status, requester.Email)
	if err != nil {
		return apperrors.MapError(err)
	}
	if !matched {
		return apperrors.NewNotFound("Account does not exist")
	}

	s.publish(ctx, events.EventAccountStatusChanged, actorFromClaims(requester), events.AccountStatusChangedPayload{
		UserID:    targetID,
		NewStatus: status,
	})
	return nil
}

// DeleteAccount removes the target account and everything hanging off it:
// the users row, the avatar asset, the user profile and the SME profile. A
// failure anywhere in the cascade is surfaced, never swallowed. The avatar
// path is captured before the users row goes away, because deleting the
// users row FK-cascades the profile row in the same statement.
func (s *AccountService) DeleteAccount(ctx context.Context, targetID string, requester *auth.Claims) error {
	if targetID == requester.ID {
		return apperrors.NewForbidden("You cannot delete your own account")
	}

	profile, err := s.profiles.GetByUserID(ctx, targetID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return apperrors.MapError(err)
		}
		profile = nil
	}

	matched, err := s.users.DeleteExcludingEmail(ctx, targetID, requester.Email)
	if err != nil {
		return apperrors.MapError(err)
	}
	if !matched {
		return apperrors.NewNotFound("Account does not exist")
	}

	if profile != nil && profile.Avatar != "" {
		if err := s.assets.Release(profile.Avatar); err != nil {
			return apperrors.NewInternalError(err)
		}
	}
	// The store cascade usually removed the profile row already.
	if err := s.profiles.DeleteByUserID(ctx, targetID); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return apperrors.MapError(err)
	}
	if err := s.smeProfiles.DeleteBySmeID(ctx, targetID); err != nil {
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.EventAccountDeleted, actorFromClaims(requester), events.AccountDeletedPayload{UserID: targetID})
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AccountService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AccountService) publish(ctx context.Context, eventType events.EventType, actor events.Actor, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

func actorFromClaims(claims *auth.Claims) events.Actor {
	return events.Actor{ID: claims.ID, Role: claims.UserType}
}

func actorFor(requester *auth.Claims, created *domain.User) events.Actor {
	if requester != nil {
		return actorFromClaims(requester)
	}
	return events.Actor{ID: created.ID, Role: created.UserType}
}
