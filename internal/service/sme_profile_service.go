package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/BuildForSDG/Team-083-Backend/internal/auth"
	"github.com/BuildForSDG/Team-083-Backend/internal/domain"
	"github.com/BuildForSDG/Team-083-Backend/internal/events"
	"github.com/BuildForSDG/Team-083-Backend/internal/repository"
	apperrors "github.com/BuildForSDG/Team-083-Backend/pkg/util"
)

// SmeProfileService manages business profiles and their verification
// lifecycle. Unlike the account machine, verification transitions are
// strict: re-applying the current state is an error, not a no-op.
type SmeProfileService struct {
	profiles   repository.SmeProfileRepository
	dispatcher events.Dispatcher
}

// NewSmeProfileService builds the service.
func NewSmeProfileService(profiles repository.SmeProfileRepository, dispatcher events.Dispatcher) *SmeProfileService {
	return &SmeProfileService{profiles: profiles, dispatcher: dispatcher}
}

// SmeProfileInput carries validated create fields.
type SmeProfileInput struct {
	BusinessName  string
	Category      string
	Address       string
	ElevatorPitch string
	PitchDeck     string
	TinNumber     int64
	CacNumber     int64
}

// Create registers the caller's business profile. Each SME owns at most one.
func (s *SmeProfileService) Create(ctx context.Context, claims *auth.Claims, input SmeProfileInput) (*domain.SmeProfile, error) {
	if _, err := s.profiles.GetBySmeID(ctx, claims.ID); err == nil {
		return nil, apperrors.NewConflict("You already have a profile")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	profile := &domain.SmeProfile{
		ID:            uuid.NewString(),
		SmeID:         claims.ID,
		BusinessName:  input.BusinessName,
		Category:      input.Category,
		Address:       input.Address,
		ElevatorPitch: input.ElevatorPitch,
		PitchDeck:     input.PitchDeck,
		TinNumber:     input.TinNumber,
		CacNumber:     input.CacNumber,
		Status:        domain.SmeProfileStatusUnverified,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("Business name, TIN or CAC number already in use")
		}
		return nil, apperrors.MapError(err)
	}
	return profile, nil
}

// Get returns a profile by its id.
func (s *SmeProfileService) Get(ctx context.Context, id string) (*domain.SmeProfile, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("SME Profile does not exist")
		}
		return nil, apperrors.MapError(err)
	}
	return profile, nil
}

// GetOwn returns the caller's own profile.
func (s *SmeProfileService) GetOwn(ctx context.Context, claims *auth.Claims) (*domain.SmeProfile, error) {
	profile, err := s.profiles.GetBySmeID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("You do not have a profile saved")
		}
		return nil, apperrors.MapError(err)
	}
	return profile, nil
}

// List returns every business profile.
func (s *SmeProfileService) List(ctx context.Context) ([]domain.SmeProfile, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return profiles, nil
}

// Verify marks a profile VERIFIED. Verifying an already-verified profile
// is rejected.
func (s *SmeProfileService) Verify(ctx context.Context, id string, requester *auth.Claims) (*domain.SmeProfile, error) {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.Status == domain.SmeProfileStatusVerified {
		return nil, apperrors.NewValidationError("Profile has already been verified")
	}

	if err := s.profiles.UpdateStatus(ctx, profile.ID, domain.SmeProfileStatusVerified); err != nil {
		return nil, apperrors.MapError(err)
	}
	profile.Status = domain.SmeProfileStatusVerified

	s.publish(ctx, events.EventProfileVerified, requester, profile)
	return profile, nil
}

// Unverify reverts a VERIFIED profile to UNVERIFIED. Only verified
// profiles can be unverified.
func (s *SmeProfileService) Unverify(ctx context.Context, id string, requester *auth.Claims) (*domain.SmeProfile, error) {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.Status != domain.SmeProfileStatusVerified {
		return nil, apperrors.NewValidationError("Profile has not been verified")
	}

	if err := s.profiles.UpdateStatus(ctx, profile.ID, domain.SmeProfileStatusUnverified); err != nil {
		return nil, apperrors.MapError(err)
	}
	profile.Status = domain.SmeProfileStatusUnverified

	s.publish(ctx, events.EventProfileUnverified, requester, profile)
	return profile, nil
}

// VerifiedMessage builds the success message used by the verify handlers.
func VerifiedMessage(profile *domain.SmeProfile, verb string) string {
	return fmt.Sprintf("%s's Profile has been %s successfully", profile.BusinessName, verb)
}

func (s *SmeProfileService) publish(ctx context.Context, eventType events.EventType, requester *auth.Claims, profile *domain.SmeProfile) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actorFromClaims(requester),
		Timestamp: time.Now(),
		Payload: events.ProfileStatusPayload{
			ProfileID:    profile.ID,
			BusinessName: profile.BusinessName,
			NewStatus:    profile.Status,
		},
	})
}
