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

// FundRequestService manages funding requests raised by SMEs.
type FundRequestService struct {
	requests   repository.FundRequestRepository
	profiles   repository.SmeProfileRepository
	dispatcher events.Dispatcher
}

// NewFundRequestService builds the service.
func NewFundRequestService(requests repository.FundRequestRepository, profiles repository.SmeProfileRepository, dispatcher events.Dispatcher) *FundRequestService {
	return &FundRequestService{requests: requests, profiles: profiles, dispatcher: dispatcher}
}

// Create raises a fund request for the caller. The caller's profile must be
// VERIFIED at this moment; requests already created are not re-checked when
// the profile is later unverified.
func (s *FundRequestService) Create(ctx context.Context, claims *auth.Claims, milestone, description string, amount float64) (*domain.FundRequest, error) {
	profile, err := s.profiles.GetBySmeID(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Kindly create an SME profile to be able to request for funds")
		}
		return nil, apperrors.MapError(err)
	}
	if profile.Status != domain.SmeProfileStatusVerified {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("You cannot request for funds as your SME account is currently %s", profile.Status))
	}

	request := &domain.FundRequest{
		ID:          uuid.NewString(),
		SmeID:       claims.ID,
		Milestone:   milestone,
		Description: description,
		Amount:      amount,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventFundRequestCreated,
			Actor:     actorFromClaims(claims),
			Timestamp: time.Now(),
			Payload: events.FundRequestCreatedPayload{
				RequestID: request.ID,
				SmeID:     request.SmeID,
				Amount:    request.Amount,
			},
		})
	}
	return request, nil
}

// ListBySme returns every request raised by the given SME.
func (s *FundRequestService) ListBySme(ctx context.Context, smeID string) ([]domain.FundRequest, error) {
	requests, err := s.requests.ListBySmeID(ctx, smeID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return requests, nil
}

// Get returns a single fund request.
func (s *FundRequestService) Get(ctx context.Context, id string) (*domain.FundRequest, error) {
	request, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("That Request does not exist, might have been deleted")
		}
		return nil, apperrors.MapError(err)
	}
	return request, nil
}
