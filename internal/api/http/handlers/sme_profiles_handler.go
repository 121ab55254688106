package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/BuildForSDG/Team-083-Backend/internal/api/dto"
	"github.com/BuildForSDG/Team-083-Backend/internal/auth"
	"github.com/BuildForSDG/Team-083-Backend/internal/domain"
	"github.com/BuildForSDG/Team-083-Backend/internal/service"
	apperrors "github.com/BuildForSDG/Team-083-Backend/pkg/util"
)

// SmeProfilesHandler exposes business profile endpoints.
type SmeProfilesHandler struct {
	profiles *service.SmeProfileService
}

// NewSmeProfilesHandler constructs handler.
func NewSmeProfilesHandler(profiles *service.SmeProfileService) *SmeProfilesHandler {
	return &SmeProfilesHandler{profiles: profiles}
}

// Create handles POST /profile for the authenticated SME.
func (h *SmeProfilesHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}

	var req dto.SmeProfileCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	profile, err := h.profiles.Create(c.UserContext(), claims, service.SmeProfileInput{
		BusinessName:  req.BusinessName,
		Category:      req.Category,
		Address:       req.Address,
		ElevatorPitch: req.ElevatorPitch,
		PitchDeck:     req.PitchDeck,
		TinNumber:     req.TinNumber,
		CacNumber:     req.CacNumber,
	})
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, "Profile setup successfull", profileResponse(profile))
}

// GetOwn handles GET /profile for the authenticated SME.
func (h *SmeProfilesHandler) GetOwn(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}

	profile, err := h.profiles.GetOwn(c.UserContext(), claims)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Profile found successfully", profileResponse(profile))
}

// Get handles GET /profile/:id.
func (h *SmeProfilesHandler) Get(c *fiber.Ctx) error {
	profile, err := h.profiles.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Found Profile", profileResponse(profile))
}

// List handles GET /profiles.
func (h *SmeProfilesHandler) List(c *fiber.Ctx) error {
	profiles, err := h.profiles.List(c.UserContext())
	if err != nil {
		return err
	}

	resp := make([]dto.SmeProfileResponse, 0, len(profiles))
	for i := range profiles {
		resp = append(resp, profileResponse(&profiles[i]))
	}
	return success(c, http.StatusOK, fmt.Sprintf("%d profiles found", len(resp)), resp)
}

// Verify handles PATCH /profile/verify/:id.
func (h *SmeProfilesHandler) Verify(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}

	profile, err := h.profiles.Verify(c.UserContext(), c.Params("id"), claims)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, service.VerifiedMessage(profile, "verified"), profileResponse(profile))
}

// Unverify handles PATCH /profile/unverify/:id.
func (h *SmeProfilesHandler) Unverify(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}

	profile, err := h.profiles.Unverify(c.UserContext(), c.Params("id"), claims)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, service.VerifiedMessage(profile, "unverified"), profileResponse(profile))
}

func profileResponse(profile *domain.SmeProfile) dto.SmeProfileResponse {
	return dto.SmeProfileResponse{
		ID:            profile.ID,
		SmeID:         profile.SmeID,
		BusinessName:  profile.BusinessName,
		Category:      profile.Category,
		Address:       profile.Address,
		ElevatorPitch: profile.ElevatorPitch,
		PitchDeck:     profile.PitchDeck,
		TinNumber:     profile.TinNumber,
		CacNumber:     profile.CacNumber,
		Logo:          profile.Logo,
		Status:        profile.Status,
	}
}
