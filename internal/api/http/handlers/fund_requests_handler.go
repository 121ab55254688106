package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/BuildForSDG/Team-083-Backend/internal/api/dto"
	"github.com/BuildForSDG/Team-083-Backend/internal/auth"
	"github.com/BuildForSDG/Team-083-Backend/internal/domain"
	"github.com/BuildForSDG/Team-083-Backend/internal/service"
	apperrors "github.com/BuildForSDG/Team-083-Backend/pkg/util"
)

// FundRequestsHandler exposes fund request endpoints.
type FundRequestsHandler struct {
	requests *service.FundRequestService
}

// NewFundRequestsHandler constructs handler.
func NewFundRequestsHandler(requests *service.FundRequestService) *FundRequestsHandler {
	return &FundRequestsHandler{requests: requests}
}

// Create handles POST /fund_request for the authenticated SME.
func (h *FundRequestsHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}

	var req dto.FundRequestCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	request, err := h.requests.Create(c.UserContext(), claims, req.Milestone, req.Description, req.Amount)
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, "Fund request created successfully", requestResponse(request))
}

// ListBySme handles GET /fund_request/sme/:smeId.
func (h *FundRequestsHandler) ListBySme(c *fiber.Ctx) error {
	requests, err := h.requests.ListBySme(c.UserContext(), c.Params("smeId"))
	if err != nil {
		return err
	}

	resp := make([]dto.FundRequestResponse, 0, len(requests))
	for i := range requests {
		resp = append(resp, requestResponse(&requests[i]))
	}
	return success(c, http.StatusOK, "Requests found", resp)
}

// Get handles GET /fund_request/:requestId.
func (h *FundRequestsHandler) Get(c *fiber.Ctx) error {
	request, err := h.requests.Get(c.UserContext(), c.Params("requestId"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Request has been found", requestResponse(request))
}

func requestResponse(request *domain.FundRequest) dto.FundRequestResponse {
	return dto.FundRequestResponse{
		ID:          request.ID,
		SmeID:       request.SmeID,
		Milestone:   request.Milestone,
		Description: request.Description,
		Amount:      request.Amount,
	}
}
