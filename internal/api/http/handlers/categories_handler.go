package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/BuildForSDG/Team-083-Backend/internal/api/dto"
	"github.com/BuildForSDG/Team-083-Backend/internal/domain"
	"github.com/BuildForSDG/Team-083-Backend/internal/service"
	apperrors "github.com/BuildForSDG/Team-083-Backend/pkg/util"
)

// CategoriesHandler exposes business category endpoints.
type CategoriesHandler struct {
	categories *service.CategoryService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(categories *service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{categories: categories}
}

// Create handles POST /category.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	var req dto.CategoryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("Kindly add name to proceed")
	}

	category, err := h.categories.Create(c.UserContext(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return success(c, http.StatusCreated, "Category has been added successfully", categoryResponse(category))
}

// Edit handles PATCH /category/:name.
func (h *CategoriesHandler) Edit(c *fiber.Ctx) error {
	var req dto.CategoryEditRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload")
	}

	category, err := h.categories.Edit(c.UserContext(), c.Params("name"), req.Description)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Category has been edited successfully", categoryResponse(category))
}

// Get handles GET /category/:name.
func (h *CategoriesHandler) Get(c *fiber.Ctx) error {
	category, err := h.categories.Get(c.UserContext(), c.Params("name"))
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Category found successfully", categoryResponse(category))
}

// List handles GET /categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.categories.List(c.UserContext())
	if err != nil {
		return err
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, categoryResponse(&categories[i]))
	}
	return success(c, http.StatusOK, fmt.Sprintf("%d categories have been found", len(resp)), resp)
}

// Delete handles DELETE /category/:name.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	if err := h.categories.Delete(c.UserContext(), c.Params("name")); err != nil {
		return err
	}
	return success(c, http.StatusOK, "category deleted successfully", nil)
}

func categoryResponse(category *domain.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}
