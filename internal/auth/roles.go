package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BuildForSDG/Team-083-Backend/internal/domain"
	apperrors "github.com/BuildForSDG/Team-083-Backend/pkg/util"
)

// RequireRoles admits callers whose userType is in the allowed set.
// There is no hierarchy between roles; ADMIN is only admitted where
// explicitly listed.
func RequireRoles(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("Authentication required")
		}
		if _, exists := allowedSet[claims.UserType]; !exists {
			return apperrors.NewForbidden("You are not permitted to perform this operation")
		}
		return c.Next()
	}
}
