package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/BuildForSDG/Team-083-Backend/pkg/util"
)

// TokenHeader is the request header clients send the identity token in.
const TokenHeader = "token"

const claimsKey = "auth_claims"

// AuthMiddleware validates identity tokens on protected routes.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. The decoded claims
// are trusted as-is; the account record is not re-read from the store.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	tokenStr := c.Get(TokenHeader)
	if tokenStr == "" {
		return apperrors.NewUnauthorized("Authentication required")
	}

	claims, err := m.tokens.ParseToken(tokenStr)
	if err != nil {
		return apperrors.NewUnauthorized("Invalid or expired token")
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// ClaimsFromContext retrieves the authenticated caller's identity claims.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
