package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BuildForSDG/Team-083-Backend/internal/api/http/handlers"
	"github.com/BuildForSDG/Team-083-Backend/internal/auth"
	"github.com/BuildForSDG/Team-083-Backend/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	BasePath       string
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Profiles       *handlers.SmeProfilesHandler
	Categories     *handlers.CategoriesHandler
	FundRequests   *handlers.FundRequestsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Every protected route names its
// allowed-role set explicitly; there is no implied hierarchy.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group(cfg.BasePath)

	// public routes, no gate and no policy
	api.Post("/login", cfg.Users.Login)
	api.Post("/signup", cfg.Users.Signup)

	gate := cfg.AuthMiddleware.Handle
	adminOnly := auth.RequireRoles(domain.RoleAdmin)
	smeOnly := auth.RequireRoles(domain.RoleSme)
	anyRole := auth.RequireRoles(domain.RoleAdmin, domain.RoleSme, domain.RoleFunder)

	// admin user management
	api.Get("/user", gate, adminOnly, cfg.Users.ListAccounts("ALL"))
	api.Get("/user/admin", gate, adminOnly, cfg.Users.ListAccounts("ADMIN"))
	api.Post("/create_user", gate, adminOnly, cfg.Users.CreateUser)
	api.Patch("/suspend/:id", gate, adminOnly, cfg.Users.SetStatus(domain.UserStatusSuspended))
	api.Patch("/activate/:id", gate, adminOnly, cfg.Users.SetStatus(domain.UserStatusActive))
	api.Delete("/user/:id", gate, adminOnly, cfg.Users.DeleteUser)

	// self-service endpoints shared by every role
	api.Patch("/change_password", gate, anyRole, cfg.Users.ChangePassword)
	api.Get("/user/sme", gate, anyRole, cfg.Users.ListAccounts("SME"))
	api.Get("/user/funder", gate, anyRole, cfg.Users.ListAccounts("FUNDER"))
	api.Get("/user/:id", gate, anyRole, cfg.Users.AccountDetail)
	api.Patch("/user/update", gate, anyRole, cfg.Users.UpdateAccount)
	api.Put("/user/avatar", gate, anyRole, cfg.Users.ChangeAvatar)

	// business profiles
	api.Post("/profile", gate, smeOnly, cfg.Profiles.Create)
	api.Get("/profile", gate, smeOnly, cfg.Profiles.GetOwn)
	api.Get("/profiles", gate, adminOnly, cfg.Profiles.List)
	api.Get("/profile/:id", gate, anyRole, cfg.Profiles.Get)
	api.Patch("/profile/verify/:id", gate, adminOnly, cfg.Profiles.Verify)
	api.Patch("/profile/unverify/:id", gate, adminOnly, cfg.Profiles.Unverify)

	// categories
	api.Post("/category", gate, adminOnly, cfg.Categories.Create)
	api.Patch("/category/:name", gate, adminOnly, cfg.Categories.Edit)
	api.Delete("/category/:name", gate, adminOnly, cfg.Categories.Delete)
	api.Get("/category/:name", gate, anyRole, cfg.Categories.Get)
	api.Get("/categories", gate, anyRole, cfg.Categories.List)

	// fund requests
	api.Post("/fund_request", gate, smeOnly, cfg.FundRequests.Create)
	api.Get("/fund_request/sme/:smeId", gate, anyRole, cfg.FundRequests.ListBySme)
	api.Get("/fund_request/:requestId", gate, anyRole, cfg.FundRequests.Get)
}
