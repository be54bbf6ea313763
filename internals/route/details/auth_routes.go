package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminController "womim_backend/internals/features/admins/controller"
	adminService "womim_backend/internals/features/admins/service"
	"womim_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, sessions *adminService.SessionService) {
	ctl := adminController.NewAuthController(db, sessions)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Get("/session", ctl.SessionCheck)
	auth.Post("/refresh", ctl.Refresh)
	auth.Post("/logout", ctl.Logout)

	app.Post("/api/setup-admin", middlewares.LoginRateLimiter(), ctl.SetupAdmin)
}
