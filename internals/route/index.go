// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"womim_backend/internals/configs"
	adminService "womim_backend/internals/features/admins/service"
	authMiddleware "womim_backend/internals/middlewares/auth"
	routeDetails "womim_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) *adminService.SessionService {
	sessions := adminService.NewSessionService(db, configs.SessionTTL(), configs.SessionRefreshWindow())

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db, sessions)

	log.Println("[INFO] Setting up PUBLIC routes...")
	public := app.Group("/api")
	routeDetails.PublicRoutes(public, db)

	log.Println("[INFO] Setting up ADMIN group (session guard)...")
	admin := app.Group("/api/a", authMiddleware.AdminGuard(sessions))
	routeDetails.MemberAdminRoutes(admin, db)
	routeDetails.RehearsalAdminRoutes(admin, db)
	routeDetails.AttendanceAdminRoutes(admin, db)

	return sessions
}
