package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	memberController "womim_backend/internals/features/members/controller"
	rehearsalController "womim_backend/internals/features/rehearsals/controller"
	"womim_backend/internals/middlewares"
)

// PublicRoutes: no session required. Registration is rate limited; the
// rehearsal list feeds the public schedule page as well as the admin
// selector.
func PublicRoutes(r fiber.Router, db *gorm.DB) {
	members := memberController.NewMemberController(db)
	rehearsals := rehearsalController.NewRehearsalController(db)

	r.Post("/register", middlewares.RegisterRateLimiter(), members.Register)
	r.Get("/rehearsals", rehearsals.List)
}
