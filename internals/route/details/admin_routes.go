package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "womim_backend/internals/features/attendance/controller"
	memberController "womim_backend/internals/features/members/controller"
	rehearsalController "womim_backend/internals/features/rehearsals/controller"
)

func MemberAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := memberController.NewMemberController(db)

	r.Get("/members", ctl.List)
	r.Get("/members/:id", ctl.GetByID)
	r.Patch("/members/:id/status", ctl.UpdateStatus)
}

func RehearsalAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := rehearsalController.NewRehearsalController(db)

	r.Post("/rehearsals", ctl.Create)
	r.Get("/rehearsals/:id", ctl.GetByID)
}

func AttendanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := attendanceController.NewAttendanceController(db)

	r.Get("/attendance", ctl.Get)
	r.Post("/attendance", ctl.Save)
	r.Get("/attendance/sheet", ctl.Sheet)
	r.Get("/attendance/export.csv", ctl.ExportCSV)
	r.Get("/attendance/export.xlsx", ctl.ExportXLSX)
}
