package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"womim_backend/internals/features/attendance/dto"
	"womim_backend/internals/features/attendance/engine"
	"womim_backend/internals/features/attendance/model"
	"womim_backend/internals/features/attendance/service"
	helper "womim_backend/internals/helpers"
)

type AttendanceController struct {
	DB     *gorm.DB
	Roster *service.RosterService
	Store  *service.AttendanceStore
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:     db,
		Roster: service.NewRosterService(db),
		Store:  service.NewAttendanceStore(db),
	}
}

/* =========================================================
   Persisted rows
   ========================================================= */

// GET /api/a/attendance?event_id=E  or  ?member_id=M
// Persisted rows for an event (with member summaries) or one member's
// history. Missing tables degrade to an empty list.
func (ctl *AttendanceController) Get(c *fiber.Ctx) error {
	eventID := strings.TrimSpace(firstQuery(c, "event_id", "eventId"))
	memberID := strings.TrimSpace(firstQuery(c, "member_id", "memberId"))

	if eventID == "" && memberID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Either eventId or memberId is required")
	}

	tx := ctl.DB.WithContext(c.Context()).
		Table("attendance_records AS ar").
		Select(`ar.attendance_record_id, ar.attendance_record_event_id,
			ar.attendance_record_member_id, ar.attendance_record_status,
			ar.attendance_record_check_in_time, ar.attendance_record_notes,
			m.member_surname, m.member_first_name, m.member_registration_number, m.member_role`).
		Joins("JOIN members m ON m.member_id = ar.attendance_record_member_id")

	if eventID != "" {
		id, err := uuid.Parse(eventID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
		}
		tx = tx.Where("ar.attendance_record_event_id = ?", id)
	}
	if memberID != "" {
		id, err := uuid.Parse(memberID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
		}
		tx = tx.Where("ar.attendance_record_member_id = ?", id)
	}

	var rows []struct {
		model.AttendanceRecordModel
		MemberSurname            string  `gorm:"column:member_surname"`
		MemberFirstName          string  `gorm:"column:member_first_name"`
		MemberRegistrationNumber *string `gorm:"column:member_registration_number"`
		MemberRole               string  `gorm:"column:member_role"`
	}
	if err := tx.Order("ar.attendance_record_created_at DESC").Scan(&rows).Error; err != nil {
		if helper.IsUndefinedTable(err) {
			return helper.JsonOK(c, "ok", []dto.AttendanceRecordResponse{})
		}
		log.Printf("[ERROR] get attendance: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	out := make([]dto.AttendanceRecordResponse, 0, len(rows))
	for _, r := range rows {
		regNo := ""
		if r.MemberRegistrationNumber != nil {
			regNo = *r.MemberRegistrationNumber
		}
		out = append(out, dto.AttendanceRecordResponse{
			ID:          r.AttendanceRecordID,
			EventID:     r.AttendanceRecordEventID,
			MemberID:    r.AttendanceRecordMemberID,
			Status:      r.AttendanceRecordStatus,
			CheckInTime: r.AttendanceRecordCheckInTime,
			Notes:       r.AttendanceRecordNotes,
			Member: dto.MemberSummary{
				ID:                 r.AttendanceRecordMemberID,
				Surname:            r.MemberSurname,
				FirstName:          r.MemberFirstName,
				RegistrationNumber: regNo,
				Role:               r.MemberRole,
			},
		})
	}
	return helper.JsonOK(c, "ok", out)
}

// POST /api/a/attendance
// Upserts a consolidated sheet. Validation failures reject the whole batch
// before any store call; the upsert itself is all-or-nothing. Concurrent
// admins are last-write-wins, no conflict detection.
func (ctl *AttendanceController) Save(c *fiber.Ctx) error {
	var req dto.SaveAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := req.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	store := *ctl.Store
	if v, ok := c.Locals("admin_user_id").(string); ok && v != "" {
		if adminID, err := uuid.Parse(v); err == nil {
			store.RecordedBy = &adminID
		}
	}

	if err := store.SaveAll(c.Context(), req.ToPayload()); err != nil {
		log.Printf("[ERROR] save attendance: %v", err)
		// surface the store's message verbatim; the client keeps its edits
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Attendance saved successfully!", fiber.Map{
		"saved": len(req.AttendanceData),
	})
}

/* =========================================================
   Reconciled sheet
   ========================================================= */

// GET /api/a/attendance/sheet?event_id=E&q=&role=&status=
// The reconciled working set: one row per roster member, defaulted to
// present, overlaid with whatever is persisted for the event. q/role/status
// filter the view only.
func (ctl *AttendanceController) Sheet(c *fiber.Ctx) error {
	eng, err := ctl.buildSheet(c)
	if err != nil {
		return err // already a rendered response
	}

	filtered := eng.Filter(c.Query("q"), c.Query("role", engine.FilterAll), c.Query("status", engine.FilterAll))
	records := make([]dto.WorkingRecordResponse, 0, len(filtered))
	for _, r := range filtered {
		records = append(records, dto.NewWorkingRecordResponse(r))
	}

	ev := eng.Event()
	return helper.JsonOK(c, "ok", dto.SheetResponse{
		EventID:     ev.ID,
		DisplayName: ev.DisplayName,
		Total:       len(eng.Records()),
		Visible:     len(records),
		Records:     records,
	})
}

// buildSheet seeds an engine from the roster and scopes it to the requested
// event. Errors come back as rendered Fiber responses.
func (ctl *AttendanceController) buildSheet(c *fiber.Ctx) (*engine.Engine, error) {
	eventID := strings.TrimSpace(firstQuery(c, "event_id", "eventId"))
	if eventID == "" {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Please select a rehearsal first")
	}
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	ev, err := ctl.lookupEvent(c, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Rehearsal not found")
		}
		log.Printf("[ERROR] lookup event: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	eng := engine.New(ctl.Roster, ctl.Store)
	if err := eng.LoadRoster(c.Context()); err != nil {
		log.Printf("[ERROR] load roster: %v", err)
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load members")
	}
	if err := eng.SelectEvent(c.Context(), ev); err != nil {
		// reconcile failure keeps the default-seeded sheet (fail-open)
		log.Printf("[WARN] reconcile for %s: %v", ev.ID, err)
	}
	return eng, nil
}

func (ctl *AttendanceController) lookupEvent(c *fiber.Ctx, id uuid.UUID) (engine.Event, error) {
	var row struct {
		EventID   uuid.UUID `gorm:"column:event_id"`
		EventDate string    `gorm:"column:event_date"`
		FocusArea *string   `gorm:"column:focus_area"`
	}
	err := ctl.DB.WithContext(c.Context()).
		Table("events AS e").
		Select("e.event_id, to_char(e.event_date, 'YYYY-MM-DD') AS event_date, r.rehearsal_focus_area AS focus_area").
		Joins("LEFT JOIN rehearsals r ON r.rehearsal_event_id = e.event_id").
		Where("e.event_id = ?", id).
		Take(&row).Error
	if err != nil {
		return engine.Event{}, err
	}

	ev := engine.Event{ID: row.EventID.String()}
	if d, err := timeParseDate(row.EventDate); err == nil {
		ev.DisplayName = "Rehearsal " + d.Format("Jan 02, 2006")
	}
	if row.FocusArea != nil {
		ev.FocusArea = *row.FocusArea
	}
	return ev, nil
}

func firstQuery(c *fiber.Ctx, names ...string) string {
	for _, n := range names {
		if v := c.Query(n); v != "" {
			return v
		}
	}
	return ""
}
