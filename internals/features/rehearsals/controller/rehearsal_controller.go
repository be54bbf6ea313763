package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"womim_backend/internals/features/rehearsals/dto"
	"womim_backend/internals/features/rehearsals/model"
	helper "womim_backend/internals/helpers"
)

type RehearsalController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRehearsalController(db *gorm.DB) *RehearsalController {
	return &RehearsalController{
		DB:        db,
		Validator: validator.New(),
	}
}

// GET /api/rehearsals
// Reads the rehearsal_details view; when the view is missing, falls back to
// scanning the events table and synthesizing the same shape. The fallback is
// a provider concern only; consumers always get the stable view shape.
func (ctl *RehearsalController) List(c *fiber.Ctx) error {
	var rows []model.RehearsalDetailModel
	err := ctl.DB.WithContext(c.Context()).
		Order("date DESC").
		Find(&rows).Error
	if err == nil {
		out := make([]dto.RehearsalDetailResponse, 0, len(rows))
		for i := range rows {
			out = append(out, dto.NewRehearsalDetailResponse(&rows[i]))
		}
		return helper.JsonOK(c, "ok", out)
	}

	if !helper.IsUndefinedTable(err) {
		log.Printf("[ERROR] list rehearsal_details: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// view missing: events-table fallback
	var events []model.EventModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("event_type = ?", model.EventTypeRehearsal).
		Order("event_date DESC").
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] list events fallback: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.RehearsalDetailResponse, 0, len(events))
	for i := range events {
		out = append(out, dto.FromEventFallback(&events[i]))
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /api/rehearsals/:id
func (ctl *RehearsalController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var row model.RehearsalDetailModel
	err = ctl.DB.WithContext(c.Context()).
		Where("event_id = ?", id).
		First(&row).Error
	if err == nil {
		return helper.JsonOK(c, "ok", dto.NewRehearsalDetailResponse(&row))
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Rehearsal not found")
	}
	if helper.IsUndefinedTable(err) {
		var ev model.EventModel
		if err := ctl.DB.WithContext(c.Context()).
			Where("event_id = ? AND event_type = ?", id, model.EventTypeRehearsal).
			First(&ev).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Rehearsal not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonOK(c, "ok", dto.FromEventFallback(&ev))
	}
	log.Printf("[ERROR] get rehearsal: %v", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// POST /api/rehearsals (admin)
// Creates the event row, then the rehearsal row, and echoes the detail shape.
func (ctl *RehearsalController) Create(c *fiber.Ctx) error {
	var req dto.CreateRehearsalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Date, start time, and end time are required")
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(req.Date))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date invalid format, expected YYYY-MM-DD")
	}

	desc := "Weekly choir rehearsal"
	if fa := strings.TrimSpace(req.FocusArea); fa != "" {
		desc = "Focus: " + fa
	}
	location := "Main Auditorium"
	maxAttendees := 100

	ev := model.EventModel{
		EventTitle:        "Weekly Rehearsal",
		EventType:         model.EventTypeRehearsal,
		EventDescription:  &desc,
		EventDate:         datatypes.Date(date),
		EventStartTime:    &req.StartTime,
		EventEndTime:      &req.EndTime,
		EventLocation:     &location,
		EventStatus:       model.EventStatusUpcoming,
		EventMaxAttendees: &maxAttendees,
	}

	reh := model.RehearsalModel{
		RehearsalNumber:          1,
		RehearsalType:            model.RehearsalTypeRegular,
		RehearsalSongsToPractice: req.SplitSongs(),
	}
	if fa := strings.TrimSpace(req.FocusArea); fa != "" {
		reh.RehearsalFocusArea = &fa
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ev).Error; err != nil {
			return err
		}
		reh.RehearsalEventID = ev.EventID
		return tx.Create(&reh).Error
	})
	if err != nil {
		log.Printf("[ERROR] create rehearsal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.RehearsalDetailResponse{
		EventID:         ev.EventID,
		Title:           ev.EventTitle,
		Date:            date.Format("2006-01-02"),
		StartTime:       ev.EventStartTime,
		EndTime:         ev.EventEndTime,
		Location:        ev.EventLocation,
		Status:          string(ev.EventStatus),
		RehearsalNumber: reh.RehearsalNumber,
		RehearsalType:   string(reh.RehearsalType),
		FocusArea:       reh.RehearsalFocusArea,
		SongsToPractice: reh.RehearsalSongsToPractice,
		Notes:           reh.RehearsalNotes,
		DisplayName:     dto.DisplayNameFor(date),
	}
	return helper.JsonCreated(c, "Rehearsal added successfully!", resp)
}
