package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"womim_backend/internals/features/members/dto"
	"womim_backend/internals/features/members/model"
	helper "womim_backend/internals/helpers"
)

type MemberController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/register (public)
func (ctl *MemberController) Register(c *fiber.Ctx) error {
	var req dto.RegisterMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A member with this email or mobile number is already registered")
		}
		log.Printf("[ERROR] create member: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	// assign registration number derived from the new id when none was given
	if m.MemberRegistrationNumber == nil {
		regNo := dto.RegistrationNumberFor(m)
		if err := ctl.DB.WithContext(c.Context()).
			Model(&model.MemberModel{}).
			Where("member_id = ?", m.MemberID).
			Update("member_registration_number", regNo).Error; err != nil {
			log.Printf("[WARN] assign registration number: %v", err)
		} else {
			m.MemberRegistrationNumber = &regNo
		}
	}

	return helper.JsonCreated(c, "Registration submitted successfully!", dto.NewMemberResponse(m))
}

// GET /api/members (admin) - roster ordered by newest first
func (ctl *MemberController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.MemberModel{}).
		Count(&total).Error; err != nil {
		if helper.IsUndefinedTable(err) {
			return helper.JsonList(c, "ok", []dto.MemberResponse{}, nil)
		}
		log.Printf("[ERROR] count members: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	var rows []model.MemberModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("member_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		if helper.IsUndefinedTable(err) {
			return helper.JsonList(c, "ok", []dto.MemberResponse{}, nil)
		}
		log.Printf("[ERROR] list members: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	out := make([]dto.MemberResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewMemberResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/members/:id (admin)
func (ctl *MemberController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var m model.MemberModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("member_id = ?", id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
		}
		log.Printf("[ERROR] get member: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonOK(c, "ok", m)
}

// PATCH /api/members/:id/status (admin) - approve or reject a registration
func (ctl *MemberController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid member id")
	}

	var req struct {
		Status string `json:"status" validate:"required,oneof=pending approved rejected"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctl.DB.WithContext(c.Context()).
		Model(&model.MemberModel{}).
		Where("member_id = ?", id).
		Update("member_status", req.Status)
	if res.Error != nil {
		log.Printf("[ERROR] update member status: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Member not found")
	}
	return helper.JsonUpdated(c, "Member status updated", fiber.Map{"id": id, "status": req.Status})
}
