package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"womim_backend/internals/features/members/model"
)

/* =========================================================
   CREATE (public registration)
   ========================================================= */

type RegisterMemberRequest struct {
	// Part A
	Surname        string `json:"surname" validate:"required,min=2,max=80"`
	FirstName      string `json:"first_name" validate:"required,min=2,max=80"`
	ContactAddress string `json:"contact_address" validate:"required,max=500"`
	Email          string `json:"email" validate:"required,email"`
	MobileNumber   string `json:"mobile_number" validate:"required,min=7,max=32"`
	DateOfBirth    string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender         string `json:"gender" validate:"required,oneof=Male Female Other"`
	MaritalStatus  string `json:"marital_status" validate:"required,oneof=Single Married Divorced Widowed"`
	WhatsappNumber string `json:"whatsapp_number" validate:"omitempty,max=32"`
	SocialMediaID  string `json:"social_media_id" validate:"omitempty,max=120"`

	// Part B
	IsBornAgain           bool   `json:"is_born_again"`
	HolyGhostBaptism      bool   `json:"holy_ghost_baptism"`
	LocalChurchName       string `json:"local_church_name" validate:"omitempty,max=160"`
	LocalChurchAddress    string `json:"local_church_address" validate:"omitempty,max=500"`
	AcademicQualification string `json:"academic_qualification" validate:"omitempty,max=120"`
	JobStatus             string `json:"job_status" validate:"omitempty,oneof=Employed Unemployed Self-employed"`
	Profession            string `json:"profession" validate:"omitempty,max=120"`

	Role string `json:"role" validate:"required,oneof=Chorister Instrumentalist Usher Conductor Other"`
}

func (in *RegisterMemberRequest) ToModel() *model.MemberModel {
	dob, _ := time.Parse("2006-01-02", strings.TrimSpace(in.DateOfBirth))
	return &model.MemberModel{
		MemberSurname:        strings.TrimSpace(in.Surname),
		MemberFirstName:      strings.TrimSpace(in.FirstName),
		MemberContactAddress: strings.TrimSpace(in.ContactAddress),
		MemberEmail:          strings.ToLower(strings.TrimSpace(in.Email)),
		MemberMobileNumber:   strings.TrimSpace(in.MobileNumber),
		MemberDateOfBirth:    datatypes.Date(dob),
		MemberGender:         in.Gender,
		MemberMaritalStatus:  in.MaritalStatus,
		MemberWhatsappNumber: strings.TrimSpace(in.WhatsappNumber),
		MemberSocialMediaID:  strings.TrimSpace(in.SocialMediaID),

		MemberIsBornAgain:           in.IsBornAgain,
		MemberHolyGhostBaptism:      in.HolyGhostBaptism,
		MemberLocalChurchName:       strings.TrimSpace(in.LocalChurchName),
		MemberLocalChurchAddress:    strings.TrimSpace(in.LocalChurchAddress),
		MemberAcademicQualification: strings.TrimSpace(in.AcademicQualification),
		MemberJobStatus:             in.JobStatus,
		MemberProfession:            strings.TrimSpace(in.Profession),

		MemberRole: in.Role,
	}
}

/* =========================================================
   RESPONSES
   ========================================================= */

type MemberResponse struct {
	ID                 uuid.UUID `json:"id"`
	Surname            string    `json:"surname"`
	FirstName          string    `json:"first_name"`
	Email              string    `json:"email"`
	MobileNumber       string    `json:"mobile_number"`
	Role               string    `json:"role"`
	Status             string    `json:"status"`
	RegistrationNumber string    `json:"registration_number"`
	CreatedAt          time.Time `json:"created_at"`
}

func NewMemberResponse(m *model.MemberModel) MemberResponse {
	return MemberResponse{
		ID:                 m.MemberID,
		Surname:            m.MemberSurname,
		FirstName:          m.MemberFirstName,
		Email:              m.MemberEmail,
		MobileNumber:       m.MemberMobileNumber,
		Role:               m.MemberRole,
		Status:             m.MemberStatus,
		RegistrationNumber: RegistrationNumberFor(m),
		CreatedAt:          m.MemberCreatedAt,
	}
}

/* =========================================================
   Normalization
   ========================================================= */

// RegistrationNumberFor resolves a member's registration number, deriving
// the legacy "WOM"+id-prefix form for rows registered before numbers were
// assigned. Runs once at ingestion; consumers never fall back themselves.
func RegistrationNumberFor(m *model.MemberModel) string {
	if m.MemberRegistrationNumber != nil {
		if n := strings.TrimSpace(*m.MemberRegistrationNumber); n != "" {
			return n
		}
	}
	id := m.MemberID.String()
	if len(id) > 4 {
		id = id[:4]
	}
	return "WOM" + id
}
