package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MemberModel struct {
	// PK
	MemberID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:member_id" json:"member_id"`

	// Part A - personal information
	MemberSurname        string         `gorm:"type:varchar(80);not null;column:member_surname" json:"member_surname"`
	MemberFirstName      string         `gorm:"type:varchar(80);not null;column:member_first_name" json:"member_first_name"`
	MemberContactAddress string         `gorm:"type:text;not null;column:member_contact_address" json:"member_contact_address"`
	MemberEmail          string         `gorm:"type:varchar(255);not null;uniqueIndex:uq_members_email;column:member_email" json:"member_email"`
	MemberMobileNumber   string         `gorm:"type:varchar(32);not null;uniqueIndex:uq_members_mobile;column:member_mobile_number" json:"member_mobile_number"`
	MemberDateOfBirth    datatypes.Date `gorm:"column:member_date_of_birth" json:"member_date_of_birth"`
	MemberGender         string         `gorm:"type:varchar(16);not null;column:member_gender" json:"member_gender"`
	MemberMaritalStatus  string         `gorm:"type:varchar(16);not null;column:member_marital_status" json:"member_marital_status"`
	MemberWhatsappNumber string         `gorm:"type:varchar(32);column:member_whatsapp_number" json:"member_whatsapp_number"`
	MemberSocialMediaID  string         `gorm:"type:varchar(120);column:member_social_media_id" json:"member_social_media_id"`

	// Part B - spiritual information
	MemberIsBornAgain           bool    `gorm:"not null;default:false;column:member_is_born_again" json:"member_is_born_again"`
	MemberHolyGhostBaptism      bool    `gorm:"not null;default:false;column:member_holy_ghost_baptism" json:"member_holy_ghost_baptism"`
	MemberLocalChurchName       string  `gorm:"type:varchar(160);column:member_local_church_name" json:"member_local_church_name"`
	MemberLocalChurchAddress    string  `gorm:"type:text;column:member_local_church_address" json:"member_local_church_address"`
	MemberAcademicQualification string  `gorm:"type:varchar(120);column:member_academic_qualification" json:"member_academic_qualification"`
	MemberJobStatus             string  `gorm:"type:varchar(24);column:member_job_status" json:"member_job_status"`
	MemberProfession            string  `gorm:"type:varchar(120);column:member_profession" json:"member_profession"`
	MemberPhotoURL              *string `gorm:"type:text;column:member_photo_url" json:"member_photo_url,omitempty"`

	// System fields
	MemberStatus             string  `gorm:"type:varchar(16);not null;default:pending;column:member_status;index:idx_members_status" json:"member_status"`
	MemberRole               string  `gorm:"type:varchar(24);not null;default:Chorister;column:member_role;index:idx_members_role" json:"member_role"`
	MemberRegistrationNumber *string `gorm:"type:varchar(24);uniqueIndex:uq_members_registration_number;column:member_registration_number" json:"member_registration_number,omitempty"`

	MemberCreatedAt time.Time `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt time.Time `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at"`
}

func (MemberModel) TableName() string {
	return "members"
}
