package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type RehearsalType string

const (
	RehearsalTypeRegular RehearsalType = "regular"
	RehearsalTypeSpecial RehearsalType = "special"
	RehearsalTypeDress   RehearsalType = "dress_rehearsal"
)

type RehearsalModel struct {
	RehearsalID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:rehearsal_id" json:"rehearsal_id"`
	RehearsalEventID         uuid.UUID      `gorm:"type:uuid;not null;column:rehearsal_event_id;index:idx_rehearsals_event" json:"rehearsal_event_id"`
	RehearsalNumber          int            `gorm:"not null;default:1;column:rehearsal_number" json:"rehearsal_number"`
	RehearsalType            RehearsalType  `gorm:"type:varchar(24);not null;default:regular;column:rehearsal_type" json:"rehearsal_type"`
	RehearsalFocusArea       *string        `gorm:"type:varchar(160);column:rehearsal_focus_area" json:"rehearsal_focus_area,omitempty"`
	RehearsalSongsToPractice pq.StringArray `gorm:"type:text[];column:rehearsal_songs_to_practice" json:"rehearsal_songs_to_practice"`
	RehearsalNotes           string         `gorm:"type:text;not null;default:'';column:rehearsal_notes" json:"rehearsal_notes"`
	RehearsalCreatedAt       time.Time      `gorm:"column:rehearsal_created_at;autoCreateTime" json:"rehearsal_created_at"`
}

func (RehearsalModel) TableName() string {
	return "rehearsals"
}

// RehearsalDetailModel maps the rehearsal_details view (events joined with
// rehearsals). Read-only.
type RehearsalDetailModel struct {
	EventID         uuid.UUID      `gorm:"column:event_id" json:"event_id"`
	Title           string         `gorm:"column:title" json:"title"`
	Date            datatypes.Date `gorm:"column:date" json:"date"`
	StartTime       *string        `gorm:"column:start_time" json:"start_time,omitempty"`
	EndTime         *string        `gorm:"column:end_time" json:"end_time,omitempty"`
	Location        *string        `gorm:"column:location" json:"location,omitempty"`
	Status          string         `gorm:"column:status" json:"status"`
	RehearsalNum    int            `gorm:"column:rehearsal_number" json:"rehearsal_number"`
	RehearsalType   string         `gorm:"column:rehearsal_type" json:"rehearsal_type"`
	FocusArea       *string        `gorm:"column:focus_area" json:"focus_area,omitempty"`
	SongsToPractice pq.StringArray `gorm:"type:text[];column:songs_to_practice" json:"songs_to_practice"`
	Notes           string         `gorm:"column:notes" json:"notes"`
}

func (RehearsalDetailModel) TableName() string {
	return "rehearsal_details"
}
