package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EventType string

const (
	EventTypeRehearsal   EventType = "rehearsal"
	EventTypePerformance EventType = "performance"
	EventTypeMeeting     EventType = "meeting"
	EventTypeOther       EventType = "other"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

type EventModel struct {
	EventID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:event_id" json:"event_id"`
	EventTitle        string         `gorm:"type:varchar(160);not null;column:event_title" json:"event_title"`
	EventType         EventType      `gorm:"type:varchar(24);not null;default:other;column:event_type;index:idx_events_type" json:"event_type"`
	EventDescription  *string        `gorm:"type:text;column:event_description" json:"event_description,omitempty"`
	EventDate         datatypes.Date `gorm:"not null;column:event_date;index:idx_events_date" json:"event_date"`
	EventStartTime    *string        `gorm:"type:varchar(8);column:event_start_time" json:"event_start_time,omitempty"`
	EventEndTime      *string        `gorm:"type:varchar(8);column:event_end_time" json:"event_end_time,omitempty"`
	EventLocation     *string        `gorm:"type:varchar(160);column:event_location" json:"event_location,omitempty"`
	EventStatus       EventStatus    `gorm:"type:varchar(16);not null;default:upcoming;column:event_status" json:"event_status"`
	EventMaxAttendees *int           `gorm:"column:event_max_attendees" json:"event_max_attendees,omitempty"`
	EventCreatedAt    time.Time      `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt    time.Time      `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}
