package model

import (
	"time"

	"github.com/google/uuid"

	"womim_backend/internals/features/attendance/engine"
)

// AttendanceRecordModel persists one status per (event, member) pair. The
// pair carries a unique constraint; writes go through an upsert so the pair
// can never duplicate.
type AttendanceRecordModel struct {
	AttendanceRecordID           uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`
	AttendanceRecordEventID      uuid.UUID     `gorm:"type:uuid;not null;column:attendance_record_event_id;uniqueIndex:uq_attendance_event_member,priority:1;index:idx_attendance_event" json:"attendance_record_event_id"`
	AttendanceRecordMemberID     uuid.UUID     `gorm:"type:uuid;not null;column:attendance_record_member_id;uniqueIndex:uq_attendance_event_member,priority:2;index:idx_attendance_member" json:"attendance_record_member_id"`
	AttendanceRecordStatus       engine.Status `gorm:"type:varchar(16);not null;default:present;column:attendance_record_status" json:"attendance_record_status"`
	AttendanceRecordCheckInTime  *time.Time    `gorm:"column:attendance_record_check_in_time" json:"attendance_record_check_in_time,omitempty"`
	AttendanceRecordCheckOutTime *time.Time    `gorm:"column:attendance_record_check_out_time" json:"attendance_record_check_out_time,omitempty"`
	AttendanceRecordNotes        string        `gorm:"type:text;not null;default:'';column:attendance_record_notes" json:"attendance_record_notes"`
	AttendanceRecordRecordedBy   *uuid.UUID    `gorm:"type:uuid;column:attendance_record_recorded_by" json:"attendance_record_recorded_by,omitempty"`
	AttendanceRecordCreatedAt    time.Time     `gorm:"column:attendance_record_created_at;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt    time.Time     `gorm:"column:attendance_record_updated_at;autoUpdateTime" json:"attendance_record_updated_at"`
}

func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}
