package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"womim_backend/internals/features/attendance/engine"
)

/* =========================================================
   SAVE (batch upsert)
   ========================================================= */

type AttendanceRecordInput struct {
	EventID  string `json:"event_id"`
	MemberID string `json:"member_id"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
}

type SaveAttendanceRequest struct {
	AttendanceData []AttendanceRecordInput `json:"attendanceData"`
	AdminUserID    string                  `json:"adminUserId"`
}

// Validate checks every record the way the save endpoint always has:
// missing ids or status fail the whole batch before any store call.
func (r *SaveAttendanceRequest) Validate() error {
	if len(r.AttendanceData) == 0 {
		return errors.New("Attendance data array is required")
	}
	for _, rec := range r.AttendanceData {
		if strings.TrimSpace(rec.MemberID) == "" {
			return errors.New("Member ID is required for each attendance record")
		}
		if strings.TrimSpace(rec.EventID) == "" {
			return errors.New("Event/Rehearsal ID is required for each attendance record. Please select a rehearsal first.")
		}
		if strings.TrimSpace(rec.Status) == "" {
			return errors.New("Status is required for each attendance record")
		}
		if _, err := engine.ParseStatus(rec.Status); err != nil {
			return err
		}
	}
	return nil
}

// ToPayload transforms the request into engine payload rows.
func (r *SaveAttendanceRequest) ToPayload() []engine.RecordPayload {
	rows := make([]engine.RecordPayload, 0, len(r.AttendanceData))
	for _, rec := range r.AttendanceData {
		st, _ := engine.ParseStatus(rec.Status)
		rows = append(rows, engine.RecordPayload{
			EventID:  strings.TrimSpace(rec.EventID),
			MemberID: strings.TrimSpace(rec.MemberID),
			Status:   st,
			Notes:    rec.Notes,
		})
	}
	return rows
}

/* =========================================================
   RESPONSES
   ========================================================= */

// MemberSummary is the member join shape attached to persisted rows.
type MemberSummary struct {
	ID                 uuid.UUID `json:"id"`
	Surname            string    `json:"surname"`
	FirstName          string    `json:"first_name"`
	RegistrationNumber string    `json:"registration_number"`
	Role               string    `json:"role"`
}

type AttendanceRecordResponse struct {
	ID          uuid.UUID     `json:"id"`
	EventID     uuid.UUID     `json:"event_id"`
	MemberID    uuid.UUID     `json:"member_id"`
	Status      engine.Status `json:"status"`
	CheckInTime *time.Time    `json:"check_in_time,omitempty"`
	Notes       string        `json:"notes"`
	Member      MemberSummary `json:"member"`
}

// WorkingRecordResponse is one reconciled sheet row.
type WorkingRecordResponse struct {
	MemberID           string        `json:"member_id"`
	Surname            string        `json:"surname"`
	FirstName          string        `json:"first_name"`
	RegistrationNumber string        `json:"registration_number"`
	Role               string        `json:"role"`
	Status             engine.Status `json:"status"`
	Notes              string        `json:"notes"`
}

func NewWorkingRecordResponse(r engine.WorkingRecord) WorkingRecordResponse {
	return WorkingRecordResponse{
		MemberID:           r.Member.ID,
		Surname:            r.Member.Surname,
		FirstName:          r.Member.FirstName,
		RegistrationNumber: r.Member.RegistrationNumber,
		Role:               r.Member.Role,
		Status:             r.Status,
		Notes:              r.Notes,
	}
}

type SheetResponse struct {
	EventID     string                  `json:"event_id"`
	DisplayName string                  `json:"display_name"`
	Total       int                     `json:"total"`
	Visible     int                     `json:"visible"`
	Records     []WorkingRecordResponse `json:"records"`
}
