package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"womim_backend/internals/features/attendance/engine"
	"womim_backend/internals/features/attendance/model"
	memberDTO "womim_backend/internals/features/members/dto"
	memberModel "womim_backend/internals/features/members/model"
)

/* =========================================================
   Attendance store (engine.Store)
   ========================================================= */

type AttendanceStore struct {
	DB *gorm.DB
	// RecordedBy stamps who saved the sheet; nil when unknown.
	RecordedBy *uuid.UUID
}

func NewAttendanceStore(db *gorm.DB) *AttendanceStore {
	return &AttendanceStore{DB: db}
}

func (s *AttendanceStore) RecordsForEvent(ctx context.Context, eventID string) ([]engine.PersistedRecord, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, err
	}

	var rows []model.AttendanceRecordModel
	if err := s.DB.WithContext(ctx).
		Where("attendance_record_event_id = ?", id).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]engine.PersistedRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, engine.PersistedRecord{
			MemberID: r.AttendanceRecordMemberID.String(),
			Status:   r.AttendanceRecordStatus,
			Notes:    r.AttendanceRecordNotes,
		})
	}
	return out, nil
}

// SaveAll upserts every row keyed on (event_id, member_id) in one statement:
// existing pairs are overwritten, new pairs inserted, so the pair stays
// unique no matter how often a sheet is saved. Statuses that check in
// (present/late) get check_in_time stamped; others store NULL.
func (s *AttendanceStore) SaveAll(ctx context.Context, rows []engine.RecordPayload) error {
	if len(rows) == 0 {
		return nil
	}

	now := time.Now().UTC()
	models := make([]model.AttendanceRecordModel, 0, len(rows))
	for _, r := range rows {
		eventID, err := uuid.Parse(r.EventID)
		if err != nil {
			return err
		}
		memberID, err := uuid.Parse(r.MemberID)
		if err != nil {
			return err
		}

		rec := model.AttendanceRecordModel{
			AttendanceRecordEventID:    eventID,
			AttendanceRecordMemberID:   memberID,
			AttendanceRecordStatus:     r.Status,
			AttendanceRecordNotes:      r.Notes,
			AttendanceRecordRecordedBy: s.RecordedBy,
		}
		if r.Status.ChecksIn() {
			t := now
			rec.AttendanceRecordCheckInTime = &t
		}
		models = append(models, rec)
	}

	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_record_event_id"},
				{Name: "attendance_record_member_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_record_status",
				"attendance_record_notes",
				"attendance_record_check_in_time",
				"attendance_record_recorded_by",
				"attendance_record_updated_at",
			}),
		}).
		Create(&models).Error
}

/* =========================================================
   Roster provider (engine.RosterProvider)
   ========================================================= */

type RosterService struct {
	DB *gorm.DB
}

func NewRosterService(db *gorm.DB) *RosterService {
	return &RosterService{DB: db}
}

// Roster loads all members in registration order, normalized so every entry
// carries a registration number.
func (s *RosterService) Roster(ctx context.Context) ([]engine.Member, error) {
	var rows []memberModel.MemberModel
	if err := s.DB.WithContext(ctx).
		Order("member_created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]engine.Member, 0, len(rows))
	for i := range rows {
		m := &rows[i]
		out = append(out, engine.Member{
			ID:                 m.MemberID.String(),
			Surname:            m.MemberSurname,
			FirstName:          m.MemberFirstName,
			RegistrationNumber: memberDTO.RegistrationNumberFor(m),
			Role:               m.MemberRole,
		})
	}
	return out, nil
}
