package dto

import (
	"strings"
	"testing"

	"womim_backend/internals/features/attendance/engine"
)

func TestSaveAttendanceRequestValidate(t *testing.T) {
	valid := AttendanceRecordInput{
		EventID:  "e1",
		MemberID: "m1",
		Status:   "present",
	}

	tests := []struct {
		name    string
		req     SaveAttendanceRequest
		wantErr string
	}{
		{
			"empty batch",
			SaveAttendanceRequest{},
			"Attendance data array is required",
		},
		{
			"missing member id",
			SaveAttendanceRequest{AttendanceData: []AttendanceRecordInput{{EventID: "e1", Status: "present"}}},
			"Member ID is required",
		},
		{
			"missing event id",
			SaveAttendanceRequest{AttendanceData: []AttendanceRecordInput{{MemberID: "m1", Status: "present"}}},
			"Please select a rehearsal first",
		},
		{
			"missing status",
			SaveAttendanceRequest{AttendanceData: []AttendanceRecordInput{{EventID: "e1", MemberID: "m1"}}},
			"Status is required",
		},
		{
			"invalid status",
			SaveAttendanceRequest{AttendanceData: []AttendanceRecordInput{{EventID: "e1", MemberID: "m1", Status: "tardy"}}},
			"invalid attendance status",
		},
		{
			"one bad record fails the batch",
			SaveAttendanceRequest{AttendanceData: []AttendanceRecordInput{valid, {EventID: "e1", Status: "present"}}},
			"Member ID is required",
		},
		{
			"valid batch",
			SaveAttendanceRequest{AttendanceData: []AttendanceRecordInput{valid}},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAttendanceRequestToPayload(t *testing.T) {
	req := SaveAttendanceRequest{
		AttendanceData: []AttendanceRecordInput{
			{EventID: " e1 ", MemberID: " m1 ", Status: "late", Notes: "traffic"},
			{EventID: "e1", MemberID: "m2", Status: "excused", Notes: ""},
		},
	}

	rows := req.ToPayload()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].EventID != "e1" || rows[0].MemberID != "m1" {
		t.Fatalf("ids not trimmed: %+v", rows[0])
	}
	if rows[0].Status != engine.StatusLate || rows[0].Notes != "traffic" {
		t.Fatalf("row 0: %+v", rows[0])
	}
	if rows[1].Status != engine.StatusExcused {
		t.Fatalf("row 1: %+v", rows[1])
	}
}

func TestNewWorkingRecordResponse(t *testing.T) {
	r := engine.WorkingRecord{
		Member: engine.Member{
			ID:                 "m1",
			Surname:            "Doe",
			FirstName:          "Jane",
			RegistrationNumber: "WOM0001",
			Role:               "Chorister",
		},
		Status: engine.StatusAbsent,
		Notes:  "sick",
	}

	got := NewWorkingRecordResponse(r)
	if got.MemberID != "m1" || got.Surname != "Doe" || got.RegistrationNumber != "WOM0001" {
		t.Fatalf("member fields: %+v", got)
	}
	if got.Status != engine.StatusAbsent || got.Notes != "sick" {
		t.Fatalf("status fields: %+v", got)
	}
}
