package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"womim_backend/internals/features/members/model"
)

func strptr(s string) *string { return &s }

func TestRegistrationNumberFor(t *testing.T) {
	id := uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")

	tests := []struct {
		name   string
		member model.MemberModel
		want   string
	}{
		{
			"assigned number wins",
			model.MemberModel{MemberID: id, MemberRegistrationNumber: strptr("WOM0042")},
			"WOM0042",
		},
		{
			"assigned number trimmed",
			model.MemberModel{MemberID: id, MemberRegistrationNumber: strptr("  WOM0042  ")},
			"WOM0042",
		},
		{
			"nil falls back to id prefix",
			model.MemberModel{MemberID: id},
			"WOMa1b2",
		},
		{
			"blank falls back to id prefix",
			model.MemberModel{MemberID: id, MemberRegistrationNumber: strptr("   ")},
			"WOMa1b2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RegistrationNumberFor(&tt.member); got != tt.want {
				t.Fatalf("RegistrationNumberFor = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToModelNormalizes(t *testing.T) {
	in := RegisterMemberRequest{
		Surname:        "  Doe ",
		FirstName:      " Jane",
		ContactAddress: " 1 Choir Road ",
		Email:          "  Jane.Doe@Example.COM ",
		MobileNumber:   " +2348012345678 ",
		DateOfBirth:    "1994-03-15",
		Gender:         "Female",
		MaritalStatus:  "Single",
		Role:           "Chorister",
	}

	m := in.ToModel()

	if m.MemberSurname != "Doe" || m.MemberFirstName != "Jane" {
		t.Fatalf("names not trimmed: %q %q", m.MemberSurname, m.MemberFirstName)
	}
	if m.MemberEmail != "jane.doe@example.com" {
		t.Fatalf("email not lowercased: %q", m.MemberEmail)
	}
	if m.MemberMobileNumber != "+2348012345678" {
		t.Fatalf("mobile not trimmed: %q", m.MemberMobileNumber)
	}
	dob := time.Time(m.MemberDateOfBirth)
	if dob.Year() != 1994 || dob.Month() != time.March || dob.Day() != 15 {
		t.Fatalf("dob not parsed: %v", dob)
	}
	if m.MemberRole != "Chorister" {
		t.Fatalf("role: %q", m.MemberRole)
	}
}

func TestNewMemberResponseUsesNormalizedNumber(t *testing.T) {
	id := uuid.MustParse("deadbeef-0000-0000-0000-000000000000")
	m := model.MemberModel{
		MemberID:        id,
		MemberSurname:   "Doe",
		MemberFirstName: "Jane",
		MemberEmail:     "jane@example.com",
		MemberRole:      "Chorister",
		MemberStatus:    "approved",
	}

	resp := NewMemberResponse(&m)
	if resp.RegistrationNumber != "WOMdead" {
		t.Fatalf("fallback number not applied: %q", resp.RegistrationNumber)
	}
	if resp.ID != id || resp.Status != "approved" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
