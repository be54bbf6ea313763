package dto

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"womim_backend/internals/features/rehearsals/model"
)

func TestDisplayNameFor(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), "Rehearsal Sep 01, 2026"},
		{time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), "Rehearsal Dec 25, 2025"},
		{time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC), "Rehearsal Jan 03, 2026"},
	}
	for _, tt := range tests {
		if got := DisplayNameFor(tt.date); got != tt.want {
			t.Fatalf("DisplayNameFor(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestSplitSongs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"commas", "Total Praise, Hallelujah Chorus", []string{"Total Praise", "Hallelujah Chorus"}},
		{"newlines", "Total Praise\nHallelujah Chorus", []string{"Total Praise", "Hallelujah Chorus"}},
		{"mixed with blanks", "Total Praise,\n , Amazing Grace", []string{"Total Praise", "Amazing Grace"}},
		{"empty", "", []string{}},
		{"only separators", ",,\n,", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateRehearsalRequest{Songs: tt.in}
			if got := req.SplitSongs(); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SplitSongs(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromEventFallback(t *testing.T) {
	id := uuid.New()
	start := "18:00"
	end := "20:00"
	loc := "Main Auditorium"
	ev := model.EventModel{
		EventID:        id,
		EventTitle:     "Weekly Rehearsal",
		EventDate:      datatypes.Date(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
		EventStartTime: &start,
		EventEndTime:   &end,
		EventLocation:  &loc,
		EventStatus:    model.EventStatusUpcoming,
	}

	got := FromEventFallback(&ev)

	if got.EventID != id {
		t.Fatalf("event id: %v", got.EventID)
	}
	if got.Date != "2026-09-01" {
		t.Fatalf("date: %q", got.Date)
	}
	if got.DisplayName != "Rehearsal Sep 01, 2026" {
		t.Fatalf("display name: %q", got.DisplayName)
	}
	if got.RehearsalType != string(model.RehearsalTypeRegular) || got.RehearsalNumber != 1 {
		t.Fatalf("fallback defaults: %+v", got)
	}
	if got.SongsToPractice == nil || len(got.SongsToPractice) != 0 {
		t.Fatalf("songs must be an empty slice, got %#v", got.SongsToPractice)
	}
}
