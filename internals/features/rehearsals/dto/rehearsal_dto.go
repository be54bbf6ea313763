package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"womim_backend/internals/features/rehearsals/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateRehearsalRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
	FocusArea string `json:"focusArea" validate:"omitempty,max=160"`
	// Songs: comma or newline separated list
	Songs string `json:"songs" validate:"omitempty,max=2000"`
}

// SplitSongs breaks the free-text songs field on commas and newlines,
// dropping empty entries.
func (in *CreateRehearsalRequest) SplitSongs() []string {
	raw := strings.FieldsFunc(in.Songs, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

/* =========================================================
   RESPONSES
   ========================================================= */

// RehearsalDetailResponse is the stable shape the attendance UI depends on:
// {event_id, display_name, focus_area} plus display metadata. Both the view
// read and the events-table fallback produce it.
type RehearsalDetailResponse struct {
	EventID         uuid.UUID `json:"event_id"`
	Title           string    `json:"title"`
	Date            string    `json:"date"`
	StartTime       *string   `json:"start_time,omitempty"`
	EndTime         *string   `json:"end_time,omitempty"`
	Location        *string   `json:"location,omitempty"`
	Status          string    `json:"status"`
	RehearsalNumber int       `json:"rehearsal_number"`
	RehearsalType   string    `json:"rehearsal_type"`
	FocusArea       *string   `json:"focus_area,omitempty"`
	SongsToPractice []string  `json:"songs_to_practice"`
	Notes           string    `json:"notes"`
	DisplayName     string    `json:"display_name"`
}

// DisplayNameFor derives the selector label from the event date, e.g.
// "Rehearsal Sep 01, 2026".
func DisplayNameFor(date time.Time) string {
	return "Rehearsal " + date.Format("Jan 02, 2006")
}

func NewRehearsalDetailResponse(m *model.RehearsalDetailModel) RehearsalDetailResponse {
	d := time.Time(m.Date)
	songs := []string(m.SongsToPractice)
	if songs == nil {
		songs = []string{}
	}
	return RehearsalDetailResponse{
		EventID:         m.EventID,
		Title:           m.Title,
		Date:            d.Format("2006-01-02"),
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		Location:        m.Location,
		Status:          m.Status,
		RehearsalNumber: m.RehearsalNum,
		RehearsalType:   m.RehearsalType,
		FocusArea:       m.FocusArea,
		SongsToPractice: songs,
		Notes:           m.Notes,
		DisplayName:     DisplayNameFor(d),
	}
}

// FromEventFallback synthesizes the view shape from a bare events row when
// the rehearsal_details view is missing.
func FromEventFallback(ev *model.EventModel) RehearsalDetailResponse {
	d := time.Time(ev.EventDate)
	return RehearsalDetailResponse{
		EventID:         ev.EventID,
		Title:           ev.EventTitle,
		Date:            d.Format("2006-01-02"),
		StartTime:       ev.EventStartTime,
		EndTime:         ev.EventEndTime,
		Location:        ev.EventLocation,
		Status:          string(ev.EventStatus),
		RehearsalNumber: 1,
		RehearsalType:   string(model.RehearsalTypeRegular),
		FocusArea:       nil,
		SongsToPractice: []string{},
		Notes:           "",
		DisplayName:     DisplayNameFor(d),
	}
}
