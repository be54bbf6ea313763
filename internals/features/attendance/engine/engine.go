// Package engine maintains the editable in-memory attendance sheet for the
// full roster against one selected rehearsal, reconciling it with persisted
// records on load and on save.
//
// The engine is single-goroutine by construction: every operation runs from
// one request/UI handler at a time, never concurrently.
package engine

import (
	"context"
	"errors"
)

var ErrNoEventSelected = errors.New("no rehearsal selected")

// Member is a normalized roster entry: the registration number is always
// populated (fallbacks happen at ingestion, not here).
type Member struct {
	ID                 string
	Surname            string
	FirstName          string
	RegistrationNumber string
	Role               string
}

// Event identifies the rehearsal scoping save/export.
type Event struct {
	ID          string
	DisplayName string
	FocusArea   string
}

// PersistedRecord is a stored attendance row for one member of one event.
type PersistedRecord struct {
	MemberID string
	Status   Status
	Notes    string
}

// RecordPayload is one persistence-ready row produced by Save.
type RecordPayload struct {
	EventID  string
	MemberID string
	Status   Status
	Notes    string
}

// WorkingRecord is the per-member projection the admin edits. It has no
// identity of its own; it is keyed by the member id.
type WorkingRecord struct {
	Member Member
	Status Status
	Notes  string
}

type RosterProvider interface {
	Roster(ctx context.Context) ([]Member, error)
}

type Store interface {
	RecordsForEvent(ctx context.Context, eventID string) ([]PersistedRecord, error)
	SaveAll(ctx context.Context, rows []RecordPayload) error
}

type Engine struct {
	roster RosterProvider
	store  Store

	records []WorkingRecord
	index   map[string]int // member id -> records position
	event   *Event
}

func New(roster RosterProvider, store Store) *Engine {
	return &Engine{
		roster: roster,
		store:  store,
		index:  map[string]int{},
	}
}

// LoadRoster replaces the working set with one default row per member:
// status present, empty notes, no event scope. On provider error the set
// becomes empty rather than keeping stale rows.
func (e *Engine) LoadRoster(ctx context.Context) error {
	members, err := e.roster.Roster(ctx)
	if err != nil {
		e.records = nil
		e.index = map[string]int{}
		return err
	}

	e.records = make([]WorkingRecord, 0, len(members))
	e.index = make(map[string]int, len(members))
	for _, m := range members {
		e.index[m.ID] = len(e.records)
		e.records = append(e.records, WorkingRecord{
			Member: m,
			Status: StatusPresent,
			Notes:  "",
		})
	}
	return nil
}

// SelectEvent scopes save/export to ev and overlays its persisted records.
// Roster rows are never discarded; only status/notes get overwritten where
// stored data exists.
func (e *Engine) SelectEvent(ctx context.Context, ev Event) error {
	e.event = &ev
	return e.ReconcileForEvent(ctx, ev.ID)
}

// ReconcileForEvent overlays persisted records for eventID onto the working
// set. Rows without a stored record keep their current values: absence of a
// record means "not yet recorded", not "absent". Idempotent.
//
// The fetch is tagged with the event id; if the selection changed while the
// fetch was in flight the response is discarded instead of being applied to
// the wrong sheet.
func (e *Engine) ReconcileForEvent(ctx context.Context, eventID string) error {
	persisted, err := e.store.RecordsForEvent(ctx, eventID)
	if err != nil {
		// fail-open: keep last-known-good working set
		return err
	}

	if e.event == nil || e.event.ID != eventID {
		// stale response for a deselected event
		return nil
	}

	for _, p := range persisted {
		i, ok := e.index[p.MemberID]
		if !ok {
			continue
		}
		e.records[i].Status = p.Status
		e.records[i].Notes = p.Notes
	}
	return nil
}

// SetStatus overwrites the row for memberID. Unknown ids are a no-op.
func (e *Engine) SetStatus(memberID string, status Status) {
	if i, ok := e.index[memberID]; ok {
		e.records[i].Status = status
	}
}

// SetNotes overwrites the row's notes. Unknown ids are a no-op.
func (e *Engine) SetNotes(memberID, notes string) {
	if i, ok := e.index[memberID]; ok {
		e.records[i].Notes = notes
	}
}

// MarkAllPresent sets every row to present, including rows hidden by the
// active filter. Notes are untouched.
func (e *Engine) MarkAllPresent() {
	for i := range e.records {
		e.records[i].Status = StatusPresent
	}
}

// ClearEventSelection drops the event scope and resets every row to the
// seed state (present, empty notes). Without a scope, keeping edits would
// risk saving them against the wrong rehearsal later.
func (e *Engine) ClearEventSelection() {
	e.event = nil
	for i := range e.records {
		e.records[i].Status = StatusPresent
		e.records[i].Notes = ""
	}
}

// Event returns the scoped event, or nil.
func (e *Engine) Event() *Event {
	if e.event == nil {
		return nil
	}
	ev := *e.event
	return &ev
}

// Records returns the full working set in roster order.
func (e *Engine) Records() []WorkingRecord {
	out := make([]WorkingRecord, len(e.records))
	copy(out, e.records)
	return out
}

// SavePayload transforms the working set into persistence-ready rows.
// Fails when no event is selected; never touches the network.
func (e *Engine) SavePayload() ([]RecordPayload, error) {
	if e.event == nil {
		return nil, ErrNoEventSelected
	}
	rows := make([]RecordPayload, 0, len(e.records))
	for _, r := range e.records {
		rows = append(rows, RecordPayload{
			EventID:  e.event.ID,
			MemberID: r.Member.ID,
			Status:   r.Status,
			Notes:    r.Notes,
		})
	}
	return rows, nil
}

// Save delegates the consolidated sheet to the store's upsert. The store
// call is all-or-nothing; on failure the working set keeps the edits for a
// retry. No re-fetch on success: a slower round trip must not clobber
// in-flight local edits (concurrent admins are last-write-wins).
func (e *Engine) Save(ctx context.Context) error {
	rows, err := e.SavePayload()
	if err != nil {
		return err
	}
	return e.store.SaveAll(ctx, rows)
}
