package engine

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type fakeRoster struct {
	members []Member
	err     error
}

func (f *fakeRoster) Roster(ctx context.Context) ([]Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.members, nil
}

// fakeStore emulates the upsert-on-(event,member) contract in memory.
type fakeStore struct {
	records   map[string][]PersistedRecord
	upserted  map[[2]string]RecordPayload
	saveCalls int
	fetchErr  error
	saveErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records:  map[string][]PersistedRecord{},
		upserted: map[[2]string]RecordPayload{},
	}
}

func (f *fakeStore) RecordsForEvent(ctx context.Context, eventID string) ([]PersistedRecord, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.records[eventID], nil
}

func (f *fakeStore) SaveAll(ctx context.Context, rows []RecordPayload) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	for _, r := range rows {
		f.upserted[[2]string{r.EventID, r.MemberID}] = r
	}
	return nil
}

func testRoster(n int) []Member {
	members := make([]Member, 0, n)
	names := []struct{ surname, first string }{
		{"Doe", "Jane"}, {"Smith", "John"}, {"Brown", "Ada"}, {"Okafor", "Grace"}, {"Lee", "Hannah"},
	}
	for i := 0; i < n; i++ {
		nm := names[i%len(names)]
		members = append(members, Member{
			ID:                 string(rune('1' + i)),
			Surname:            nm.surname,
			FirstName:          nm.first,
			RegistrationNumber: "WOM000" + string(rune('1'+i)),
			Role:               "Chorister",
		})
	}
	return members
}

func seededEngine(t *testing.T, roster []Member, store Store) *Engine {
	t.Helper()
	e := New(&fakeRoster{members: roster}, store)
	if err := e.LoadRoster(context.Background()); err != nil {
		t.Fatalf("load roster: %v", err)
	}
	return e
}

func TestLoadRosterSeedsDefaults(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		e := seededEngine(t, testRoster(n), newFakeStore())
		records := e.Records()
		if len(records) != n {
			t.Fatalf("roster size %d: expected %d rows, got %d", n, n, len(records))
		}
		for _, r := range records {
			if r.Status != StatusPresent {
				t.Fatalf("expected default status present, got %q", r.Status)
			}
			if r.Notes != "" {
				t.Fatalf("expected empty notes, got %q", r.Notes)
			}
		}
	}
}

func TestLoadRosterFailSafeEmpty(t *testing.T) {
	e := seededEngine(t, testRoster(3), newFakeStore())

	provider := &fakeRoster{err: errors.New("boom")}
	e.roster = provider
	if err := e.LoadRoster(context.Background()); err == nil {
		t.Fatal("expected provider error")
	}
	if got := len(e.Records()); got != 0 {
		t.Fatalf("expected empty working set after provider failure, got %d rows", got)
	}
}

func TestSelectEventOverlaysPersisted(t *testing.T) {
	store := newFakeStore()
	store.records["E1"] = []PersistedRecord{
		{MemberID: "1", Status: StatusAbsent, Notes: "sick"},
	}
	e := seededEngine(t, []Member{
		{ID: "1", Surname: "Doe", FirstName: "Jane", RegistrationNumber: "WOM0001", Role: "Chorister"},
	}, store)

	if err := e.SelectEvent(context.Background(), Event{ID: "E1", DisplayName: "R1"}); err != nil {
		t.Fatalf("select event: %v", err)
	}

	records := e.Records()
	if len(records) != 1 {
		t.Fatalf("expected 1 row, got %d", len(records))
	}
	if records[0].Status != StatusAbsent || records[0].Notes != "sick" {
		t.Fatalf("expected absent/sick, got %s/%q", records[0].Status, records[0].Notes)
	}
}

func TestSelectEventNoPersistedKeepsDefaults(t *testing.T) {
	e := seededEngine(t, []Member{
		{ID: "1", Surname: "Doe", FirstName: "Jane", RegistrationNumber: "WOM0001", Role: "Chorister"},
	}, newFakeStore())

	if err := e.SelectEvent(context.Background(), Event{ID: "E1", DisplayName: "R1"}); err != nil {
		t.Fatalf("select event: %v", err)
	}

	records := e.Records()
	if records[0].Status != StatusPresent || records[0].Notes != "" {
		t.Fatalf("expected present/empty, got %s/%q", records[0].Status, records[0].Notes)
	}
}

func TestReconcileNeverInventsAbsent(t *testing.T) {
	store := newFakeStore()
	store.records["E1"] = []PersistedRecord{
		{MemberID: "2", Status: StatusLate, Notes: ""},
	}
	e := seededEngine(t, testRoster(3), store)

	if err := e.SelectEvent(context.Background(), Event{ID: "E1"}); err != nil {
		t.Fatalf("select event: %v", err)
	}

	for _, r := range e.Records() {
		if r.Member.ID == "2" {
			if r.Status != StatusLate {
				t.Fatalf("member 2: expected late, got %s", r.Status)
			}
			continue
		}
		if r.Status != StatusPresent {
			t.Fatalf("member %s without record: expected present, got %s", r.Member.ID, r.Status)
		}
	}
}

func TestReconcileIdempotent(t *testing.T) {
	store := newFakeStore()
	store.records["E1"] = []PersistedRecord{
		{MemberID: "1", Status: StatusExcused, Notes: "travel"},
		{MemberID: "3", Status: StatusAbsent, Notes: ""},
	}
	e := seededEngine(t, testRoster(4), store)

	if err := e.SelectEvent(context.Background(), Event{ID: "E1"}); err != nil {
		t.Fatalf("select event: %v", err)
	}
	once := e.Records()

	if err := e.ReconcileForEvent(context.Background(), "E1"); err != nil {
		t.Fatalf("second reconcile: %v", err)
	}
	twice := e.Records()

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("reconcile not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestReconcileFailureKeepsWorkingSet(t *testing.T) {
	store := newFakeStore()
	store.records["E1"] = []PersistedRecord{
		{MemberID: "1", Status: StatusAbsent, Notes: "sick"},
	}
	e := seededEngine(t, testRoster(2), store)
	if err := e.SelectEvent(context.Background(), Event{ID: "E1"}); err != nil {
		t.Fatalf("select event: %v", err)
	}
	before := e.Records()

	store.fetchErr = errors.New("store down")
	if err := e.ReconcileForEvent(context.Background(), "E1"); err == nil {
		t.Fatal("expected store error")
	}
	if !reflect.DeepEqual(before, e.Records()) {
		t.Fatal("working set changed after failed reconcile")
	}
}

func TestReconcileDiscardsStaleResponse(t *testing.T) {
	store := newFakeStore()
	store.records["E1"] = []PersistedRecord{
		{MemberID: "1", Status: StatusAbsent, Notes: "old event"},
	}
	e := seededEngine(t, testRoster(1), store)

	// E2 is the current selection; a late-arriving E1 fetch must not apply
	e.event = &Event{ID: "E2"}
	if err := e.ReconcileForEvent(context.Background(), "E1"); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if got := e.Records()[0].Status; got != StatusPresent {
		t.Fatalf("stale response applied: got %s", got)
	}
}

func TestSetStatusAndNotes(t *testing.T) {
	e := seededEngine(t, testRoster(2), newFakeStore())

	e.SetStatus("1", StatusLate)
	e.SetNotes("1", "traffic")
	// unknown ids are a no-op
	e.SetStatus("missing", StatusAbsent)
	e.SetNotes("missing", "x")

	records := e.Records()
	if records[0].Status != StatusLate || records[0].Notes != "traffic" {
		t.Fatalf("row 1 not updated: %+v", records[0])
	}
	if records[1].Status != StatusPresent || records[1].Notes != "" {
		t.Fatalf("row 2 should be untouched: %+v", records[1])
	}
}

func TestMarkAllPresentIgnoresFilter(t *testing.T) {
	e := seededEngine(t, testRoster(4), newFakeStore())
	e.SetStatus("1", StatusAbsent)
	e.SetStatus("2", StatusLate)
	e.SetNotes("2", "bus")

	// an active search hiding most rows must not scope the bulk mark
	if visible := e.Filter("doe", FilterAll, FilterAll); len(visible) == len(e.Records()) {
		t.Fatal("filter should hide some rows for this test to mean anything")
	}
	e.MarkAllPresent()

	for _, r := range e.Records() {
		if r.Status != StatusPresent {
			t.Fatalf("member %s: expected present, got %s", r.Member.ID, r.Status)
		}
	}
	// notes untouched
	if e.Records()[1].Notes != "bus" {
		t.Fatalf("notes should survive mark-all-present, got %q", e.Records()[1].Notes)
	}
}

func TestClearEventSelectionResetsToSeed(t *testing.T) {
	store := newFakeStore()
	store.records["E1"] = []PersistedRecord{
		{MemberID: "1", Status: StatusAbsent, Notes: "sick"},
	}
	e := seededEngine(t, testRoster(2), store)
	if err := e.SelectEvent(context.Background(), Event{ID: "E1"}); err != nil {
		t.Fatalf("select event: %v", err)
	}
	e.SetNotes("2", "left early")

	e.ClearEventSelection()

	if e.Event() != nil {
		t.Fatal("event scope should be cleared")
	}
	for _, r := range e.Records() {
		if r.Status != StatusPresent || r.Notes != "" {
			t.Fatalf("member %s not reset: %+v", r.Member.ID, r)
		}
	}
}

func TestSaveWithoutEventIsValidationError(t *testing.T) {
	store := newFakeStore()
	e := seededEngine(t, testRoster(2), store)
	before := e.Records()

	if err := e.Save(context.Background()); !errors.Is(err, ErrNoEventSelected) {
		t.Fatalf("expected ErrNoEventSelected, got %v", err)
	}
	if store.saveCalls != 0 {
		t.Fatalf("expected zero store calls, got %d", store.saveCalls)
	}
	if !reflect.DeepEqual(before, e.Records()) {
		t.Fatal("working set changed by failed save")
	}
}

func TestSaveUpsertsOncePerPair(t *testing.T) {
	store := newFakeStore()
	e := seededEngine(t, []Member{
		{ID: "1", Surname: "Doe", FirstName: "Jane", RegistrationNumber: "WOM0001", Role: "Chorister"},
	}, store)
	if err := e.SelectEvent(context.Background(), Event{ID: "E1"}); err != nil {
		t.Fatalf("select event: %v", err)
	}

	e.SetStatus("1", StatusLate)
	if err := e.Save(context.Background()); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if len(store.upserted) != 1 {
		t.Fatalf("expected 1 stored row, got %d", len(store.upserted))
	}
	if got := store.upserted[[2]string{"E1", "1"}].Status; got != StatusLate {
		t.Fatalf("expected late, got %s", got)
	}

	e.SetStatus("1", StatusAbsent)
	if err := e.Save(context.Background()); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if len(store.upserted) != 1 {
		t.Fatalf("pair duplicated: %d rows", len(store.upserted))
	}
	if got := store.upserted[[2]string{"E1", "1"}].Status; got != StatusAbsent {
		t.Fatalf("expected absent after overwrite, got %s", got)
	}
}

func TestSaveFailureKeepsEdits(t *testing.T) {
	store := newFakeStore()
	store.saveErr = errors.New("store rejected")
	e := seededEngine(t, testRoster(1), store)
	if err := e.SelectEvent(context.Background(), Event{ID: "E1"}); err != nil {
		t.Fatalf("select event: %v", err)
	}
	e.SetStatus("1", StatusExcused)

	if err := e.Save(context.Background()); err == nil {
		t.Fatal("expected save error")
	}
	if got := e.Records()[0].Status; got != StatusExcused {
		t.Fatalf("edits lost on failed save: %s", got)
	}
}
