package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }

func TestSessionIsValid(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		sess Session
		want bool
	}{
		{"valid", Session{Token: "t", ExpiresAt: now.Add(time.Hour)}, true},
		{"expired", Session{Token: "t", ExpiresAt: now.Add(-time.Second)}, false},
		{"expires exactly now", Session{Token: "t", ExpiresAt: now}, false},
		{"empty token", Session{Token: "", ExpiresAt: now.Add(time.Hour)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sess.IsValid(now); got != tt.want {
				t.Fatalf("IsValid = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSessionSecondsToExpiry(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want int64
	}{
		{"one hour out", now.Add(time.Hour), 3600},
		{"sub-second remainder truncates", now.Add(90*time.Second + 500*time.Millisecond), 90},
		{"already expired clamps to zero", now.Add(-time.Minute), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{Token: "t", ExpiresAt: tt.at}
			if got := s.SecondsToExpiry(now); got != tt.want {
				t.Fatalf("SecondsToExpiry = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSessionNeedsRefresh(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	window := time.Hour

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"well before window", now.Add(3 * time.Hour), false},
		{"inside window", now.Add(30 * time.Minute), true},
		{"exactly at window edge", now.Add(window), false},
		{"already expired", now.Add(-time.Minute), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{Token: "t", ExpiresAt: tt.at}
			if got := s.NeedsRefresh(now, window); got != tt.want {
				t.Fatalf("NeedsRefresh = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSessionRefreshed(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	ttl := 24 * time.Hour

	orig := Session{
		Token:       "tok",
		AdminUserID: uuid.New(),
		ExpiresAt:   now.Add(10 * time.Minute),
	}
	got := orig.Refreshed(now, ttl)

	if !got.ExpiresAt.Equal(now.Add(ttl)) {
		t.Fatalf("Refreshed expiry = %v, want %v", got.ExpiresAt, now.Add(ttl))
	}
	if got.Token != orig.Token || got.AdminUserID != orig.AdminUserID {
		t.Fatal("Refreshed must keep token and owner")
	}
	if !orig.ExpiresAt.Equal(now.Add(10 * time.Minute)) {
		t.Fatal("Refreshed mutated the receiver")
	}
	if !got.NeedsRefresh(now.Add(ttl-30*time.Minute), time.Hour) {
		t.Fatal("refreshed session should re-enter the window near new expiry")
	}
}

func TestFixedClockWiring(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc := NewSessionService(nil, 24*time.Hour, time.Hour)
	svc.Clock = fixedClock{t: now}

	if got := svc.Clock.Now(); !got.Equal(now) {
		t.Fatalf("clock injection broken: %v", got)
	}
}
