package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"womim_backend/internals/features/admins/model"
)

var ErrSessionExpired = errors.New("session expired")
var ErrSessionNotFound = errors.New("session not found")

// Clock lets session expiry logic run against a fake clock in tests.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now().UTC() }

var WallClock Clock = wallClock{}

/* =========================================================
   Session value (expiry math, side-effect free)
   ========================================================= */

type Session struct {
	Token       string
	AdminUserID uuid.UUID
	ExpiresAt   time.Time
}

func (s Session) IsValid(now time.Time) bool {
	return s.Token != "" && now.Before(s.ExpiresAt)
}

func (s Session) SecondsToExpiry(now time.Time) int64 {
	d := s.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return int64(d / time.Second)
}

// NeedsRefresh reports whether the session is inside the refresh window
// before expiry (but still valid).
func (s Session) NeedsRefresh(now time.Time, window time.Duration) bool {
	if !s.IsValid(now) {
		return false
	}
	return s.ExpiresAt.Sub(now) < window
}

// Refreshed returns a copy extended to now+ttl.
func (s Session) Refreshed(now time.Time, ttl time.Duration) Session {
	s.ExpiresAt = now.Add(ttl)
	return s
}

/* =========================================================
   DB-backed session manager
   ========================================================= */

type SessionService struct {
	DB    *gorm.DB
	Clock Clock
	TTL   time.Duration
	// RefreshWindow: how close to expiry before NeedsRefresh turns true
	RefreshWindow time.Duration
}

func NewSessionService(db *gorm.DB, ttl, refreshWindow time.Duration) *SessionService {
	return &SessionService{
		DB:            db,
		Clock:         WallClock,
		TTL:           ttl,
		RefreshWindow: refreshWindow,
	}
}

// Create issues a fresh session row for an admin user.
func (s *SessionService) Create(ctx context.Context, adminUserID uuid.UUID) (Session, error) {
	now := s.Clock.Now()
	row := model.AdminSessionModel{
		AdminSessionAdminUserID: adminUserID,
		AdminSessionToken:       uuid.NewString(),
		AdminSessionExpiresAt:   now.Add(s.TTL),
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return Session{}, err
	}
	return Session{
		Token:       row.AdminSessionToken,
		AdminUserID: row.AdminSessionAdminUserID,
		ExpiresAt:   row.AdminSessionExpiresAt,
	}, nil
}

// Validate looks a token up and checks expiry. Expired sessions are deleted
// on sight so no partial-session state is retained.
func (s *SessionService) Validate(ctx context.Context, token string) (Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Session{}, ErrSessionNotFound
	}

	var row model.AdminSessionModel
	err := s.DB.WithContext(ctx).
		Where("admin_session_token = ?", token).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, err
	}

	sess := Session{
		Token:       row.AdminSessionToken,
		AdminUserID: row.AdminSessionAdminUserID,
		ExpiresAt:   row.AdminSessionExpiresAt,
	}
	if !sess.IsValid(s.Clock.Now()) {
		_ = s.DB.WithContext(ctx).Delete(&row).Error
		return Session{}, ErrSessionExpired
	}
	return sess, nil
}

// Refresh extends a valid session to now+TTL.
func (s *SessionService) Refresh(ctx context.Context, token string) (Session, error) {
	sess, err := s.Validate(ctx, token)
	if err != nil {
		return Session{}, err
	}

	refreshed := sess.Refreshed(s.Clock.Now(), s.TTL)
	err = s.DB.WithContext(ctx).
		Model(&model.AdminSessionModel{}).
		Where("admin_session_token = ?", token).
		Update("admin_session_expires_at", refreshed.ExpiresAt).Error
	if err != nil {
		return Session{}, err
	}
	return refreshed, nil
}

// Delete removes a session row (logout). Unknown tokens are not an error.
func (s *SessionService) Delete(ctx context.Context, token string) error {
	return s.DB.WithContext(ctx).
		Where("admin_session_token = ?", token).
		Delete(&model.AdminSessionModel{}).Error
}

// DeleteExpired removes all rows past expiry, returning the count.
func (s *SessionService) DeleteExpired(ctx context.Context) (int64, error) {
	res := s.DB.WithContext(ctx).
		Where("admin_session_expires_at < ?", s.Clock.Now()).
		Delete(&model.AdminSessionModel{})
	return res.RowsAffected, res.Error
}
