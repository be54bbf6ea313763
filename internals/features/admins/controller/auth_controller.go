package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"womim_backend/internals/configs"
	"womim_backend/internals/constants"
	"womim_backend/internals/features/admins/dto"
	"womim_backend/internals/features/admins/model"
	"womim_backend/internals/features/admins/service"
	helper "womim_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Sessions  *service.SessionService
}

func NewAuthController(db *gorm.DB, sessions *service.SessionService) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
		Sessions:  sessions,
	}
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username and password are required")
	}

	var admin model.AdminUserModel
	err := ctl.DB.WithContext(c.Context()).
		Where("admin_user_username = ? AND admin_user_is_active = TRUE", strings.TrimSpace(req.Username)).
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		log.Printf("[ERROR] login lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.AdminUserPasswordHash), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	sess, err := ctl.Sessions.Create(c.Context(), admin.AdminUserID)
	if err != nil {
		log.Printf("[ERROR] create session: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session")
	}

	accessToken, err := service.BuildAccessToken(&admin, sess)
	if err != nil {
		log.Printf("[ERROR] sign access token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session")
	}

	now := time.Now().UTC()
	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.AdminUserModel{}).
		Where("admin_user_id = ?", admin.AdminUserID).
		Update("admin_user_last_login", now).Error; err != nil {
		log.Printf("[WARN] update last_login: %v", err)
	}

	return helper.JsonOK(c, "Authentication successful", dto.LoginResponse{
		Admin: dto.NewAdminResponse(&admin),
		Session: dto.SessionResponse{
			Token:           sess.Token,
			ExpiresAt:       sess.ExpiresAt,
			SecondsToExpiry: sess.SecondsToExpiry(now),
			NeedsRefresh:    false,
		},
		AccessToken: accessToken,
	})
}

// GET /api/auth/session?token=...
// Validates a session token and reports its remaining lifetime.
func (ctl *AuthController) SessionCheck(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Session token required")
	}

	sess, err := ctl.Sessions.Validate(c.Context(), token)
	if err != nil {
		return sessionError(c, err)
	}

	now := ctl.Sessions.Clock.Now()
	return helper.JsonOK(c, "Session valid", dto.SessionResponse{
		Token:           sess.Token,
		ExpiresAt:       sess.ExpiresAt,
		SecondsToExpiry: sess.SecondsToExpiry(now),
		NeedsRefresh:    sess.NeedsRefresh(now, ctl.Sessions.RefreshWindow),
	})
}

// POST /api/auth/refresh
// Extends a still-valid session by the configured TTL.
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	token := bearerOrBody(c)
	if token == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Session token required")
	}

	sess, err := ctl.Sessions.Refresh(c.Context(), token)
	if err != nil {
		return sessionError(c, err)
	}

	now := ctl.Sessions.Clock.Now()
	return helper.JsonUpdated(c, "Session refreshed", dto.SessionResponse{
		Token:           sess.Token,
		ExpiresAt:       sess.ExpiresAt,
		SecondsToExpiry: sess.SecondsToExpiry(now),
		NeedsRefresh:    false,
	})
}

// POST /api/auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	token := bearerOrBody(c)
	if token == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Session token required")
	}
	if err := ctl.Sessions.Delete(c.Context(), token); err != nil {
		log.Printf("[ERROR] delete session: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to log out")
	}
	return helper.JsonOK(c, "Logged out", nil)
}

// POST /api/setup-admin
// Bootstraps the first admin account. Requires the setup key and refuses to
// run once any admin user exists.
func (ctl *AuthController) SetupAdmin(c *fiber.Ctx) error {
	var req dto.SetupAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if configs.AdminSetupKey == "" || req.SetupKey != configs.AdminSetupKey {
		return helper.JsonError(c, fiber.StatusForbidden, "Invalid setup key")
	}

	var count int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.AdminUserModel{}).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Admin account already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	admin := model.AdminUserModel{
		AdminUserUsername:     strings.TrimSpace(req.Username),
		AdminUserEmail:        strings.ToLower(strings.TrimSpace(req.Email)),
		AdminUserPasswordHash: string(hash),
		AdminUserFullName:     strings.TrimSpace(req.FullName),
		AdminUserRole:         constants.AdminRoleSuperAdmin,
		AdminUserIsActive:     true,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&admin).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username or email already taken")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create admin")
	}

	return helper.JsonCreated(c, "Admin account created", dto.NewAdminResponse(&admin))
}

func sessionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSessionExpired):
		return helper.JsonError(c, fiber.StatusUnauthorized, "Session expired")
	case errors.Is(err, service.ErrSessionNotFound):
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid session token")
	default:
		log.Printf("[ERROR] session: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

// bearerOrBody takes the session token from the Authorization header or a
// JSON body {"token": "..."}. A bearer value that is a signed access token
// is unwrapped to the session token it carries.
func bearerOrBody(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		tok := fields[1]
		if claims, err := service.ParseAccessToken(tok); err == nil {
			return claims.SessionToken
		}
		return tok
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&body); err == nil {
		return strings.TrimSpace(body.Token)
	}
	return ""
}
