// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"womim_backend/internals/features/admins/service"
	helper "womim_backend/internals/helpers"
)

// AdminGuard gates admin routes on a live session. The bearer value may be
// the signed access token from login (preferred) or the raw session token.
// An expired session is treated the same as no session at all.
func AdminGuard(sessions *service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		sessionToken := tokenString
		if claims, err := service.ParseAccessToken(tokenString); err == nil {
			sessionToken = claims.SessionToken
			c.Locals("admin_role", claims.Role)
			c.Locals("admin_username", claims.Username)
		}

		sess, err := sessions.Validate(c.Context(), sessionToken)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrSessionExpired):
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Session expired")
			case errors.Is(err, service.ErrSessionNotFound):
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Invalid session")
			default:
				log.Printf("[ERROR] session validate: %v", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
		}

		c.Locals("admin_user_id", sess.AdminUserID.String())
		c.Locals("session_token", sess.Token)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		if cookieTok := c.Cookies("admin_session"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", fmt.Errorf("unauthorized - No token provided")
	}

	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("unauthorized - Invalid token format")
	}
	return fields[1], nil
}
