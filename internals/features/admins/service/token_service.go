package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"womim_backend/internals/configs"
	"womim_backend/internals/features/admins/model"
)

var ErrTokenInvalid = errors.New("token invalid")

// AccessClaims carried inside the signed access token. The session id ("sid")
// ties the token to its DB session row, so revoking the row revokes the token.
type AccessClaims struct {
	SessionToken string `json:"sid"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	jwt.RegisteredClaims
}

// BuildAccessToken signs an access JWT whose lifetime matches the session.
func BuildAccessToken(admin *model.AdminUserModel, sess Session) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("missing JWT secret")
	}
	claims := AccessClaims{
		SessionToken: sess.Token,
		Username:     admin.AdminUserUsername,
		Role:         admin.AdminUserRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.AdminUserID.String(),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}

// ParseAccessToken verifies the signature and returns the claims. Expiry is
// deliberately not enforced here; the DB session row is the source of truth.
func ParseAccessToken(tokenString string) (*AccessClaims, error) {
	if configs.JWTSecret == "" {
		return nil, errors.New("missing JWT secret")
	}
	claims := &AccessClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	_, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims.SessionToken == "" {
		return nil, ErrTokenInvalid
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
