package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationError maps validator.v10 errors to the standard 422 shape.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		fieldErrors[field] = append(fieldErrors[field], fe.Tag())
	}
	return JsonValidationError(c, fieldErrors)
}

// IsDuplicateKey reports whether err looks like a Postgres unique violation.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "violates unique constraint") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}

// IsUndefinedTable reports whether err is Postgres "relation does not exist"
// (missing table or view). The rehearsal view read and the public roster
// read degrade on it instead of failing.
func IsUndefinedTable(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "does not exist") && strings.Contains(s, "relation") ||
		strings.Contains(s, "sqlstate 42p01")
}
