package postgres

import (
	"strings"

	"catalog/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation recognises duplicate keys whether or not the dialect
// translated the driver error.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}
