package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// 23505 is unique_violation when the dialector does not translate errors.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "23505")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502")
}
