package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fundforge/dashboard-service/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func forUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

// isUniqueViolation recognizes SQLSTATE 23505 in both shapes it reaches us:
// the gorm.ErrDuplicatedKey sentinel produced under TranslateError, and the
// raw driver message when translation is off or the error predates gorm.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

// storageUnavailable marks infrastructure-level failures so the HTTP layer
// can answer 503 instead of a generic 500.
func storageUnavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStorageUnavailable, op, err)
}
