package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fundforge/dashboard-service/internal/domain"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	if !isUniqueViolation(gorm.ErrDuplicatedKey) {
		t.Fatalf("translated duplicated-key sentinel must count as a unique violation")
	}
	wrapped := fmt.Errorf("create approval: %w", gorm.ErrDuplicatedKey)
	if !isUniqueViolation(wrapped) {
		t.Fatalf("wrapped duplicated-key sentinel must count as a unique violation")
	}
	raw := errors.New(`ERROR: duplicate key value violates unique constraint "dashboard_approvals_campaign_id_key" (SQLSTATE 23505)`)
	if !isUniqueViolation(raw) {
		t.Fatalf("raw driver message must count as a unique violation")
	}
	if isUniqueViolation(nil) {
		t.Fatalf("nil is not a unique violation")
	}
	if isUniqueViolation(gorm.ErrRecordNotFound) {
		t.Fatalf("record-not-found is not a unique violation")
	}
}

func TestStorageUnavailableKeepsSentinel(t *testing.T) {
	t.Parallel()

	err := storageUnavailable("ping postgres", errors.New("connection refused"))
	if !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("expected storage-unavailable sentinel, got %v", err)
	}
}
