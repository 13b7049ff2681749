package ports

import (
	"context"

	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/google/uuid"
)

type Notification struct {
	Event        string
	CampaignID   uuid.UUID
	CampaignName string
	ActorID      uuid.UUID
	EntityTypes  []domain.EntityType
	Status       domain.ApprovalStatus
	Comment      string
}

// Notifier delivers best-effort side-channel messages (email, chat webhook).
// Failures are logged by the caller and never fail the triggering request.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
