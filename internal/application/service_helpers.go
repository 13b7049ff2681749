package application

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/fundforge/dashboard-service/internal/ports"
	"github.com/google/uuid"
)

const (
	eventSubmissionSubmitted = "dashboard.submission_submitted"
	eventDashboardReviewed   = "dashboard.reviewed"
)

type submissionSubmittedPayload struct {
	EventID      uuid.UUID `json:"eventId"`
	SubmissionID uuid.UUID `json:"submissionId"`
	CampaignID   uuid.UUID `json:"campaignId"`
	SubmittedBy  uuid.UUID `json:"submittedBy"`
	EntityTypes  []string  `json:"entityTypes"`
	OccurredAt   time.Time `json:"occurredAt"`
}

type dashboardReviewedPayload struct {
	EventID     uuid.UUID `json:"eventId"`
	CampaignID  uuid.UUID `json:"campaignId"`
	ReviewedBy  uuid.UUID `json:"reviewedBy"`
	Status      string    `json:"status"`
	EntityTypes []string  `json:"entityTypes"`
	Comment     string    `json:"comment,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// enqueueEvent records an outbox row. Failures are logged; the triggering
// operation has already committed and must not be rolled back.
func (s *Service) enqueueEvent(ctx context.Context, eventType string, payload any, partitionKey string, occurredAt time.Time) {
	raw, err := json.Marshal(payload)
	if err != nil {
		s.logger.ErrorContext(ctx, "event payload marshal failed",
			"module", "application",
			"layer", "application",
			"operation", "enqueue_event",
			"outcome", "failure",
			"event_type", eventType,
			"error", err,
		)
		return
	}
	err = s.outbox.Enqueue(ctx, ports.OutboxEvent{
		EventID:       uuid.New(),
		EventType:     eventType,
		PartitionKey:  partitionKey,
		Payload:       raw,
		OccurredAt:    occurredAt,
		SchemaVersion: "1.0",
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "outbox enqueue failed",
			"module", "application",
			"layer", "application",
			"operation", "enqueue_event",
			"outcome", "failure",
			"event_type", eventType,
			"error", err,
		)
	}
}

func (s *Service) dispatch(ctx context.Context, n ports.Notification) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Dispatch(ctx, n)
}

func entityTypeStrings(types []domain.EntityType) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, string(t))
	}
	return out
}
