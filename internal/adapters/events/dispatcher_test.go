package events_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/fundforge/dashboard-service/internal/adapters/events"
	"github.com/fundforge/dashboard-service/internal/ports"
	"github.com/google/uuid"
)

func TestDispatcherInvokesHandlersInOrder(t *testing.T) {
	t.Parallel()
	d := events.NewDispatcher(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var calls []string
	d.Subscribe("dashboard.reviewed", func(_ context.Context, _ ports.Notification) error {
		calls = append(calls, "first")
		return nil
	})
	d.Subscribe("dashboard.reviewed", func(_ context.Context, _ ports.Notification) error {
		calls = append(calls, "second")
		return nil
	})
	d.Subscribe("dashboard.submission_submitted", func(_ context.Context, _ ports.Notification) error {
		calls = append(calls, "other")
		return nil
	})

	d.Dispatch(context.Background(), ports.Notification{Event: "dashboard.reviewed", CampaignID: uuid.New()})

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Fatalf("expected ordered handlers for the dispatched event only, got %v", calls)
	}
}

func TestDispatcherSwallowsHandlerErrors(t *testing.T) {
	t.Parallel()
	d := events.NewDispatcher(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var reached bool
	d.Subscribe("dashboard.reviewed", func(_ context.Context, _ ports.Notification) error {
		return errors.New("smtp down")
	})
	d.Subscribe("dashboard.reviewed", func(_ context.Context, _ ports.Notification) error {
		reached = true
		return nil
	})

	d.Dispatch(context.Background(), ports.Notification{Event: "dashboard.reviewed", CampaignID: uuid.New()})

	if !reached {
		t.Fatalf("a failing handler must not block later handlers")
	}
}

func TestDispatcherNoHandlers(t *testing.T) {
	t.Parallel()
	d := events.NewDispatcher(slog.New(slog.NewTextHandler(io.Discard, nil)))
	d.Dispatch(context.Background(), ports.Notification{Event: "dashboard.unknown"})
}
