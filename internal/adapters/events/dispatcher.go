package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fundforge/dashboard-service/internal/ports"
)

// Handler reacts to an in-process notification. Errors are logged, never propagated.
type Handler func(ctx context.Context, n ports.Notification) error

// Dispatcher fans notifications out to registered handlers after a state
// change has committed. Delivery is synchronous and best effort.
type Dispatcher struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		logger:   logger,
		handlers: map[string][]Handler{},
	}
}

func (d *Dispatcher) Subscribe(event string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[event] = append(d.handlers[event], handler)
}

func (d *Dispatcher) Dispatch(ctx context.Context, n ports.Notification) {
	d.mu.RLock()
	handlers := append([]Handler(nil), d.handlers[n.Event]...)
	d.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, n); err != nil {
			d.logger.WarnContext(ctx, "notification handler failed",
				"module", "events.dispatcher",
				"layer", "adapter",
				"operation", "dispatch",
				"outcome", "failure",
				"event", n.Event,
				"campaign_id", n.CampaignID,
				"error", err,
			)
		}
	}
}
