package notify

import (
	"context"
	"log/slog"

	"github.com/fundforge/dashboard-service/internal/ports"
)

// LoggingNotifier records notifications when no delivery channel is configured.
type LoggingNotifier struct {
	logger *slog.Logger
}

func NewLoggingNotifier(logger *slog.Logger) *LoggingNotifier {
	return &LoggingNotifier{logger: logger}
}

func (l *LoggingNotifier) Notify(ctx context.Context, n ports.Notification) error {
	l.logger.InfoContext(ctx, "notification",
		"module", "notify.logging",
		"layer", "adapter",
		"operation", "notify",
		"outcome", "success",
		"event", n.Event,
		"campaign_id", n.CampaignID,
		"status", n.Status,
	)
	return nil
}

// MultiNotifier fans a notification out to every channel; the first error wins
// but all channels are attempted.
type MultiNotifier struct {
	channels []ports.Notifier
}

func NewMultiNotifier(channels ...ports.Notifier) *MultiNotifier {
	return &MultiNotifier{channels: channels}
}

func (m *MultiNotifier) Notify(ctx context.Context, n ports.Notification) error {
	var firstErr error
	for _, channel := range m.channels {
		if err := channel.Notify(ctx, n); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
