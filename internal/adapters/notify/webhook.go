package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fundforge/dashboard-service/internal/ports"
)

// WebhookNotifier posts Slack-compatible messages to an incoming webhook URL.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *WebhookNotifier) Notify(ctx context.Context, n ports.Notification) error {
	if w.url == "" {
		return fmt.Errorf("webhook notifier is not configured")
	}

	var text string
	switch n.Event {
	case "dashboard.submission_submitted":
		text = fmt.Sprintf("*%s* submitted dashboard content for review (%s)", n.CampaignName, entityTypeList(n.EntityTypes))
	case "dashboard.reviewed":
		text = fmt.Sprintf("*%s* dashboard content was *%s* (%s)", n.CampaignName, n.Status, entityTypeList(n.EntityTypes))
		if n.Comment != "" {
			text += "\n> " + n.Comment
		}
	default:
		text = fmt.Sprintf("*%s* raised %s", n.CampaignName, n.Event)
	}

	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded %d", resp.StatusCode)
	}
	return nil
}
