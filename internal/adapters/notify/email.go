package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/fundforge/dashboard-service/internal/domain"
	"github.com/fundforge/dashboard-service/internal/ports"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
}

// EmailNotifier sends plain-text review notifications over SMTP.
type EmailNotifier struct {
	cfg SMTPConfig
}

func NewEmailNotifier(cfg SMTPConfig) *EmailNotifier {
	return &EmailNotifier{cfg: cfg}
}

func (e *EmailNotifier) Notify(_ context.Context, n ports.Notification) error {
	if e.cfg.Host == "" || len(e.cfg.To) == 0 {
		return fmt.Errorf("smtp notifier is not configured")
	}

	subject, body := renderEmail(n)
	msg := strings.Builder{}
	msg.WriteString("From: " + e.cfg.From + "\r\n")
	msg.WriteString("To: " + strings.Join(e.cfg.To, ", ") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", e.cfg.Host, e.cfg.Port)
	var auth smtp.Auth
	if e.cfg.Username != "" {
		auth = smtp.PlainAuth("", e.cfg.Username, e.cfg.Password, e.cfg.Host)
	}
	return smtp.SendMail(addr, auth, e.cfg.From, e.cfg.To, []byte(msg.String()))
}

func renderEmail(n ports.Notification) (subject, body string) {
	types := entityTypeList(n.EntityTypes)
	switch n.Event {
	case "dashboard.submission_submitted":
		subject = fmt.Sprintf("Dashboard content submitted: %s", n.CampaignName)
		body = fmt.Sprintf(
			"Campaign %q (%s) submitted dashboard content for review.\n\nSections: %s\n",
			n.CampaignName, n.CampaignID, types,
		)
	case "dashboard.reviewed":
		subject = fmt.Sprintf("Dashboard review %s: %s", n.Status, n.CampaignName)
		body = fmt.Sprintf(
			"Campaign %q (%s) dashboard content was %s.\n\nSections: %s\n",
			n.CampaignName, n.CampaignID, n.Status, types,
		)
		if n.Comment != "" {
			body += "\nReviewer comment: " + n.Comment + "\n"
		}
	default:
		subject = fmt.Sprintf("Dashboard event %s: %s", n.Event, n.CampaignName)
		body = fmt.Sprintf("Campaign %q (%s) raised %s.\n", n.CampaignName, n.CampaignID, n.Event)
	}
	return subject, body
}

func entityTypeList(types []domain.EntityType) string {
	if len(types) == 0 {
		return "(none)"
	}
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}
