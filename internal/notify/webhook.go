package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/veglia/veglia/internal/alerts"
	"github.com/veglia/veglia/internal/config"
	"github.com/veglia/veglia/internal/metrics"
)

const webhookTimeout = 10 * time.Second

// Webhook posts alerts to the configured delivery targets.
// Delivery errors are logged but do not affect the caller.
type Webhook struct {
	targets []config.WebhookConfig
	client  *http.Client
}

// NewWebhook returns a Webhook for the given targets.
func NewWebhook(targets []config.WebhookConfig) *Webhook {
	return &Webhook{
		targets: targets,
		client:  &http.Client{Timeout: webhookTimeout},
	}
}

// Notify delivers a to every target whose severity filter matches.
func (w *Webhook) Notify(a alerts.Alert) {
	for _, t := range w.targets {
		if !a.Severity.AtLeast(alerts.Severity(t.MinSeverity)) {
			continue
		}
		url := t.URL()
		if url == "" {
			continue
		}

		var err error
		switch t.Type {
		case "slack":
			err = w.sendSlack(url, a)
		case "teams":
			err = w.sendTeams(url, a)
		case "http":
			err = w.sendHTTP(url, a)
		default:
			slog.Warn("notify: unknown webhook type, skipping", "type", t.Type)
			continue
		}

		if err != nil {
			metrics.WebhookDeliveriesTotal.WithLabelValues(t.Type, "error").Inc()
			slog.Error("notify: webhook delivery failed",
				"type", t.Type,
				"alert", a.Title,
				"err", err,
			)
		} else {
			metrics.WebhookDeliveriesTotal.WithLabelValues(t.Type, "ok").Inc()
			slog.Debug("notify: webhook delivered",
				"type", t.Type,
				"alert", a.Title,
				"severity", a.Severity,
			)
		}
	}
}

func (w *Webhook) sendSlack(url string, a alerts.Alert) error {
	body, _ := json.Marshal(map[string]string{
		"text": fmt.Sprintf("*%s* %s: %s", severityLabel(a.Severity), a.Title, a.Message),
	})
	return w.post(url, body)
}

func (w *Webhook) sendTeams(url string, a alerts.Alert) error {
	payload := map[string]interface{}{
		"@type":      "MessageCard",
		"@context":   "http://schema.org/extensions",
		"themeColor": severityColor(a.Severity),
		"summary":    a.Title,
		"title":      fmt.Sprintf("Veglia Alert: %s", a.Title),
		"text":       a.Message,
	}
	body, _ := json.Marshal(payload)
	return w.post(url, body)
}

func (w *Webhook) sendHTTP(url string, a alerts.Alert) error {
	body, _ := json.Marshal(map[string]interface{}{"alert": a})
	return w.post(url, body)
}

func (w *Webhook) post(url string, body []byte) error {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("http post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned HTTP %d", resp.StatusCode)
	}
	return nil
}

func severityLabel(s alerts.Severity) string {
	switch s {
	case alerts.SeverityCritical:
		return "[CRITICAL]"
	case alerts.SeverityWarning:
		return "[WARNING]"
	default:
		return "[INFO]"
	}
}

func severityColor(s alerts.Severity) string {
	switch s {
	case alerts.SeverityCritical:
		return "FF4F6A"
	case alerts.SeverityWarning:
		return "FFAB40"
	default:
		return "00D4FF"
	}
}
