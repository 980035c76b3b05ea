package notify

import (
	"log/slog"

	"github.com/veglia/veglia/internal/alerts"
)

// Notifier receives alerts the moment the store creates them. Refreshes
// of already-open alerts are not delivered again.
type Notifier interface {
	Notify(a alerts.Alert)
}

// Func adapts a plain function to the Notifier interface.
type Func func(a alerts.Alert)

// Notify calls f.
func (f Func) Notify(a alerts.Alert) { f(a) }

// Log writes every alert to the daemon log at a level matching its severity.
type Log struct{}

// Notify implements Notifier.
func (Log) Notify(a alerts.Alert) {
	args := []interface{}{
		"title", a.Title,
		"severity", a.Severity,
		"source", a.Source,
		"message", a.Message,
	}
	switch a.Severity {
	case alerts.SeverityCritical:
		slog.Error("notify: alert raised", args...)
	case alerts.SeverityWarning:
		slog.Warn("notify: alert raised", args...)
	default:
		slog.Info("notify: alert raised", args...)
	}
}

// Multi fans an alert out to every notifier in order.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(a alerts.Alert) {
	for _, n := range m {
		n.Notify(a)
	}
}
