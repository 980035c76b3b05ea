package api

import (
	"fmt"
	"time"

	"github.com/veglia/veglia/internal/alerts"
	"github.com/veglia/veglia/internal/config"
	"github.com/veglia/veglia/internal/monitor"
	"github.com/veglia/veglia/internal/policy"
)

// DiagnosticHint is one human-readable insight about the engine's state.
// The UI displays these as chips on the dashboard; clicking one shows
// Detail, written like an assistant explaining the situation in plain
// English.
type DiagnosticHint struct {
	// Key is a stable machine-readable identifier (used for dedup/ordering).
	Key string `json:"key"`
	// Level is "ok" | "info" | "warning" | "critical"
	Level string `json:"level"`
	// Title is a short label shown on the chip (at most 5 words).
	Title string `json:"title"`
	// Detail is the full explanation shown on click/hover.
	Detail string `json:"detail"`
	// Value is an optional numeric value associated with this hint.
	Value *float64 `json:"value,omitempty"`
}

// computeDiagnostics derives diagnostic hints from the engine status, the
// current config and the open alerts. Hints come out most severe first;
// conditions that make everything downstream meaningless return early.
func computeDiagnostics(st monitor.Status, cfg config.Monitoring, active []alerts.Alert) []DiagnosticHint {
	var hints []DiagnosticHint

	if !st.Running {
		hints = append(hints, DiagnosticHint{
			Key:   "engine_stopped",
			Level: "warning",
			Title: "Monitoring stopped",
			Detail: "The monitoring engine is not running, so no new health checks are " +
				"being performed and the alerts below reflect the state before it stopped. " +
				"Start it again with POST /api/v1/monitor/start, or restart the daemon.",
		})
		return hints
	}

	if !cfg.Enabled {
		hints = append(hints, DiagnosticHint{
			Key:   "monitoring_disabled",
			Level: "info",
			Title: "Monitoring disabled",
			Detail: "The engine is running but monitoring is switched off in the " +
				"configuration, so every check cycle is an idle skip. Set \"enabled\": true " +
				"via PATCH /api/v1/config to resume health checks.",
		})
		return hints
	}

	if st.LastSnapshot == nil {
		hints = append(hints, DiagnosticHint{
			Key:   "warming_up",
			Level: "info",
			Title: "Warming up",
			Detail: "The engine is collecting its first health snapshot. Status and " +
				"alerts fill in once the first check cycle completes. No action needed.",
		})
		return hints
	}

	// A failing metrics source shows up as its own open alert; everything
	// else in the snapshot is stale until it recovers.
	for _, a := range active {
		if a.Source == policy.SourceService {
			hints = append(hints, DiagnosticHint{
				Key:   "source_unreachable",
				Level: "critical",
				Title: "Can't reach metrics source",
				Detail: fmt.Sprintf(
					"The engine couldn't collect system metrics. It last tried and got: %q. "+
						"Check that the metrics source is reachable and, for remote sources, that "+
						"credentials and TLS settings are correct. Until this recovers the last "+
						"known snapshot only goes staler.",
					a.Message,
				),
			})
			return hints
		}
	}

	if n := countSeverity(active, alerts.SeverityCritical); n > 0 {
		v := float64(n)
		title := fmt.Sprintf("%d critical alerts", n)
		if n == 1 {
			title = "1 critical alert"
		}
		hints = append(hints, DiagnosticHint{
			Key:   "critical_alerts",
			Level: "critical",
			Title: title,
			Detail: fmt.Sprintf(
				"%d open alerts are at critical severity. On this system critical almost "+
					"always means a thermal reading at or past its throttle point, where the "+
					"hardware will slow itself down or shut off to protect itself. Reduce load, "+
					"check fans and airflow, and watch whether the alerts stop refreshing over "+
					"the next few check cycles.",
				n,
			),
			Value: &v,
		})
	}

	// Snapshot far older than the interval means checks stopped landing.
	if age := time.Since(st.LastSnapshot.Timestamp); cfg.Interval > 0 && age > 3*cfg.Interval {
		v := age.Seconds()
		hints = append(hints, DiagnosticHint{
			Key:   "stale_snapshot",
			Level: "warning",
			Title: "Stale metrics",
			Detail: fmt.Sprintf(
				"The last successful health snapshot is %.0f seconds old, more than three "+
					"check intervals (%.0fs each). Either the metrics source started failing "+
					"(look for a Health Check Failed alert) or a check is taking far longer "+
					"than the interval.",
				age.Seconds(), cfg.Interval.Seconds(),
			),
			Value: &v,
		})
	}

	if n := countSeverity(active, alerts.SeverityWarning); n > 0 {
		v := float64(n)
		title := fmt.Sprintf("%d open warnings", n)
		if n == 1 {
			title = "1 open warning"
		}
		hints = append(hints, DiagnosticHint{
			Key:   "warning_alerts",
			Level: "warning",
			Title: title,
			Detail: fmt.Sprintf(
				"%d alerts are open at warning severity. Usage warnings (CPU, memory) stop "+
					"refreshing once the reading drops back under its threshold and can then "+
					"be resolved from the dashboard. A warning that keeps refreshing usually "+
					"points at a runaway process or an undersized machine.",
				n,
			),
			Value: &v,
		})
	}

	if len(hints) == 0 {
		hints = append(hints, DiagnosticHint{
			Key:   "healthy",
			Level: "ok",
			Title: "All clear",
			Detail: "Every health check is passing: CPU, memory and temperatures are " +
				"inside their thresholds and the metrics source is responding. Nothing to do.",
		})
	}

	return hints
}

func countSeverity(as []alerts.Alert, s alerts.Severity) int {
	n := 0
	for _, a := range as {
		if a.Severity == s {
			n++
		}
	}
	return n
}
