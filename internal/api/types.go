package api

import (
	"github.com/veglia/veglia/internal/alerts"
	"github.com/veglia/veglia/internal/health"
)

// StatusResponse is the payload for GET /api/v1/status.
type StatusResponse struct {
	Running      bool              `json:"running"`
	LastSnapshot *SnapshotResponse `json:"last_snapshot,omitempty"`
	ActiveAlerts int               `json:"active_alerts"`
	TotalAlerts  int               `json:"total_alerts"`
}

// SnapshotResponse is the JSON shape of one health snapshot.
type SnapshotResponse struct {
	CPUUsage          float64             `json:"cpu_usage"`
	TotalMemory       uint64              `json:"total_memory"`
	UsedMemory        uint64              `json:"used_memory"`
	MemoryUsedPercent *float64            `json:"memory_used_percent,omitempty"`
	Temperatures      health.Temperatures `json:"temperatures,omitempty"`
	Timestamp         string              `json:"timestamp"` // RFC3339
}

// OverviewResponse is the payload for GET /api/v1/overview and the websocket
// "overview" event: everything a dashboard needs in one round trip.
type OverviewResponse struct {
	Status      StatusResponse   `json:"status"`
	Alerts      []alerts.Alert   `json:"alerts"`
	Diagnostics []DiagnosticHint `json:"diagnostics"`
	GeneratedAt string           `json:"generated_at"` // RFC3339
}

// ConfigResponse is the payload for GET /api/v1/config and a successful
// PATCH. The interval is expressed in whole seconds.
type ConfigResponse struct {
	Enabled               bool    `json:"enabled"`
	AlertsEnabled         bool    `json:"alerts_enabled"`
	PerformanceMonitoring bool    `json:"performance_monitoring"`
	SystemHealthChecks    bool    `json:"system_health_checks"`
	DiskSpaceThreshold    float64 `json:"disk_space_threshold"`
	MemoryThreshold       float64 `json:"memory_threshold"`
	CPUThreshold          float64 `json:"cpu_threshold"`
	TemperatureThreshold  float64 `json:"temperature_threshold"`
	IntervalSeconds       int     `json:"interval_seconds"`
}

// ConfigPatchRequest is the body of PATCH /api/v1/config. Absent fields keep
// their current values.
type ConfigPatchRequest struct {
	Enabled               *bool    `json:"enabled"`
	AlertsEnabled         *bool    `json:"alerts_enabled"`
	PerformanceMonitoring *bool    `json:"performance_monitoring"`
	SystemHealthChecks    *bool    `json:"system_health_checks"`
	DiskSpaceThreshold    *float64 `json:"disk_space_threshold"`
	MemoryThreshold       *float64 `json:"memory_threshold"`
	CPUThreshold          *float64 `json:"cpu_threshold"`
	TemperatureThreshold  *float64 `json:"temperature_threshold"`
	IntervalSeconds       *int     `json:"interval_seconds"`
}

// RunningResponse is the payload for the monitor start/stop endpoints.
type RunningResponse struct {
	Running bool `json:"running"`
}

// RemovedResponse is the payload for DELETE /api/v1/alerts/resolved.
type RemovedResponse struct {
	Removed int `json:"removed"`
}

// errorResponse is a generic JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}
