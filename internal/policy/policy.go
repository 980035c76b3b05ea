package policy

import (
	"fmt"

	"github.com/veglia/veglia/internal/alerts"
	"github.com/veglia/veglia/internal/config"
	"github.com/veglia/veglia/internal/health"
)

// Alert sources, one per subsystem that can raise alerts.
const (
	SourceCPU     = "cpu-monitor"
	SourceMemory  = "memory-monitor"
	SourceThermal = "temperature-monitor"
	SourceService = "monitoring-service"
)

// Temperature cutoffs in degrees Celsius. Unlike the usage thresholds
// these are not configurable.
const (
	cpuTempWarn = 95.0
	cpuTempCrit = 100.0
	gpuTempWarn = 83.0
	gpuTempCrit = 90.0
)

// Evaluate inspects one snapshot against the configured thresholds and
// returns the alert candidates it warrants, in a stable order: CPU usage,
// memory usage, CPU temperature, GPU temperature. A clean snapshot yields
// an empty slice.
func Evaluate(snap *health.Snapshot, cfg config.Monitoring) []alerts.Candidate {
	var out []alerts.Candidate
	if snap == nil {
		return out
	}

	if cfg.PerformanceMonitoring {
		if snap.CPUUsage > cfg.CPUThreshold {
			out = append(out, alerts.Candidate{
				Severity:    alerts.SeverityWarning,
				Title:       "High CPU Usage",
				Message:     fmt.Sprintf("CPU usage is at %.1f%%", snap.CPUUsage),
				Source:      SourceCPU,
				AutoResolve: true,
			})
		}
		if pct, ok := snap.MemoryUsedPercent(); ok && pct > cfg.MemoryThreshold {
			out = append(out, alerts.Candidate{
				Severity:    alerts.SeverityWarning,
				Title:       "High Memory Usage",
				Message:     fmt.Sprintf("Memory usage is at %.1f%%", pct),
				Source:      SourceMemory,
				AutoResolve: true,
			})
		}
	}

	if cfg.SystemHealthChecks {
		if temp, ok := snap.Temperatures.CPU(); ok {
			if sev, tier, hot := thermalTier(temp, cpuTempWarn, cpuTempCrit); hot {
				out = append(out, alerts.Candidate{
					Severity:    sev,
					Title:       tier + " CPU Temperature",
					Message:     fmt.Sprintf("CPU temperature is at %.1f°C", temp),
					Source:      SourceThermal,
					AutoResolve: true,
				})
			}
		}
		if temp, ok := snap.Temperatures.GPU(); ok {
			if sev, tier, hot := thermalTier(temp, gpuTempWarn, gpuTempCrit); hot {
				out = append(out, alerts.Candidate{
					Severity:    sev,
					Title:       tier + " GPU Temperature",
					Message:     fmt.Sprintf("GPU temperature is at %.1f°C", temp),
					Source:      SourceThermal,
					AutoResolve: true,
				})
			}
		}
	}

	return out
}

// FailureCandidate describes a failed collection attempt. It dedupes like
// any other candidate, so a source that stays down keeps refreshing one
// alert instead of flooding the store.
func FailureCandidate(err error) alerts.Candidate {
	return alerts.Candidate{
		Severity: alerts.SeverityWarning,
		Title:    "Health Check Failed",
		Message:  fmt.Sprintf("Unable to collect system health metrics: %v", err),
		Source:   SourceService,
	}
}

func thermalTier(temp, warn, crit float64) (sev alerts.Severity, tier string, hot bool) {
	switch {
	case temp >= crit:
		return alerts.SeverityCritical, "Critical", true
	case temp >= warn:
		return alerts.SeverityWarning, "High", true
	default:
		return "", "", false
	}
}
