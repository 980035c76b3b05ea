// Package source collects health snapshots from the machine under watch.
//
// Two implementations exist: the local source reads the host the daemon
// runs on through gopsutil, and the prometheus source scrapes a
// Prometheus-format metrics endpoint such as node_exporter. Both produce
// the same health.Snapshot, so the monitor does not care where readings
// come from.
package source
