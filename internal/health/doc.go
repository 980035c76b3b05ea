// Package health defines the system health snapshot model shared by the
// metrics sources, the threshold policy, and the monitoring engine.
//
// A Snapshot is one consistent reading of system vitals: CPU utilization,
// memory totals, and optional per-device temperature readings keyed by
// DeviceCPU / DeviceGPU. Sources produce a fresh Snapshot on every sampling
// tick; the engine keeps only the most recent one for status queries.
package health
