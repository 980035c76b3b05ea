// Package policy turns health snapshots into alert candidates.
//
// Usage thresholds for CPU and memory come from configuration and are
// strict: a reading exactly at the threshold does not alert. Temperature
// checks use fixed two-tier cutoffs per device and emit at most one
// candidate per device, at the highest tier reached.
package policy
