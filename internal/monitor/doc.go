// Package monitor runs the periodic health check loop.
//
// A Monitor owns one metrics source and one alert store. Each tick
// collects a snapshot, evaluates it against the configured thresholds,
// records the resulting candidates, and hands newly created alerts to the
// notifier. A failed collection raises a "Health Check Failed" alert
// instead of stopping the loop.
//
// Ticks never overlap: the next wait starts only after the previous check
// finishes. Start and Stop are idempotent, and Stop waits for an
// in-flight check to complete.
package monitor
