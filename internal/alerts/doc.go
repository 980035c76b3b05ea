// Package alerts holds the alert model and the in-memory store that tracks
// alerts raised across monitoring ticks.
//
// Deduplication happens on insert: a candidate whose (title, source) pair
// matches an alert that is still open refreshes that alert instead of
// creating a second one. Acknowledging or resolving an alert takes it out
// of the open set, so the next matching candidate starts a fresh alert.
package alerts
