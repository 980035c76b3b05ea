// Package api implements the HTTP REST API for vegliad.
//
// New(engine, store) returns an http.Handler that serves:
//
//	GET    /api/v1/status                  — engine state, last snapshot, alert counts
//	GET    /api/v1/overview                — status + active alerts + diagnostics in one payload
//	GET    /api/v1/alerts                  — every tracked alert, insertion order
//	GET    /api/v1/alerts/active           — open alerts only
//	GET    /api/v1/alerts/{id}             — single alert; 404 if unknown
//	POST   /api/v1/alerts/{id}/acknowledge — mark as seen; returns the updated alert
//	POST   /api/v1/alerts/{id}/resolve     — mark as resolved; returns the updated alert
//	DELETE /api/v1/alerts/resolved         — drop resolved alerts; returns the removed count
//	GET    /api/v1/config                  — current monitoring config
//	PATCH  /api/v1/config                  — merge-update; 400 when validation rejects it
//	POST   /api/v1/monitor/start           — start the engine; returns the running state
//	POST   /api/v1/monitor/stop            — stop the engine; returns the running state
//
// All endpoints:
//   - Respond with Content-Type: application/json
//   - Return 405 for unexpected methods
//   - Express the check interval in whole seconds on the JSON surface
//
// JSON types are defined in types.go, diagnostic hint derivation in
// diagnostics.go. No external HTTP framework is used.
package api
