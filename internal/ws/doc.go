// Package ws implements the WebSocket push channel for vegliad.
//
// Hub manages a set of connected dashboard clients and pushes two event
// types:
//
//	{"event": "overview", "data": { /* same schema as GET /api/v1/overview */ }}
//	{"event": "alert",    "data": { /* one alert, same schema as the REST surface */ }}
//
// An overview is sent immediately on connect and re-broadcast on a fixed
// interval, so dashboards stay current without polling. An alert event is
// pushed the moment the engine dispatches a newly created alert: Hub
// satisfies the notify.Notifier interface and is wired as one of the
// engine's notification sinks.
//
// New(engine, store, interval) creates a Hub.
// Hub.Run(ctx) starts the broadcast ticker, blocks until ctx is cancelled,
// then closes all active connections.
// Hub.ServeHTTP upgrades an HTTP connection to WebSocket.
//
// The upgrader accepts all origins. Apply CORS restrictions at the reverse
// proxy level. The endpoint is mounted at /ws/stream by the daemon.
package ws
