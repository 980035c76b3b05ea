// Package notify delivers alerts to the outside world.
//
// Notifier is the single-method interface the monitor hands newly created
// alerts to. Log writes them to the daemon log, Webhook posts them to
// Slack, Teams or a generic HTTP target, Multi fans out to several
// notifiers, and Async decouples delivery from the monitoring tick with a
// bounded drop-oldest buffer.
package notify
