package notify

import (
	"context"
	"log/slog"

	"github.com/veglia/veglia/internal/alerts"
	"github.com/veglia/veglia/internal/metrics"
)

// DefaultBufferSize is used when NewAsync is given a non-positive size.
const DefaultBufferSize = 64

// Async decouples alert delivery from the monitoring tick.
// Notify is non-blocking; when the buffer is full the oldest alert is
// evicted. Run must be called in a goroutine to drain the buffer.
type Async struct {
	next Notifier
	buf  chan alerts.Alert
}

// NewAsync wraps next with a bounded delivery buffer of the given size.
func NewAsync(next Notifier, size int) *Async {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Async{
		next: next,
		buf:  make(chan alerts.Alert, size),
	}
}

// Notify enqueues a for delivery. If the buffer is full the oldest entry
// is evicted to make room.
func (s *Async) Notify(a alerts.Alert) {
	select {
	case s.buf <- a:
	default:
		// Buffer full: drop the oldest alert, keep the newest.
		select {
		case dropped := <-s.buf:
			metrics.NotificationsDroppedTotal.Inc()
			slog.Warn("notify: buffer full, evicted oldest alert",
				"dropped", dropped.Title, "buffer_cap", cap(s.buf))
		default:
		}
		s.buf <- a
	}
}

// Run drains the buffer, delivering alerts to the wrapped notifier.
// It blocks until ctx is cancelled.
func (s *Async) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case a := <-s.buf:
			s.next.Notify(a)
		}
	}
}
