package notify

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/veglia/veglia/internal/alerts"
)

// recorder collects delivered alerts for inspection.
type recorder struct {
	mu  sync.Mutex
	got []alerts.Alert
}

func (r *recorder) Notify(a alerts.Alert) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, a)
}

func (r *recorder) alerts() []alerts.Alert {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]alerts.Alert, len(r.got))
	copy(out, r.got)
	return out
}

func testAlert(title string) alerts.Alert {
	return alerts.Alert{
		ID:       "id-" + title,
		Severity: alerts.SeverityWarning,
		Title:    title,
		Message:  "message for " + title,
		Source:   "cpu-monitor",
	}
}

func TestAsync_DeliversInOrder(t *testing.T) {
	rec := &recorder{}
	s := NewAsync(rec, 8)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	go s.Run(ctx)

	for i := 0; i < 3; i++ {
		s.Notify(testAlert(fmt.Sprintf("alert-%d", i)))
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(rec.alerts()) >= 3 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	got := rec.alerts()
	if len(got) != 3 {
		t.Fatalf("delivered %d alerts, want 3", len(got))
	}
	for i, a := range got {
		if want := fmt.Sprintf("alert-%d", i); a.Title != want {
			t.Errorf("alerts[%d].Title = %q, want %q", i, a.Title, want)
		}
	}
}

func TestAsync_BufferEvictsOldest(t *testing.T) {
	// Buffer size 3; enqueue 5 while nothing drains.
	// Only the 3 most recent should survive.
	s := NewAsync(&recorder{}, 3)

	for i := 0; i < 5; i++ {
		s.Notify(testAlert(fmt.Sprintf("alert-%d", i)))
	}

	var titles []string
	for len(s.buf) > 0 {
		a := <-s.buf
		titles = append(titles, a.Title)
	}

	if len(titles) != 3 {
		t.Fatalf("buffer has %d items, want 3", len(titles))
	}
	for i, want := range []string{"alert-2", "alert-3", "alert-4"} {
		if titles[i] != want {
			t.Errorf("titles[%d] = %q, want %q", i, titles[i], want)
		}
	}
}

func TestAsync_DefaultBufferSize(t *testing.T) {
	s := NewAsync(&recorder{}, 0)
	if got := cap(s.buf); got != DefaultBufferSize {
		t.Errorf("cap(buf) = %d, want %d", got, DefaultBufferSize)
	}
}

func TestAsync_GracefulShutdown(t *testing.T) {
	s := NewAsync(&recorder{}, 4)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after context cancellation")
	}
}

func TestMulti_FansOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	m := Multi{a, b}

	m.Notify(testAlert("shared"))

	if len(a.alerts()) != 1 || len(b.alerts()) != 1 {
		t.Fatalf("delivered to (%d, %d) notifiers, want (1, 1)",
			len(a.alerts()), len(b.alerts()))
	}
}
