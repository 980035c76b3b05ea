package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/veglia/veglia/internal/alerts"
	"github.com/veglia/veglia/internal/config"
	"github.com/veglia/veglia/internal/health"
	"github.com/veglia/veglia/internal/metrics"
	"github.com/veglia/veglia/internal/notify"
	"github.com/veglia/veglia/internal/policy"
	"github.com/veglia/veglia/internal/source"
)

// Monitor drives the health check loop.
type Monitor struct {
	src source.Source
	st  *alerts.Store

	mu       sync.Mutex
	cfg      config.Monitoring
	notifier notify.Notifier
	lastSnap *health.Snapshot
	running  bool
	cancel   context.CancelFunc
	done     chan struct{}
}

// Status is a point-in-time view of the monitor.
type Status struct {
	Running      bool
	LastSnapshot *health.Snapshot
	ActiveAlerts int
	TotalAlerts  int
}

// New creates a Monitor reading from src and recording alerts in st.
// A nil st gets a fresh store.
func New(src source.Source, st *alerts.Store, cfg config.Monitoring) *Monitor {
	if st == nil {
		st = alerts.NewStore()
	}
	return &Monitor{src: src, st: st, cfg: cfg}
}

// SetNotifier wires the delivery sink for newly created alerts. With no
// notifier set, alerts are only stored.
func (m *Monitor) SetNotifier(n notify.Notifier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifier = n
}

// Store returns the alert store the monitor records into.
func (m *Monitor) Store() *alerts.Store { return m.st }

// Start launches the monitoring loop. The first check runs immediately,
// later ones follow the configured interval. Calling Start on a running
// monitor is a no-op.
func (m *Monitor) Start() {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	m.cancel = cancel
	m.done = done
	m.running = true
	m.mu.Unlock()

	slog.Info("monitor: started", "interval", m.interval())
	go m.run(ctx, done)
}

// Stop halts the loop. An in-flight check finishes before Stop returns.
// Calling Stop on a stopped monitor is a no-op.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	cancel := m.cancel
	done := m.done
	m.cancel = nil
	m.mu.Unlock()

	// Only the first concurrent Stop holds the cancel func; later ones
	// just wait for the loop to drain.
	if cancel != nil {
		cancel()
	}
	<-done

	m.mu.Lock()
	// A restart may have begun since. Only mark stopped when this is
	// still the loop we waited for.
	if m.done == done {
		m.running = false
		slog.Info("monitor: stopped")
	}
	m.mu.Unlock()
}

// Running reports whether the monitoring loop is active.
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Status reports whether the loop runs, the latest snapshot, and the
// store's alert counts.
func (m *Monitor) Status() Status {
	m.mu.Lock()
	running := m.running
	snap := m.lastSnap.Clone()
	m.mu.Unlock()

	total, active := m.st.Counts()
	return Status{
		Running:      running,
		LastSnapshot: snap,
		ActiveAlerts: active,
		TotalAlerts:  total,
	}
}

// Config returns the current monitoring settings.
func (m *Monitor) Config() config.Monitoring {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}

// UpdateConfig merges the patch into the current settings and validates
// the result. On a validation failure the previous settings stay in
// force. Changes apply from the next tick; a tick already waiting keeps
// its old schedule.
func (m *Monitor) UpdateConfig(p config.MonitoringPatch) (config.Monitoring, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.cfg.Merge(p)
	if err := next.Validate(); err != nil {
		return m.cfg, err
	}
	m.cfg = next
	slog.Info("monitor: config updated",
		"enabled", next.Enabled,
		"alerts_enabled", next.AlertsEnabled,
		"cpu_threshold", next.CPUThreshold,
		"memory_threshold", next.MemoryThreshold,
		"interval", next.Interval,
	)
	return next, nil
}

func (m *Monitor) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	m.tick(ctx)

	timer := time.NewTimer(m.interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			m.tick(ctx)
			timer.Reset(m.interval())
		}
	}
}

// tick performs one health check. Collection failures raise an alert and
// leave the loop running.
func (m *Monitor) tick(ctx context.Context) {
	cfg := m.Config()
	if !cfg.Enabled || m.src == nil {
		metrics.TicksTotal.WithLabelValues("skipped").Inc()
		return
	}

	start := time.Now()
	snap, err := m.src.Collect(ctx)
	metrics.TickDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		// Shutdown cancels the collection context; that is not a health
		// problem.
		if ctx.Err() != nil {
			return
		}
		metrics.TicksTotal.WithLabelValues("error").Inc()
		slog.Warn("monitor: health check failed", "err", err)
		if cfg.AlertsEnabled {
			m.raise(policy.FailureCandidate(err))
		}
		return
	}

	m.mu.Lock()
	m.lastSnap = snap
	m.mu.Unlock()

	metrics.TicksTotal.WithLabelValues("ok").Inc()

	if !cfg.AlertsEnabled {
		return
	}
	for _, c := range policy.Evaluate(snap, cfg) {
		m.raise(c)
	}
}

// raise records a candidate and notifies only when the store created a
// new alert; refreshes of open alerts stay quiet.
func (m *Monitor) raise(c alerts.Candidate) {
	a, created := m.st.Insert(c)
	if !created {
		return
	}
	metrics.AlertsCreatedTotal.WithLabelValues(string(a.Severity)).Inc()
	slog.Warn("monitor: alert created",
		"title", a.Title, "severity", a.Severity, "source", a.Source)

	m.mu.Lock()
	n := m.notifier
	m.mu.Unlock()
	if n != nil {
		n.Notify(a)
	}
}

func (m *Monitor) interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cfg.Interval <= 0 {
		return config.DefaultInterval
	}
	return m.cfg.Interval
}
