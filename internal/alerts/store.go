package alerts

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/veglia/veglia/internal/metrics"
)

// Store is the mutex-guarded in-memory alert inventory. Alerts are kept in
// insertion order and accessors hand out copies, so callers can never
// mutate store state through a returned value.
type Store struct {
	mu     sync.RWMutex
	alerts []*Alert

	now func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Insert records a candidate. When an open alert with the same title and
// source already exists, that alert's timestamp and message are refreshed
// in place and it is returned with created == false. Otherwise a new alert
// is created and returned with created == true.
func (s *Store) Insert(c Candidate) (alert Alert, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.alerts {
		if a.Open() && a.Title == c.Title && a.Source == c.Source {
			a.CreatedAt = s.now()
			a.Message = c.Message
			return a.clone(), false
		}
	}

	a := &Alert{
		ID:          uuid.NewString(),
		Severity:    c.Severity,
		Title:       c.Title,
		Message:     c.Message,
		Source:      c.Source,
		CreatedAt:   s.now(),
		AutoResolve: c.AutoResolve,
	}
	s.alerts = append(s.alerts, a)
	s.syncGaugeLocked()
	return a.clone(), true
}

// Acknowledge marks the alert with the given id as acknowledged and reports
// whether it exists. Acknowledging an unknown id is a no-op.
func (s *Store) Acknowledge(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.findLocked(id)
	if a == nil {
		return false
	}
	a.Acknowledged = true
	s.syncGaugeLocked()
	return true
}

// Resolve stamps the alert with the given id as resolved and reports
// whether it exists. Resolving an already-resolved alert refreshes the
// resolution time.
func (s *Store) Resolve(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.findLocked(id)
	if a == nil {
		return false
	}
	t := s.now()
	a.ResolvedAt = &t
	s.syncGaugeLocked()
	return true
}

// ClearResolved drops every resolved alert and reports how many were
// removed. The relative order of the remaining alerts is preserved.
func (s *Store) ClearResolved() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]*Alert, 0, len(s.alerts))
	for _, a := range s.alerts {
		if a.ResolvedAt == nil {
			kept = append(kept, a)
		}
	}
	removed := len(s.alerts) - len(kept)
	s.alerts = kept
	return removed
}

// List returns every alert in insertion order.
func (s *Store) List() []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Alert, 0, len(s.alerts))
	for _, a := range s.alerts {
		out = append(out, a.clone())
	}
	return out
}

// Active returns the alerts that are still open, in insertion order.
func (s *Store) Active() []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Alert, 0, len(s.alerts))
	for _, a := range s.alerts {
		if a.Open() {
			out = append(out, a.clone())
		}
	}
	return out
}

// Get returns the alert with the given id.
func (s *Store) Get(id string) (Alert, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if a := s.findLocked(id); a != nil {
		return a.clone(), true
	}
	return Alert{}, false
}

// Counts returns the total and open alert counts in one pass.
func (s *Store) Counts() (total, active int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.alerts {
		if a.Open() {
			active++
		}
	}
	return len(s.alerts), active
}

func (s *Store) findLocked(id string) *Alert {
	for _, a := range s.alerts {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (s *Store) syncGaugeLocked() {
	open := 0
	for _, a := range s.alerts {
		if a.Open() {
			open++
		}
	}
	metrics.ActiveAlerts.Set(float64(open))
}
