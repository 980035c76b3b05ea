package alerts

import "time"

// Severity classifies how urgent an alert is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Rank returns the ordering position of a severity: critical outranks
// warning, which outranks info. Unknown severities rank below all three.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 2
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 0
	default:
		return -1
	}
}

// AtLeast reports whether s is at least as severe as min. An empty or
// unknown min acts as no filter and matches every severity.
func (s Severity) AtLeast(min Severity) bool {
	if min.Rank() < 0 {
		return true
	}
	return s.Rank() >= min.Rank()
}

// Candidate describes an alert condition detected during one evaluation
// pass. Inserting a candidate into the store either creates a new alert or
// refreshes an open one carrying the same title and source.
type Candidate struct {
	Severity    Severity
	Title       string
	Message     string
	Source      string
	AutoResolve bool
}

// Alert is one tracked alert. CreatedAt reflects the most recent insert of
// its (Title, Source) pair, not the first.
type Alert struct {
	ID           string     `json:"id"`
	Severity     Severity   `json:"severity"`
	Title        string     `json:"title"`
	Message      string     `json:"message"`
	Source       string     `json:"source"`
	CreatedAt    time.Time  `json:"created_at"`
	Acknowledged bool       `json:"acknowledged"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	AutoResolve  bool       `json:"auto_resolve"`
}

// Open reports whether the alert still demands attention: neither
// acknowledged nor resolved.
func (a Alert) Open() bool {
	return !a.Acknowledged && a.ResolvedAt == nil
}

func (a *Alert) clone() Alert {
	out := *a
	if a.ResolvedAt != nil {
		t := *a.ResolvedAt
		out.ResolvedAt = &t
	}
	return out
}
