package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/veglia/veglia/internal/alerts"
	"github.com/veglia/veglia/internal/config"
	"github.com/veglia/veglia/internal/health"
	"github.com/veglia/veglia/internal/monitor"
)

// Engine is the slice of the monitoring engine the API drives. It is
// satisfied by *monitor.Monitor.
type Engine interface {
	Start()
	Stop()
	Status() monitor.Status
	Config() config.Monitoring
	UpdateConfig(config.MonitoringPatch) (config.Monitoring, error)
}

type handler struct {
	eng   Engine
	store *alerts.Store
	mux   *http.ServeMux
}

// New builds the API handler over an engine and its alert store.
func New(eng Engine, store *alerts.Store) http.Handler {
	h := &handler{eng: eng, store: store, mux: http.NewServeMux()}
	h.mux.HandleFunc("/api/v1/status", h.getStatus)
	h.mux.HandleFunc("/api/v1/overview", h.getOverview)
	h.mux.HandleFunc("/api/v1/alerts", h.listAlerts)
	h.mux.HandleFunc("/api/v1/alerts/", h.alertSubtree)
	h.mux.HandleFunc("/api/v1/config", h.handleConfig)
	h.mux.HandleFunc("/api/v1/monitor/start", h.startMonitor)
	h.mux.HandleFunc("/api/v1/monitor/stop", h.stopMonitor)
	return h
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// BuildOverview assembles the composite payload shared by GET /api/v1/overview
// and the websocket "overview" event.
func BuildOverview(eng Engine, store *alerts.Store) OverviewResponse {
	st := eng.Status()
	active := store.Active()
	return OverviewResponse{
		Status:      statusResponse(st),
		Alerts:      active,
		Diagnostics: computeDiagnostics(st, eng.Config(), active),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// --- route handlers ---------------------------------------------------------

// getStatus serves GET /api/v1/status: engine state plus alert counts.
func (h *handler) getStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, statusResponse(h.eng.Status()))
}

// getOverview serves GET /api/v1/overview: the composite dashboard payload.
func (h *handler) getOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, BuildOverview(h.eng, h.store))
}

// listAlerts serves GET /api/v1/alerts: every tracked alert in insertion order.
func (h *handler) listAlerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, h.store.List())
}

// alertSubtree dispatches /api/v1/alerts/{...}: the active and resolved
// collections plus single-alert lookup and lifecycle actions.
func (h *handler) alertSubtree(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/alerts/")
	switch rest {
	case "":
		h.listAlerts(w, r)
	case "active":
		h.activeAlerts(w, r)
	case "resolved":
		h.clearResolved(w, r)
	default:
		h.alertByID(w, r, rest)
	}
}

// activeAlerts serves GET /api/v1/alerts/active: open alerts only.
func (h *handler) activeAlerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, h.store.Active())
}

// clearResolved serves DELETE /api/v1/alerts/resolved: drops every resolved
// alert and reports how many went away.
func (h *handler) clearResolved(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	jsonResp(w, http.StatusOK, RemovedResponse{Removed: h.store.ClearResolved()})
}

// alertByID serves GET /api/v1/alerts/{id} and the lifecycle actions
// POST /api/v1/alerts/{id}/acknowledge and POST /api/v1/alerts/{id}/resolve.
func (h *handler) alertByID(w http.ResponseWriter, r *http.Request, rest string) {
	id, action, _ := strings.Cut(rest, "/")
	switch action {
	case "":
		if r.Method != http.MethodGet {
			jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		a, ok := h.store.Get(id)
		if !ok {
			jsonErr(w, http.StatusNotFound, "alert not found")
			return
		}
		jsonResp(w, http.StatusOK, a)
	case "acknowledge":
		h.alertAction(w, r, id, h.store.Acknowledge)
	case "resolve":
		h.alertAction(w, r, id, h.store.Resolve)
	default:
		jsonErr(w, http.StatusNotFound, "not found")
	}
}

// alertAction applies a store lifecycle op to one alert and returns the
// updated alert, or 404 when the id matches nothing.
func (h *handler) alertAction(w http.ResponseWriter, r *http.Request, id string, op func(string) bool) {
	if r.Method != http.MethodPost {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !op(id) {
		jsonErr(w, http.StatusNotFound, "alert not found")
		return
	}
	a, _ := h.store.Get(id)
	jsonResp(w, http.StatusOK, a)
}

// handleConfig serves GET and PATCH /api/v1/config: read and merge-update of
// the monitoring section. A rejected patch leaves the engine on its last
// valid configuration.
func (h *handler) handleConfig(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		jsonResp(w, http.StatusOK, configResponse(h.eng.Config()))
	case http.MethodPatch:
		var req ConfigPatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonErr(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		updated, err := h.eng.UpdateConfig(req.patch())
		if err != nil {
			jsonErr(w, http.StatusBadRequest, err.Error())
			return
		}
		jsonResp(w, http.StatusOK, configResponse(updated))
	default:
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// startMonitor serves POST /api/v1/monitor/start.
func (h *handler) startMonitor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	h.eng.Start()
	jsonResp(w, http.StatusOK, RunningResponse{Running: h.eng.Status().Running})
}

// stopMonitor serves POST /api/v1/monitor/stop.
func (h *handler) stopMonitor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		jsonErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	h.eng.Stop()
	jsonResp(w, http.StatusOK, RunningResponse{Running: h.eng.Status().Running})
}

// --- helpers ----------------------------------------------------------------

func statusResponse(st monitor.Status) StatusResponse {
	return StatusResponse{
		Running:      st.Running,
		LastSnapshot: snapshotResponse(st.LastSnapshot),
		ActiveAlerts: st.ActiveAlerts,
		TotalAlerts:  st.TotalAlerts,
	}
}

// snapshotResponse renders a snapshot, or nil when no tick has sampled yet.
func snapshotResponse(s *health.Snapshot) *SnapshotResponse {
	if s == nil {
		return nil
	}
	resp := &SnapshotResponse{
		CPUUsage:     s.CPUUsage,
		TotalMemory:  s.TotalMemory,
		UsedMemory:   s.UsedMemory,
		Temperatures: s.Temperatures,
		Timestamp:    s.Timestamp.UTC().Format(time.RFC3339),
	}
	if pct, ok := s.MemoryUsedPercent(); ok {
		resp.MemoryUsedPercent = &pct
	}
	return resp
}

func configResponse(m config.Monitoring) ConfigResponse {
	return ConfigResponse{
		Enabled:               m.Enabled,
		AlertsEnabled:         m.AlertsEnabled,
		PerformanceMonitoring: m.PerformanceMonitoring,
		SystemHealthChecks:    m.SystemHealthChecks,
		DiskSpaceThreshold:    m.DiskSpaceThreshold,
		MemoryThreshold:       m.MemoryThreshold,
		CPUThreshold:          m.CPUThreshold,
		TemperatureThreshold:  m.TemperatureThreshold,
		IntervalSeconds:       int(m.Interval / time.Second),
	}
}

func (r ConfigPatchRequest) patch() config.MonitoringPatch {
	p := config.MonitoringPatch{
		Enabled:               r.Enabled,
		AlertsEnabled:         r.AlertsEnabled,
		PerformanceMonitoring: r.PerformanceMonitoring,
		SystemHealthChecks:    r.SystemHealthChecks,
		DiskSpaceThreshold:    r.DiskSpaceThreshold,
		MemoryThreshold:       r.MemoryThreshold,
		CPUThreshold:          r.CPUThreshold,
		TemperatureThreshold:  r.TemperatureThreshold,
	}
	if r.IntervalSeconds != nil {
		d := time.Duration(*r.IntervalSeconds) * time.Second
		p.Interval = &d
	}
	return p
}

func jsonResp(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}
