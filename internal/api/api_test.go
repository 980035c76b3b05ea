package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/veglia/veglia/internal/alerts"
	"github.com/veglia/veglia/internal/api"
	"github.com/veglia/veglia/internal/config"
	"github.com/veglia/veglia/internal/health"
	"github.com/veglia/veglia/internal/monitor"
	"github.com/veglia/veglia/internal/policy"
)

// --- test helpers -----------------------------------------------------------

// fakeEngine is a synchronous api.Engine so handler tests never wait on a
// real scheduler.
type fakeEngine struct {
	running bool
	cfg     config.Monitoring
	snap    *health.Snapshot
	store   *alerts.Store

	starts, stops int
}

func (f *fakeEngine) Start() { f.starts++; f.running = true }
func (f *fakeEngine) Stop()  { f.stops++; f.running = false }

func (f *fakeEngine) Status() monitor.Status {
	total, active := f.store.Counts()
	return monitor.Status{
		Running:      f.running,
		LastSnapshot: f.snap,
		ActiveAlerts: active,
		TotalAlerts:  total,
	}
}

func (f *fakeEngine) Config() config.Monitoring { return f.cfg }

func (f *fakeEngine) UpdateConfig(p config.MonitoringPatch) (config.Monitoring, error) {
	merged := f.cfg.Merge(p)
	if err := merged.Validate(); err != nil {
		return f.cfg, err
	}
	f.cfg = merged
	return merged, nil
}

func testConfig() config.Monitoring {
	return config.Monitoring{
		Enabled:               true,
		AlertsEnabled:         true,
		PerformanceMonitoring: true,
		SystemHealthChecks:    true,
		DiskSpaceThreshold:    90,
		MemoryThreshold:       90,
		CPUThreshold:          95,
		TemperatureThreshold:  80,
		Interval:              30 * time.Second,
	}
}

func quietSnap() *health.Snapshot {
	return &health.Snapshot{
		CPUUsage:     42.5,
		TotalMemory:  1000,
		UsedMemory:   250,
		Temperatures: health.Temperatures{health.DeviceCPU: 48.0},
		Timestamp:    time.Now().UTC(),
	}
}

func newAPI(snap *health.Snapshot) (http.Handler, *fakeEngine, *alerts.Store) {
	st := alerts.NewStore()
	eng := &fakeEngine{running: true, cfg: testConfig(), snap: snap, store: st}
	return api.New(eng, st), eng, st
}

func seed(st *alerts.Store, sev alerts.Severity, title, source string) alerts.Alert {
	a, _ := st.Insert(alerts.Candidate{Severity: sev, Title: title, Message: title, Source: source})
	return a
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(v); err != nil {
		t.Fatalf("decode JSON: %v (body: %s)", err, rr.Body.String())
	}
}

func findHint(hints []api.DiagnosticHint, key string) (api.DiagnosticHint, bool) {
	for _, h := range hints {
		if h.Key == key {
			return h, true
		}
	}
	return api.DiagnosticHint{}, false
}

// --- /api/v1/status ---------------------------------------------------------

func TestStatus_NoSnapshotYet(t *testing.T) {
	h, _, _ := newAPI(nil)
	rr := get(t, h, "/api/v1/status")

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	var resp map[string]interface{}
	decode(t, rr, &resp)

	if resp["running"] != true {
		t.Errorf("running: got %v, want true", resp["running"])
	}
	if _, present := resp["last_snapshot"]; present {
		t.Errorf("last_snapshot: got %v, want omitted", resp["last_snapshot"])
	}
	if resp["active_alerts"].(float64) != 0 {
		t.Errorf("active_alerts: got %v, want 0", resp["active_alerts"])
	}
}

func TestStatus_WithSnapshot(t *testing.T) {
	h, _, st := newAPI(quietSnap())
	seed(st, alerts.SeverityWarning, "High CPU Usage", policy.SourceCPU)
	rr := get(t, h, "/api/v1/status")

	var resp map[string]interface{}
	decode(t, rr, &resp)

	snap := resp["last_snapshot"].(map[string]interface{})
	if snap["cpu_usage"].(float64) != 42.5 {
		t.Errorf("cpu_usage: got %v, want 42.5", snap["cpu_usage"])
	}
	if snap["memory_used_percent"].(float64) != 25.0 {
		t.Errorf("memory_used_percent: got %v, want 25", snap["memory_used_percent"])
	}
	if _, err := time.Parse(time.RFC3339, snap["timestamp"].(string)); err != nil {
		t.Errorf("timestamp: %v", err)
	}
	if resp["active_alerts"].(float64) != 1 {
		t.Errorf("active_alerts: got %v, want 1", resp["active_alerts"])
	}
	if resp["total_alerts"].(float64) != 1 {
		t.Errorf("total_alerts: got %v, want 1", resp["total_alerts"])
	}
}

func TestStatus_ZeroTotalMemoryOmitsPercent(t *testing.T) {
	s := quietSnap()
	s.TotalMemory = 0
	s.UsedMemory = 0
	h, _, _ := newAPI(s)

	var resp map[string]interface{}
	decode(t, get(t, h, "/api/v1/status"), &resp)

	snap := resp["last_snapshot"].(map[string]interface{})
	if _, present := snap["memory_used_percent"]; present {
		t.Errorf("memory_used_percent: got %v, want omitted", snap["memory_used_percent"])
	}
}

func TestStatus_MethodNotAllowed(t *testing.T) {
	h, _, _ := newAPI(nil)
	rr := do(t, h, http.MethodPost, "/api/v1/status", "")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", rr.Code)
	}
}

// --- /api/v1/alerts ---------------------------------------------------------

func TestListAlerts_EmptyIsArray(t *testing.T) {
	h, _, _ := newAPI(nil)
	rr := get(t, h, "/api/v1/alerts")

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	var resp []interface{}
	decode(t, rr, &resp)
	if resp == nil {
		t.Error("alerts: got null, want []")
	}
	if len(resp) != 0 {
		t.Errorf("alerts: got %d items, want 0", len(resp))
	}
}

func TestListAlerts_InsertionOrder(t *testing.T) {
	h, _, st := newAPI(nil)
	seed(st, alerts.SeverityWarning, "High CPU Usage", policy.SourceCPU)
	seed(st, alerts.SeverityWarning, "High Memory Usage", policy.SourceMemory)
	seed(st, alerts.SeverityCritical, "Critical CPU Temperature", policy.SourceThermal)

	var resp []map[string]interface{}
	decode(t, get(t, h, "/api/v1/alerts"), &resp)

	want := []string{"High CPU Usage", "High Memory Usage", "Critical CPU Temperature"}
	if len(resp) != len(want) {
		t.Fatalf("alerts: got %d, want %d", len(resp), len(want))
	}
	for i, title := range want {
		if resp[i]["title"] != title {
			t.Errorf("alerts[%d].title: got %v, want %q", i, resp[i]["title"], title)
		}
	}
}

func TestListAlerts_MethodNotAllowed(t *testing.T) {
	h, _, _ := newAPI(nil)
	rr := do(t, h, http.MethodDelete, "/api/v1/alerts", "")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", rr.Code)
	}
}

func TestActiveAlerts_ExcludesHandled(t *testing.T) {
	h, _, st := newAPI(nil)
	a := seed(st, alerts.SeverityWarning, "High CPU Usage", policy.SourceCPU)
	b := seed(st, alerts.SeverityWarning, "High Memory Usage", policy.SourceMemory)
	seed(st, alerts.SeverityCritical, "Critical GPU Temperature", policy.SourceThermal)
	st.Acknowledge(a.ID)
	st.Resolve(b.ID)

	var resp []map[string]interface{}
	decode(t, get(t, h, "/api/v1/alerts/active"), &resp)

	if len(resp) != 1 {
		t.Fatalf("active: got %d, want 1", len(resp))
	}
	if resp[0]["title"] != "Critical GPU Temperature" {
		t.Errorf("title: got %v", resp[0]["title"])
	}
}

func TestAlertsSubtree_BarePathListsAll(t *testing.T) {
	h, _, st := newAPI(nil)
	seed(st, alerts.SeverityWarning, "High CPU Usage", policy.SourceCPU)

	var resp []interface{}
	decode(t, get(t, h, "/api/v1/alerts/"), &resp)
	if len(resp) != 1 {
		t.Errorf("alerts: got %d, want 1", len(resp))
	}
}

// --- /api/v1/alerts/{id} ----------------------------------------------------

func TestGetAlert_Found(t *testing.T) {
	h, _, st := newAPI(nil)
	a := seed(st, alerts.SeverityWarning, "High CPU Usage", policy.SourceCPU)

	rr := get(t, h, "/api/v1/alerts/"+a.ID)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
	var resp map[string]interface{}
	decode(t, rr, &resp)
	if resp["id"] != a.ID {
		t.Errorf("id: got %v, want %q", resp["id"], a.ID)
	}
	if resp["source"] != policy.SourceCPU {
		t.Errorf("source: got %v, want %q", resp["source"], policy.SourceCPU)
	}
}

func TestGetAlert_NotFound(t *testing.T) {
	h, _, _ := newAPI(nil)
	rr := get(t, h, "/api/v1/alerts/no-such-id")
	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
}

func TestAcknowledgeAlert(t *testing.T) {
	h, _, st := newAPI(nil)
	a := seed(st, alerts.SeverityWarning, "High CPU Usage", policy.SourceCPU)

	rr := do(t, h, http.MethodPost, "/api/v1/alerts/"+a.ID+"/acknowledge", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
	var resp map[string]interface{}
	decode(t, rr, &resp)
	if resp["acknowledged"] != true {
		t.Errorf("acknowledged: got %v, want true", resp["acknowledged"])
	}

	got, _ := st.Get(a.ID)
	if !got.Acknowledged {
		t.Error("store: alert not acknowledged")
	}
}

func TestAcknowledgeAlert_NotFound(t *testing.T) {
	h, _, _ := newAPI(nil)
	rr := do(t, h, http.MethodPost, "/api/v1/alerts/no-such-id/acknowledge", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
}

func TestAcknowledgeAlert_MethodNotAllowed(t *testing.T) {
	h, _, st := newAPI(nil)
	a := seed(st, alerts.SeverityWarning, "High CPU Usage", policy.SourceCPU)
	rr := get(t, h, "/api/v1/alerts/"+a.ID+"/acknowledge")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", rr.Code)
	}
}

func TestResolveAlert(t *testing.T) {
	h, _, st := newAPI(nil)
	a := seed(st, alerts.SeverityWarning, "High Memory Usage", policy.SourceMemory)

	rr := do(t, h, http.MethodPost, "/api/v1/alerts/"+a.ID+"/resolve", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
	var resp map[string]interface{}
	decode(t, rr, &resp)
	if resp["resolved_at"] == nil || resp["resolved_at"] == "" {
		t.Error("resolved_at: missing")
	}

	if active := st.Active(); len(active) != 0 {
		t.Errorf("active after resolve: got %d, want 0", len(active))
	}
}

func TestResolveAlert_NotFound(t *testing.T) {
	h, _, _ := newAPI(nil)
	rr := do(t, h, http.MethodPost, "/api/v1/alerts/no-such-id/resolve", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
}

func TestAlertUnknownAction(t *testing.T) {
	h, _, st := newAPI(nil)
	a := seed(st, alerts.SeverityWarning, "High CPU Usage", policy.SourceCPU)
	rr := do(t, h, http.MethodPost, "/api/v1/alerts/"+a.ID+"/promote", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
}

// --- /api/v1/alerts/resolved ------------------------------------------------

func TestClearResolved(t *testing.T) {
	h, _, st := newAPI(nil)
	a := seed(st, alerts.SeverityWarning, "High CPU Usage", policy.SourceCPU)
	seed(st, alerts.SeverityWarning, "High Memory Usage", policy.SourceMemory)
	st.Resolve(a.ID)

	rr := do(t, h, http.MethodDelete, "/api/v1/alerts/resolved", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	var resp map[string]interface{}
	decode(t, rr, &resp)
	if resp["removed"].(float64) != 1 {
		t.Errorf("removed: got %v, want 1", resp["removed"])
	}

	rr = do(t, h, http.MethodDelete, "/api/v1/alerts/resolved", "")
	decode(t, rr, &resp)
	if resp["removed"].(float64) != 0 {
		t.Errorf("removed on second call: got %v, want 0", resp["removed"])
	}
}

func TestClearResolved_MethodNotAllowed(t *testing.T) {
	h, _, _ := newAPI(nil)
	rr := get(t, h, "/api/v1/alerts/resolved")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", rr.Code)
	}
}

// --- /api/v1/config ---------------------------------------------------------

func TestGetConfig(t *testing.T) {
	h, _, _ := newAPI(nil)
	rr := get(t, h, "/api/v1/config")

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	var resp api.ConfigResponse
	decode(t, rr, &resp)

	if !resp.Enabled || !resp.AlertsEnabled {
		t.Errorf("flags: got %+v, want all enabled", resp)
	}
	if resp.CPUThreshold != 95 {
		t.Errorf("cpu_threshold: got %v, want 95", resp.CPUThreshold)
	}
	if resp.IntervalSeconds != 30 {
		t.Errorf("interval_seconds: got %d, want 30", resp.IntervalSeconds)
	}
}

func TestPatchConfig_Applies(t *testing.T) {
	h, eng, _ := newAPI(nil)
	rr := do(t, h, http.MethodPatch, "/api/v1/config",
		`{"cpu_threshold": 80, "interval_seconds": 60, "alerts_enabled": false}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
	var resp api.ConfigResponse
	decode(t, rr, &resp)
	if resp.CPUThreshold != 80 {
		t.Errorf("cpu_threshold: got %v, want 80", resp.CPUThreshold)
	}
	if resp.IntervalSeconds != 60 {
		t.Errorf("interval_seconds: got %d, want 60", resp.IntervalSeconds)
	}
	if resp.AlertsEnabled {
		t.Error("alerts_enabled: got true, want false")
	}
	if resp.MemoryThreshold != 90 {
		t.Errorf("memory_threshold: got %v, want 90 (untouched)", resp.MemoryThreshold)
	}

	if eng.cfg.CPUThreshold != 80 || eng.cfg.Interval != 60*time.Second {
		t.Errorf("engine config not updated: %+v", eng.cfg)
	}
}

func TestPatchConfig_InvalidRejected(t *testing.T) {
	h, eng, _ := newAPI(nil)
	rr := do(t, h, http.MethodPatch, "/api/v1/config", `{"interval_seconds": -5}`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400 (body: %s)", rr.Code, rr.Body.String())
	}
	var resp map[string]interface{}
	decode(t, rr, &resp)
	if resp["error"] == nil || resp["error"] == "" {
		t.Error("error: missing")
	}
	if eng.cfg.Interval != 30*time.Second {
		t.Errorf("engine interval changed to %v, want 30s kept", eng.cfg.Interval)
	}
}

func TestPatchConfig_BadJSON(t *testing.T) {
	h, _, _ := newAPI(nil)
	rr := do(t, h, http.MethodPatch, "/api/v1/config", `{"cpu_threshold": `)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rr.Code)
	}
}

func TestConfig_MethodNotAllowed(t *testing.T) {
	h, _, _ := newAPI(nil)
	rr := do(t, h, http.MethodPut, "/api/v1/config", `{}`)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", rr.Code)
	}
}

// --- /api/v1/monitor/start, /api/v1/monitor/stop ----------------------------

func TestMonitorStartStop(t *testing.T) {
	h, eng, _ := newAPI(nil)
	eng.running = false

	rr := do(t, h, http.MethodPost, "/api/v1/monitor/start", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("start status: got %d, want 200", rr.Code)
	}
	var resp map[string]interface{}
	decode(t, rr, &resp)
	if resp["running"] != true {
		t.Errorf("running after start: got %v, want true", resp["running"])
	}
	if eng.starts != 1 {
		t.Errorf("starts: got %d, want 1", eng.starts)
	}

	rr = do(t, h, http.MethodPost, "/api/v1/monitor/stop", "")
	decode(t, rr, &resp)
	if resp["running"] != false {
		t.Errorf("running after stop: got %v, want false", resp["running"])
	}
	if eng.stops != 1 {
		t.Errorf("stops: got %d, want 1", eng.stops)
	}
}

func TestMonitorStart_MethodNotAllowed(t *testing.T) {
	h, _, _ := newAPI(nil)
	rr := get(t, h, "/api/v1/monitor/start")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", rr.Code)
	}
}

// --- /api/v1/overview -------------------------------------------------------

func TestOverview(t *testing.T) {
	h, _, st := newAPI(quietSnap())
	seed(st, alerts.SeverityCritical, "Critical CPU Temperature", policy.SourceThermal)

	rr := get(t, h, "/api/v1/overview")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	var resp api.OverviewResponse
	decode(t, rr, &resp)

	if !resp.Status.Running {
		t.Error("status.running: got false, want true")
	}
	if len(resp.Alerts) != 1 {
		t.Errorf("alerts: got %d, want 1", len(resp.Alerts))
	}
	if len(resp.Diagnostics) == 0 {
		t.Error("diagnostics: empty")
	}
	if _, err := time.Parse(time.RFC3339, resp.GeneratedAt); err != nil {
		t.Errorf("generated_at: %v", err)
	}
}

// --- diagnostics ------------------------------------------------------------

func TestDiagnostics_AllClear(t *testing.T) {
	_, eng, st := newAPI(quietSnap())
	ov := api.BuildOverview(eng, st)

	if len(ov.Diagnostics) != 1 {
		t.Fatalf("hints: got %d, want 1 (%+v)", len(ov.Diagnostics), ov.Diagnostics)
	}
	if ov.Diagnostics[0].Key != "healthy" || ov.Diagnostics[0].Level != "ok" {
		t.Errorf("hint: got %+v, want healthy/ok", ov.Diagnostics[0])
	}
}

func TestDiagnostics_StoppedEngine(t *testing.T) {
	_, eng, st := newAPI(quietSnap())
	eng.running = false
	ov := api.BuildOverview(eng, st)

	if _, ok := findHint(ov.Diagnostics, "engine_stopped"); !ok {
		t.Errorf("hints: %+v, want engine_stopped", ov.Diagnostics)
	}
}

func TestDiagnostics_MonitoringDisabled(t *testing.T) {
	_, eng, st := newAPI(quietSnap())
	eng.cfg.Enabled = false
	ov := api.BuildOverview(eng, st)

	if _, ok := findHint(ov.Diagnostics, "monitoring_disabled"); !ok {
		t.Errorf("hints: %+v, want monitoring_disabled", ov.Diagnostics)
	}
}

func TestDiagnostics_WarmingUp(t *testing.T) {
	_, eng, st := newAPI(nil)
	ov := api.BuildOverview(eng, st)

	if _, ok := findHint(ov.Diagnostics, "warming_up"); !ok {
		t.Errorf("hints: %+v, want warming_up", ov.Diagnostics)
	}
}

func TestDiagnostics_SourceFailure(t *testing.T) {
	_, eng, st := newAPI(quietSnap())
	st.Insert(policy.FailureCandidate(errors.New("connection refused")))
	ov := api.BuildOverview(eng, st)

	hint, ok := findHint(ov.Diagnostics, "source_unreachable")
	if !ok {
		t.Fatalf("hints: %+v, want source_unreachable", ov.Diagnostics)
	}
	if hint.Level != "critical" {
		t.Errorf("level: got %q, want critical", hint.Level)
	}
	if !strings.Contains(hint.Detail, "connection refused") {
		t.Errorf("detail: %q, want the collect error embedded", hint.Detail)
	}
}

func TestDiagnostics_CriticalCount(t *testing.T) {
	_, eng, st := newAPI(quietSnap())
	seed(st, alerts.SeverityCritical, "Critical CPU Temperature", policy.SourceThermal)
	seed(st, alerts.SeverityCritical, "Critical GPU Temperature", policy.SourceThermal)
	ov := api.BuildOverview(eng, st)

	hint, ok := findHint(ov.Diagnostics, "critical_alerts")
	if !ok {
		t.Fatalf("hints: %+v, want critical_alerts", ov.Diagnostics)
	}
	if hint.Value == nil || *hint.Value != 2 {
		t.Errorf("value: got %v, want 2", hint.Value)
	}
	if hint.Title != "2 critical alerts" {
		t.Errorf("title: got %q", hint.Title)
	}
}

func TestDiagnostics_StaleSnapshot(t *testing.T) {
	s := quietSnap()
	s.Timestamp = time.Now().Add(-10 * time.Minute)
	_, eng, st := newAPI(s)
	ov := api.BuildOverview(eng, st)

	if _, ok := findHint(ov.Diagnostics, "stale_snapshot"); !ok {
		t.Errorf("hints: %+v, want stale_snapshot", ov.Diagnostics)
	}
}

func TestDiagnostics_WarningCount(t *testing.T) {
	_, eng, st := newAPI(quietSnap())
	seed(st, alerts.SeverityWarning, "High CPU Usage", policy.SourceCPU)
	ov := api.BuildOverview(eng, st)

	hint, ok := findHint(ov.Diagnostics, "warning_alerts")
	if !ok {
		t.Fatalf("hints: %+v, want warning_alerts", ov.Diagnostics)
	}
	if hint.Title != "1 open warning" {
		t.Errorf("title: got %q", hint.Title)
	}
}

// --- Content-Type -----------------------------------------------------------

func TestContentTypeJSON(t *testing.T) {
	h, _, _ := newAPI(quietSnap())
	for _, path := range []string{
		"/api/v1/status",
		"/api/v1/overview",
		"/api/v1/alerts",
		"/api/v1/alerts/active",
		"/api/v1/config",
	} {
		rr := get(t, h, path)
		ct := rr.Header().Get("Content-Type")
		if ct != "application/json" {
			t.Errorf("%s Content-Type: got %q, want application/json", path, ct)
		}
	}
}
