package source

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	dto "github.com/prometheus/client_model/go"

	"github.com/veglia/veglia/internal/config"
	"github.com/veglia/veglia/internal/health"
)

// node_exporter metric names the prometheus source reads.
const (
	// Cumulative CPU seconds per core, labelled with a mode.
	nodeCPUSeconds = "node_cpu_seconds_total"

	// Total installed memory in bytes.
	nodeMemTotal = "node_memory_MemTotal_bytes"

	// Memory available for new workloads without swapping, in bytes.
	nodeMemAvailable = "node_memory_MemAvailable_bytes"

	// Hardware monitor temperature readings, labelled with chip and sensor.
	nodeHwmonTemp = "node_hwmon_temp_celsius"
)

// promSource scrapes a node_exporter style metrics endpoint and derives
// the same snapshot shape the local source produces. It keeps the previous
// CPU counters so usage can be computed from the delta between scrapes.
type promSource struct {
	cfg    config.SourceConfig
	client *http.Client

	mu        sync.Mutex
	prevTotal float64
	prevIdle  float64
}

func (s *promSource) Collect(ctx context.Context) (*health.Snapshot, error) {
	mfs, err := fetchMetrics(ctx, s.client, s.cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("prometheus source: %w", err)
	}

	total, idle, err := cpuSeconds(mfs[nodeCPUSeconds])
	if err != nil {
		return nil, fmt.Errorf("prometheus source: %w", err)
	}

	snap := &health.Snapshot{Timestamp: time.Now().UTC()}

	s.mu.Lock()
	snap.CPUUsage = cpuPercent(s.prevTotal, s.prevIdle, total, idle)
	s.prevTotal, s.prevIdle = total, idle
	s.mu.Unlock()

	memTotal := sumFamily(mfs[nodeMemTotal])
	memAvailable := sumFamily(mfs[nodeMemAvailable])
	if memTotal > 0 {
		snap.TotalMemory = uint64(memTotal)
		if memAvailable <= memTotal {
			snap.UsedMemory = uint64(memTotal - memAvailable)
		}
	}

	snap.Temperatures = temperaturesFromHwmon(mfs[nodeHwmonTemp])
	return snap, nil
}

// cpuSeconds sums cumulative CPU seconds across all cores. Idle and iowait
// modes both count as not-busy time.
func cpuSeconds(mf *dto.MetricFamily) (total, idle float64, err error) {
	if mf == nil {
		return 0, 0, fmt.Errorf("metric %s not found in scrape", nodeCPUSeconds)
	}
	for _, m := range mf.GetMetric() {
		v := sampleValue(m)
		total += v
		switch labelValue(m, "mode") {
		case "idle", "iowait":
			idle += v
		}
	}
	return total, idle, nil
}

// cpuPercent derives a busy percentage from two cumulative counter
// readings. On the first scrape, and after a counter reset, there is no
// usable previous reading and the since-boot ratio stands in. The result
// is clamped to [0, 100].
func cpuPercent(prevTotal, prevIdle, total, idle float64) float64 {
	dt := total - prevTotal
	di := idle - prevIdle
	if prevTotal <= 0 || dt <= 0 {
		if total <= 0 {
			return 0
		}
		dt, di = total, idle
	}
	pct := 100 * (1 - di/dt)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// temperaturesFromHwmon keeps the hottest hwmon reading per device class.
// Chips that match neither class (NVMe drives, chipsets) are ignored.
func temperaturesFromHwmon(mf *dto.MetricFamily) health.Temperatures {
	if mf == nil {
		return nil
	}
	temps := health.Temperatures{}
	for _, m := range mf.GetMetric() {
		dev := classifyDevice(labelValue(m, "chip"))
		if dev == "" {
			dev = classifyDevice(labelValue(m, "sensor"))
		}
		if dev == "" {
			continue
		}
		v := sampleValue(m)
		if cur, ok := temps[dev]; !ok || v > cur {
			temps[dev] = v
		}
	}
	if len(temps) == 0 {
		return nil
	}
	return temps
}
