package source

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/veglia/veglia/internal/health"
)

// cpuSampleWindow is how long the local source measures CPU busy time per
// collection. Kept short so a tick stays fast.
const cpuSampleWindow = 250 * time.Millisecond

// localSource reads the host the daemon runs on through gopsutil.
type localSource struct{}

func (s *localSource) Collect(ctx context.Context) (*health.Snapshot, error) {
	percents, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false)
	if err != nil {
		return nil, fmt.Errorf("local source: cpu percent: %w", err)
	}
	var cpuUsage float64
	if len(percents) > 0 {
		cpuUsage = percents[0]
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("local source: virtual memory: %w", err)
	}

	snap := &health.Snapshot{
		CPUUsage:    cpuUsage,
		TotalMemory: vm.Total,
		UsedMemory:  vm.Used,
		Timestamp:   time.Now().UTC(),
	}

	// Sensor support varies wildly across platforms. A host without
	// readable temperature data still produces a snapshot.
	stats, err := host.SensorsTemperaturesWithContext(ctx)
	if err != nil && len(stats) == 0 {
		slog.Debug("source: no temperature sensors", "err", err)
		return snap, nil
	}
	snap.Temperatures = temperaturesFromSensors(stats)
	return snap, nil
}

// temperaturesFromSensors keeps the hottest reading per device class.
func temperaturesFromSensors(stats []host.TemperatureStat) health.Temperatures {
	temps := health.Temperatures{}
	for _, st := range stats {
		dev := classifyDevice(st.SensorKey)
		if dev == "" {
			continue
		}
		if cur, ok := temps[dev]; !ok || st.Temperature > cur {
			temps[dev] = st.Temperature
		}
	}
	if len(temps) == 0 {
		return nil
	}
	return temps
}
