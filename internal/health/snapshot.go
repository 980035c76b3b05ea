package health

import "time"

// Device keys used in the Temperatures map.
const (
	DeviceCPU = "cpu"
	DeviceGPU = "gpu"
)

// Temperatures holds per-device temperature readings in degrees Celsius.
// Absent devices are simply missing from the map; a missing reading skips
// the corresponding thermal check.
type Temperatures map[string]float64

// CPU returns the CPU temperature reading, if present.
func (t Temperatures) CPU() (float64, bool) {
	v, ok := t[DeviceCPU]
	return v, ok
}

// GPU returns the GPU temperature reading, if present.
func (t Temperatures) GPU() (float64, bool) {
	v, ok := t[DeviceGPU]
	return v, ok
}

// Snapshot is one reading of system health metrics at a point in time.
type Snapshot struct {
	// CPUUsage is the CPU utilization percentage (0-100).
	CPUUsage float64 `json:"cpu_usage"`

	// TotalMemory and UsedMemory are in bytes.
	TotalMemory uint64 `json:"total_memory"`
	UsedMemory  uint64 `json:"used_memory"`

	// Temperatures holds optional per-device readings in °C.
	Temperatures Temperatures `json:"temperatures,omitempty"`

	// Timestamp is when the reading was taken.
	Timestamp time.Time `json:"timestamp"`
}

// MemoryUsedPercent returns used memory as a percentage of total.
// Reports false when TotalMemory is zero, so callers never divide by zero.
func (s *Snapshot) MemoryUsedPercent() (float64, bool) {
	if s.TotalMemory == 0 {
		return 0, false
	}
	return float64(s.UsedMemory) / float64(s.TotalMemory) * 100, true
}

// Clone returns a deep copy of the snapshot, safe to hand out to callers
// while the original may be replaced on the next tick.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	cp := *s
	if s.Temperatures != nil {
		cp.Temperatures = make(Temperatures, len(s.Temperatures))
		for k, v := range s.Temperatures {
			cp.Temperatures[k] = v
		}
	}
	return &cp
}
