package metrics

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

const (
	namespace       = "marketplace"
	DefaultInterval = 5 * time.Second
)

var (
	SystemCPUUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "system_cpu_usage_percent",
		Help:      "Host CPU usage percentage",
	})

	SystemMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "system_memory_usage_bytes",
		Help:      "Host memory in use",
	})

	ProcessCPUUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "process_cpu_usage_percent",
		Help:      "CPU usage of this process",
	})

	ProcessResidentMemory = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "process_resident_memory_bytes",
		Help:      "Resident set size of this process",
	})

	HeapAllocBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "heap_alloc_bytes",
		Help:      "Go heap allocation",
	})

	Goroutines = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "goroutines",
		Help:      "Live goroutines, SSE subscribers included",
	})
)

// StartSystemMetricsCollector samples host and process usage every interval
// until ctx is done.
func StartSystemMetricsCollector(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	self, err := process.NewProcessWithContext(ctx, int32(os.Getpid())) //nolint:gosec // pid fits in int32
	if err != nil {
		self = nil
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectSystemMetrics(ctx, self)
			}
		}
	}()
}

func collectSystemMetrics(ctx context.Context, self *process.Process) {
	if cpuPercent, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	if vmStat, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	if self != nil {
		if percent, err := self.CPUPercentWithContext(ctx); err == nil {
			ProcessCPUUsage.Set(percent)
		}
		if info, err := self.MemoryInfoWithContext(ctx); err == nil {
			ProcessResidentMemory.Set(float64(info.RSS))
		}
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	HeapAllocBytes.Set(float64(m.Alloc))
	Goroutines.Set(float64(runtime.NumGoroutine()))
}
