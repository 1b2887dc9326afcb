package observability

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// MonitoringStats aggregates the counters exposed on the health endpoint.
type MonitoringStats struct {
	AccountsCreated uint64 `json:"accounts_created"`
	InvitesSent     uint64 `json:"invites_sent"`
	InvitesAccepted uint64 `json:"invites_accepted"`
	MessagesSent    uint64 `json:"messages_sent"`
	RejectedCalls   uint64 `json:"rejected_calls"`

	AllocMemMb uint64  `json:"alloc_mem_mb"`
	NumGC      uint32  `json:"num_gc"`
	RSSBytes   uint64  `json:"rss_bytes"`
	CPUPercent float64 `json:"cpu_percent"`
	Uptime     string  `json:"uptime"`
}

// Monitor counts successful and rejected calls.
// A nil *Monitor is valid and records nothing.
type Monitor struct {
	log       *slog.Logger
	mu        sync.RWMutex
	startedAt time.Time
	memory    runtime.MemStats
	rss       uint64
	cpu       float64

	accountsCreated uint64
	invitesSent     uint64
	invitesAccepted uint64
	messagesSent    uint64
	rejectedCalls   uint64
}

func NewMonitor(log *slog.Logger) *Monitor {
	return &Monitor{log: log, startedAt: time.Now()}
}

func (m *Monitor) IncrAccountsCreated() {
	if m != nil {
		atomic.AddUint64(&m.accountsCreated, 1)
	}
}

func (m *Monitor) IncrInvitesSent() {
	if m != nil {
		atomic.AddUint64(&m.invitesSent, 1)
	}
}

func (m *Monitor) IncrInvitesAccepted() {
	if m != nil {
		atomic.AddUint64(&m.invitesAccepted, 1)
	}
}

func (m *Monitor) AddMessagesSent(n int) {
	if m != nil && n > 0 {
		atomic.AddUint64(&m.messagesSent, uint64(n))
	}
}

func (m *Monitor) IncrRejected() {
	if m != nil {
		atomic.AddUint64(&m.rejectedCalls, 1)
	}
}

// DefaultInterval replaces a non-positive refresh interval.
const DefaultInterval = 30 * time.Second

// Listen refreshes the runtime and process figures every interval until ctx is done.
func (m *Monitor) Listen(ctx context.Context, interval time.Duration) {
	if m == nil {
		return
	}
	if interval <= 0 {
		m.log.Warn("Invalid monitoring interval, using default", "interval", interval, "default", DefaultInterval)
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	self, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		// Runtime figures are still available without process stats
		m.log.Warn("Process stats unavailable", "error", err)
	}

	m.refresh(self)
	for {
		select {
		case <-ctx.Done():
			m.log.Info("Monitoring stopped")
			return
		case <-ticker.C:
			m.refresh(self)
		}
	}
}

func (m *Monitor) refresh(self *process.Process) {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	rss, cpu := processStats(self)

	m.mu.Lock()
	m.memory = stats
	if self != nil {
		m.rss, m.cpu = rss, cpu
	}
	m.mu.Unlock()

	m.log.Debug("Monitoring stats refreshed",
		"alloc_mb", stats.Alloc/1024/1024, "num_gc", stats.NumGC, "rss_bytes", rss, "cpu_percent", cpu)
}

func processStats(self *process.Process) (uint64, float64) {
	if self == nil {
		return 0, 0
	}
	var rss uint64
	if info, err := self.MemoryInfo(); err == nil {
		rss = info.RSS
	}
	cpu, err := self.CPUPercent()
	if err != nil {
		cpu = 0
	}
	return rss, cpu
}

func (m *Monitor) GetLatest() MonitoringStats {
	if m == nil {
		return MonitoringStats{}
	}
	m.mu.RLock()
	memory, rss, cpu := m.memory, m.rss, m.cpu
	m.mu.RUnlock()

	return MonitoringStats{
		AccountsCreated: atomic.LoadUint64(&m.accountsCreated),
		InvitesSent:     atomic.LoadUint64(&m.invitesSent),
		InvitesAccepted: atomic.LoadUint64(&m.invitesAccepted),
		MessagesSent:    atomic.LoadUint64(&m.messagesSent),
		RejectedCalls:   atomic.LoadUint64(&m.rejectedCalls),
		AllocMemMb:      memory.Alloc / 1024 / 1024,
		NumGC:           memory.NumGC,
		RSSBytes:        rss,
		CPUPercent:      cpu,
		Uptime:          time.Since(m.startedAt).Truncate(time.Second).String(),
	}
}
