package service

import (
	"context"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/starterkit/render-starter/internal/database"
	"gorm.io/gorm"
)

// Check reports whether a dependency is usable
type Check func(ctx context.Context) error

// CheckResult is the outcome of one dependency check
type CheckResult struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// Check statuses
const (
	StatusUp   = "up"
	StatusDown = "down"
)

// HealthService runs dependency checks for the readiness probes
type HealthService struct {
	started time.Time
	timeout time.Duration
	version string
	env     string

	mu     sync.RWMutex
	checks map[string]Check
}

// NewHealthService creates a HealthService; started is the process start time
func NewHealthService(started time.Time, version, env string) *HealthService {
	return &HealthService{
		started: started,
		timeout: 2 * time.Second,
		version: version,
		env:     env,
		checks:  make(map[string]Check),
	}
}

// WithTimeout overrides the per-check timeout
func (s *HealthService) WithTimeout(d time.Duration) *HealthService {
	s.timeout = d
	return s
}

// Register adds a named dependency check
func (s *HealthService) Register(name string, check Check) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checks[name] = check
}

// Started returns the process start time
func (s *HealthService) Started() time.Time {
	return s.started
}

// Uptime returns the time since start
func (s *HealthService) Uptime() time.Duration {
	return time.Since(s.started)
}

// CheckNames lists registered checks in order
func (s *HealthService) CheckNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ready runs every check concurrently. ready is false when any check fails;
// with no checks registered the service is always ready.
func (s *HealthService) Ready(ctx context.Context) (bool, map[string]CheckResult) {
	s.mu.RLock()
	checks := make(map[string]Check, len(s.checks))
	for name, check := range s.checks {
		checks[name] = check
	}
	s.mu.RUnlock()

	results := make(map[string]CheckResult, len(checks))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for name, check := range checks {
		wg.Add(1)
		go func(name string, check Check) {
			defer wg.Done()
			result := s.run(ctx, check)
			mu.Lock()
			results[name] = result
			mu.Unlock()
		}(name, check)
	}
	wg.Wait()

	ready := true
	for _, r := range results {
		if r.Status != StatusUp {
			ready = false
		}
	}
	return ready, results
}

func (s *HealthService) run(ctx context.Context, check Check) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	err := check(ctx)
	result := CheckResult{Status: StatusUp, LatencyMS: time.Since(start).Milliseconds()}
	if err != nil {
		result.Status = StatusDown
		result.Error = err.Error()
	}
	return result
}

// MemoryStats is the memory section of the detailed health report
type MemoryStats struct {
	AllocBytes      uint64 `json:"alloc_bytes"`
	TotalAllocBytes uint64 `json:"total_alloc_bytes"`
	SysBytes        uint64 `json:"sys_bytes"`
	HeapInUseBytes  uint64 `json:"heap_in_use_bytes"`
	NumGC           uint32 `json:"num_gc"`
}

// Details is the payload of the detailed health probe
type Details struct {
	Status        string                 `json:"status"`
	Timestamp     string                 `json:"timestamp"`
	UptimeSeconds float64                `json:"uptime_seconds"`
	Version       string                 `json:"version"`
	Environment   string                 `json:"environment"`
	GoVersion     string                 `json:"go_version"`
	Platform      string                 `json:"platform"`
	PID           int                    `json:"pid"`
	Goroutines    int                    `json:"goroutines"`
	CPUs          int                    `json:"cpus"`
	Memory        MemoryStats            `json:"memory"`
	Checks        map[string]CheckResult `json:"checks"`
}

// Detailed collects process information plus the check results
func (s *HealthService) Detailed(ctx context.Context) (bool, *Details) {
	ready, results := s.Ready(ctx)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	status := "ok"
	if !ready {
		status = "degraded"
	}
	return ready, &Details{
		Status:        status,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds: s.Uptime().Seconds(),
		Version:       s.version,
		Environment:   s.env,
		GoVersion:     runtime.Version(),
		Platform:      runtime.GOOS + "/" + runtime.GOARCH,
		PID:           os.Getpid(),
		Goroutines:    runtime.NumGoroutine(),
		CPUs:          runtime.NumCPU(),
		Memory: MemoryStats{
			AllocBytes:      mem.Alloc,
			TotalAllocBytes: mem.TotalAlloc,
			SysBytes:        mem.Sys,
			HeapInUseBytes:  mem.HeapInuse,
			NumGC:           mem.NumGC,
		},
		Checks: results,
	}
}

// DatabaseCheck pings the relational store
func DatabaseCheck(db *gorm.DB) Check {
	return func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}
}

// RedisCheck pings Redis
func RedisCheck(client *redis.Client) Check {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
