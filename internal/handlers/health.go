// internal/handlers/health.go
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"github.com/ammerola/spoutbreeze-be/internal/core/ports"
)

// DatabaseChecker is the part of ports.Database the health checks need
type DatabaseChecker interface {
	Ping(ctx context.Context) error
	Health(ctx context.Context) map[string]interface{}
}

// cacheStats is implemented by cache stores that expose pool statistics
type cacheStats interface {
	Stats() map[string]interface{}
}

// HealthInfo identifies the running build in health answers
type HealthInfo struct {
	Version     string
	Environment string
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db        DatabaseChecker
	cache     ports.CacheStore
	asynq     *asynq.Inspector
	info      HealthInfo
	logger    *slog.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health handler. inspector may be nil.
func NewHealthHandler(
	database DatabaseChecker,
	cache ports.CacheStore,
	inspector *asynq.Inspector,
	info HealthInfo,
	logger *slog.Logger,
) *HealthHandler {
	return &HealthHandler{
		db:        database,
		cache:     cache,
		asynq:     inspector,
		info:      info,
		logger:    logger.With(slog.String("handler", "health")),
		startTime: time.Now(),
	}
}

// HealthStatus represents the health status of the application
type HealthStatus struct {
	Status      string                 `json:"status"`
	Version     string                 `json:"version"`
	Environment string                 `json:"environment"`
	Uptime      string                 `json:"uptime"`
	Timestamp   time.Time              `json:"timestamp"`
	Services    map[string]ServiceInfo `json:"services"`
	System      SystemInfo             `json:"system"`
}

// ServiceInfo represents the status of a service dependency
type ServiceInfo struct {
	Status       string                 `json:"status"`
	Message      string                 `json:"message,omitempty"`
	ResponseTime string                 `json:"response_time,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// SystemInfo represents system-level information
type SystemInfo struct {
	GoVersion      string `json:"go_version"`
	NumGoroutines  int    `json:"num_goroutines"`
	NumCPU         int    `json:"num_cpu"`
	MemoryAllocMB  uint64 `json:"memory_alloc_mb"`
	MemorySysMB    uint64 `json:"memory_sys_mb"`
	GCPauseTotalMs uint64 `json:"gc_pause_total_ms"`
	NumGC          uint32 `json:"num_gc"`
}

// Health handles GET /health. The database is required; an unreachable
// cache or queue degrades the answer without failing it.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	health := HealthStatus{
		Status:      "healthy",
		Version:     h.info.Version,
		Environment: h.info.Environment,
		Uptime:      time.Since(h.startTime).Round(time.Second).String(),
		Timestamp:   time.Now(),
		Services:    make(map[string]ServiceInfo),
		System:      h.getSystemInfo(),
	}

	var mu sync.Mutex
	record := func(name string, info ServiceInfo) {
		mu.Lock()
		defer mu.Unlock()
		health.Services[name] = info
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		record("database", h.checkDatabase(gctx))
		return nil
	})
	g.Go(func() error {
		record("cache", h.checkCache(gctx))
		return nil
	})
	if h.asynq != nil {
		g.Go(func() error {
			record("asynq", h.checkAsynq(gctx))
			return nil
		})
	}
	_ = g.Wait()

	statusCode := http.StatusOK
	for name, svc := range health.Services {
		if svc.Status == "healthy" {
			continue
		}
		if name == "database" {
			health.Status = "unhealthy"
			statusCode = http.StatusServiceUnavailable
		} else if health.Status == "healthy" {
			health.Status = "degraded"
		}
	}

	h.writeHealth(ctx, w, statusCode, health)
}

// Ready handles GET /health/ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	dbReady := h.db.Ping(ctx) == nil
	cacheReady := h.cache.HealthCheck(ctx)

	response := map[string]interface{}{
		"ready": dbReady,
		"services": map[string]bool{
			"database": dbReady,
			"cache":    cacheReady,
		},
	}

	statusCode := http.StatusOK
	if !dbReady {
		statusCode = http.StatusServiceUnavailable
	}

	h.writeHealth(ctx, w, statusCode, response)
}

// Live handles GET /health/live
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	h.writeHealth(r.Context(), w, http.StatusOK, map[string]interface{}{
		"status":    "alive",
		"uptime":    time.Since(h.startTime).Round(time.Second).String(),
		"timestamp": time.Now(),
	})
}

// Cache handles GET /health/cache
func (h *HealthHandler) Cache(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	info := h.checkCache(ctx)

	statusCode := http.StatusOK
	if info.Status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	h.writeHealth(ctx, w, statusCode, info)
}

func (h *HealthHandler) writeHealth(ctx context.Context, w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.ErrorContext(ctx, "failed to encode health response",
			slog.String("error", err.Error()))
	}
}

// checkDatabase checks the health of the database connection
func (h *HealthHandler) checkDatabase(ctx context.Context) ServiceInfo {
	start := time.Now()
	info := ServiceInfo{
		Status:  "healthy",
		Details: make(map[string]interface{}),
	}

	if err := h.db.Ping(ctx); err != nil {
		info.Status = "unhealthy"
		info.Message = err.Error()
		h.logger.ErrorContext(ctx, "database health check failed",
			slog.String("error", err.Error()))
		return info
	}

	for k, v := range h.db.Health(ctx) {
		info.Details[k] = v
	}

	info.ResponseTime = time.Since(start).String()
	return info
}

// checkCache pings the cache store
func (h *HealthHandler) checkCache(ctx context.Context) ServiceInfo {
	start := time.Now()
	info := ServiceInfo{
		Status: "healthy",
		Details: map[string]interface{}{
			"enabled": h.cache.Enabled(),
		},
	}

	if !h.cache.HealthCheck(ctx) {
		info.Status = "unhealthy"
		info.Message = "cache unavailable"
		if !h.cache.Enabled() {
			info.Message = "cache disabled"
		}
		h.logger.WarnContext(ctx, "cache health check failed",
			slog.Bool("enabled", h.cache.Enabled()))
		return info
	}

	if s, ok := h.cache.(cacheStats); ok {
		for k, v := range s.Stats() {
			info.Details[k] = v
		}
	}

	info.ResponseTime = time.Since(start).String()
	return info
}

// checkAsynq checks the health of the Asynq queue system
func (h *HealthHandler) checkAsynq(ctx context.Context) ServiceInfo {
	start := time.Now()
	info := ServiceInfo{
		Status:  "healthy",
		Details: make(map[string]interface{}),
	}

	queues, err := h.asynq.Queues()
	if err != nil {
		info.Status = "unhealthy"
		info.Message = err.Error()
		h.logger.WarnContext(ctx, "asynq health check failed",
			slog.String("error", err.Error()))
		return info
	}

	queueStats := make(map[string]interface{})
	for _, queue := range queues {
		qInfo, err := h.asynq.GetQueueInfo(queue)
		if err == nil {
			queueStats[queue] = map[string]interface{}{
				"size":      qInfo.Size,
				"active":    qInfo.Active,
				"pending":   qInfo.Pending,
				"scheduled": qInfo.Scheduled,
				"retry":     qInfo.Retry,
				"archived":  qInfo.Archived,
			}
		}
	}
	info.Details["queues"] = queueStats

	if servers, err := h.asynq.Servers(); err == nil {
		info.Details["servers"] = len(servers)
	}

	info.ResponseTime = time.Since(start).String()
	return info
}

// getSystemInfo returns system-level information
func (h *HealthHandler) getSystemInfo() SystemInfo {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return SystemInfo{
		GoVersion:      runtime.Version(),
		NumGoroutines:  runtime.NumGoroutine(),
		NumCPU:         runtime.NumCPU(),
		MemoryAllocMB:  memStats.Alloc / 1024 / 1024,
		MemorySysMB:    memStats.Sys / 1024 / 1024,
		GCPauseTotalMs: memStats.PauseTotalNs / 1000 / 1000,
		NumGC:          memStats.NumGC,
	}
}
