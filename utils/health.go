package utils

import (
	"context"
	"sync"
	"time"

	"statutesync/database/engine"
)

// HealthStatus represents current status of the storage engine and the AI backend.
type HealthStatus struct {
	Engine    string    `json:"engine"`
	Storage   bool      `json:"storage"`
	AI        string    `json:"ai"`
	CheckedAt time.Time `json:"checkedAt"`
}

type HealthMonitor struct {
	eng      engine.Engine
	aiName   string
	interval time.Duration

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(eng engine.Engine, aiName string, interval time.Duration) *HealthMonitor {
	return &HealthMonitor{eng: eng, aiName: aiName, interval: interval}
}

// Status returns latest stored health snapshot.
func (h *HealthMonitor) Status() HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Check pings the engine once and stores the result.
func (h *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := HealthStatus{
		Engine:    h.eng.Name(),
		Storage:   h.eng.Ping(ctx) == nil,
		AI:        h.aiName,
		CheckedAt: time.Now(),
	}
	h.mu.Lock()
	h.current = status
	h.mu.Unlock()
	return status
}

// Start performs periodic health checks until ctx is cancelled.
func (h *HealthMonitor) Start(ctx context.Context) {
	h.Check(ctx)
	go func() {
		ticker := time.NewTicker(h.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.Check(ctx)
			}
		}
	}()
}
