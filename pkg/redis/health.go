package redis

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// HealthChecker provides Redis health checking functionality
type HealthChecker struct {
	client    *redis.Client
	config    *Config
	timeout   time.Duration
	mu        sync.Mutex
	lastCheck time.Time
	lastError string
}

// NewHealthChecker creates a new Redis health checker
func NewHealthChecker(client *Client) *HealthChecker {
	return &HealthChecker{
		client:  client.GetClient(),
		config:  client.GetConfig(),
		timeout: 2 * time.Second,
	}
}

// HealthCheck pings the server and reports the connection pool state
func (h *HealthChecker) HealthCheck() HealthCheck {
	h.mu.Lock()
	defer h.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	status := StatusUp
	h.lastError = ""
	if err := h.client.Ping(ctx).Err(); err != nil {
		status = StatusDown
		h.lastError = fmt.Sprintf("ping failed: %v", err)
	}
	h.lastCheck = time.Now()

	stats := h.client.PoolStats()

	return HealthCheck{
		Status: status,
		Details: map[string]string{
			"address":     h.config.Addr(),
			"database":    strconv.Itoa(h.config.Database),
			"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
			"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
			"last_check":  h.lastCheck.Format(time.RFC3339),
			"last_error":  h.lastError,
		},
	}
}
