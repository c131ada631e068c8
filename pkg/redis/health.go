package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthCheck is the outcome of a ping. Details always carry the address and pool counters.
type HealthCheck struct {
	Healthy bool
	Details map[string]string
}

// HealthCheck pings the server and reports connection and pool details
func (c *Client) HealthCheck(ctx context.Context) HealthCheck {
	start := time.Now()
	err := c.Ping(ctx)
	latency := time.Since(start)

	stats := c.Stats()
	details := map[string]string{
		"address":     c.config.Addr(),
		"database":    strconv.Itoa(c.config.Database),
		"latency":     latency.String(),
		"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
		"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
	}

	if err != nil {
		details["error"] = err.Error()
	}
	return HealthCheck{Healthy: err == nil, Details: details}
}
