package tracker

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Reachability reports whether the API is reachable right now.
type Reachability func(ctx context.Context) bool

// HTTPReachability treats any HTTP answer from /health as reachable.
func HTTPReachability(baseURL string, timeout time.Duration) Reachability {
	url := strings.TrimRight(baseURL, "/") + "/health"
	return func(ctx context.Context) bool {
		if ctx.Err() != nil {
			return false
		}
		agent := fiber.Get(url)
		if timeout > 0 {
			agent.Timeout(timeout)
		}
		_, _, errs := agent.Bytes()
		return len(errs) == 0
	}
}

// ConnectivityMonitor polls a reachability check and signals each offline
// to online transition. The agent starts out assumed offline so the first
// successful check flushes whatever a previous run left queued.
type ConnectivityMonitor struct {
	reachable Reachability
	interval  time.Duration
}

func NewConnectivityMonitor(check Reachability, interval time.Duration) *ConnectivityMonitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &ConnectivityMonitor{reachable: check, interval: interval}
}

// Run returns a channel receiving one value per restored connection. It is
// closed when ctx ends.
func (m *ConnectivityMonitor) Run(ctx context.Context) <-chan struct{} {
	restored := make(chan struct{}, 1)

	go func() {
		defer close(restored)

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		online := false
		for {
			up := m.reachable(ctx)
			if up && !online {
				logrus.Info("connectivity restored")
				select {
				case restored <- struct{}{}:
				default:
				}
			} else if !up && online {
				logrus.Warn("connectivity lost")
			}
			online = up

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return restored
}
