// Package collector runs the background sampling loops that feed the
// snapshot store. Three independent loops at three cadences: host
// metrics every second, container stats every two, Docker disk usage
// every minute. No loop waits on another; failures stay inside the
// cycle that saw them and the previous snapshot values survive.
package collector

import (
	"context"
	"time"
)

// runEvery executes cycle immediately, then on every tick until the
// context is cancelled. Each collector owns one of these loops; a slow
// cycle only delays its own next tick.
func runEvery(ctx context.Context, period time.Duration, cycle func(context.Context)) {
	cycle(ctx)

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cycle(ctx)
		}
	}
}
