package collector

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rusenback/sysmon/internal/docker"
	"github.com/rusenback/sysmon/internal/model"
	"github.com/rusenback/sysmon/internal/snapshot"
	"github.com/rusenback/sysmon/internal/trend"
)

// Containers lists running containers and their live stats every two
// seconds and owns the container-table field group.
type Containers struct {
	client docker.API
	store  *snapshot.Store
	trends trend.Set
	period time.Duration
	log    *logrus.Entry

	// previous table, keyed by container ID, for reconciliation
	previous map[string]model.Container
}

func NewContainers(client docker.API, store *snapshot.Store, trends trend.Set, period time.Duration, log *logrus.Entry) *Containers {
	return &Containers{
		client:   client,
		store:    store,
		trends:   trends,
		period:   period,
		log:      log,
		previous: make(map[string]model.Container),
	}
}

// Run loops until the context is cancelled.
func (c *Containers) Run(ctx context.Context) {
	runEvery(ctx, c.period, c.cycle)
}

// cycle assembles a fresh container table and publishes it. A failed
// listing keeps the previous table; a failed per-container stats call
// keeps that container's previous stats (or nil on its first
// appearance, rendered as N/A). Containers gone from the listing drop
// out of the table entirely.
func (c *Containers) cycle(ctx context.Context) {
	listed, err := c.client.ListContainers(ctx)
	if err != nil {
		c.log.WithError(err).Warn("container listing failed, keeping previous table")
		return
	}

	table := c.reconcile(ctx, listed)

	next := make(map[string]model.Container, len(table))
	for _, cont := range table {
		next[cont.ID] = cont
	}
	c.previous = next

	c.trends.Push(trend.KeyContainers, float64(len(table)))
	c.store.SetContainers(table)
}

// reconcile fills stats into the freshly listed table, preserving the
// previous cycle's stats for containers whose stats call fails.
func (c *Containers) reconcile(ctx context.Context, listed []model.Container) []model.Container {
	for i := range listed {
		cont := &listed[i]

		stats, err := c.client.ContainerStats(ctx, cont.ID)
		if err != nil || stats == nil {
			if err != nil {
				c.log.WithError(err).WithField("container", cont.Name).
					Warn("stats fetch failed, keeping previous sample")
			}
			if prev, ok := c.previous[cont.ID]; ok {
				cont.Stats = prev.Stats
			}
			continue
		}
		cont.Stats = stats
	}
	return listed
}
