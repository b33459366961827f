package collector

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rusenback/sysmon/internal/docker"
	"github.com/rusenback/sysmon/internal/model"
	"github.com/rusenback/sysmon/internal/snapshot"
)

// DiskUsage owns the docker-disk-usage field group. The aggregate
// `docker system df` call can take seconds, which is exactly why it
// lives in its own 60s loop instead of riding along with the 1s/2s
// cadences. Until the first call succeeds the group stays in its
// explicit not-yet-available state.
type DiskUsage struct {
	client docker.API
	store  *snapshot.Store
	period time.Duration
	log    *logrus.Entry
}

func NewDiskUsage(client docker.API, store *snapshot.Store, period time.Duration, log *logrus.Entry) *DiskUsage {
	return &DiskUsage{
		client: client,
		store:  store,
		period: period,
		log:    log,
	}
}

// Run loops until the context is cancelled. The first measurement
// starts immediately so the placeholder clears as soon as Docker
// answers, not a full period later.
func (d *DiskUsage) Run(ctx context.Context) {
	runEvery(ctx, d.period, d.cycle)
}

func (d *DiskUsage) cycle(ctx context.Context) {
	used, err := d.client.DiskUsage(ctx)
	if err != nil {
		d.log.WithError(err).Warn("docker disk usage failed, keeping cached value")
		return
	}

	d.store.SetDockerDisk(model.DockerDisk{
		UsedBytes: used,
		Valid:     true,
		SampledAt: time.Now(),
	})
}
