// internal/docker/diskusage.go
package docker

import (
	"context"
	"time"

	"github.com/docker/docker/api/types"
)

// DiskUsage laskee Docker levynkäytön yhteensä: imaget + volumet +
// containerien rw layerit. Raskas kutsu (vastaa `docker system df`),
// joten sitä kutsuu vain hidas 60s collector.
func (c *Client) DiskUsage(ctx context.Context) (uint64, error) {
	// Voi kestää useita sekunteja isolla image/volume määrällä
	duCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	du, err := c.cli.DiskUsage(duCtx, types.DiskUsageOptions{})
	if err != nil {
		return 0, err
	}

	var total int64
	for _, img := range du.Images {
		total += img.Size
	}
	for _, vol := range du.Volumes {
		if vol.UsageData != nil {
			total += vol.UsageData.Size
		}
	}
	for _, cont := range du.Containers {
		total += cont.SizeRw
	}

	if total < 0 {
		total = 0
	}
	return uint64(total), nil
}
