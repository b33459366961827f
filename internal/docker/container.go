// internal/docker/container.go
package docker

import (
	"context"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"

	"github.com/rusenback/sysmon/internal/model"
)

// ListContainers palauttaa käynnissä olevat containerit
func (c *Client) ListContainers(ctx context.Context) ([]model.Container, error) {
	listCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	containers, err := c.cli.ContainerList(listCtx, container.ListOptions{})
	if err != nil {
		return nil, err
	}

	result := make([]model.Container, 0, len(containers))
	for _, cont := range containers {
		// Poista "/" container nimen alusta jos on
		name := cont.Names[0]
		if strings.HasPrefix(name, "/") {
			name = name[1:]
		}

		// Muunna portit
		ports := make([]model.Port, 0, len(cont.Ports))
		for _, p := range cont.Ports {
			ports = append(ports, model.Port{
				Private: int(p.PrivatePort),
				Public:  int(p.PublicPort),
				Type:    p.Type,
			})
		}

		result = append(result, model.Container{
			ID:      cont.ID[:12], // Lyhyt ID
			Name:    name,
			Image:   cont.Image,
			Status:  cont.Status,
			State:   cont.State,
			Health:  parseHealth(cont.Status),
			Created: time.Unix(cont.Created, 0),
			Ports:   ports,
		})
	}

	return result, nil
}

// parseHealth poimii healthcheck tilan status tekstistä.
// Docker reports health inside the status string, e.g.
// "Up 3 hours (healthy)" or "Up 10 seconds (health: starting)".
func parseHealth(status string) model.Health {
	switch {
	case strings.Contains(status, "(healthy)"):
		return model.HealthHealthy
	case strings.Contains(status, "(unhealthy)"):
		return model.HealthUnhealthy
	case strings.Contains(status, "health: starting"):
		return model.HealthStarting
	default:
		return model.HealthUnknown
	}
}
