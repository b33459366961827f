package collector

import "github.com/rusenback/sysmon/internal/model"

// Correlate maps each listening host port to the container that
// published it. Pure function over already-collected data: no I/O, so
// it is cheap enough to run on every fast collector cycle.
//
// When more than one container publishes the same host port (should
// not happen outside of misconfiguration) the first container in table
// order wins. Best effort, not a guarantee.
func Correlate(ports []model.ListenPort, containers []model.Container) []model.PortMapping {
	owners := make(map[int]string, len(containers))
	for _, c := range containers {
		for _, p := range c.Ports {
			if p.Public == 0 {
				continue
			}
			if _, taken := owners[p.Public]; !taken {
				owners[p.Public] = c.Name
			}
		}
	}

	mapping := make([]model.PortMapping, 0, len(ports))
	for _, lp := range ports {
		mapping = append(mapping, model.PortMapping{
			Address:   lp.Address,
			Port:      lp.Port,
			Container: owners[lp.Port],
		})
	}
	return mapping
}
