package model

import "time"

// PortMapping associates one listening host port with the container
// that published it. Container is empty when no container claims the
// port. Derived data, recomputed on every fast collector cycle.
type PortMapping struct {
	Address   string
	Port      int
	Container string
}

// DockerDisk is the cached aggregate Docker disk usage figure
// (images + volumes + container rw layers). Valid stays false until
// the first successful measurement so the renderer can show a
// placeholder instead of a measured zero.
type DockerDisk struct {
	UsedBytes uint64
	Valid     bool
	SampledAt time.Time
}
