// Package snapshot holds the shared cache of the latest known metrics.
//
// The store is partitioned into four field groups: host metrics, port
// mapping, container table and docker disk usage. Each group has
// exactly one writer (its owning collector) and one reader (the
// renderer), so replacing a group as a unit is all the atomicity the
// system needs. Readers may observe a mix of old and new values across
// groups; within a group they always see one complete write.
//
// The lock is scoped to the in-memory copy/replace step only. Provider
// I/O happens in the collectors, outside the store, so a slow Docker
// or /proc call can never stall a render frame.
package snapshot

import (
	"sync"
	"time"

	"github.com/rusenback/sysmon/internal/model"
)

// Store is the field-group-partitioned metrics cache.
type Store struct {
	mu sync.RWMutex

	host      model.HostMetrics
	hostValid bool

	portMap []model.PortMapping

	containers []model.Container

	dockerDisk model.DockerDisk
}

func NewStore() *Store {
	return &Store{}
}

// SetHost replaces the host metrics group.
func (s *Store) SetHost(h model.HostMetrics) {
	s.mu.Lock()
	s.host = h
	s.hostValid = true
	s.mu.Unlock()
}

// SetPortMap replaces the port mapping group.
func (s *Store) SetPortMap(mapping []model.PortMapping) {
	cp := make([]model.PortMapping, len(mapping))
	copy(cp, mapping)

	s.mu.Lock()
	s.portMap = cp
	s.mu.Unlock()
}

// SetContainers replaces the container table group. The slice is
// copied so the collector can keep mutating its own working table.
func (s *Store) SetContainers(containers []model.Container) {
	cp := copyContainers(containers)

	s.mu.Lock()
	s.containers = cp
	s.mu.Unlock()
}

// SetDockerDisk replaces the docker disk usage group.
func (s *Store) SetDockerDisk(d model.DockerDisk) {
	s.mu.Lock()
	s.dockerDisk = d
	s.mu.Unlock()
}

// Containers returns a copy of the current container table. Used by
// the fast collector to correlate ports without touching groups it
// does not own.
func (s *Store) Containers() []model.Container {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyContainers(s.containers)
}

// View is a point-in-time copy of every field group, taken once per
// render frame. Fields that have never been written carry their
// explicit not-yet-available state (HostValid, DockerDisk.Valid, nil
// slices) rather than being omitted.
type View struct {
	Host      model.HostMetrics
	HostValid bool

	PortMap    []model.PortMapping
	Containers []model.Container
	DockerDisk model.DockerDisk

	ReadAt time.Time
}

// Read returns a consistent copy of the whole store.
func (s *Store) Read() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	portMap := make([]model.PortMapping, len(s.portMap))
	copy(portMap, s.portMap)

	return View{
		Host:       s.host,
		HostValid:  s.hostValid,
		PortMap:    portMap,
		Containers: copyContainers(s.containers),
		DockerDisk: s.dockerDisk,
		ReadAt:     time.Now(),
	}
}

// copyContainers deep-copies the table. Stats pointers are shared:
// a published stats value is immutable by convention.
func copyContainers(containers []model.Container) []model.Container {
	cp := make([]model.Container, len(containers))
	copy(cp, containers)
	for i := range cp {
		ports := make([]model.Port, len(cp[i].Ports))
		copy(ports, cp[i].Ports)
		cp[i].Ports = ports
	}
	return cp
}
