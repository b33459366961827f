package snapshot

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusenback/sysmon/internal/model"
)

func TestStoreStartsEmpty(t *testing.T) {
	view := NewStore().Read()

	assert.False(t, view.HostValid)
	assert.False(t, view.DockerDisk.Valid)
	assert.Empty(t, view.Containers)
	assert.Empty(t, view.PortMap)
}

func TestSetHostReplacesGroup(t *testing.T) {
	store := NewStore()

	store.SetHost(model.HostMetrics{CPUPercent: 12.5})
	store.SetHost(model.HostMetrics{CPUPercent: 99.9})

	view := store.Read()
	assert.True(t, view.HostValid)
	assert.Equal(t, 99.9, view.Host.CPUPercent)
}

func TestSetContainersCopiesInput(t *testing.T) {
	store := NewStore()

	table := []model.Container{
		{ID: "aaa", Name: "web", Ports: []model.Port{{Private: 80, Public: 8080}}},
	}
	store.SetContainers(table)

	// Mutating the collector's working table must not leak into the store.
	table[0].Name = "mutated"
	table[0].Ports[0].Public = 1

	view := store.Read()
	require.Len(t, view.Containers, 1)
	assert.Equal(t, "web", view.Containers[0].Name)
	assert.Equal(t, 8080, view.Containers[0].Ports[0].Public)
}

func TestReadReturnsIndependentCopies(t *testing.T) {
	store := NewStore()
	store.SetContainers([]model.Container{{ID: "aaa", Name: "web"}})
	store.SetPortMap([]model.PortMapping{{Port: 80, Container: "web"}})

	first := store.Read()
	first.Containers[0].Name = "scribbled"
	first.PortMap[0].Container = "scribbled"

	second := store.Read()
	assert.Equal(t, "web", second.Containers[0].Name)
	assert.Equal(t, "web", second.PortMap[0].Container)
}

// A reader must never see a container table that mixes two writes.
// Each write uses a single marker value in every row; any observed
// table must be uniform.
func TestContainerGroupAtomicity(t *testing.T) {
	store := NewStore()
	done := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
			}
			name := "gen-a"
			if i%2 == 1 {
				name = "gen-b"
			}
			table := make([]model.Container, 8)
			for j := range table {
				table[j] = model.Container{ID: name, Name: name}
			}
			store.SetContainers(table)
		}
	}()

	deadline := time.Now().Add(200 * time.Millisecond)
	for time.Now().Before(deadline) {
		view := store.Read()
		if len(view.Containers) == 0 {
			continue
		}
		want := view.Containers[0].Name
		for _, c := range view.Containers {
			require.Equal(t, want, c.Name, "torn read of container table")
		}
	}

	close(done)
	wg.Wait()
}

func TestGroupsAreIndependent(t *testing.T) {
	store := NewStore()

	store.SetHost(model.HostMetrics{CPUPercent: 50})
	store.SetDockerDisk(model.DockerDisk{UsedBytes: 1 << 30, Valid: true})

	// Rewriting one group leaves the others untouched.
	store.SetHost(model.HostMetrics{CPUPercent: 75})

	view := store.Read()
	assert.Equal(t, 75.0, view.Host.CPUPercent)
	assert.True(t, view.DockerDisk.Valid)
	assert.Equal(t, uint64(1<<30), view.DockerDisk.UsedBytes)
}
