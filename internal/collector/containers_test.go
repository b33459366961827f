package collector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusenback/sysmon/internal/model"
	"github.com/rusenback/sysmon/internal/snapshot"
	"github.com/rusenback/sysmon/internal/trend"
)

func newContainersForTest(client *fakeDocker, store *snapshot.Store) (*Containers, trend.Set) {
	trends := trend.NewSet(60)
	return NewContainers(client, store, trends, 2*time.Second, testLog()), trends
}

func TestContainersCyclePublishesTable(t *testing.T) {
	client := newFakeDocker()
	client.containers = []model.Container{
		{ID: "aaa", Name: "web", State: "running", Health: model.HealthHealthy},
		{ID: "bbb", Name: "db", State: "running", Health: model.HealthUnknown},
	}
	client.stats["aaa"] = &model.ContainerStats{CPUPercent: 5.5, MemoryUsage: 100 << 20}

	store := snapshot.NewStore()
	coll, trends := newContainersForTest(client, store)

	coll.cycle(context.Background())

	view := store.Read()
	require.Len(t, view.Containers, 2)
	require.NotNil(t, view.Containers[0].Stats)
	assert.Equal(t, 5.5, view.Containers[0].Stats.CPUPercent)
	// db has no stats sample yet: nil, not zero.
	assert.Nil(t, view.Containers[1].Stats)

	assert.Equal(t, []float64{2}, trends[trend.KeyContainers].Values())
}

func TestContainersReconciliation(t *testing.T) {
	client := newFakeDocker()
	client.containers = []model.Container{
		{ID: "aaa", Name: "A"},
		{ID: "bbb", Name: "B"},
	}
	client.stats["aaa"] = &model.ContainerStats{CPUPercent: 1}
	client.stats["bbb"] = &model.ContainerStats{CPUPercent: 2}

	store := snapshot.NewStore()
	coll, _ := newContainersForTest(client, store)
	coll.cycle(context.Background())

	statsA := store.Read().Containers[0].Stats

	// Next listing: B gone, C new. A's stats fetch now fails so its
	// previous sample must carry over rather than resetting.
	client.containers = []model.Container{
		{ID: "aaa", Name: "A"},
		{ID: "ccc", Name: "C"},
	}
	client.failStats["aaa"] = true
	coll.cycle(context.Background())

	view := store.Read()
	require.Len(t, view.Containers, 2)

	byID := make(map[string]model.Container)
	for _, c := range view.Containers {
		byID[c.ID] = c
	}
	require.Contains(t, byID, "aaa")
	require.Contains(t, byID, "ccc")
	assert.NotContains(t, byID, "bbb", "removed container must be dropped, not left stale")

	require.NotNil(t, byID["aaa"].Stats)
	assert.Equal(t, statsA, byID["aaa"].Stats, "identity preserved across cycles")
	assert.Nil(t, byID["ccc"].Stats, "new container starts without data")
}

func TestContainersListFailurePreservesTable(t *testing.T) {
	client := newFakeDocker()
	client.containers = []model.Container{{ID: "aaa", Name: "A"}}

	store := snapshot.NewStore()
	coll, trends := newContainersForTest(client, store)
	coll.cycle(context.Background())

	client.failList = true
	client.containers = nil
	coll.cycle(context.Background())

	view := store.Read()
	require.Len(t, view.Containers, 1)
	assert.Equal(t, "A", view.Containers[0].Name)
	assert.Equal(t, 1, trends[trend.KeyContainers].Len(), "no count sample on a failed cycle")
}

func TestContainersEmptyListingClearsTable(t *testing.T) {
	client := newFakeDocker()
	client.containers = []model.Container{{ID: "aaa", Name: "A"}}

	store := snapshot.NewStore()
	coll, trends := newContainersForTest(client, store)
	coll.cycle(context.Background())

	// All containers stopped: a successful empty listing is not a failure.
	client.containers = nil
	coll.cycle(context.Background())

	assert.Empty(t, store.Read().Containers)
	assert.Equal(t, []float64{1, 0}, trends[trend.KeyContainers].Values())
}

func TestContainersRunStopsOnCancel(t *testing.T) {
	client := newFakeDocker()
	store := snapshot.NewStore()
	coll, _ := newContainersForTest(client, store)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		coll.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("container collector did not observe cancellation")
	}
}
