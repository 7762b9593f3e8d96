package stats

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaflow/linguaflow/pkg/models"
)

// collector gathers published snapshots for assertions.
type collector struct {
	mu    sync.Mutex
	snaps []Snapshot
}

func (c *collector) publish(s Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snaps = append(c.snaps, s)
}

func (c *collector) last() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.snaps) == 0 {
		return Snapshot{}
	}
	return c.snaps[len(c.snaps)-1]
}

func (c *collector) all() []Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Snapshot, len(c.snaps))
	copy(out, c.snaps)
	return out
}

func TestTrackerCounters(t *testing.T) {
	c := &collector{}
	tr := NewTracker(c.publish)
	tr.Reset(100)

	tr.BeginStage(models.StageTranslating, "")
	tr.AddLines(10)
	tr.AddLines(5)

	snap := tr.Snapshot()
	assert.Equal(t, 100, snap.TotalLines)
	assert.Equal(t, 15, snap.Lines)
	assert.Equal(t, models.StageTranslating, snap.CurrentStage)

	err := tr.TrackCall(func() (int, int, error) { return 200, 80, nil })
	require.NoError(t, err)

	snap = tr.Snapshot()
	assert.Equal(t, 280, snap.Tokens)
	assert.Equal(t, 80, snap.CompletionTokens)
	assert.Equal(t, 1, snap.TotalRequests)
	assert.Zero(t, snap.ActiveLLMCalls)
}

func TestTrackCallPublishesGaugeTransitions(t *testing.T) {
	c := &collector{}
	tr := NewTracker(c.publish)
	tr.Reset(10)

	observed := -1
	err := tr.TrackCall(func() (int, int, error) {
		observed = tr.Snapshot().ActiveLLMCalls
		return 0, 0, errors.New("upstream unavailable")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, observed, "gauge should be up while the call runs")
	assert.Zero(t, tr.Snapshot().ActiveLLMCalls)

	// Error from the call body still lands token-free but counted.
	assert.Equal(t, 1, tr.Snapshot().TotalRequests)
}

func TestPreTranslationStagesClampLines(t *testing.T) {
	c := &collector{}
	tr := NewTracker(c.publish)
	tr.Reset(50)
	tr.SetCompletedLines(20) // resumed run

	tr.BeginStage(models.StageTerminology, "")
	assert.Zero(t, c.last().Lines, "pre-translation snapshot must hide resumed progress")
	assert.Zero(t, tr.Snapshot().Lines)

	tr.BeginStage(models.StageTranslating, "")
	assert.Equal(t, 20, tr.Snapshot().Lines, "counter value survives the clamp")
}

func TestStageProgressCarriesAgentStage(t *testing.T) {
	c := &collector{}
	tr := NewTracker(c.publish)
	tr.Reset(10)

	tr.BeginStage(models.StageTranslating, "")
	tr.StageProgress(3, 12, "chunk 3/12")

	last := c.last()
	require.NotNil(t, last.AgentStage)
	assert.Equal(t, models.StageTranslating, last.AgentStage.Stage)
	assert.Equal(t, "chunk 3/12", last.AgentStage.BatchInfo)
	assert.Equal(t, 3, last.StageCurrent)
	assert.Equal(t, 12, last.StageTotal)
}

func TestNilPublisherIsSafe(t *testing.T) {
	tr := NewTracker(nil)
	tr.Reset(5)
	tr.BeginStage(models.StagePlanning, "")
	tr.AddLines(1)
	assert.NotPanics(t, func() {
		_ = tr.TrackCall(func() (int, int, error) { return 1, 1, nil })
	})
}

func TestConcurrentMutationsKeepConsistentSnapshots(t *testing.T) {
	c := &collector{}
	tr := NewTracker(c.publish)
	tr.Reset(1000)
	tr.BeginStage(models.StageTranslating, "")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tr.TrackCall(func() (int, int, error) { return 10, 5, nil })
			tr.AddLines(1)
		}()
	}
	wg.Wait()

	snap := tr.Snapshot()
	assert.Equal(t, 20, snap.Lines)
	assert.Equal(t, 20, snap.TotalRequests)
	assert.Equal(t, 300, snap.Tokens)
	assert.Equal(t, 100, snap.CompletionTokens)
	assert.Zero(t, snap.ActiveLLMCalls)

	for _, s := range c.all() {
		assert.GreaterOrEqual(t, s.ActiveLLMCalls, 0)
		assert.LessOrEqual(t, s.Lines, s.TotalLines)
	}
}
