package history

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/nguyentantai21042004/studyflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(n int) models.HistoryEntry {
	return models.HistoryEntry{
		ID:             fmt.Sprintf("run-%d", n),
		Timestamp:      time.Date(2026, 1, 1, 0, 0, n, 0, time.UTC),
		OriginalLength: n * 100,
	}
}

func TestRecordNewestFirst(t *testing.T) {
	s := New()
	assert.Empty(t, s.List())

	s.Record(entry(1))
	s.Record(entry(2))
	s.Record(entry(3))

	got := s.List()
	require.Len(t, got, 3)
	assert.Equal(t, "run-3", got[0].ID)
	assert.Equal(t, "run-2", got[1].ID)
	assert.Equal(t, "run-1", got[2].ID)
}

func TestRecordEvictsOldest(t *testing.T) {
	s := New()
	for i := 1; i <= Capacity; i++ {
		s.Record(entry(i))
	}
	before := s.List()
	require.Len(t, before, Capacity)
	evicted := before[Capacity-1]

	s.Record(entry(Capacity + 1))

	after := s.List()
	require.Len(t, after, Capacity)
	assert.Equal(t, "run-11", after[0].ID)
	assert.NotContains(t, after, evicted)
	assert.Equal(t, before[:Capacity-1], after[1:])
}

func TestNeverExceedsCapacity(t *testing.T) {
	s := New()
	for i := 0; i < 3*Capacity; i++ {
		s.Record(entry(i))
		assert.LessOrEqual(t, s.Len(), Capacity)
	}
	assert.Equal(t, Capacity, s.Len())
}

func TestListReturnsCopy(t *testing.T) {
	s := New()
	s.Record(entry(1))

	got := s.List()
	got[0].ID = "mutated"

	assert.Equal(t, "run-1", s.List()[0].ID)
}

func TestConcurrentRecord(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Record(entry(n))
			_ = s.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, Capacity, s.Len())
}
