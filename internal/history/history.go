package history

import (
	"sync"

	"github.com/nguyentantai21042004/studyflow/internal/models"
)

type implStore struct {
	mu       sync.RWMutex
	entries  []models.HistoryEntry
	capacity int
}

// New creates an empty session-local Store
func New() Store {
	return &implStore{
		entries:  make([]models.HistoryEntry, 0, Capacity),
		capacity: Capacity,
	}
}

func (s *implStore) Record(entry models.HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]models.HistoryEntry{entry}, s.entries...)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[:s.capacity]
	}
}

func (s *implStore) List() []models.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.HistoryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *implStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
