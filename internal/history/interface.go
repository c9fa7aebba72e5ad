package history

import "github.com/nguyentantai21042004/studyflow/internal/models"

// Capacity is the number of runs kept per session.
const Capacity = 10

// Store is a bounded, newest-first ledger of processed documents
type Store interface {
	// Record inserts entry at the front and evicts the oldest entry beyond Capacity.
	Record(entry models.HistoryEntry)
	// List returns a copy of the entries, newest first.
	List() []models.HistoryEntry
	Len() int
}
