package transfer

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/bucketdrop/internal/models"
)

// RemoveByKey returns records without the entries for key. The input slice
// is left untouched.
func RemoveByKey(records []models.ObjectRecord, key string) []models.ObjectRecord {
	out := make([]models.ObjectRecord, 0, len(records))
	for _, r := range records {
		if r.Key != key {
			out = append(out, r)
		}
	}
	return out
}

// Listing is the set of records currently shown to the user.
type Listing struct {
	mu      sync.RWMutex
	records []models.ObjectRecord
}

func (l *Listing) Replace(records []models.ObjectRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = slices.Clone(records)
}

// Apply swaps the records for reduce(records).
func (l *Listing) Apply(reduce func([]models.ObjectRecord) []models.ObjectRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = reduce(l.records)
}

// Snapshot returns a copy of the records.
func (l *Listing) Snapshot() []models.ObjectRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.records)
}

func (l *Listing) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}
