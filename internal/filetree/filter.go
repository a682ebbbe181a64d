package filetree

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/bucketdrop/internal/models"
)

// Filter keeps the records whose key contains query, ignoring case. An
// empty query keeps everything. The input is not modified.
func Filter(records []models.ObjectRecord, query string) []models.ObjectRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.ObjectRecord, 0, len(records))
	for _, r := range records {
		if q == "" || strings.Contains(strings.ToLower(r.Key), q) {
			out = append(out, r)
		}
	}
	return out
}

// SortByKey returns a copy of records ordered by key.
func SortByKey(records []models.ObjectRecord) []models.ObjectRecord {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b models.ObjectRecord) int {
		return strings.Compare(a.Key, b.Key)
	})
	return out
}
