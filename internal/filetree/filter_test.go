package filetree

import (
	"testing"

	"github.com/dmitrijs2005/bucketdrop/internal/models"
	"github.com/stretchr/testify/assert"
)

func keysOf(records []models.ObjectRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Key)
	}
	return out
}

func TestFilter(t *testing.T) {
	records := []models.ObjectRecord{rec("Docs/Report.PDF"), rec("img/cat.png"), rec("docs/notes.txt")}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty keeps all", "", []string{"Docs/Report.PDF", "img/cat.png", "docs/notes.txt"}},
		{"case insensitive", "docs", []string{"Docs/Report.PDF", "docs/notes.txt"}},
		{"trimmed", "  report ", []string{"Docs/Report.PDF"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keysOf(Filter(records, tt.query)))
		})
	}
}

func TestSortByKey_DoesNotMutateInput(t *testing.T) {
	records := []models.ObjectRecord{rec("b"), rec("a/c"), rec("a")}

	sorted := SortByKey(records)

	assert.Equal(t, []string{"a", "a/c", "b"}, keysOf(sorted))
	assert.Equal(t, []string{"b", "a/c", "a"}, keysOf(records))
}
