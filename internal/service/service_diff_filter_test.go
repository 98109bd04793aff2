package service

import (
	"testing"

	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() models.DiffResult {
	left := []models.Record{
		rec("DATABASE_URL", "postgres://old"),
		rec("LOG_LEVEL", "debug"),
		rec("REMOVED_KEY", "gone"),
	}
	right := []models.Record{
		rec("DATABASE_URL", "postgres://new"),
		rec("LOG_LEVEL", "debug"),
		rec("NEW_KEY", "Fresh"),
	}
	return Compute(left, right)
}

// ── FilterByKind ────────────────────────────────────────────────────────────

func TestFilterByKind(t *testing.T) {
	result := sampleResult()

	tests := []struct {
		filter string
		want   []string
	}{
		{filter: "added", want: []string{"NEW_KEY"}},
		{filter: "Removed", want: []string{"REMOVED_KEY"}},
		{filter: " MODIFIED ", want: []string{"DATABASE_URL"}},
		{filter: "unchanged", want: []string{"LOG_LEVEL"}},
		{filter: "all", want: []string{"NEW_KEY", "REMOVED_KEY", "DATABASE_URL", "LOG_LEVEL"}},
		{filter: "bogus", want: []string{"NEW_KEY", "REMOVED_KEY", "DATABASE_URL", "LOG_LEVEL"}},
		{filter: "", want: []string{"NEW_KEY", "REMOVED_KEY", "DATABASE_URL", "LOG_LEVEL"}},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			assert.Equal(t, tt.want, keysOf(FilterByKind(result, tt.filter)))
		})
	}
}

func TestFilterByKind_ReturnsCopy(t *testing.T) {
	result := sampleResult()

	for _, filter := range []string{"added", "removed", "modified", "unchanged", "all"} {
		t.Run(filter, func(t *testing.T) {
			got := FilterByKind(result, filter)
			require.NotEmpty(t, got)
			got[0].Key = "EDITED"

			assert.NotContains(t, keysOf(result.All()), "EDITED")
			assert.Equal(t, []string{"NEW_KEY", "REMOVED_KEY", "DATABASE_URL", "LOG_LEVEL"}, keysOf(result.All()))
		})
	}
}

// ── FilterBySearch ──────────────────────────────────────────────────────────

func TestFilterBySearch(t *testing.T) {
	all := FilterByKind(sampleResult(), models.DiffFilterAll)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "key match ignores case", query: "log_", want: []string{"LOG_LEVEL"}},
		{name: "left value match", query: "OLD", want: []string{"DATABASE_URL"}},
		{name: "right value match", query: "fresh", want: []string{"NEW_KEY"}},
		{name: "matches keep order", query: "e", want: []string{"NEW_KEY", "REMOVED_KEY", "DATABASE_URL", "LOG_LEVEL"}},
		{name: "no match", query: "nothing-like-this", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keysOf(FilterBySearch(all, tt.query)))
		})
	}
}

func TestFilterBySearch_BlankQueryIsIdentity(t *testing.T) {
	all := FilterByKind(sampleResult(), models.DiffFilterAll)

	assert.Equal(t, all, FilterBySearch(all, ""))
	assert.Equal(t, all, FilterBySearch(all, "   \t"))
}

func TestFilterBySearch_NilValuesNeverMatch(t *testing.T) {
	// у Added-записи нет левого значения, у Removed: правого
	entries := []models.DiffEntry{
		{Kind: models.DiffAdded, Key: "A", RightValue: strPtr("x")},
		{Kind: models.DiffRemoved, Key: "B", LeftValue: strPtr("y")},
	}

	assert.Empty(t, FilterBySearch(entries, "<nil>"))
	assert.Equal(t, []string{"A"}, keysOf(FilterBySearch(entries, "x")))
}

func TestFilterComposition(t *testing.T) {
	result := sampleResult()

	got := FilterBySearch(FilterByKind(result, "modified"), "postgres")

	assert.Equal(t, []string{"DATABASE_URL"}, keysOf(got))
}

func strPtr(s string) *string { return &s }
