package service

import (
	"slices"
	"strings"

	"github.com/MKhiriev/go-env-keeper/models"
)

// FilterByKind returns the entries of one kind. "all" and any name
// ParseDiffKind does not recognise yield every entry in Added, Removed,
// Modified, Unchanged order. The returned slice is always a copy, so the
// caller may reorder or edit it without touching result.
func FilterByKind(result models.DiffResult, filter string) []models.DiffEntry {
	kind, ok := models.ParseDiffKind(filter)
	if !ok {
		return result.All()
	}
	return slices.Clone(result.Entries(kind))
}

// FilterBySearch keeps the entries whose key or one of the values contains
// query, ignoring case. A blank query returns entries as is. Order is
// preserved.
func FilterBySearch(entries []models.DiffEntry, query string) []models.DiffEntry {
	if strings.TrimSpace(query) == "" {
		return entries
	}

	needle := strings.ToLower(query)
	filtered := make([]models.DiffEntry, 0, len(entries))
	for _, e := range entries {
		if containsFold(&e.Key, needle) || containsFold(e.LeftValue, needle) || containsFold(e.RightValue, needle) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func containsFold(s *string, lowerNeedle string) bool {
	if s == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*s), lowerNeedle)
}
