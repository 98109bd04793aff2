// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-env-keeper/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Compute compares two record collections matched by key.
//
// A key present only in right is Added, only in left is Removed. Keys on
// both sides are Modified or Unchanged depending on exact equality of the
// values; the secret flag and IDs are ignored. When a collection repeats a
// key the last occurrence wins.
//
// Every slice of the result is sorted by key with a locale-aware collator,
// falling back to byte order for keys the collator considers equal, so the
// output does not depend on input order. Compute has no side effects and
// is safe for concurrent use.
func Compute(left, right []models.Record) models.DiffResult {
	leftByKey := indexByKey(left)
	rightByKey := indexByKey(right)

	result := models.DiffResult{
		Added:     []models.DiffEntry{},
		Removed:   []models.DiffEntry{},
		Modified:  []models.DiffEntry{},
		Unchanged: []models.DiffEntry{},
	}

	for key, l := range leftByKey {
		r, ok := rightByKey[key]
		if !ok {
			result.Removed = append(result.Removed, models.DiffEntry{
				Kind:       models.DiffRemoved,
				Key:        key,
				LeftValue:  &l.Value,
				LeftRecord: l,
			})
			continue
		}

		entry := models.DiffEntry{
			Key:         key,
			LeftValue:   &l.Value,
			RightValue:  &r.Value,
			LeftRecord:  l,
			RightRecord: r,
		}
		if l.Value == r.Value {
			entry.Kind = models.DiffUnchanged
			result.Unchanged = append(result.Unchanged, entry)
		} else {
			entry.Kind = models.DiffModified
			result.Modified = append(result.Modified, entry)
		}
	}

	for key, r := range rightByKey {
		if _, ok := leftByKey[key]; ok {
			continue
		}
		result.Added = append(result.Added, models.DiffEntry{
			Kind:        models.DiffAdded,
			Key:         key,
			RightValue:  &r.Value,
			RightRecord: r,
		})
	}

	// collate.Collator keeps internal buffers and must not be shared
	col := collate.New(language.Und)
	sortEntries(col, result.Added)
	sortEntries(col, result.Removed)
	sortEntries(col, result.Modified)
	sortEntries(col, result.Unchanged)

	return result
}

// indexByKey copies every record so the result never aliases the caller's
// slice.
func indexByKey(records []models.Record) map[string]*models.Record {
	byKey := make(map[string]*models.Record, len(records))
	for _, r := range records {
		rec := r
		byKey[r.Key] = &rec
	}
	return byKey
}

func sortEntries(col *collate.Collator, entries []models.DiffEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return compareKeys(col, entries[i].Key, entries[j].Key) < 0
	})
}

func compareKeys(col *collate.Collator, a, b string) int {
	if c := col.CompareString(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Statistics counts the entries of result.
func Statistics(result models.DiffResult) models.DiffStatistics {
	stats := models.DiffStatistics{
		Added:     len(result.Added),
		Removed:   len(result.Removed),
		Modified:  len(result.Modified),
		Unchanged: len(result.Unchanged),
	}
	stats.TotalChanges = stats.Added + stats.Removed + stats.Modified
	stats.TotalRecords = stats.TotalChanges + stats.Unchanged
	return stats
}

var summaryMarkers = map[models.DiffKind]string{
	models.DiffAdded:     "+",
	models.DiffRemoved:   "-",
	models.DiffModified:  "~",
	models.DiffUnchanged: "=",
}

// FormatSummary renders a plain-text report of result for the clipboard.
// Sections list keys only; values are never included.
func FormatSummary(result models.DiffResult, leftLabel, rightLabel string) string {
	stats := Statistics(result)

	var b strings.Builder
	fmt.Fprintf(&b, "Diff: %s -> %s\n", leftLabel, rightLabel)
	fmt.Fprintf(&b, "Added: %d, Removed: %d, Modified: %d, Unchanged: %d (changes: %d, total: %d)\n",
		stats.Added, stats.Removed, stats.Modified, stats.Unchanged, stats.TotalChanges, stats.TotalRecords)

	for _, kind := range []models.DiffKind{models.DiffAdded, models.DiffRemoved, models.DiffModified, models.DiffUnchanged} {
		entries := result.Entries(kind)
		if len(entries) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n%s (%d):\n", strings.ToUpper(kind.String()[:1])+kind.String()[1:], len(entries))
		for _, e := range entries {
			fmt.Fprintf(&b, "  %s %s\n", summaryMarkers[kind], e.Key)
		}
	}

	return b.String()
}
