// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// DiffKind is the category a key falls into when two environments are
// compared.
type DiffKind int

const (
	// DiffAdded marks a key present only on the right side.
	DiffAdded DiffKind = iota
	// DiffRemoved marks a key present only on the left side.
	DiffRemoved
	// DiffModified marks a key present on both sides with different values.
	DiffModified
	// DiffUnchanged marks a key present on both sides with byte-identical values.
	DiffUnchanged
)

// DiffFilterAll selects every kind in [DiffResult.All] order.
const DiffFilterAll = "all"

var diffKindNames = map[DiffKind]string{
	DiffAdded:     "added",
	DiffRemoved:   "removed",
	DiffModified:  "modified",
	DiffUnchanged: "unchanged",
}

func (k DiffKind) String() string {
	if name, ok := diffKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseDiffKind converts a case-insensitive kind name into a [DiffKind].
// The second return value is false for unknown names, including "all".
func ParseDiffKind(s string) (DiffKind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for kind, name := range diffKindNames {
		if name == s {
			return kind, true
		}
	}
	return 0, false
}

// DiffEntry is one key of a comparison.
//
//	Added     ⟺ LeftRecord == nil && RightRecord != nil
//	Removed   ⟺ LeftRecord != nil && RightRecord == nil
//	Modified  ⟺ both present && *LeftValue != *RightValue
//	Unchanged ⟺ both present && *LeftValue == *RightValue
type DiffEntry struct {
	Kind        DiffKind `json:"kind"`
	Key         string   `json:"key"`
	LeftValue   *string  `json:"left_value"`
	RightValue  *string  `json:"right_value"`
	LeftRecord  *Record  `json:"left_record,omitempty"`
	RightRecord *Record  `json:"right_record,omitempty"`
}

// DiffResult holds the four categories of a comparison, each sorted by key.
// A DiffResult is never mutated after it is built.
type DiffResult struct {
	Added     []DiffEntry `json:"added"`
	Removed   []DiffEntry `json:"removed"`
	Modified  []DiffEntry `json:"modified"`
	Unchanged []DiffEntry `json:"unchanged"`
}

// Entries returns the slice of a single kind.
func (r DiffResult) Entries(kind DiffKind) []DiffEntry {
	switch kind {
	case DiffAdded:
		return r.Added
	case DiffRemoved:
		return r.Removed
	case DiffModified:
		return r.Modified
	case DiffUnchanged:
		return r.Unchanged
	default:
		return nil
	}
}

// All concatenates the four categories in Added, Removed, Modified,
// Unchanged order into a newly allocated slice.
func (r DiffResult) All() []DiffEntry {
	all := make([]DiffEntry, 0, len(r.Added)+len(r.Removed)+len(r.Modified)+len(r.Unchanged))
	all = append(all, r.Added...)
	all = append(all, r.Removed...)
	all = append(all, r.Modified...)
	all = append(all, r.Unchanged...)
	return all
}

// DiffStatistics summarises a [DiffResult].
type DiffStatistics struct {
	Added        int `json:"added"`
	Removed      int `json:"removed"`
	Modified     int `json:"modified"`
	Unchanged    int `json:"unchanged"`
	TotalChanges int `json:"total_changes"`
	TotalRecords int `json:"total_records"`
}

// Direction selects which side of a comparison receives a promoted value.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

func (d Direction) String() string {
	if d == RightToLeft {
		return "right-to-left"
	}
	return "left-to-right"
}

// ParseDirection accepts "left-to-right"/"ltr"/">" and
// "right-to-left"/"rtl"/"<".
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left-to-right", "ltr", ">", "":
		return LeftToRight, true
	case "right-to-left", "rtl", "<":
		return RightToLeft, true
	default:
		return LeftToRight, false
	}
}
