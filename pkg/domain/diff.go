package domain

import (
	"bytes"
	"encoding/json"
)

// EntryDiff represents the changes between two entries of the same device.
// Descriptors are compared by their compacted JSON, so whitespace differences
// do not count as a change.
type EntryDiff struct {
	// Added holds descriptors present in the new entry only, in new-entry order.
	Added []SessionDescriptor `json:"added,omitempty"`
	// Removed holds descriptors present in the old entry only, in old-entry order.
	Removed []SessionDescriptor `json:"removed,omitempty"`
}

// Diff calculates the difference between oldEntry and newEntry.
// Duplicates are counted, so a descriptor listed twice in new and once in old
// appears once in Added.
func Diff(oldEntry, newEntry Entry) EntryDiff {
	var diff EntryDiff

	remaining := countDescriptors(oldEntry.Sessions)
	for _, s := range newEntry.Sessions {
		k := descriptorKey(s)
		if remaining[k] > 0 {
			remaining[k]--
			continue
		}
		diff.Added = append(diff.Added, s)
	}

	remaining = countDescriptors(newEntry.Sessions)
	for _, s := range oldEntry.Sessions {
		k := descriptorKey(s)
		if remaining[k] > 0 {
			remaining[k]--
			continue
		}
		diff.Removed = append(diff.Removed, s)
	}

	return diff
}

// IsEmpty checks if the diff contains any changes.
func (d EntryDiff) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

func countDescriptors(sessions []SessionDescriptor) map[string]int {
	counts := make(map[string]int, len(sessions))
	for _, s := range sessions {
		counts[descriptorKey(s)]++
	}
	return counts
}

// descriptorKey falls back to the raw bytes for descriptors that are not valid JSON.
func descriptorKey(s SessionDescriptor) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, s); err != nil {
		return string(s)
	}
	return buf.String()
}
