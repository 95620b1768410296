package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	s1 := SessionDescriptor(`{"id":"s1"}`)
	s2 := SessionDescriptor(`{"id":"s2"}`)
	s3 := SessionDescriptor(`{"id":"s3"}`)

	tests := []struct {
		name        string
		old         Entry
		new         Entry
		wantAdded   []SessionDescriptor
		wantRemoved []SessionDescriptor
	}{
		{
			name:      "Initial Load (Old is Empty)",
			old:       EmptyEntry(),
			new:       NewEntry(s1, s2),
			wantAdded: []SessionDescriptor{s1, s2},
		},
		{
			name: "No Changes",
			old:  NewEntry(s1, s2),
			new:  NewEntry(s1, s2),
		},
		{
			name: "Reorder Is Not A Change",
			old:  NewEntry(s1, s2),
			new:  NewEntry(s2, s1),
		},
		{
			name:        "Replace One Session",
			old:         NewEntry(s1, s2),
			new:         NewEntry(s1, s3),
			wantAdded:   []SessionDescriptor{s3},
			wantRemoved: []SessionDescriptor{s2},
		},
		{
			name:        "Clear",
			old:         NewEntry(s1),
			new:         Entry{},
			wantRemoved: []SessionDescriptor{s1},
		},
		{
			name:      "Duplicates Are Counted",
			old:       NewEntry(s1),
			new:       NewEntry(s1, s1),
			wantAdded: []SessionDescriptor{s1},
		},
		{
			name: "Whitespace Is Ignored",
			old:  NewEntry(SessionDescriptor(`{"id": "s1"}`)),
			new:  NewEntry(s1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := Diff(tt.old, tt.new)
			assert.Equal(t, tt.wantAdded, diff.Added)
			assert.Equal(t, tt.wantRemoved, diff.Removed)
			assert.Equal(t, len(tt.wantAdded) == 0 && len(tt.wantRemoved) == 0, diff.IsEmpty())
		})
	}
}
