package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// SessionDescriptor is an opaque record describing one transport session.
// Its bytes are never inspected or rewritten by the cache.
type SessionDescriptor []byte

// MarshalJSON renders the descriptor for the HTTP and CLI views: a descriptor holding a
// JSON document is emitted as that document, anything else as a JSON string.
// Storage does not go through this method.
func (d SessionDescriptor) MarshalJSON() ([]byte, error) {
	if len(d) > 0 && json.Valid(d) {
		return d, nil
	}
	return json.Marshal(string(d))
}

// UnmarshalJSON keeps the raw bytes of the JSON value, whitespace included.
func (d *SessionDescriptor) UnmarshalJSON(data []byte) error {
	if d == nil {
		return errors.New("domain.SessionDescriptor: UnmarshalJSON on nil pointer")
	}
	*d = append((*d)[0:0], data...)
	return nil
}

// Entry is the set of sessions currently believed active for one device.
type Entry struct {
	Sessions []SessionDescriptor `json:"sessions"`
}

// EmptyEntry returns an entry with no sessions.
// Its Sessions slice is non-nil so it serializes as an empty array.
func EmptyEntry() Entry {
	return Entry{Sessions: []SessionDescriptor{}}
}

// NewEntry builds an entry from the given descriptors, preserving their order.
func NewEntry(sessions ...SessionDescriptor) Entry {
	if sessions == nil {
		return EmptyEntry()
	}
	return Entry{Sessions: sessions}
}

// Len returns the number of sessions in the entry.
func (e Entry) Len() int {
	return len(e.Sessions)
}

// Equal reports whether both entries hold the same descriptors in the same order.
// A nil and an empty session list are equal.
func (e Entry) Equal(other Entry) bool {
	if len(e.Sessions) != len(other.Sessions) {
		return false
	}
	for i := range e.Sessions {
		if !bytes.Equal(e.Sessions[i], other.Sessions[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the entry.
func (e Entry) Clone() Entry {
	out := Entry{Sessions: make([]SessionDescriptor, len(e.Sessions))}
	for i, s := range e.Sessions {
		out.Sessions[i] = append(SessionDescriptor(nil), s...)
	}
	return out
}
