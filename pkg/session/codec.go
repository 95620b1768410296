package session

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/devsession/pkg/domain"
)

// Codec serializes entries for the backing store.
type Codec interface {
	Marshal(entry domain.Entry) ([]byte, error)
	Unmarshal(data []byte) (domain.Entry, error)
}

// JSONCodec encodes entries as {"sessions":["<base64>",...]}.
// Descriptors are carried as base64 so any byte sequence round-trips unchanged.
type JSONCodec struct{}

// storedEntry is the at-rest form of an Entry.
type storedEntry struct {
	Sessions [][]byte `json:"sessions"`
}

func (JSONCodec) Marshal(entry domain.Entry) ([]byte, error) {
	stored := storedEntry{Sessions: make([][]byte, len(entry.Sessions))}
	for i, s := range entry.Sessions {
		stored.Sessions[i] = s
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entry: %w", err)
	}
	return data, nil
}

func (JSONCodec) Unmarshal(data []byte) (domain.Entry, error) {
	var stored storedEntry
	if err := json.Unmarshal(data, &stored); err != nil {
		return domain.Entry{}, fmt.Errorf("failed to unmarshal entry: %w", err)
	}

	entry := domain.Entry{Sessions: make([]domain.SessionDescriptor, len(stored.Sessions))}
	for i, s := range stored.Sessions {
		entry.Sessions[i] = s
	}
	return entry, nil
}
