package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DeviceID identifies a device. It is opaque to the cache and compared byte for byte.
type DeviceID string

// ParseDeviceID validates a raw identifier received at the edges (CLI, HTTP).
// Surrounding whitespace is not trimmed: "dev-1" and " dev-1" are different devices,
// so identifiers carrying it are rejected instead.
func ParseDeviceID(raw string) (DeviceID, error) {
	if raw == "" || strings.TrimSpace(raw) != raw {
		return "", fmt.Errorf("%w: %q", ErrInvalidDeviceID, raw)
	}
	return DeviceID(raw), nil
}

// DeviceIDFromUUID returns the canonical form of a platform-issued device UUID.
func DeviceIDFromUUID(id uuid.UUID) DeviceID {
	return DeviceID(id.String())
}

// UUID interprets the identifier as a UUID, for devices registered with one.
func (d DeviceID) UUID() (uuid.UUID, error) {
	id, err := uuid.Parse(string(d))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidDeviceID, err)
	}
	return id, nil
}

func (d DeviceID) String() string {
	return string(d)
}
