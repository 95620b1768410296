package domain

import "errors"

// ErrStoreUnavailable is returned when the backing store cannot be reached, times out,
// or fails to commit a write. It is the only error callers of the session cache need to handle.
var ErrStoreUnavailable = errors.New("session store unavailable")

// ErrNotFound is returned by a store when no value exists for a key.
var ErrNotFound = errors.New("key not found")

// ErrInvalidDeviceID is returned when a device identifier is empty or malformed.
var ErrInvalidDeviceID = errors.New("invalid device id")
