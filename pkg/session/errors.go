package session

import (
	"errors"
	"fmt"

	"github.com/aretw0/devsession/pkg/domain"
)

// ErrNilStore is returned by New when no backing store is configured.
var ErrNilStore = errors.New("session cache requires a store")

// StoreError reports a failed store round trip.
// It matches domain.ErrStoreUnavailable and unwraps to the underlying cause.
type StoreError struct {
	Op       string
	DeviceID domain.DeviceID
	Err      error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.DeviceID, domain.ErrStoreUnavailable, e.Err)
}

func (e *StoreError) Is(target error) bool {
	return target == domain.ErrStoreUnavailable
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
