package notify

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable is returned while the circuit breaker is open.
var ErrStoreUnavailable = errors.New("phone record store unavailable")

// StoreError carries the backing store's failure message to the caller.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(format string, args ...any) *StoreError {
	return &StoreError{Err: fmt.Errorf(format, args...)}
}
