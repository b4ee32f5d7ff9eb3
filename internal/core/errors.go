package core

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the requested record does not exist.
// Handlers translate it to a 404; it is never fatal.
var ErrNotFound = errors.New("record not found")

// ErrInvalidCredentials reports a failed login. The message is the same
// whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrStoreUnavailable reports that the backing store could not be reached.
// The request fails; retrying is up to the caller.
var ErrStoreUnavailable = errors.New("record store unavailable")

// ValidationError rejects a malformed input before any write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PartialWriteError reports that a child-table write failed after the
// parent tour row was already committed on a non-transactional store.
// Re-running the same decompose call repairs the record because the
// update path always fully replaces child rows.
type PartialWriteError struct {
	TourID string
	Step   string
	Err    error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("partial write on tour %s (step %s): %v", e.TourID, e.Step, e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}
