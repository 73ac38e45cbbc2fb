package gameday

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var ErrSaveFailed = errors.New("save failed")

// SaveFailedError carries the team server's message for a rejected save, or
// the transport failure when the server could not be reached.
type SaveFailedError struct {
	Resource   string
	Message    string
	StatusCode int
	Cause      error
}

func (e *SaveFailedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("save %s failed (status %d): %s", e.Resource, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("save %s failed: %s", e.Resource, e.Message)
}

func (e *SaveFailedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrSaveFailed}
	}
	return []error{ErrSaveFailed, e.Cause}
}
