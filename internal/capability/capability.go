// Package capability defines how optional external dependencies report
// their outcome to the pipeline.
//
// A call either succeeds, returns ErrUnavailable when the dependency was
// never configured, or returns an *Error when a configured dependency failed.
package capability

import (
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/studyflow/internal/models"
)

// ErrUnavailable signals expected degraded mode, not a failure.
var ErrUnavailable = errors.New("capability not configured")

// Error is a failed call to a configured capability.
type Error struct {
	Capability string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Capability, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fail wraps err as a failure of the named capability.
func Fail(name string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Capability: name, Err: err}
}

// Status maps a capability call result onto a stage outcome.
func Status(err error) models.StageStatus {
	switch {
	case err == nil:
		return models.StageOK
	case errors.Is(err, ErrUnavailable):
		return models.StageUnavailable
	default:
		return models.StageFailed
	}
}
