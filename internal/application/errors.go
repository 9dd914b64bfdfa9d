package application

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	ErrNotFound        = errors.New("not found")
	ErrNoStore         = errors.New("no snapshot store configured")
	ErrCyclicReference = errors.New("cyclic reference")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CycleError reports a file that references itself, directly or through
// other files. Chain starts and ends with the repeated path.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cyclic reference: %s", strings.Join(e.Chain, " -> "))
}

func (e *CycleError) Is(target error) bool {
	return target == ErrCyclicReference
}

// RunNotFoundError represents a lookup of a run ID that was never recorded
type RunNotFoundError struct {
	ID string
}

func (e *RunNotFoundError) Error() string {
	return fmt.Sprintf("run %s not found", e.ID)
}

func (e *RunNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
