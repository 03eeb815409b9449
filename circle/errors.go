package circle

import (
	"errors"
	"fmt"
)

var (
	ErrNoSurface  = errors.New("no drawing surface defined")
	ErrNoExecutor = errors.New("animation requires an executor")

	// ErrInvalidTarget is matched by every *InvalidTargetError.
	ErrInvalidTarget = errors.New("invalid progress target")
)

// InvalidTargetError is returned for a progress target
// outside of [0, 1].
type InvalidTargetError struct {
	Target float64
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("progress target %v is outside of [0, 1]", e.Target)
}

func (e *InvalidTargetError) Is(target error) bool { return target == ErrInvalidTarget }
