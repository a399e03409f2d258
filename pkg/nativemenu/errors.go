package nativemenu

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNilItem is returned when a nil item is added to a menu.
	ErrNilItem = errors.New("nil item")

	// ErrIndexOutOfRange is returned by index-based mutations and setters when
	// the index is outside the collection.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNoFrames is returned when an animated banner is built from no frames.
	ErrNoFrames = errors.New("animated banner has no frames")

	// ErrUnknownAction is returned when an action name cannot be resolved.
	ErrUnknownAction = errors.New("unknown action")

	// ErrForeignMenu is returned when a menu is passed to a registry that did
	// not create it.
	ErrForeignMenu = errors.New("menu belongs to another registry")
)

// HostError wraps a failure reported by one of the host collaborators
// (sound bridge, player lock, script control, controller polling).
//
// Side-effect failures during Show and Hide are logged and never abort the
// transition; controller polling failures are returned to the caller after
// controller support has been switched off.
type HostError struct {
	Op  string // Operation that failed (e.g., "play_sound", "poll_controller")
	Err error  // Underlying error
}

func (e *HostError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("nativemenu: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("nativemenu: %s", e.Op)
}

func (e *HostError) Unwrap() error {
	return e.Err
}

// NewHostError creates a new host error.
func NewHostError(op string, err error) *HostError {
	return &HostError{Op: op, Err: err}
}

// IsHostError checks if an error came from a host collaborator.
func IsHostError(err error) bool {
	var hostErr *HostError
	return errors.As(err, &hostErr)
}

// IsOutOfRange checks if an error reports an invalid index.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange)
}

func outOfRange(what string, index, length int) error {
	return fmt.Errorf("%s %d of %d: %w", what, index, length, ErrIndexOutOfRange)
}
