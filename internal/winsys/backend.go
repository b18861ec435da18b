package winsys

import (
	"errors"

	"tophelper/pkg/model"
)

// ErrBackendUnavailable means a backend could not enumerate windows at all
// (tool missing, no display session, enumeration call failed). It is
// recoverable: the resolver falls through to the next backend.
var ErrBackendUnavailable = errors.New("window backend unavailable")

// Backend enumerates the visible windows of one window-system technology.
type Backend interface {
	// Name returns the backend name for logging/display
	Name() string
	// ListWindows returns every visible window the backend can see.
	// Individual windows it cannot fully describe are dropped; only a
	// failure of the enumeration itself yields ErrBackendUnavailable.
	ListWindows() ([]model.Window, error)
}

// DefaultBackends returns the backends in fixed priority order: the X11
// window-manager protocol first, the generic window list second.
func DefaultBackends() []Backend {
	return []Backend{&X11Backend{}, &GenericListBackend{}}
}
