package winsys

import (
	"errors"

	"github.com/rs/zerolog"

	"tophelper/internal/proc"
	"tophelper/pkg/model"
)

// ErrWindowNotFound is returned when every backend has been consulted and none
// could associate a window with the target process.
var ErrWindowNotFound = errors.New("no window found for process")

// Resolver finds the window belonging to a process, consulting backends in
// priority order.
type Resolver struct {
	backends []Backend
	log      zerolog.Logger
}

func NewResolver(backends []Backend, log zerolog.Logger) *Resolver {
	return &Resolver{backends: backends, log: log}
}

// Resolve returns the window owned by targetPID, or failing that by one of its
// descendants (terminal-launched GUI apps usually put the window on a child).
//
// Within one backend an exact owner match always beats a descendant match: the
// backend's full window list is scanned for the target pid first, and only
// then rescanned for descendants. A backend that reports itself unavailable is
// skipped; a backend that yields no match hands over to the next one. Only
// after every backend is exhausted does Resolve return ErrWindowNotFound.
func (r *Resolver) Resolve(targetPID int, tree *proc.Tree) (model.WindowMatch, error) {
	descendants := tree.Descendants(targetPID)

	for _, backend := range r.backends {
		windows, err := backend.ListWindows()
		if err != nil {
			r.log.Debug().Str("backend", backend.Name()).Err(err).
				Msg("window backend unavailable, trying next")
			continue
		}
		r.log.Debug().Str("backend", backend.Name()).Int("windows", len(windows)).
			Msg("scanning backend window list")

		for _, w := range windows {
			if w.PID == targetPID {
				r.log.Debug().Str("backend", backend.Name()).Str("window", w.ID).
					Msg("exact pid match")
				return model.WindowMatch{Window: w, Relation: model.MatchExact}, nil
			}
		}
		for _, w := range windows {
			if _, ok := descendants[w.PID]; ok {
				r.log.Debug().Str("backend", backend.Name()).Str("window", w.ID).
					Int("owner", w.PID).Msg("descendant pid match")
				return model.WindowMatch{Window: w, Relation: model.MatchDescendant}, nil
			}
		}
	}
	return model.WindowMatch{}, ErrWindowNotFound
}
