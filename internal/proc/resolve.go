package proc

import (
	"errors"
	"strconv"
	"strings"

	"tophelper/pkg/model"
)

// ErrProcessNotFound is returned when an identifier matches no process in the
// snapshot.
var ErrProcessNotFound = errors.New("process not found")

// Resolve maps a user-supplied identifier to one process in the snapshot.
//
// A non-negative integer identifier is treated as a pid and looked up
// directly. Anything else is a case-insensitive substring match against
// process names, scanned in ascending pid order; the first match wins. When
// several processes match a name the choice is arbitrary but reproducible for
// a given snapshot (lowest pid).
func Resolve(snap model.Snapshot, identifier string) (model.Process, error) {
	if pid, err := strconv.Atoi(identifier); err == nil && pid >= 0 {
		p, ok := snap[pid]
		if !ok {
			return model.Process{}, ErrProcessNotFound
		}
		return p, nil
	}

	needle := strings.ToLower(identifier)
	for _, pid := range snap.PIDs() {
		if strings.Contains(strings.ToLower(snap[pid].Name), needle) {
			return snap[pid], nil
		}
	}
	return model.Process{}, ErrProcessNotFound
}

// Filter returns the processes whose name contains the given substring,
// case-insensitively, in ascending pid order. An empty filter returns every
// process.
func Filter(snap model.Snapshot, nameFilter string) []model.Process {
	needle := strings.ToLower(nameFilter)
	out := make([]model.Process, 0, len(snap))
	for _, pid := range snap.PIDs() {
		if needle != "" && !strings.Contains(strings.ToLower(snap[pid].Name), needle) {
			continue
		}
		out = append(out, snap[pid])
	}
	return out
}
