package winsys

import (
	"fmt"
	"strconv"
	"strings"

	"tophelper/pkg/model"
)

// GenericListBackend enumerates windows with a generic window-list tool, one
// line per window: <id> <desktop> <pid> <title...>. The desktop field is
// ignored and WM_CLASS is not available, so Class is left empty. Used when the
// X11 backend is unavailable or finds nothing.
type GenericListBackend struct{}

func (g *GenericListBackend) Name() string {
	return "wmctrl"
}

func (g *GenericListBackend) ListWindows() ([]model.Window, error) {
	out, err := Run("wmctrl", "-l", "-p")
	if err != nil {
		return nil, fmt.Errorf("%w: wmctrl failed: %v", ErrBackendUnavailable, err)
	}

	var windows []model.Window
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		pid, err := strconv.Atoi(fields[2])
		if err != nil {
			continue
		}

		windows = append(windows, model.Window{
			ID:    fields[0],
			Title: strings.Join(fields[3:], " "),
			PID:   pid,
		})
	}
	return windows, nil
}
