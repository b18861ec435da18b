package winsys

import (
	"fmt"
	"strconv"
	"strings"

	"tophelper/pkg/model"
)

// X11Backend enumerates windows by driving xdotool and xprop. It is the
// preferred backend because it can report the owning pid and WM_CLASS for
// each window.
type X11Backend struct{}

func (x *X11Backend) Name() string {
	return "x11"
}

func (x *X11Backend) ListWindows() ([]model.Window, error) {
	out, err := Run("xdotool", "search", "--onlyvisible", ".")
	if err != nil {
		return nil, fmt.Errorf("%w: xdotool search failed: %v", ErrBackendUnavailable, err)
	}

	var windows []model.Window
	for _, line := range strings.Split(string(out), "\n") {
		id := strings.TrimSpace(line)
		if id == "" {
			continue
		}

		pid, err := windowPID(id)
		if err != nil {
			// Sandboxed and remote clients have no _NET_WM_PID; not
			// an error for the listing as a whole.
			continue
		}

		windows = append(windows, model.Window{
			ID:    id,
			Title: windowTitle(id),
			Class: windowClass(id),
			PID:   pid,
		})
	}
	return windows, nil
}

func windowPID(id string) (int, error) {
	out, err := Run("xdotool", "getwindowpid", id)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return 0, fmt.Errorf("bad pid for window %s: %w", id, err)
	}
	return pid, nil
}

func windowTitle(id string) string {
	out, err := Run("xdotool", "getwindowname", id)
	if err != nil {
		return "Unknown"
	}
	return strings.TrimSpace(string(out))
}

func windowClass(id string) string {
	out, err := Run("xprop", "-id", id, "WM_CLASS")
	if err != nil {
		return "Unknown"
	}
	if class := parseWMClass(string(out)); class != "" {
		return class
	}
	return "Unknown"
}

// parseWMClass extracts the class name from an xprop WM_CLASS line, which
// looks like: WM_CLASS(STRING) = "instance", "Class". The second quoted field
// is the class proper; the first (the instance) is used only when the class is
// missing.
func parseWMClass(output string) string {
	parts := strings.Split(output, "\"")
	// Quoted fields land at odd indexes: [1]=instance, [3]=class.
	if len(parts) >= 5 && strings.TrimSpace(parts[3]) != "" {
		return parts[3]
	}
	if len(parts) >= 3 {
		return parts[1]
	}
	return ""
}
