//go:build linux

package proc

import (
	"fmt"
	"os"
	"strings"
)

// WorkDir returns the process's current working directory, or "" when it
// cannot be read (permission, kernel thread, process gone).
func WorkDir(pid int) string {
	cwd, err := os.Readlink(fmt.Sprintf("/proc/%d/cwd", pid))
	if err != nil {
		return ""
	}
	return cwd
}

// Environ returns the process's environment, or nil when it cannot be read.
// /proc/<pid>/environ is NUL-separated KEY=VALUE pairs; entries without '='
// are skipped.
func Environ(pid int) map[string]string {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/environ", pid))
	if err != nil || len(data) == 0 {
		return nil
	}

	env := make(map[string]string)
	for _, entry := range strings.Split(string(data), "\x00") {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	if len(env) == 0 {
		return nil
	}
	return env
}
