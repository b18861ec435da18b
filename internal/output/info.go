package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"tophelper/pkg/model"
)

// relevantEnvKeys are the environment variables worth showing in a process
// report: display-server session, terminal, and editor markers.
var relevantEnvKeys = map[string]bool{
	"DISPLAY":             true,
	"WAYLAND_DISPLAY":     true,
	"PWD":                 true,
	"TERM":                true,
	"TERM_PROGRAM":        true,
	"VSCODE_PID":          true,
	"VSCODE_IPC_HOOK_CLI": true,
	"WINDOWID":            true,
	"XTERM_VERSION":       true,
}

// RenderInfo prints the detailed report for one process. Long values are
// truncated to the terminal width.
func RenderInfo(d model.ProcessDetail, colorEnabled bool) {
	maxValue := terminalWidth() - 25 // room for the label column
	if maxValue < minCommandWidth {
		maxValue = minCommandWidth
	}

	title := "Process Information:"
	if colorEnabled {
		title = headerStyle.Render(title)
	}
	fmt.Println(title)
	fmt.Printf("  PID: %d\n", d.PID)
	fmt.Printf("  Name: %s\n", d.Name)
	fmt.Printf("  Memory: %s\n", humanize.IBytes(d.MemoryBytes))
	fmt.Printf("  CPU: %.1f%%\n", d.CPUPercent)

	if d.WorkDir != "" {
		fmt.Printf("  Working Directory: %s\n", Truncate(d.WorkDir, maxValue))
	}
	if d.PPID != 0 {
		fmt.Printf("  Parent PID: %d\n", d.PPID)
	}
	if len(d.Cmdline) > 0 {
		fmt.Printf("  Command: %s\n", Truncate(strings.Join(d.Cmdline, " "), maxValue))
	}

	if d.Window != nil {
		fmt.Printf("  Window ID: %s\n", Truncate(d.Window.Window.ID, maxValue))
		fmt.Printf("  Window Title: %s\n", Truncate(d.Window.Window.Title, maxValue))
		if d.Window.Window.Class != "" {
			fmt.Printf("  Window Class: %s\n", Truncate(d.Window.Window.Class, maxValue))
		}
		fmt.Printf("  Window Match: %s\n", d.Window.Relation)
	}

	if env := relevantEnv(d.Environ); len(env) > 0 {
		section := "\nEnvironment Variables (relevant):"
		if colorEnabled {
			section = "\n" + headerStyle.Render("Environment Variables (relevant):")
		}
		fmt.Println(section)
		for _, key := range env {
			fmt.Printf("  %s: %s\n", key, Truncate(d.Environ[key], maxValue))
		}
	}
}

func relevantEnv(environ map[string]string) []string {
	var keys []string
	for key := range environ {
		if relevantEnvKeys[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
