package winsys

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"tophelper/internal/config"
	"tophelper/pkg/model"
)

// ActivationError means the activation tool ran but reported failure. Stderr
// carries the tool's error text verbatim for display to the user.
type ActivationError struct {
	Tool   string
	Stderr string
	Err    error
}

func (e *ActivationError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s failed: %s", e.Tool, e.Stderr)
	}
	return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
}

func (e *ActivationError) Unwrap() error {
	return e.Err
}

// Dispatcher maps a resolved window to the program identifier understood by
// the external activation tool, and performs the activation call.
type Dispatcher struct {
	cfg config.Activation
}

func NewDispatcher(cfg config.Activation) *Dispatcher {
	return &Dispatcher{cfg: cfg}
}

// Target picks the activation program for a window. Lookup order: exact
// case-insensitive class match in the known-application table, then the first
// configured keyword found in the title, then the lowercased class verbatim.
// Total: it always yields a string.
func (d *Dispatcher) Target(w model.Window) string {
	class := strings.ToLower(w.Class)
	if program, ok := d.cfg.Classes[class]; ok {
		return program
	}

	title := strings.ToLower(w.Title)
	for _, rule := range d.cfg.TitleKeywords {
		if strings.Contains(title, strings.ToLower(rule.Keyword)) {
			return rule.Program
		}
	}
	return class
}

// Switch hands the window's activation target to the external tool. The
// returned string is the target that was used, for display. A non-zero exit
// becomes an ActivationError carrying the tool's stderr; a tool that could not
// be executed at all is an ordinary error.
func (d *Dispatcher) Switch(w model.Window) (string, error) {
	target := d.Target(w)
	if _, err := Run(d.cfg.Tool, "switch", target); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return target, &ActivationError{
				Tool:   d.cfg.Tool,
				Stderr: strings.TrimSpace(string(exitErr.Stderr)),
				Err:    err,
			}
		}
		return target, fmt.Errorf("failed to execute %s: %w", d.cfg.Tool, err)
	}
	return target, nil
}
