//go:build linux

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tophelper/internal/config"
	"tophelper/internal/proc"
	"tophelper/internal/winsys"
)

var switchCmd = &cobra.Command{
	Use:   "switch <pid-or-name>",
	Short: "Switch to the window containing the specified process",
	Args:  cobra.ExactArgs(1),
	RunE:  runSwitch,
}

func init() {
	rootCmd.AddCommand(switchCmd)
}

func runSwitch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	snap, err := proc.Capture()
	if err != nil {
		return err
	}

	p, err := proc.Resolve(snap, args[0])
	if errors.Is(err, proc.ErrProcessNotFound) {
		return fmt.Errorf("process %q not found", args[0])
	}
	if err != nil {
		return err
	}

	resolver := winsys.NewResolver(winsys.DefaultBackends(), newLogger())
	match, err := resolver.Resolve(p.PID, proc.BuildTree(snap))
	if errors.Is(err, winsys.ErrWindowNotFound) {
		return fmt.Errorf("no window found for process %q (pid %d)", p.Name, p.PID)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Found window for process '%s' (PID: %d)\n", p.Name, p.PID)
	fmt.Printf("Window: %s - %s\n", match.Window.Class, match.Window.Title)

	dispatcher := winsys.NewDispatcher(cfg.Activation)
	fmt.Printf("Switching to window using: %s switch %s\n", cfg.Activation.Tool, dispatcher.Target(match.Window))

	if _, err := dispatcher.Switch(match.Window); err != nil {
		// The tool ran and said no; report its stderr and exit cleanly.
		var actErr *winsys.ActivationError
		if errors.As(err, &actErr) {
			fmt.Printf("Failed to switch window: %s\n", actErr.Stderr)
			return nil
		}
		return err
	}

	fmt.Println("Successfully switched to window")
	return nil
}
