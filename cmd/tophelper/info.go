//go:build linux

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tophelper/internal/output"
	"tophelper/internal/proc"
	"tophelper/internal/winsys"
	"tophelper/pkg/model"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info <pid-or-name>",
	Short: "Show detailed information about a specific process",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
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

	detail := model.ProcessDetail{
		Process: p,
		WorkDir: proc.WorkDir(p.PID),
		Environ: proc.Environ(p.PID),
	}

	// Window association is best-effort here; info still renders without it.
	log := newLogger()
	resolver := winsys.NewResolver(winsys.DefaultBackends(), log)
	if match, err := resolver.Resolve(p.PID, proc.BuildTree(snap)); err == nil {
		detail.Window = &match
	} else {
		log.Debug().Int("pid", p.PID).Err(err).Msg("no window for process")
	}

	if infoJSON {
		return output.PrintJSON(detail)
	}
	output.RenderInfo(detail, !noColor)
	return nil
}
