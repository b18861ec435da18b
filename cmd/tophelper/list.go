//go:build linux

package main

import (
	"github.com/spf13/cobra"

	"tophelper/internal/output"
	"tophelper/internal/proc"
)

// Processes below this resident size are hidden by --high-memory.
const highMemoryThreshold = 100 << 20 // 100 MiB

var (
	listName       string
	listHighMemory bool
	listSortMemory bool
	listTopMemory  int
	listTopCPU     int
	listJSON       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List processes with resource usage and context information",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listName, "name", "n", "", "filter by process name")
	listCmd.Flags().BoolVar(&listHighMemory, "high-memory", false, "show only high memory usage processes (>100MB)")
	listCmd.Flags().BoolVar(&listSortMemory, "sort-memory", false, "sort by memory usage (desc)")
	listCmd.Flags().IntVar(&listTopMemory, "top-memory", 0, "show top N processes by memory usage")
	listCmd.Flags().IntVar(&listTopCPU, "top-cpu", 0, "show top N processes by CPU usage")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	listCmd.MarkFlagsMutuallyExclusive("top-memory", "top-cpu")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	snap, err := proc.Capture()
	if err != nil {
		return err
	}

	var rows []output.Row
	for _, p := range proc.Filter(snap, listName) {
		if listHighMemory && p.MemoryBytes < highMemoryThreshold {
			continue
		}
		rows = append(rows, output.Row{Process: p, WorkDir: proc.WorkDir(p.PID)})
	}

	switch {
	case listTopMemory > 0:
		output.SortRows(rows, false)
		rows = capRows(rows, listTopMemory)
	case listTopCPU > 0:
		output.SortRows(rows, true)
		rows = capRows(rows, listTopCPU)
	case listSortMemory:
		output.SortRows(rows, false)
	}

	if listJSON {
		return output.PrintJSON(output.ToListRows(rows))
	}

	table := output.NewTableRenderer(!noColor)
	table.PrintHeader()
	for _, row := range rows {
		table.AddRow(row)
	}
	table.PrintFooter(len(rows))
	return nil
}

func capRows(rows []output.Row, n int) []output.Row {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}
