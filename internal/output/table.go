package output

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"tophelper/pkg/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
)

// Thresholds for coloring hot rows.
const (
	highCPUPercent   = 50
	warnCPUPercent   = 20
	highMemoryBytes  = 1 << 30 // 1 GiB
	warnMemoryBytes  = 512 << 20
	minCommandWidth  = 20
	maxWorkDirWidth  = 40
	fallbackTermCols = 80
)

// Row is one rendered process line.
type Row struct {
	model.Process
	WorkDir string
}

// TableRenderer streams process rows as an aligned table, truncating the
// flexible columns (workdir, command) to the terminal width.
type TableRenderer struct {
	writer       *tabwriter.Writer
	colorEnabled bool
	workDirWidth int
	commandWidth int
}

func NewTableRenderer(colorEnabled bool) *TableRenderer {
	t := &TableRenderer{
		writer:       tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0),
		colorEnabled: colorEnabled,
	}
	t.workDirWidth, t.commandWidth = flexibleWidths(terminalWidth())
	return t
}

// flexibleWidths splits the space left after the fixed columns (pid, name,
// mem, cpu plus tab padding, roughly 45 cells) between workdir and command.
func flexibleWidths(total int) (workDir, command int) {
	remaining := total - 45
	if remaining < 2*minCommandWidth {
		return 15, minCommandWidth
	}
	workDir = remaining / 2
	if workDir > maxWorkDirWidth {
		workDir = maxWorkDirWidth
	}
	return workDir, remaining - workDir
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackTermCols
	}
	return width
}

func (t *TableRenderer) PrintHeader() {
	header := " PID\tNAME\tMEM\tCPU%\tWORKDIR\tCOMMAND"
	if t.colorEnabled {
		header = headerStyle.Render(header)
	}
	fmt.Fprintln(t.writer, header)
	fmt.Fprintln(t.writer, " ───\t────\t───\t────\t───────\t───────")
	t.writer.Flush()
}

func (t *TableRenderer) AddRow(r Row) {
	mem := humanize.IBytes(r.MemoryBytes)
	cpu := fmt.Sprintf("%.1f", r.CPUPercent)

	if t.colorEnabled {
		switch {
		case r.CPUPercent > highCPUPercent:
			cpu = dangerStyle.Render(cpu)
		case r.CPUPercent > warnCPUPercent:
			cpu = warnStyle.Render(cpu)
		}
		switch {
		case r.MemoryBytes > highMemoryBytes:
			mem = dangerStyle.Render(mem)
		case r.MemoryBytes > warnMemoryBytes:
			mem = warnStyle.Render(mem)
		}
	}

	command := "N/A"
	if len(r.Cmdline) > 0 {
		command = Truncate(r.Cmdline[0], t.commandWidth)
	}
	workDir := r.WorkDir
	if workDir == "" {
		workDir = "N/A"
	}

	fmt.Fprintf(t.writer, " %d\t%s\t%s\t%s\t%s\t%s\n",
		r.PID, r.Name, mem, cpu, TruncateLeft(workDir, t.workDirWidth), command)
	t.writer.Flush()
}

func (t *TableRenderer) PrintFooter(total int) {
	fmt.Println()
	line := fmt.Sprintf("%d processes", total)
	if t.colorEnabled {
		line = footerStyle.Render(line)
	}
	fmt.Println(line)
}

// Truncate shortens s to max cells, marking the cut with a trailing ellipsis.
func Truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// TruncateLeft keeps the tail of s, which is the interesting end for paths.
func TruncateLeft(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return "..." + s[len(s)-(max-3):]
}

// SortRows orders rows for the --sort-memory / --top-memory / --top-cpu
// flags. byCPU false means by memory. Descending in both cases; pid breaks
// ties so output is reproducible.
func SortRows(rows []Row, byCPU bool) {
	less := func(i, j int) bool {
		if byCPU {
			if rows[i].CPUPercent != rows[j].CPUPercent {
				return rows[i].CPUPercent > rows[j].CPUPercent
			}
		} else {
			if rows[i].MemoryBytes != rows[j].MemoryBytes {
				return rows[i].MemoryBytes > rows[j].MemoryBytes
			}
		}
		return rows[i].PID < rows[j].PID
	}
	sort.SliceStable(rows, less)
}
