package output

import (
	"encoding/json"
	"fmt"
)

// PrintJSON writes v to stdout as indented JSON.
func PrintJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// ListRow is the JSON shape of one `list --json` entry.
type ListRow struct {
	PID         int     `json:"pid"`
	Name        string  `json:"name"`
	MemoryBytes uint64  `json:"memory_bytes"`
	CPUPercent  float64 `json:"cpu_percent"`
	WorkDir     string  `json:"workdir,omitempty"`
	Command     string  `json:"command,omitempty"`
}

// ToListRows converts table rows to their JSON shape.
func ToListRows(rows []Row) []ListRow {
	out := make([]ListRow, 0, len(rows))
	for _, r := range rows {
		var command string
		if len(r.Cmdline) > 0 {
			command = r.Cmdline[0]
		}
		out = append(out, ListRow{
			PID:         r.PID,
			Name:        r.Name,
			MemoryBytes: r.MemoryBytes,
			CPUPercent:  r.CPUPercent,
			WorkDir:     r.WorkDir,
			Command:     command,
		})
	}
	return out
}
