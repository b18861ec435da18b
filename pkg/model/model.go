package model

import "sort"

// Process is one row of a point-in-time process table. Values are frozen at
// capture; a Process never updates after the snapshot that produced it.
type Process struct {
	PID         int      `json:"pid"`
	PPID        int      `json:"ppid,omitempty"` // 0 when the parent is unknown or out of scope
	Name        string   `json:"name"`
	MemoryBytes uint64   `json:"memory_bytes"`
	CPUPercent  float64  `json:"cpu_percent"`
	Cmdline     []string `json:"cmdline,omitempty"`
}

// Snapshot maps pid to its record. Parent pids may dangle (parent exited, or
// pid 0/1); consumers must tolerate that.
type Snapshot map[int]Process

// PIDs returns the snapshot's pids in ascending order. All iteration that must
// be reproducible for a given snapshot goes through this.
func (s Snapshot) PIDs() []int {
	pids := make([]int, 0, len(s))
	for pid := range s {
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	return pids
}

// Window is one visible window as reported by a backend. ID is opaque and not
// portable across backends. PID is the pid the backend reports as owner, which
// may be a descendant of the process the user asked about.
type Window struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Class string `json:"class,omitempty"` // empty when the backend cannot supply one
	PID   int    `json:"pid"`
}

// MatchRelation says how a resolved window's owner relates to the target pid.
type MatchRelation string

const (
	MatchExact      MatchRelation = "exact"
	MatchDescendant MatchRelation = "descendant"
)

// WindowMatch is a resolved window plus its relation to the target process.
// It is a value, not a live handle; the window may vanish at any time.
type WindowMatch struct {
	Window   Window        `json:"window"`
	Relation MatchRelation `json:"relation"`
}

// ProcessDetail is the full per-process report rendered by `info`. WorkDir and
// Environ are best-effort; empty/nil means unreadable, not an error. Window is
// nil when no backend could associate a window with the process.
type ProcessDetail struct {
	Process
	WorkDir string            `json:"workdir,omitempty"`
	Environ map[string]string `json:"environ,omitempty"`
	Window  *WindowMatch      `json:"window,omitempty"`
}
