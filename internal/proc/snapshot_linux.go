//go:build linux

package proc

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"tophelper/pkg/model"
)

// USER_HZ. Fixed at 100 on every architecture Linux currently supports; the
// kernel exports per-process times in this unit regardless of CONFIG_HZ.
const clockTicks = 100

// Capture walks /proc once and returns the process table as of that walk.
// Processes that exit mid-walk are skipped. CPU percent is the lifetime
// average (total CPU time over process age), so it is stable for one capture
// and needs no sampling delay.
func Capture() (model.Snapshot, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil, fmt.Errorf("failed to read /proc: %w", err)
	}

	uptime, err := readUptime()
	if err != nil {
		return nil, err
	}

	snap := make(model.Snapshot, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || pid <= 0 {
			continue
		}
		p, err := readProcess(pid, uptime)
		if err != nil {
			continue // vanished between ReadDir and the stat read
		}
		snap[pid] = p
	}
	return snap, nil
}

func readProcess(pid int, uptime float64) (model.Process, error) {
	stat, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", pid))
	if err != nil {
		return model.Process{}, err
	}

	p, err := parseStat(pid, string(stat), uptime)
	if err != nil {
		return model.Process{}, err
	}

	// comm in stat is truncated to 15 chars; /proc/<pid>/comm is the same
	// data but is the conventional place to read the name from.
	if comm, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", pid)); err == nil {
		if name := strings.TrimSpace(string(comm)); name != "" {
			p.Name = name
		}
	}

	if statm, err := os.ReadFile(fmt.Sprintf("/proc/%d/statm", pid)); err == nil {
		p.MemoryBytes = parseStatmRSS(string(statm))
	}

	p.Cmdline = readCmdline(pid)
	return p, nil
}

// parseStat extracts ppid, cpu time, and start time from a /proc/<pid>/stat
// line. The comm field is enclosed in parens and may itself contain spaces and
// parens, so fields are counted from the last ')'.
func parseStat(pid int, line string, uptime float64) (model.Process, error) {
	closeParen := strings.LastIndex(line, ")")
	openParen := strings.Index(line, "(")
	if openParen < 0 || closeParen < openParen {
		return model.Process{}, fmt.Errorf("malformed stat for pid %d", pid)
	}

	name := line[openParen+1 : closeParen]
	// Fields after the comm, 0-indexed: [0]=state [1]=ppid ... [11]=utime
	// [12]=stime ... [19]=starttime, matching proc(5) fields 3, 4, 14, 15, 22.
	fields := strings.Fields(line[closeParen+1:])
	if len(fields) < 20 {
		return model.Process{}, fmt.Errorf("short stat for pid %d", pid)
	}

	ppid, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.Process{}, fmt.Errorf("bad ppid for pid %d: %w", pid, err)
	}
	utime, _ := strconv.ParseUint(fields[11], 10, 64)
	stime, _ := strconv.ParseUint(fields[12], 10, 64)
	starttime, _ := strconv.ParseUint(fields[19], 10, 64)

	cpuSeconds := float64(utime+stime) / clockTicks
	age := uptime - float64(starttime)/clockTicks

	var cpuPercent float64
	if age > 0 {
		cpuPercent = cpuSeconds / age * 100
	}

	if ppid < 0 {
		ppid = 0
	}
	return model.Process{
		PID:        pid,
		PPID:       ppid,
		Name:       name,
		CPUPercent: cpuPercent,
	}, nil
}

// parseStatmRSS returns resident set size in bytes from /proc/<pid>/statm
// (second field, in pages).
func parseStatmRSS(statm string) uint64 {
	fields := strings.Fields(statm)
	if len(fields) < 2 {
		return 0
	}
	pages, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0
	}
	return pages * uint64(os.Getpagesize())
}

func readCmdline(pid int) []string {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/cmdline", pid))
	if err != nil || len(data) == 0 {
		return nil
	}
	data = bytes.TrimRight(data, "\x00")
	if len(data) == 0 {
		return nil
	}
	return strings.Split(string(data), "\x00")
}

func readUptime() (float64, error) {
	data, err := os.ReadFile("/proc/uptime")
	if err != nil {
		return 0, fmt.Errorf("failed to read /proc/uptime: %w", err)
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty /proc/uptime")
	}
	uptime, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("bad /proc/uptime: %w", err)
	}
	return uptime, nil
}
