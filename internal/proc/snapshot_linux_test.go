//go:build linux

package proc

import (
	"os"
	"strings"
	"testing"
)

func TestParseStat(t *testing.T) {
	// uptime 1000s, process started at tick 50000 (500s), 2000 ticks of CPU
	// (20s) over 500s of age = 4%.
	line := "1234 (some proc) S 1 1234 1234 0 -1 4194304 100 0 0 0 " +
		"1500 500 0 0 20 0 1 0 50000 10000000 250 18446744073709551615 0 0 0 0 0 0 0 0 0 0 0 0 17 0 0 0 0 0 0"

	p, err := parseStat(1234, line, 1000)
	if err != nil {
		t.Fatalf("parseStat failed: %v", err)
	}
	if p.PID != 1234 {
		t.Errorf("PID = %d, want 1234", p.PID)
	}
	if p.PPID != 1 {
		t.Errorf("PPID = %d, want 1", p.PPID)
	}
	if p.Name != "some proc" {
		t.Errorf("Name = %q, want \"some proc\"", p.Name)
	}
	if p.CPUPercent < 3.9 || p.CPUPercent > 4.1 {
		t.Errorf("CPUPercent = %f, want ~4.0", p.CPUPercent)
	}
}

func TestParseStatCommWithParens(t *testing.T) {
	line := "99 (weird) name)) R 42 99 99 0 -1 0 0 0 0 0 " +
		"0 0 0 0 20 0 1 0 100 0 0 0 0 0 0 0 0 0 0 0 0 0 0 17 0 0 0 0 0 0"
	p, err := parseStat(99, line, 1000)
	if err != nil {
		t.Fatalf("parseStat failed: %v", err)
	}
	if p.Name != "weird) name)" {
		t.Errorf("Name = %q, want \"weird) name)\"", p.Name)
	}
	if p.PPID != 42 {
		t.Errorf("PPID = %d, want 42", p.PPID)
	}
}

func TestParseStatMalformed(t *testing.T) {
	for _, line := range []string{"", "1234", "1234 (x) S 1"} {
		if _, err := parseStat(1234, line, 1000); err == nil {
			t.Errorf("parseStat(%q) succeeded, want error", line)
		}
	}
}

func TestParseStatmRSS(t *testing.T) {
	page := uint64(os.Getpagesize())
	tests := []struct {
		statm string
		want  uint64
	}{
		{"5000 1200 300 50 0 400 0", 1200 * page},
		{"5000", 0},
		{"", 0},
		{"5000 junk 300", 0},
	}
	for _, tt := range tests {
		if got := parseStatmRSS(tt.statm); got != tt.want {
			t.Errorf("parseStatmRSS(%q) = %d, want %d", tt.statm, got, tt.want)
		}
	}
}

func TestCaptureIncludesSelf(t *testing.T) {
	snap, err := Capture()
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}

	self, ok := snap[os.Getpid()]
	if !ok {
		t.Fatal("snapshot does not contain the test process")
	}
	if self.Name == "" {
		t.Error("self name is empty")
	}
	if self.PPID != os.Getppid() {
		t.Errorf("self PPID = %d, want %d", self.PPID, os.Getppid())
	}
	if self.MemoryBytes == 0 {
		t.Error("self memory is zero")
	}
	if len(self.Cmdline) == 0 {
		t.Error("self cmdline is empty")
	}
}

func TestWorkDirSelf(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if got := WorkDir(os.Getpid()); got != wd {
		t.Errorf("WorkDir(self) = %q, want %q", got, wd)
	}
	if got := WorkDir(-1); got != "" {
		t.Errorf("WorkDir(-1) = %q, want empty", got)
	}
}

func TestEnvironSelf(t *testing.T) {
	env := Environ(os.Getpid())
	if env == nil {
		t.Skip("cannot read own environ (restricted /proc)")
	}
	// /proc/self/environ reflects the startup environment; PATH is about the
	// safest key to expect from a test runner.
	if _, ok := env["PATH"]; !ok {
		keys := make([]string, 0, len(env))
		for k := range env {
			keys = append(keys, k)
		}
		t.Logf("PATH not in environ, got keys: %s", strings.Join(keys, ","))
	}
	if got := Environ(-1); got != nil {
		t.Errorf("Environ(-1) = %v, want nil", got)
	}
}
