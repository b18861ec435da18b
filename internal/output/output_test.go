package output

import (
	"testing"

	"tophelper/pkg/model"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		s    string
		max  int
		want string
	}{
		{"short", 20, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a-fairly-long-command-line", 10, "a-fairl..."},
		{"anything", 3, "anything"}, // too narrow to mark a cut
		{"", 10, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.s, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
		}
	}
}

func TestTruncateLeft(t *testing.T) {
	if got := TruncateLeft("/home/user/projects/deep/nested/dir", 15); got != "...p/nested/dir" {
		t.Errorf("TruncateLeft = %q", got)
	}
	if got := TruncateLeft("/tmp", 15); got != "/tmp" {
		t.Errorf("TruncateLeft short = %q", got)
	}
}

func TestFlexibleWidths(t *testing.T) {
	workDir, command := flexibleWidths(160)
	if workDir != maxWorkDirWidth {
		t.Errorf("wide terminal workdir = %d, want capped at %d", workDir, maxWorkDirWidth)
	}
	if command != 160-45-maxWorkDirWidth {
		t.Errorf("wide terminal command = %d", command)
	}

	workDir, command = flexibleWidths(40)
	if workDir != 15 || command != minCommandWidth {
		t.Errorf("narrow terminal widths = %d/%d, want 15/%d", workDir, command, minCommandWidth)
	}
}

func TestSortRows(t *testing.T) {
	rows := []Row{
		{Process: model.Process{PID: 1, MemoryBytes: 100, CPUPercent: 5}},
		{Process: model.Process{PID: 2, MemoryBytes: 300, CPUPercent: 1}},
		{Process: model.Process{PID: 3, MemoryBytes: 200, CPUPercent: 9}},
		{Process: model.Process{PID: 4, MemoryBytes: 300, CPUPercent: 2}},
	}

	SortRows(rows, false)
	gotPIDs := []int{rows[0].PID, rows[1].PID, rows[2].PID, rows[3].PID}
	// Memory descending, pid ascending on the 300-byte tie.
	want := []int{2, 4, 3, 1}
	for i := range want {
		if gotPIDs[i] != want[i] {
			t.Fatalf("SortRows by memory = %v, want %v", gotPIDs, want)
		}
	}

	SortRows(rows, true)
	if rows[0].PID != 3 || rows[1].PID != 1 {
		t.Errorf("SortRows by cpu: first pids = %d, %d, want 3, 1", rows[0].PID, rows[1].PID)
	}
}

func TestToListRows(t *testing.T) {
	rows := []Row{
		{
			Process: model.Process{PID: 10, Name: "code", MemoryBytes: 42, Cmdline: []string{"/usr/bin/code", "--wait"}},
			WorkDir: "/home/user",
		},
		{Process: model.Process{PID: 11, Name: "kthread"}},
	}
	out := ToListRows(rows)
	if len(out) != 2 {
		t.Fatalf("got %d rows, want 2", len(out))
	}
	if out[0].Command != "/usr/bin/code" {
		t.Errorf("command = %q, want the argv head", out[0].Command)
	}
	if out[1].Command != "" || out[1].WorkDir != "" {
		t.Errorf("empty fields should stay empty: %+v", out[1])
	}
}

func TestRelevantEnv(t *testing.T) {
	env := map[string]string{
		"DISPLAY":    ":0",
		"HOME":       "/home/user",
		"TERM":       "xterm-256color",
		"SECRET_KEY": "hunter2",
	}
	got := relevantEnv(env)
	if len(got) != 2 || got[0] != "DISPLAY" || got[1] != "TERM" {
		t.Errorf("relevantEnv = %v, want [DISPLAY TERM] sorted", got)
	}
	if relevantEnv(nil) != nil {
		t.Error("relevantEnv(nil) should be nil")
	}
}
