package proc

import (
	"testing"

	"tophelper/pkg/model"
)

func TestBuildTreeChildren(t *testing.T) {
	snap := model.Snapshot{
		1:   {PID: 1, Name: "init"},
		100: {PID: 100, PPID: 1, Name: "shell"},
		200: {PID: 200, PPID: 100, Name: "editor"},
		201: {PID: 201, PPID: 100, Name: "pager"},
		300: {PID: 300, PPID: 999, Name: "orphan"}, // dangling parent
	}
	tree := BuildTree(snap)

	tests := []struct {
		pid  int
		want []int
	}{
		{1, []int{100}},
		{100, []int{200, 201}},
		{200, nil},
		{999, nil}, // dangling parents are not indexed
		{300, nil},
	}
	for _, tt := range tests {
		got := tree.Children(tt.pid)
		if len(got) != len(tt.want) {
			t.Errorf("Children(%d) = %v, want %v", tt.pid, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Children(%d) = %v, want %v", tt.pid, got, tt.want)
				break
			}
		}
	}
}

func TestDescendants(t *testing.T) {
	snap := model.Snapshot{
		1:   {PID: 1},
		100: {PID: 100, PPID: 1},
		200: {PID: 200, PPID: 100},
		300: {PID: 300, PPID: 200},
		400: {PID: 400, PPID: 1},
	}
	tree := BuildTree(snap)

	got := tree.Descendants(100)
	for _, pid := range []int{200, 300} {
		if _, ok := got[pid]; !ok {
			t.Errorf("Descendants(100) missing %d", pid)
		}
	}
	if _, ok := got[400]; ok {
		t.Error("Descendants(100) includes sibling 400")
	}
	if _, ok := got[100]; ok {
		t.Error("Descendants(100) includes the pid itself")
	}
	if len(tree.Descendants(300)) != 0 {
		t.Error("leaf process has descendants")
	}
}

// A corrupted process table can, in theory, produce cyclic parent links. The
// traversal must visit each pid at most once and terminate.
func TestDescendantsCyclicTable(t *testing.T) {
	snap := model.Snapshot{
		100: {PID: 100, PPID: 300},
		200: {PID: 200, PPID: 100},
		300: {PID: 300, PPID: 200},
	}
	tree := BuildTree(snap)

	got := tree.Descendants(100)
	if _, ok := got[100]; ok {
		t.Error("cyclic traversal re-included the start pid")
	}
	for _, pid := range []int{200, 300} {
		if _, ok := got[pid]; !ok {
			t.Errorf("Descendants(100) missing %d in cyclic table", pid)
		}
	}
}

func TestDescendantsSelfParent(t *testing.T) {
	snap := model.Snapshot{
		100: {PID: 100, PPID: 100},
	}
	tree := BuildTree(snap)
	if got := tree.Descendants(100); len(got) != 0 {
		t.Errorf("Descendants of self-parented pid = %v, want empty", got)
	}
}
