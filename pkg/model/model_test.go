package model

import "testing"

func TestSnapshotPIDsSorted(t *testing.T) {
	snap := Snapshot{
		300: {PID: 300},
		1:   {PID: 1},
		42:  {PID: 42},
	}
	got := snap.PIDs()
	want := []int{1, 42, 300}
	if len(got) != len(want) {
		t.Fatalf("PIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PIDs() = %v, want %v", got, want)
		}
	}
}

func TestSnapshotPIDsEmpty(t *testing.T) {
	if got := (Snapshot{}).PIDs(); len(got) != 0 {
		t.Errorf("PIDs() of empty snapshot = %v", got)
	}
}
