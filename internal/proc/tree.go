package proc

import (
	"sort"

	"tophelper/pkg/model"
)

// Tree is the parent→children index derived from one snapshot. It is built
// once and never mutated; it reflects exactly the parent pids of the snapshot
// it came from.
type Tree struct {
	children map[int][]int
}

// BuildTree indexes the snapshot's parent links. A child is indexed only when
// its parent pid is itself present in the snapshot; dangling parents are
// ignored.
func BuildTree(snap model.Snapshot) *Tree {
	t := &Tree{children: make(map[int][]int)}
	for _, pid := range snap.PIDs() {
		ppid := snap[pid].PPID
		if ppid == 0 {
			continue
		}
		if _, ok := snap[ppid]; !ok {
			continue
		}
		t.children[ppid] = append(t.children[ppid], pid)
	}
	return t
}

// Children returns the direct children of pid in ascending order, empty when
// there are none.
func (t *Tree) Children(pid int) []int {
	kids := t.children[pid]
	out := make([]int, len(kids))
	copy(out, kids)
	sort.Ints(out)
	return out
}

// Descendants returns every pid reachable from pid through child links, at any
// depth, excluding pid itself. The traversal keeps a seen set so it terminates
// even if a corrupted process table produces cyclic parent links.
func (t *Tree) Descendants(pid int) map[int]struct{} {
	seen := map[int]struct{}{pid: {}}
	out := make(map[int]struct{})

	queue := append([]int(nil), t.children[pid]...)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if _, ok := seen[current]; ok {
			continue
		}
		seen[current] = struct{}{}
		out[current] = struct{}{}
		queue = append(queue, t.children[current]...)
	}
	return out
}
