package search

import "mazebench/core"

// frontierEntry is one prioritized position in the open set. The order
// field is a monotonically increasing counter stamped at push time; it
// breaks priority ties by strict insertion order so runs are deterministic.
type frontierEntry struct {
	pos      core.Position
	priority float64
	order    int
	index    int // index in the heap
}

// frontier is a min-priority queue over frontierEntry for container/heap.
type frontier []*frontierEntry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].order < f[j].order
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *frontier) Push(x interface{}) {
	n := len(*f)
	entry := x.(*frontierEntry)
	entry.index = n
	*f = append(*f, entry)
}

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil  // avoid memory leak
	entry.index = -1 // for safety
	*f = old[0 : n-1]
	return entry
}
