package buffer

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Stale lists the lines whose content changed since the last TakeStale.
//
// Lines holds edited line indices in ascending order. When lines were
// inserted or removed, From is the first index whose content may have moved;
// every line at or after From is stale. From is -1 when no line moved.
type Stale struct {
	Lines []int
	From  int
}

// IsZero reports whether nothing is stale.
func (s Stale) IsZero() bool { return len(s.Lines) == 0 && s.From < 0 }

// Contains reports whether line idx is stale.
func (s Stale) Contains(idx int) bool {
	if s.From >= 0 && idx >= s.From {
		return true
	}
	for _, l := range s.Lines {
		if l == idx {
			return true
		}
	}
	return false
}

type staleTracker struct {
	lines *treeset.Set
	from  int
}

func newStaleTracker() staleTracker {
	return staleTracker{lines: treeset.NewWith(utils.IntComparator), from: -1}
}

func (t *staleTracker) markLine(idx int) {
	if t.from >= 0 && idx >= t.from {
		return
	}
	t.lines.Add(idx)
}

func (t *staleTracker) markFrom(idx int) {
	if t.from < 0 || idx < t.from {
		t.from = idx
	}
	for _, v := range t.lines.Values() {
		if v.(int) >= idx {
			t.lines.Remove(v)
		}
	}
}

func (t *staleTracker) take() Stale {
	out := Stale{From: t.from}
	for _, v := range t.lines.Values() {
		out.Lines = append(out.Lines, v.(int))
	}
	t.lines.Clear()
	t.from = -1
	return out
}
