// SPDX-License-Identifier: MIT
// Package pq implements the decrease-key priority queue that drives frontier
// expansion in tollpath searches.
//
// Entries live in a binary min-heap ordered by (priority, sequence). A locator
// maps each queued vertex ID to its single live entry. Re-prioritizing a
// vertex turns its old entry into a tombstone and pushes a fresh one; Pop
// discards tombstones lazily. Each vertex is superseded at most once per
// incoming relaxation, so the heap holds O(V + E) entries in the worst case.
//
// The sequence number is a monotonically increasing counter assigned on every
// push, which makes extraction order among equal priorities strictly FIFO.
// Searches rely on this for reproducible paths when several optimal paths
// exist.
//
// A Queue is private to one search invocation and is not safe for
// concurrent use.
package pq

import (
	"container/heap"
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by Pop when no live entry remains.
	ErrEmpty = errors.New("pq: queue is empty")

	// ErrNotQueued is returned by Update for a vertex ID that is not currently queued.
	ErrNotQueued = errors.New("pq: vertex is not queued")
)

// entry is one heap slot. live=false marks a tombstone.
type entry struct {
	priority float64
	seq      uint64
	id       string
	live     bool
}

// entryHeap is a min-heap of *entry ordered by priority, then seq.
type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(*entry)) }

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return e
}

// Queue is a min-priority queue over vertex IDs with decrease-key support.
type Queue struct {
	heap    entryHeap
	locator map[string]*entry // vertex ID → its live entry
	seq     uint64
	visited map[string]bool
	order   []string
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{
		locator: make(map[string]*entry),
		visited: make(map[string]bool),
	}
}

// Push queues id with the given priority. If id is already queued its old
// entry is tombstoned first, so a vertex never has two live entries.
// Complexity: O(log n).
func (q *Queue) Push(priority float64, id string) {
	if old, ok := q.locator[id]; ok {
		old.live = false
	}
	e := &entry{priority: priority, seq: q.seq, id: id, live: true}
	q.seq++
	q.locator[id] = e
	heap.Push(&q.heap, e)
}

// Pop removes and returns the live entry with the lowest priority, marking
// its vertex visited. Tombstones encountered on the way, and any left
// exposed at the top of the heap afterwards, are discarded.
//
// Errors:
//   - ErrEmpty: no live entry remains.
//
// Complexity: O(log n) amortized.
func (q *Queue) Pop() (float64, string, error) {
	for q.heap.Len() > 0 {
		e := heap.Pop(&q.heap).(*entry)
		if !e.live {
			continue
		}
		e.live = false
		delete(q.locator, e.id)
		q.visited[e.id] = true
		q.order = append(q.order, e.id)
		q.dropTombstones()

		return e.priority, e.id, nil
	}

	return 0, "", ErrEmpty
}

// Update re-prioritizes a queued vertex.
//
// Errors:
//   - ErrNotQueued: id has no live entry (never pushed, or already popped).
//
// Complexity: O(log n).
func (q *Queue) Update(priority float64, id string) error {
	if _, ok := q.locator[id]; !ok {
		return fmt.Errorf("%w: %q", ErrNotQueued, id)
	}
	q.Push(priority, id)

	return nil
}

// Contains reports whether id currently has a live entry.
func (q *Queue) Contains(id string) bool {
	_, ok := q.locator[id]

	return ok
}

// Priority returns the priority of id's live entry.
func (q *Queue) Priority(id string) (float64, bool) {
	e, ok := q.locator[id]
	if !ok {
		return 0, false
	}

	return e.priority, true
}

// Empty reports whether no live entries remain. Tombstones still physically
// present in the heap are ignored.
func (q *Queue) Empty() bool { return len(q.locator) == 0 }

// Len returns the number of live entries.
func (q *Queue) Len() int { return len(q.locator) }

// Visited reports whether id has been popped from this queue.
func (q *Queue) Visited(id string) bool { return q.visited[id] }

// VisitOrder returns popped vertex IDs in extraction order. A vertex that was
// re-queued after extraction appears once per extraction.
func (q *Queue) VisitOrder() []string {
	out := make([]string, len(q.order))
	copy(out, q.order)

	return out
}

func (q *Queue) dropTombstones() {
	for q.heap.Len() > 0 && !q.heap[0].live {
		heap.Pop(&q.heap)
	}
}
