package search

import (
	"container/heap"
)

// nodeHeap implements heap.Interface over Node values.
type nodeHeap []Node

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return Less(h[i], h[j]) }
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(Node))
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Frontier is a min-priority queue of nodes keyed by (F, Order).
// There is no decrease-key: callers gate pushes with a Visited registry.
type Frontier struct {
	items nodeHeap
}

// NewFrontier creates an empty frontier.
func NewFrontier() *Frontier {
	f := &Frontier{}
	heap.Init(&f.items)
	return f
}

// Push inserts a node in O(log n).
func (f *Frontier) Push(n Node) {
	heap.Push(&f.items, n)
}

// PopMin removes and returns the node with the smallest (F, Order).
// Returns ErrEmptyFrontier if the queue is empty.
func (f *Frontier) PopMin() (Node, error) {
	if f.items.Len() == 0 {
		return Node{}, ErrEmptyFrontier
	}
	return heap.Pop(&f.items).(Node), nil
}

// Len returns the number of pending nodes.
func (f *Frontier) Len() int {
	return f.items.Len()
}

// Empty reports whether no nodes are pending.
func (f *Frontier) Empty() bool {
	return f.items.Len() == 0
}
