package chat

import (
	"container/heap"
	"context"
	"io"
)

// MergedSource combines multiple EventSources into a single stream ordered
// by timestamp (oldest first). This gives the pairing stage one unified
// timeline when a group chat was exported in several pieces.
type MergedSource struct {
	sources []EventSource
	heap    *eventHeap
	closed  bool
}

// NewMergedSource creates an EventSource that merges multiple sources by
// timestamp. Events are returned in chronological order across all sources.
func NewMergedSource(sources ...EventSource) *MergedSource {
	return &MergedSource{
		sources: sources,
		heap:    &eventHeap{},
	}
}

// Next returns the next event in timestamp order across all sources.
// Returns io.EOF when all sources are exhausted.
func (m *MergedSource) Next(ctx context.Context) (*Event, error) {
	// Initialize heap on first call
	if m.heap.Len() == 0 && !m.closed {
		if err := m.initHeap(ctx); err != nil {
			return nil, err
		}
	}

	if m.heap.Len() == 0 {
		return nil, io.EOF
	}

	// Pop the oldest event
	item := heap.Pop(m.heap).(*heapItem)
	ev := item.event

	// Refill from the same source
	if next, err := m.sources[item.sourceIdx].Next(ctx); err == nil {
		heap.Push(m.heap, &heapItem{
			event:     next,
			sourceIdx: item.sourceIdx,
		})
	} else if err != io.EOF {
		return nil, err
	}

	return ev, nil
}

// initHeap reads the first event from each source to initialize the heap.
func (m *MergedSource) initHeap(ctx context.Context) error {
	heap.Init(m.heap)

	for i, src := range m.sources {
		ev, err := src.Next(ctx)
		if err == io.EOF {
			continue // Empty source
		}
		if err != nil {
			return err
		}

		heap.Push(m.heap, &heapItem{
			event:     ev,
			sourceIdx: i,
		})
	}

	return nil
}

// Close releases all source resources.
func (m *MergedSource) Close() error {
	m.closed = true
	var firstErr error
	for _, src := range m.sources {
		if err := src.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// heapItem wraps an Event with its source index for the priority queue.
type heapItem struct {
	event     *Event
	sourceIdx int
}

// eventHeap implements heap.Interface for timestamp-ordered merging.
type eventHeap []*heapItem

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	return h[i].event.Timestamp.Before(h[j].event.Timestamp)
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(*heapItem))
}

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}
