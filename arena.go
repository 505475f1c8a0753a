package joque

import "sync/atomic"

// arenaCell is the record behind each arena slot's atomic pointer: the
// operation ID that published payload, and the payload itself. A cell
// with valid == false is the "null sentinel" — a real, non-nil pointer,
// never a nil *arenaCell, so take can always distinguish "never
// published yet" from "a torn write" by inspecting valid rather than by
// nil-checking the pointer itself.
type arenaCell[T any] struct {
	writerOp uint32
	payload  T
	valid    bool
}

// arena is the backing store for in-flight payloads: a fixed array of
// atomically-swapped cell pointers, sized at 4x the slot ring's
// capacity, plus a monotonic index counter starting at 1 so that index
// 0 can be reserved as the permanent "null arena ref."
//
// Unlike a simple ring buffer that always overwrites and wraps silently,
// this arena's publish/take pair carries the tag needed for validation:
// a push's publish must be observable by take as matching the exact op
// ID the consumer claimed in the slot ring, not merely "some payload."
type arena[T any] struct { // betteralign:ignore
	_       [sizeOfCacheLine]byte
	counter atomic.Uint32
	_       [sizeOfCacheLine - 4]byte
	cells   []atomic.Pointer[arenaCell[T]]
}

// newArena constructs an arena sized at 4x ringCapacity, with every cell
// pre-populated with a null sentinel: reserve's precondition is that the
// cell at idx already holds a (writerOp = MAX, payload = null) sentinel.
func newArena[T any](ringCapacity uint32) *arena[T] {
	a := &arena[T]{
		cells: make([]atomic.Pointer[arenaCell[T]], 4*ringCapacity),
	}
	a.counter.Store(1)
	for i := range a.cells {
		a.cells[i].Store(&arenaCell[T]{writerOp: ^uint32(0)})
	}
	return a
}

// reserve atomically allocates the next arena index. ok is false once
// the monotonic counter would exceed the fixed backing array: this
// implementation carries no reclamation scheme, so the arena's capacity
// is a hard, documented limit (see DESIGN.md).
func (a *arena[T]) reserve() (idx uint32, ok bool) {
	idx = a.counter.Add(1) - 1
	return idx, idx < uint32(len(a.cells))
}

// publish atomically installs a fresh (opID, payload) record at idx,
// discarding whatever sentinel was there. This is the release-store half
// of the producer/consumer synchronization: a consumer's take is an
// acquire-swap on the same atomic.Pointer, so everything visible to this
// goroutine at the time of publish becomes visible to whichever
// goroutine's take observes this record.
func (a *arena[T]) publish(idx uint32, opID uint32, payload T) {
	a.cells[idx].Store(&arenaCell[T]{writerOp: opID, payload: payload, valid: true})
}

// take atomically swaps the cell at idx with a fresh null sentinel and
// returns the prior record. ok is false if the producer had not yet
// published ("race loss"). reserve never issues idx again, and the
// producer's later publish lands in a cell that the consumer has already
// cleared from the slot ring, so that payload is not returned by any
// later take through the ring.
func (a *arena[T]) take(idx uint32) (writerOp uint32, payload T, ok bool) {
	prev := a.cells[idx].Swap(&arenaCell[T]{writerOp: ^uint32(0)})
	return prev.writerOp, prev.payload, prev.valid
}
