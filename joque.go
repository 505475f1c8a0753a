package joque

import (
	"fmt"
	"runtime"
)

// Deque is a fixed-capacity, lock-free double-ended queue. See the
// package doc comment for the overall protocol; zero values are not
// usable, construct with [New].
type Deque[T any] struct {
	cursor    *cursor
	ring      *slotRing
	arena     *arena[T]
	capacity  uint32
	opCounter cursorOpCounter
	logger    Logger
	counters  *dequeCounters
	onPanic   func(any)
}

// New constructs a Deque with the given ring capacity, which must be at
// least 10; smaller values panic. The backing arena is sized at
// 4*capacity.
func New[T any](capacity int, opts ...Option) *Deque[T] {
	if capacity < 10 {
		panic(fmt.Sprintf("joque: capacity must be >= 10, got %d", capacity))
	}
	cfg, err := resolveDequeOptions(opts)
	if err != nil {
		// resolveDequeOptions's apply funcs never currently fail; this
		// branch exists for forward compatibility.
		panic(err)
	}

	cap32 := uint32(capacity)
	d := &Deque[T]{
		cursor:   newCursor(cap32),
		ring:     newSlotRing(cap32),
		arena:    newArena[T](cap32),
		capacity: cap32,
		logger:   cfg.logger,
		onPanic:  cfg.onPanic,
	}
	if cfg.metrics {
		d.counters = &dequeCounters{}
	}
	return d
}

// Capacity returns the fixed ring capacity this Deque was constructed
// with.
func (d *Deque[T]) Capacity() int { return int(d.capacity) }

// EstimatedLen returns an approximate count of occupied slots, derived
// from the cursor. This is never a linearizable length: it may be stale
// by the time the caller observes it, and is named EstimatedLen rather
// than Len to make that explicit.
func (d *Deque[T]) EstimatedLen() int {
	left, right := d.cursor.load()
	diff := (right - left) % d.capacity
	if diff == 0 {
		return 0
	}
	return int(diff - 1)
}

// log returns the effective logger for this instance.
func (d *Deque[T]) log() Logger {
	if d.logger != nil {
		return d.logger
	}
	return getGlobalLogger()
}

// fatal logs at Error, invokes the onPanic hook if set, then panics with
// a PanicError wrapping cause.
func (d *Deque[T]) fatal(cause error, op string, detail string) {
	pe := PanicError{Cause: cause, Detail: detail}
	if lg := d.log(); lg.IsEnabled(LevelError) {
		lg.Log(LogEntry{Level: LevelError, Op: op, Message: detail, Err: cause})
	}
	if d.onPanic != nil {
		d.onPanic(pe)
	}
	panic(pe)
}

// nextOpID draws a fresh, nonzero operation tag: the underlying counter
// starts at 0 and returns its post-increment value, so the tag sequence
// is 1, 2, 3, ... and 0 stays reserved for "never written."
func (d *Deque[T]) nextOpID() uint32 {
	return d.opCounter.next()
}

// PushFront inserts payload at the front of the deque. Infallible in the
// happy path; panics (wrapping [ErrArenaExhausted]) only if the backing
// arena is exhausted. Two concurrent pushes on the same end may
// legitimately contend for the same target slot before either has
// advanced the cursor; the loser's compare-and-swap simply fails and
// retries against a freshly loaded slot and cursor, exactly like any
// other compare-and-swap contention in this package.
func (d *Deque[T]) PushFront(payload T) {
	d.pushTo(payload, "push_front", func() uint32 {
		left, _ := d.cursor.load()
		return left
	}, d.cursor.commitPushFront)
}

// PushBack inserts payload at the back of the deque. See [Deque.PushFront]
// for the failure modes.
func (d *Deque[T]) PushBack(payload T) {
	d.pushTo(payload, "push_back", func() uint32 {
		_, right := d.cursor.load()
		return right
	}, d.cursor.commitPushBack)
}

// pushTo implements the push protocol shared by both ends: reserve an
// arena index, win a compare-and-swap on the target slot, publish the
// payload, then advance the cursor. Parameterized by which end
// (front/back) supplies the target index and the cursor commit.
//
// The loaded slot value is used purely as the compare-and-swap
// comparand, whatever state it is in — there is no separate
// occupied-slot precheck. Two pushes on the same end race for the same
// target whenever neither has yet advanced the cursor (the cursor is
// only a hint for where to look, not a reservation); the CAS itself is
// the sole arbiter, so the loser simply observes its comparand go stale
// and retries against a freshly loaded slot and cursor, the same as any
// other contended compare-and-swap in this package.
func (d *Deque[T]) pushTo(payload T, op string, target func() uint32, commit func()) {
	idx, ok := d.arena.reserve()
	if !ok {
		d.fatal(ErrArenaExhausted, op, fmt.Sprintf("arena index %d exceeds capacity %d", idx, len(d.arena.cells)))
	}

	for {
		slot := target() % d.capacity
		old := d.ring.load(slot)

		opID := d.nextOpID()
		entry := packSlot(opID, idx)
		if !d.ring.compareAndSwap(slot, old, entry) {
			continue
		}

		d.arena.publish(idx, opID, payload)
		commit()
		if d.counters != nil {
			d.counters.pushes.Add(1)
		}
		return
	}
}

// PopFront removes and returns the payload at the front of the deque.
// ok is false if the deque was observed empty, or if a concurrent
// producer claimed the slot but had not yet published (a "race loss") —
// in neither case is this an error.
func (d *Deque[T]) PopFront() (payload T, ok bool) {
	return d.popFrom("pop_front", func(left, _ uint32) uint32 {
		return left + 1
	}, d.cursor.commitPopFront)
}

// PopBack removes and returns the payload at the back of the deque. See
// [Deque.PopFront] for the return semantics.
func (d *Deque[T]) PopBack() (payload T, ok bool) {
	return d.popFrom("pop_back", func(_, right uint32) uint32 {
		return right - 1
	}, d.cursor.commitPopBack)
}

// popFrom implements the pop protocol shared by both ends: observe the
// cursor, win a compare-and-swap clearing the target slot, take the
// arena cell, validate the tag, then retract the cursor. Parameterized
// by which end supplies the target index and the cursor commit.
func (d *Deque[T]) popFrom(op string, target func(left, right uint32) uint32, commit func()) (zero T, ok bool) {
	for {
		left, right := d.cursor.load()
		if d.cursor.empty(d.capacity) {
			return zero, false
		}

		slot := target(left, right) % d.capacity
		old := d.ring.load(slot)
		oldOp, oldRef := unpackSlot(old)
		if oldRef == 0 {
			// Never written, or already cleared by a racing consumer.
			runtime.Gosched()
			return zero, false
		}

		newOp := d.nextOpID()
		entry := packSlot(newOp, 0)
		if !d.ring.compareAndSwap(slot, old, entry) {
			continue
		}

		writerOp, payload, published := d.arena.take(oldRef)
		if !published {
			// Race loss: the producer had not yet published when we won
			// the slot CAS. The slot is now cleared and arena indices are
			// never reissued, so the producer's later publish is not
			// delivered by any pop.
			// The cursor still advances rather than restoring the slot:
			// a deliberate choice favoring lock-freedom over restoring
			// the prior state, at the cost of an occasional spurious
			// empty result under adversarial interleavings.
			if lg := d.log(); lg.IsEnabled(LevelWarn) {
				lg.Log(LogEntry{
					Level: LevelWarn, Op: op, Slot: int(slot), OpID: oldOp, ArenaRef: oldRef,
					Message: "race loss: consumer claimed slot before producer published",
				})
			}
			commit()
			if d.counters != nil {
				d.counters.raceLosses.Add(1)
			}
			return zero, false
		}

		if writerOp != oldOp {
			d.fatal(ErrSlotInvariantViolation, op,
				fmt.Sprintf("slot %d: claimed op %d, arena writer op %d", slot, oldOp, writerOp))
		}

		commit()
		if d.counters != nil {
			d.counters.pops.Add(1)
		}
		return payload, true
	}
}
