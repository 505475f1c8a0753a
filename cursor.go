package joque

import "sync/atomic"

// cursorLeftOne and cursorRightOne are the fetch_add/fetch_sub deltas
// for the low (left) and high (right) halves of the packed cursor word.
// The right half lives in the upper 32 bits, so a one-element move of
// the right end is a delta of 1<<32, not 1.
const (
	cursorLeftOne  = uint64(1)
	cursorRightOne = uint64(1) << 32
)

// cursor is the single atomic word packing the deque's left and right
// ends. left occupies the low 32 bits, right the high 32 bits.
//
// Pushing and popping on one end moves only that end's half via a plain
// fetch_add/fetch_sub of the appropriately shifted delta. The two halves
// are not updated jointly: a left-half decrement that underflows past
// zero borrows into the right half, while a right-half increment that
// overflows past 2^32-1 carries out of the 64-bit word and is lost,
// leaving the left half unchanged. That's a deliberate
// tradeoff, not a bug: every slot claim is ultimately arbitrated by its
// own compare-and-swap, so the cursor only ever serves as a hint for
// where to look next.
type cursor struct { // betteralign:ignore
	_    [sizeOfCacheLine]byte
	word atomic.Uint64
	_    [sizeOfCacheLine - sizeOfAtomicUint64]byte
}

// newCursor returns a cursor in the initial empty state: left =
// capacity/2, right = capacity/2 + 1.
func newCursor(capacity uint32) *cursor {
	c := &cursor{}
	left := capacity / 2
	right := left + 1
	c.word.Store(uint64(left) | uint64(right)<<32)
	return c
}

// load returns the current (left, right) pair.
func (c *cursor) load() (left, right uint32) {
	word := c.word.Load()
	return uint32(word), uint32(word >> 32)
}

// empty reports whether the interval [left, right) contains zero or one
// cell, under modulo-capacity arithmetic. This conservative predicate is
// deliberately chosen over a narrower "only left==right is empty" form:
// the narrower form would let a pop observe a slot that a concurrent
// wrap has not yet reused, risking an ABA read one capacity-cycle stale.
func (c *cursor) empty(capacity uint32) bool {
	left, right := c.load()
	return (right-left)%capacity <= 1
}

// commitPushFront retracts the cursor after a successful push_front
// slot claim: left--.
func (c *cursor) commitPushFront() { c.word.Add(^(cursorLeftOne - 1)) }

// commitPopFront advances the cursor after a pop_front slot claim
// (successful or race-loss): left++.
func (c *cursor) commitPopFront() { c.word.Add(cursorLeftOne) }

// commitPushBack advances the cursor after a successful push_back slot
// claim: right++.
func (c *cursor) commitPushBack() { c.word.Add(cursorRightOne) }

// commitPopBack retracts the cursor after a pop_back slot claim
// (successful or race-loss): right--.
func (c *cursor) commitPopBack() { c.word.Add(^(cursorRightOne - 1)) }
