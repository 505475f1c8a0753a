// Package joque provides a fixed-capacity, lock-free double-ended queue
// safe for concurrent PushFront, PushBack, PopFront, and PopBack from any
// number of goroutines without mutual exclusion.
//
// # Architecture
//
// The deque is built from three cooperating pieces:
//
//   - a [Deque]-owned cursor: a single packed atomic word tracking the
//     slot indices just outside the occupied range at each end (the next
//     push_front and push_back targets),
//   - a fixed-capacity slot ring: per-position atomic entries tagging a
//     monotonically increasing operation ID against a backing-arena index,
//   - a backing arena: a fixed array of atomically-swapped cells holding
//     the actual payload, sized at 4x the ring capacity.
//
// A push reserves an arena slot, wins a compare-and-swap on the target
// ring position, publishes the payload into the arena, then advances the
// cursor. A pop wins a compare-and-swap clearing the target ring
// position, takes the arena cell, validates the operation tag against
// what it observed in the ring entry, then retracts the cursor. See
// DESIGN.md for the full grounding of each piece.
//
// # Thread Safety
//
// All four operations ([Deque.PushFront], [Deque.PushBack],
// [Deque.PopFront], [Deque.PopBack]) are safe to call concurrently from
// any number of goroutines. The deque is lock-free but not wait-free:
// under permanent contention a goroutine's compare-and-swap retry loop
// can in principle starve, though in practice this is bounded by op-ID
// skew between contending goroutines.
//
// # Capacity
//
// The ring and arena are fixed at construction time; there is no dynamic
// growth or reclamation. See [New] and the arena-exhaustion behavior
// documented on [Deque.PushFront].
package joque
