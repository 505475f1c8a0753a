package joque

import "testing"

// FuzzPackUnpackSlot fuzzes the op-ID/arena-ref muxing arithmetic that
// slot.go's packSlot/unpackSlot perform: the narrow bit-packing helpers
// underneath the lock-free ring, rather than the full concurrent
// protocol (which fuzz's single-threaded harness cannot exercise
// meaningfully).
func FuzzPackUnpackSlot(f *testing.F) {
	f.Add(uint32(0), uint32(0))
	f.Add(uint32(1), uint32(1))
	f.Add(^uint32(0), ^uint32(0))
	f.Add(uint32(42), uint32(0))

	f.Fuzz(func(t *testing.T, opID, arenaRef uint32) {
		entry := packSlot(opID, arenaRef)
		gotOp, gotRef := unpackSlot(entry)
		if gotOp != opID || gotRef != arenaRef {
			t.Fatalf("packSlot(%d,%d) -> unpackSlot = (%d,%d)", opID, arenaRef, gotOp, gotRef)
		}
	})
}
