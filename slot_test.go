package joque

import "testing"

func TestPackUnpackSlotRoundTrip(t *testing.T) {
	cases := []struct {
		opID, ref uint32
	}{
		{0, 0},
		{1, 1},
		{^uint32(0), ^uint32(0)},
		{42, 7},
	}
	for _, c := range cases {
		entry := packSlot(c.opID, c.ref)
		gotOp, gotRef := unpackSlot(entry)
		if gotOp != c.opID || gotRef != c.ref {
			t.Fatalf("packSlot(%d,%d) round-trip: got (%d,%d)", c.opID, c.ref, gotOp, gotRef)
		}
	}
}

func TestSlotRingZeroValueIsUnwritten(t *testing.T) {
	r := newSlotRing(8)
	opID, ref := unpackSlot(r.load(0))
	if opID != 0 || ref != 0 {
		t.Fatalf("fresh slot ring entry: got (%d,%d), want (0,0)", opID, ref)
	}
}

func TestSlotRingCompareAndSwapWrapsIndex(t *testing.T) {
	r := newSlotRing(8)
	if !r.compareAndSwap(8, 0, packSlot(1, 1)) {
		t.Fatal("compareAndSwap at index == capacity should wrap to 0")
	}
	if r.load(0) != packSlot(1, 1) {
		t.Fatal("write at wrapped index 8 should be visible at index 0")
	}
}

func TestSlotRingCompareAndSwapFailsOnMismatch(t *testing.T) {
	r := newSlotRing(8)
	r.compareAndSwap(0, 0, packSlot(1, 1))
	if r.compareAndSwap(0, 0, packSlot(2, 2)) {
		t.Fatal("compareAndSwap with a stale expected value should fail")
	}
}
