package joque

// Layout constants used for cache-line padding.
const (
	// sizeOfCacheLine is the size of a CPU cache line used to pad the
	// hot atomic fields of the cursor and the arena counter apart, preventing
	// false sharing between the producer and consumer ends.
	// 64 bytes is standard for x86-64. 128 bytes is standard for Apple
	// Silicon (M1/M2/M3) and other ARM64. We use 128 to satisfy the
	// largest common alignment requirement.
	sizeOfCacheLine = 128

	// sizeOfAtomicUint64 is the size of an atomic.Uint64 variable.
	sizeOfAtomicUint64 = 8
)
