package joque

import (
	"errors"
	"fmt"
)

// ErrArenaExhausted is the cause wrapped by [PanicError] when the backing
// arena's monotonic index counter reaches 4*capacity. Index 0 is
// reserved and indices are never reclaimed, so at most 4*capacity-1
// pushes succeed over a Deque's lifetime. Reclamation of arena slots is out of scope for
// this implementation (see DESIGN.md); a caller hitting this limit needs
// a reclamation strategy this package does not provide.
var ErrArenaExhausted = errors.New("joque: backing arena exhausted")

// ErrSlotInvariantViolation is the cause wrapped by [PanicError] when a
// consumer observes an arena cell whose writer operation ID does not
// match the operation ID it claimed via the slot ring compare-and-swap.
// Per the protocol in DESIGN.md this should be impossible; observing it
// indicates a bug in the coordination protocol itself, not a recoverable
// runtime condition.
var ErrSlotInvariantViolation = errors.New("joque: slot invariant violation")

// PanicError is the value recovered from the panics this package raises
// on the two fatal conditions ([ErrArenaExhausted],
// [ErrSlotInvariantViolation]). Recoverable conditions (observed-empty,
// race-loss) never panic; they surface as the ok=false return of
// [Deque.PopFront] / [Deque.PopBack].
//
// Example:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        var pe joque.PanicError
//	        if errors.As(r.(error), &pe) && errors.Is(pe, joque.ErrArenaExhausted) {
//	            // handle exhaustion specifically
//	        }
//	    }
//	}()
type PanicError struct {
	// Cause is the underlying sentinel error describing which fatal
	// condition triggered the panic.
	Cause error
	// Detail carries additional, condition-specific context (e.g. the
	// slot index and competing operation IDs for an invariant
	// violation) for logging and debugging.
	Detail string
}

// Error implements error.
func (e PanicError) Error() string {
	if e.Detail == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %s", e.Cause.Error(), e.Detail)
}

// Unwrap returns the wrapped cause, enabling [errors.Is] and
// [errors.As] to match against [ErrArenaExhausted] or
// [ErrSlotInvariantViolation] through a recovered panic value.
func (e PanicError) Unwrap() error {
	return e.Cause
}
