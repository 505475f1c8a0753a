// Package logifaceadapter promotes a github.com/joeycumines/logiface
// Logger to the joque.Logger interface, so a Deque can report race
// losses and pre-panic diagnostics through the same structured logging
// pipeline the rest of a logiface-based program already uses.
package logifaceadapter

import (
	"github.com/joeycumines/logiface"

	"github.com/joeycumines/go-joque"
)

// Adapter wraps a *logiface.Logger[E] as a joque.Logger. E is whatever
// concrete Event implementation the host program's logiface.Logger was
// constructed with (zerolog, zap, a test double, etc.); Adapter itself
// is agnostic to it.
type Adapter[E logiface.Event] struct {
	logger *logiface.Logger[E]
}

// New wraps logger as a joque.Logger.
func New[E logiface.Event](logger *logiface.Logger[E]) *Adapter[E] {
	return &Adapter[E]{logger: logger}
}

// IsEnabled reports whether the wrapped logger would emit at level,
// per its own configured minimum level.
func (a *Adapter[E]) IsEnabled(level joque.LogLevel) bool {
	lfLevel := toLogifaceLevel(level)
	return lfLevel.Enabled() && lfLevel <= a.logger.Level()
}

// Log translates entry into a logiface.Builder chain and logs it.
// The op field is always attached; the other fields are attached only
// when non-zero, matching joque's own
// conditional population of LogEntry (most fields are only meaningful
// for some ops).
func (a *Adapter[E]) Log(entry joque.LogEntry) {
	b := a.logger.Build(toLogifaceLevel(entry.Level))
	if !b.Enabled() {
		b.Release()
		return
	}
	b.Str("op", entry.Op)
	if entry.Slot != 0 {
		b.Int("slot", entry.Slot)
	}
	if entry.OpID != 0 {
		b.Uint64("op_id", uint64(entry.OpID))
	}
	if entry.ArenaRef != 0 {
		b.Uint64("arena_ref", uint64(entry.ArenaRef))
	}
	if entry.Err != nil {
		b.Err(entry.Err)
	}
	b.Log(entry.Message)
}

// toLogifaceLevel maps joque's three-level LogLevel onto logiface's
// syslog-derived scale. joque has no analogue of Emergency/Alert/
// Critical/Notice/Informational/Trace, so Debug/Warn/Error map onto
// the nearest syslog keyword rather than inventing new levels.
func toLogifaceLevel(level joque.LogLevel) logiface.Level {
	switch level {
	case joque.LevelDebug:
		return logiface.LevelDebug
	case joque.LevelWarn:
		return logiface.LevelWarning
	case joque.LevelError:
		return logiface.LevelError
	default:
		return logiface.LevelInformational
	}
}
