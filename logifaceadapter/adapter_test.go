package logifaceadapter

import (
	"errors"
	"testing"

	"github.com/joeycumines/logiface"
	"github.com/stretchr/testify/require"

	"github.com/joeycumines/go-joque"
)

// testEvent is a minimal logiface.Event implementation.
type testEvent struct {
	logiface.UnimplementedEvent
	level  logiface.Level
	fields map[string]any
	msg    string
	err    error
}

func (e *testEvent) Level() logiface.Level { return e.level }

func (e *testEvent) AddField(key string, val any) {
	if e.fields == nil {
		e.fields = map[string]any{}
	}
	e.fields[key] = val
}

func (e *testEvent) AddMessage(msg string) bool {
	e.msg = msg
	return true
}

func (e *testEvent) AddError(err error) bool {
	e.err = err
	return true
}

type testEventFactory struct{}

func (testEventFactory) NewEvent(level logiface.Level) *testEvent {
	return &testEvent{level: level}
}

type testEventWriter struct {
	written []*testEvent
}

func (w *testEventWriter) Write(event *testEvent) error {
	w.written = append(w.written, event)
	return nil
}

func newTestLogger(level logiface.Level) (*logiface.Logger[*testEvent], *testEventWriter) {
	w := &testEventWriter{}
	l := logiface.New[*testEvent](
		logiface.WithEventFactory[*testEvent](testEventFactory{}),
		logiface.WithWriter[*testEvent](w),
		logiface.WithLevel[*testEvent](level),
	)
	return l, w
}

func TestAdapterLogWritesFields(t *testing.T) {
	l, w := newTestLogger(logiface.LevelDebug)
	a := New[*testEvent](l)

	a.Log(joque.LogEntry{
		Level:    joque.LevelWarn,
		Op:       "pop_front",
		Slot:     3,
		OpID:     7,
		ArenaRef: 11,
		Message:  "race loss",
		Err:      errors.New("boom"),
	})

	require.Len(t, w.written, 1)
	ev := w.written[0]
	require.Equal(t, "race loss", ev.msg)
	require.Equal(t, "pop_front", ev.fields["op"])
	require.Equal(t, errors.New("boom"), ev.err)
}

func TestAdapterIsEnabledRespectsLoggerLevel(t *testing.T) {
	l, _ := newTestLogger(logiface.LevelError)
	a := New[*testEvent](l)

	require.False(t, a.IsEnabled(joque.LevelWarn))
	require.True(t, a.IsEnabled(joque.LevelError))
}

func TestAdapterLogSkipsWhenDisabled(t *testing.T) {
	l, w := newTestLogger(logiface.LevelError)
	a := New[*testEvent](l)

	a.Log(joque.LogEntry{Level: joque.LevelDebug, Op: "push_front", Message: "noise"})

	require.Empty(t, w.written)
}
