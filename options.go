package joque

// dequeOptions holds configuration applied at construction time.
type dequeOptions struct {
	logger  Logger
	metrics bool
	onPanic func(any)
}

// Option configures a [Deque] at construction time.
type Option interface {
	applyDeque(*dequeOptions) error
}

// optionFunc implements Option.
type optionFunc struct {
	fn func(*dequeOptions) error
}

func (o *optionFunc) applyDeque(opts *dequeOptions) error {
	return o.fn(opts)
}

// WithLogger sets the structured logger used for race-loss warnings and
// pre-panic diagnostics (see [Logger]). When unset, the package-level
// logger configured via [SetStructuredLogger] is used, defaulting to a
// no-op logger.
func WithLogger(logger Logger) Option {
	return &optionFunc{func(opts *dequeOptions) error {
		opts.logger = logger
		return nil
	}}
}

// WithMetrics enables tracking of per-instance push/pop/race-loss
// counters, retrievable via [Deque.Metrics]. Disabled by default to keep
// the hot path free of the extra atomic increments.
func WithMetrics(enabled bool) Option {
	return &optionFunc{func(opts *dequeOptions) error {
		opts.metrics = enabled
		return nil
	}}
}

// WithOnPanic sets a hook invoked with the recovered [PanicError] value
// immediately before a fatal condition (arena exhaustion, slot invariant
// violation) unwinds the goroutine. Intended for telemetry; the hook
// runs before the panic propagates and cannot suppress it.
func WithOnPanic(fn func(any)) Option {
	return &optionFunc{func(opts *dequeOptions) error {
		opts.onPanic = fn
		return nil
	}}
}

// resolveDequeOptions applies Option instances to a dequeOptions value.
func resolveDequeOptions(opts []Option) (*dequeOptions, error) {
	cfg := &dequeOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue // skip nil options gracefully
		}
		if err := opt.applyDeque(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
