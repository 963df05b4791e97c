package bind

import (
	"log/slog"
	"reflect"
)

// Option customizes schema compilation and parser construction.
type Option func(*settings)

type settings struct {
	descriptions map[string]string
	defaults     []defaultBody
	callbacks    any // Callbacks[C]
	impl         any // func(*Model) C
	logger       *slog.Logger
	program      string
}

type defaultBody struct {
	accessor string
	contract reflect.Type
	result   reflect.Type
	call     func(self any) any
}

func newSettings(opts []Option) *settings {
	s := &settings{
		descriptions: make(map[string]string),
		logger:       slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s
}

// Describe attaches a description to the option of the named accessor. It
// is shown verbatim next to the option in help output.
func Describe(accessor, description string) Option {
	return func(s *settings) {
		s.descriptions[accessor] = description
	}
}

// Default registers fn as the default body of the named accessor. It runs
// with the live instance when the option is absent, so it may call other
// accessors of the same instance. C is the contract or an interface it
// embeds. Flags never use default bodies.
func Default[C, T any](accessor string, fn func(C) T) Option {
	return func(s *settings) {
		d := defaultBody{
			accessor: accessor,
			contract: reflect.TypeFor[C](),
			result:   reflect.TypeFor[T](),
		}
		if fn != nil {
			d.call = func(self any) any { return fn(self.(C)) }
		}

		s.defaults = append(s.defaults, d)
	}
}

// WithCallbacks sets the help and error callbacks of a Parser[C].
func WithCallbacks[C any](cb Callbacks[C]) Option {
	return func(s *settings) {
		if cb != nil {
			s.callbacks = cb
		}
	}
}

// WithImplementation overrides the registered constructor of the live
// instance for contract C.
func WithImplementation[C any](ctor func(*Model) C) Option {
	return func(s *settings) {
		if ctor != nil {
			s.impl = ctor
		}
	}
}

// WithLogger overrides the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithProgramName sets the program name shown in usage output. The default
// is the base name of os.Args[0].
func WithProgramName(name string) Option {
	return func(s *settings) {
		s.program = name
	}
}
