package bind

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
)

// Parser parses argument vectors into live instances of contract C. It is
// immutable after construction and safe for concurrent use.
type Parser[C any] struct {
	schema    *Schema
	ctor      func(*Model) C
	callbacks Callbacks[C]
	logger    *slog.Logger
	program   string
}

// NewParser compiles C and prepares a parser. Options registered with the
// implementation of C are applied first, then opts.
func NewParser[C any](opts ...Option) (*Parser[C], error) {
	contract := reflect.TypeFor[C]()

	var all []Option

	reg, hasReg := registered(contract)
	if hasReg {
		all = append(all, reg.opts...)
	}

	s := newSettings(append(all, opts...))

	schema, err := compile(contract, s)
	if err != nil {
		return nil, err
	}

	p := &Parser[C]{
		schema:  schema,
		logger:  s.logger,
		program: s.program,
	}

	switch impl := s.impl.(type) {
	case nil:
		if !hasReg {
			return nil, noImplementation(contract)
		}
		p.ctor = reg.ctor.(func(*Model) C)
	case func(*Model) C:
		p.ctor = impl
	default:
		return nil, &ContractError{
			Contract: contract,
			Err:      fmt.Errorf("%w: implementation %T does not build %s", ErrNotAContract, impl, contract),
		}
	}

	switch cb := s.callbacks.(type) {
	case nil:
		p.callbacks = DefaultCallbacks[C]{}
	case Callbacks[C]:
		p.callbacks = cb
	default:
		return nil, &ContractError{
			Contract: contract,
			Err:      fmt.Errorf("%w: callbacks %T do not handle %s", ErrNotAContract, cb, contract),
		}
	}

	if p.program == "" {
		p.program = filepath.Base(os.Args[0])
	}

	p.logger.Debug("compiled option schema",
		slog.String("contract", contract.String()),
		slog.Int("options", len(schema.options)))

	return p, nil
}

// MustNewParser is like NewParser but panics on error.
func MustNewParser[C any](opts ...Option) *Parser[C] {
	p, err := NewParser[C](opts...)
	if err != nil {
		panic(err)
	}

	return p
}

// Parse is a one-shot NewParser[C]().Parse(args...) with the default
// callbacks.
func Parse[C any](args ...string) (C, error) {
	p, err := NewParser[C]()
	if err != nil {
		var zero C
		return zero, err
	}

	return p.Parse(args...)
}

// Schema returns the compiled schema.
func (p *Parser[C]) Schema() *Schema {
	return p.schema
}

// ProgramName returns the name shown in usage output.
func (p *Parser[C]) ProgramName() string {
	return p.program
}

// Parse matches args against the schema and returns a live instance.
//
// Rejected arguments go to OnError and then fail with an error matching
// ErrInvalidArguments. A --help flag goes to OnHelp before the instance is
// built; if OnHelp returns, the instance is built as usual.
func (p *Parser[C]) Parse(args ...string) (C, error) {
	var zero C

	values, err := p.schema.Match(args)
	if err != nil {
		msg := err.Error()

		var argErr *ArgumentError
		if errors.As(err, &argErr) {
			msg = argErr.Message
		}

		p.logger.Debug("rejected arguments", slog.String("error", msg))
		p.callbacks.OnError(p, msg)

		return zero, err
	}

	if values.Has(HelpOption) {
		p.logger.Debug("help requested")
		p.callbacks.OnHelp(p)
	}

	p.logger.Debug("parsed arguments",
		slog.Any("options", values.Present()),
		slog.Int("positional", len(values.args)))

	return synthesize(p.schema, values, p.ctor), nil
}

// PrintHelp writes the usage line and the option table to w.
func (p *Parser[C]) PrintHelp(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Usage: %s [options]\n\nOptions:\n", p.program); err != nil {
		return err
	}

	return p.schema.WriteHelp(w)
}
