package bind

import (
	"fmt"
	"io"
	"os"
)

// Callbacks reacts to help requests and argument errors during Parse.
type Callbacks[C any] interface {
	// OnHelp is called when --help is given, before any accessor is
	// evaluated. Parsing continues if it returns.
	OnHelp(p *Parser[C])
	// OnError is called with a human-readable message when the arguments
	// are rejected. Parse still fails if it returns.
	OnError(p *Parser[C], message string)
}

// CallbackFuncs adapts plain functions to Callbacks. Nil fields do nothing.
type CallbackFuncs[C any] struct {
	Help  func(p *Parser[C])
	Error func(p *Parser[C], message string)
}

func (f CallbackFuncs[C]) OnHelp(p *Parser[C]) {
	if f.Help != nil {
		f.Help(p)
	}
}

func (f CallbackFuncs[C]) OnError(p *Parser[C], message string) {
	if f.Error != nil {
		f.Error(p, message)
	}
}

// DefaultCallbacks prints usage and exits with status 0 on help, and
// prints the error and usage and exits with status 1 on error. Nil fields
// fall back to os.Stdout, os.Stderr and os.Exit.
type DefaultCallbacks[C any] struct {
	Stdout io.Writer
	Stderr io.Writer
	Exit   func(code int)
}

func (d DefaultCallbacks[C]) OnHelp(p *Parser[C]) {
	_ = p.PrintHelp(d.stdout())
	d.exit(0)
}

func (d DefaultCallbacks[C]) OnError(p *Parser[C], message string) {
	w := d.stderr()
	fmt.Fprintf(w, "Error: %s\n", message)
	_ = p.PrintHelp(w)
	d.exit(1)
}

func (d DefaultCallbacks[C]) stdout() io.Writer {
	if d.Stdout != nil {
		return d.Stdout
	}

	return os.Stdout
}

func (d DefaultCallbacks[C]) stderr() io.Writer {
	if d.Stderr != nil {
		return d.Stderr
	}

	return os.Stderr
}

func (d DefaultCallbacks[C]) exit(code int) {
	if d.Exit != nil {
		d.Exit(code)
		return
	}

	os.Exit(code)
}
