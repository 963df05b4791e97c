// Package bind binds Go interface types ("contracts") to command-line
// options and answers the interface's accessors from parsed arguments.
//
// A contract is an interface whose methods take no arguments and return a
// single value:
//
//	type Options interface {
//		Verbose() bool // flag: --verbose
//		Size() int     // scalar: --size 42
//		Output() *string
//	}
//
// Compile turns the contract into an immutable Schema: one option per
// accessor plus a synthetic --help flag. Schema.Match hands the arguments
// to pflag and returns the parsed Values. A Model closes over one Values
// and resolves accessors by option name; the live instance is a small
// wrapper type (written by the optbind generator) that forwards each method
// to its Model.
//
// Parser ties these together and routes help requests and argument errors
// through pluggable Callbacks.
//
// Option names derive from accessor names: a flag named IsFoo and any
// accessor named GetFoo lose their prefix, and the leading word is
// lower-cased (Verbose -> verbose, HTTPPort -> httpPort).
package bind
