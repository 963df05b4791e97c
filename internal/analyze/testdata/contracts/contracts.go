// Package contracts holds well-formed contracts for the analyzer tests.
package contracts

import "time"

// Server configures a server.
//
//optbind:contract
type Server interface {
	// Verbose enables debug logging.
	Verbose() bool
	// IsDryRun prints instead of writing.
	IsDryRun() bool
	// Port to listen on.
	//optbind:default defaultPort
	Port() int
	GetHost() string // Host name to bind.
	Timeout() time.Duration
	Name() *string
	Level() Level
}

// Level is a log level.
type Level int

func defaultPort(Server) int { return 8080 }

// Unmarked is only extracted when asked for by name.
type Unmarked interface {
	Size() uint32
}

// Config is not an interface.
type Config struct {
	Size int
}
