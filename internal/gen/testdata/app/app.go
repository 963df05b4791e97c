// Package app holds contracts for the generator tests.
package app

import (
	"io/fs"
	"time"
)

// Options configures the app.
//
//optbind:contract
type Options interface {
	// Enable verbose output
	Verbose() bool
	// Size hint for efficient allocations
	//optbind:default defaultSize
	Size() int
	Timeout() time.Duration
	Name() *string
	Strict() *bool
	Mode() fs.FileMode
	Level() Level
}

// Level is a log level.
type Level int

func defaultSize(Options) int { return 1024 }

//optbind:contract
type settings interface {
	Quiet() bool
}
