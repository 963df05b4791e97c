// Package embedded holds a contract built from embedded interfaces.
package embedded

import "fmt"

// Common holds options shared by several contracts.
type Common interface {
	// Port to listen on.
	//optbind:default defaultPort
	Port() int
}

func defaultPort(Common) int { return 8080 }

// Server embeds Common and an interface from another package.
//
//optbind:contract
type Server interface {
	Common
	fmt.Stringer
	Addr() string // Address to bind.
}
