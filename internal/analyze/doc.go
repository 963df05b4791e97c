// Package analyze loads Go packages and extracts optbind contracts.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// interface types, classify each accessor's result type, and read the
// descriptions and default bodies declared in doc comments:
//
//	// Options configures the server.
//	//
//	//optbind:contract
//	type Options interface {
//		// Size hint for efficient allocations.
//		//optbind:default defaultSize
//		Size() int
//	}
//
// Key types:
//   - TypeID: package import path + type name
//   - Contract: a validated interface with its package location
//   - Accessor: method name, derived option name, kind, and documentation
package analyze
