// Package gen provides deterministic Go code generation for optbind
// contracts.
//
// Generation uses text/template + go/format. For each contract it emits one
// file next to the contract holding:
//   - a wrapper type forwarding every accessor to a bind.Model
//   - an init function registering the wrapper with bind.Register
//   - a New<Contract>Parser constructor
package gen
