// Package diagnostic provides structured errors, warnings, and notes
// reported while analyzing contracts for the optbind generator.
//
// Each diagnostic names the contract and accessor it concerns, so the
// command can print every problem of a run at once instead of stopping at
// the first one.
package diagnostic
