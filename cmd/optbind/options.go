package main

//go:generate go run . --type options .

// options are the command-line options of optbind.
//
//optbind:contract
type options interface {
	// YAML configuration file
	Config() string
	// Print generated code instead of writing files
	DryRun() bool
	// Print the JSON Schema of each contract instead of generating code
	JSONSchema() bool
	// Suffix of generated file names (default _optbind.go)
	Suffix() string
	// Comma-separated contract type names (default: every interface marked as a contract)
	Type() string
	// Enable debug logging
	Verbose() bool
}
