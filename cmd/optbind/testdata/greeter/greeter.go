// Package greeter holds a contract for the command tests.
package greeter

// Greeter greets people.
//
//optbind:contract
type Greeter interface {
	// Name of the person to greet
	Name() string
	// Shout the greeting
	Loud() bool
}
