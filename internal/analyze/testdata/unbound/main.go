// Command unbound uses a binding that has not been generated yet.
package main

import "fmt"

// Options configures the command.
//
//optbind:contract
type Options interface {
	// Verbose enables debug logging.
	Verbose() bool
}

func main() {
	p, err := NewOptionsParser()
	if err != nil {
		panic(err)
	}

	fmt.Println(p)
}
