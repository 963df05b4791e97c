package bind

import (
	"errors"
	"fmt"
	"reflect"

	"optbind/primitive"
)

var (
	// ErrNotAContract reports a type that is not an interface of
	// parameterless, single-result accessors.
	ErrNotAContract = errors.New("not an option contract")
	// ErrDuplicateOption reports two accessors deriving the same option name.
	ErrDuplicateOption = errors.New("duplicate option")
	// ErrReservedOption reports an accessor deriving the reserved help option.
	ErrReservedOption = errors.New("reserved option")
	// ErrUnknownPrimitiveType reports a primitive result type with no zero
	// value mapping.
	ErrUnknownPrimitiveType = primitive.ErrUnknown
	// ErrUnsupportedType reports a composite result type.
	ErrUnsupportedType = primitive.ErrUnsupported
	// ErrInvalidDefault reports a default body that cannot serve its accessor.
	ErrInvalidDefault = errors.New("invalid default")
	// ErrInvalidArguments reports an argument vector the parsing engine rejected.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrNoImplementation reports a contract without a registered implementation.
	ErrNoImplementation = errors.New("no implementation registered")
)

// ContractError is returned when a contract cannot be compiled.
type ContractError struct {
	Contract reflect.Type
	Accessor string // empty when the contract as a whole is at fault
	Err      error
}

func (e *ContractError) Error() string {
	name := "<nil>"
	if e.Contract != nil {
		name = e.Contract.String()
	}

	if e.Accessor != "" {
		name += "." + e.Accessor
	}

	return "bind: " + name + ": " + e.Err.Error()
}

func (e *ContractError) Unwrap() error {
	return e.Err
}

// ArgumentError is returned when the parsing engine rejects the arguments.
// It matches ErrInvalidArguments.
type ArgumentError struct {
	// Message is the human-readable explanation handed to OnError.
	Message string
	Cause   error
}

func (e *ArgumentError) Error() string {
	return ErrInvalidArguments.Error() + ": " + e.Message
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArguments
}

func (e *ArgumentError) Unwrap() error {
	return e.Cause
}

// InvocationError is the panic value raised when a default body fails
// while an accessor is resolved.
type InvocationError struct {
	Accessor string
	Option   string
	// Cause is the value recovered from the default body.
	Cause any
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("bind: default for %s (--%s) failed: %v", e.Accessor, e.Option, e.Cause)
}

// Unwrap returns Cause when it is an error.
func (e *InvocationError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}

	return nil
}
