package bind

import (
	"fmt"
	"reflect"
	"sync"
)

type registration struct {
	ctor any // func(*Model) C
	opts []Option
}

var registry sync.Map // reflect.Type -> registration

// Register records the constructor of the live instance for contract C,
// together with options applied before the caller's own when a Parser[C]
// is built. Generated code calls Register from init.
func Register[C any](ctor func(*Model) C, opts ...Option) {
	contract := reflect.TypeFor[C]()
	if ctor == nil {
		panic("bind: Register of nil constructor for " + contract.String())
	}

	registry.Store(contract, registration{ctor: ctor, opts: opts})
}

func registered(contract reflect.Type) (registration, bool) {
	v, ok := registry.Load(contract)
	if !ok {
		return registration{}, false
	}

	return v.(registration), true
}

// Synthesize builds a live instance of C answering from values, using the
// registered constructor.
func Synthesize[C any](schema *Schema, values *Values) (C, error) {
	var zero C

	contract := reflect.TypeFor[C]()
	if schema.contract != contract {
		return zero, &ContractError{
			Contract: contract,
			Err:      fmt.Errorf("%w: schema was compiled for %s", ErrNotAContract, schema.contract),
		}
	}

	if values.schema != schema {
		return zero, &ContractError{
			Contract: contract,
			Err:      fmt.Errorf("%w: values were matched against another schema", ErrNotAContract),
		}
	}

	reg, ok := registered(contract)
	if !ok {
		return zero, noImplementation(contract)
	}

	return synthesize(schema, values, reg.ctor.(func(*Model) C)), nil
}

func synthesize[C any](schema *Schema, values *Values, ctor func(*Model) C) C {
	m := &Model{schema: schema, values: values}
	instance := ctor(m)
	m.self = instance

	return instance
}

func noImplementation(contract reflect.Type) error {
	return &ContractError{
		Contract: contract,
		Err:      fmt.Errorf("%w; run optbind -type %s on its package", ErrNoImplementation, contract.Name()),
	}
}
