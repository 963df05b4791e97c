package bind

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"

	"optbind/primitive"
)

// Kind tells flags from scalar options.
type Kind int

const (
	KindFlag   Kind = iota + 1 // no argument, presence semantics
	KindScalar                 // exactly one typed argument
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// OptionSpec describes one option of a Schema.
type OptionSpec struct {
	Name     string       // option name, used as --Name
	Accessor string       // accessor method name; empty for the help flag
	Kind     Kind         // flag or scalar
	Type     reflect.Type // accessor result type
	// Primitive is the kind of the parsed value. For pointer results it is
	// the kind of the element.
	Primitive   primitive.KindEnum
	Nullable    bool   // pointer result: absent yields nil
	Description string // shown verbatim in help output
	// Default is the zero value of Type for non-nullable scalars. It is
	// invalid for flags and nullable scalars.
	Default reflect.Value

	body      func(self any) any
	synthetic bool
}

// HasDefaultBody reports whether a default body was registered.
func (o OptionSpec) HasDefaultBody() bool {
	return o.body != nil
}

// Synthetic reports whether the option was added by the compiler rather
// than declared by the contract.
func (o OptionSpec) Synthetic() bool {
	return o.synthetic
}

// Schema is the compiled, immutable option set of a contract. It is safe
// for concurrent use.
type Schema struct {
	contract   reflect.Type
	options    []*OptionSpec
	byName     map[string]*OptionSpec
	byAccessor map[string]*OptionSpec
}

// Contract returns the interface type the schema was compiled from.
func (s *Schema) Contract() reflect.Type {
	return s.contract
}

// Options returns copies of all options in declaration order, help last.
func (s *Schema) Options() []OptionSpec {
	out := make([]OptionSpec, len(s.options))
	for i, o := range s.options {
		out[i] = *o
	}

	return out
}

// Names returns all option names in declaration order, help last.
func (s *Schema) Names() []string {
	out := make([]string, len(s.options))
	for i, o := range s.options {
		out[i] = o.Name
	}

	return out
}

// Lookup returns the option with the given name.
func (s *Schema) Lookup(name string) (OptionSpec, bool) {
	o, ok := s.byName[name]
	if !ok {
		return OptionSpec{}, false
	}

	return *o, true
}

// Accessor returns the option bound to the named accessor.
func (s *Schema) Accessor(accessor string) (OptionSpec, bool) {
	o, ok := s.byAccessor[accessor]
	if !ok {
		return OptionSpec{}, false
	}

	return *o, true
}

// CompileFor compiles the contract C.
func CompileFor[C any](opts ...Option) (*Schema, error) {
	return Compile(reflect.TypeFor[C](), opts...)
}

// Compile compiles contract, which must be an interface type, into a
// Schema. Only Describe and Default options affect compilation.
func Compile(contract reflect.Type, opts ...Option) (*Schema, error) {
	return compile(contract, newSettings(opts))
}

func compile(contract reflect.Type, s *settings) (*Schema, error) {
	if contract == nil {
		return nil, &ContractError{Err: fmt.Errorf("%w: nil type", ErrNotAContract)}
	}

	if contract.Kind() != reflect.Interface {
		return nil, &ContractError{
			Contract: contract,
			Err:      fmt.Errorf("%w: %s is not an interface", ErrNotAContract, contract.Kind()),
		}
	}

	schema := &Schema{
		contract:   contract,
		options:    make([]*OptionSpec, 0, contract.NumMethod()+1),
		byName:     make(map[string]*OptionSpec, contract.NumMethod()+1),
		byAccessor: make(map[string]*OptionSpec, contract.NumMethod()),
	}

	for i := range contract.NumMethod() {
		method := contract.Method(i)

		spec, err := compileAccessor(method)
		if err != nil {
			return nil, &ContractError{Contract: contract, Accessor: method.Name, Err: err}
		}

		if spec.Name == HelpOption {
			return nil, &ContractError{
				Contract: contract,
				Accessor: method.Name,
				Err:      fmt.Errorf("%w: --%s is added to every schema", ErrReservedOption, HelpOption),
			}
		}

		if prev, dup := schema.byName[spec.Name]; dup {
			return nil, &ContractError{
				Contract: contract,
				Accessor: method.Name,
				Err:      fmt.Errorf("%w: --%s is also derived from %s", ErrDuplicateOption, spec.Name, prev.Accessor),
			}
		}

		spec.Description = s.descriptions[method.Name]
		schema.add(spec)
	}

	for _, accessor := range slices.Sorted(maps.Keys(s.descriptions)) {
		if _, ok := schema.byAccessor[accessor]; !ok {
			return nil, &ContractError{
				Contract: contract,
				Accessor: accessor,
				Err:      fmt.Errorf("%w: description for an accessor the contract does not declare", ErrNotAContract),
			}
		}
	}

	for _, d := range s.defaults {
		if err := schema.attachDefault(d); err != nil {
			return nil, &ContractError{Contract: contract, Accessor: d.accessor, Err: err}
		}
	}

	schema.add(&OptionSpec{
		Name:        HelpOption,
		Kind:        KindFlag,
		Type:        reflect.TypeOf(false),
		Primitive:   primitive.KindBool,
		Description: "Show this help",
		synthetic:   true,
	})

	return schema, nil
}

func compileAccessor(method reflect.Method) (*OptionSpec, error) {
	ft := method.Type
	if ft.NumIn() != 0 || ft.NumOut() != 1 {
		return nil, fmt.Errorf("%w: accessors take no arguments and return one value, got %s", ErrNotAContract, ft)
	}

	rt := ft.Out(0)

	kind, nullable, err := primitive.Classify(rt)
	switch {
	case errors.Is(err, primitive.ErrUnknown):
		return nil, fmt.Errorf("%w: %s", ErrUnknownPrimitiveType, rt)
	case err != nil:
		return nil, fmt.Errorf("%w: result type %s: %w", ErrNotAContract, rt, err)
	}

	spec := &OptionSpec{
		Accessor:  method.Name,
		Type:      rt,
		Primitive: kind,
		Nullable:  nullable,
	}

	if kind == primitive.KindBool {
		spec.Kind = KindFlag
	} else {
		spec.Kind = KindScalar
		if !nullable {
			spec.Default = reflect.Zero(rt)
		}
	}

	spec.Name = OptionName(method.Name, spec.Kind == KindFlag)

	return spec, nil
}

func (s *Schema) add(spec *OptionSpec) {
	s.options = append(s.options, spec)
	s.byName[spec.Name] = spec

	if spec.Accessor != "" {
		s.byAccessor[spec.Accessor] = spec
	}
}

func (s *Schema) attachDefault(d defaultBody) error {
	spec, ok := s.byAccessor[d.accessor]
	switch {
	case !ok:
		return fmt.Errorf("%w: the contract declares no such accessor", ErrInvalidDefault)
	case d.contract.Kind() != reflect.Interface || !s.contract.Implements(d.contract):
		return fmt.Errorf("%w: declared for %s", ErrInvalidDefault, d.contract)
	case d.call == nil:
		return fmt.Errorf("%w: nil function", ErrInvalidDefault)
	case spec.Kind == KindFlag:
		return fmt.Errorf("%w: flags never use default bodies", ErrInvalidDefault)
	case d.result != spec.Type:
		return fmt.Errorf("%w: returns %s, accessor returns %s", ErrInvalidDefault, d.result, spec.Type)
	}

	spec.body = d.call

	return nil
}
