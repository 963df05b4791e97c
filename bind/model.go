package bind

import (
	"fmt"
	"reflect"
)

// Model is the dispatch table behind one live instance: it answers
// accessors by option name from a single Values. Resolution is read-only.
type Model struct {
	schema *Schema
	values *Values
	self   any // the live instance handed to default bodies
}

// Schema returns the schema of the model.
func (m *Model) Schema() *Schema {
	return m.schema
}

// Values returns the parsed value set of the model.
func (m *Model) Values() *Values {
	return m.values
}

// Args returns the positional arguments.
func (m *Model) Args() []string {
	return m.values.Args()
}

// Flag answers a plain bool flag accessor: whether the flag appeared.
func (m *Model) Flag(name string) bool {
	o := m.option(name)
	if o.Kind != KindFlag {
		panic(fmt.Sprintf("bind: option --%s is not a flag", name))
	}

	return m.values.present[name]
}

// Value answers any accessor. The result has the accessor's declared type.
// A default body that panics is re-raised as *InvocationError.
func (m *Model) Value(name string) any {
	return m.resolve(m.option(name)).Interface()
}

// Get answers the accessor bound to option name as a T.
func Get[T any](m *Model, name string) T {
	v, ok := m.Value(name).(T)
	if !ok {
		panic(fmt.Sprintf("bind: option --%s holds %s, not %s", name, m.option(name).Type, reflect.TypeFor[T]()))
	}

	return v
}

// Args returns the positional arguments behind a live instance created by
// generated code. It returns nil for any other value.
func Args(instance any) []string {
	if b, ok := instance.(interface{ BoundModel() *Model }); ok {
		return b.BoundModel().Args()
	}

	return nil
}

func (m *Model) option(name string) *OptionSpec {
	o, ok := m.schema.byName[name]
	if !ok {
		panic(fmt.Sprintf("bind: %s has no option --%s", m.schema.contract, name))
	}

	return o
}

func (m *Model) resolve(o *OptionSpec) reflect.Value {
	raw := m.values.values[o.Name]
	present := m.values.present[o.Name]

	if o.Kind == KindFlag {
		on := present
		if o.Nullable {
			p := reflect.New(o.Type.Elem())
			p.Elem().SetBool(on)
			return p
		}
		return reflect.ValueOf(on).Convert(o.Type)
	}

	if !present && o.body != nil {
		return reflect.ValueOf(m.invokeDefault(o))
	}

	if o.Nullable {
		if !present {
			return reflect.Zero(o.Type)
		}
		p := reflect.New(o.Type.Elem())
		p.Elem().Set(raw.Convert(o.Type.Elem()))
		return p
	}

	if !present {
		return o.Default
	}

	return raw.Convert(o.Type)
}

func (m *Model) invokeDefault(o *OptionSpec) any {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if ie, ok := r.(*InvocationError); ok {
			panic(ie)
		}
		panic(&InvocationError{Accessor: o.Accessor, Option: o.Name, Cause: r})
	}()

	return o.body(m.self)
}
