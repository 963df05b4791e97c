package bind

import (
	"reflect"
)

// Values is the parsed value set of one Match call. It is immutable.
type Values struct {
	schema  *Schema
	present map[string]bool
	values  map[string]reflect.Value // typed by OptionSpec.Primitive
	args    []string
}

// Schema returns the schema the values were matched against.
func (v *Values) Schema() *Schema {
	return v.schema
}

// Has reports whether the named option appeared in the arguments.
func (v *Values) Has(name string) bool {
	return v.present[name]
}

// Value returns the parsed value of the named option and whether it was
// present. Absent options report the zero value of their primitive kind.
func (v *Values) Value(name string) (any, bool) {
	rv, ok := v.values[name]
	if !ok {
		return nil, false
	}

	return rv.Interface(), v.present[name]
}

// Args returns the positional arguments left after the options.
func (v *Values) Args() []string {
	out := make([]string, len(v.args))
	copy(out, v.args)

	return out
}

// Present returns the names of all options given, in schema order.
func (v *Values) Present() []string {
	var out []string

	for _, o := range v.schema.options {
		if v.present[o.Name] {
			out = append(out, o.Name)
		}
	}

	return out
}
