package bind

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/spf13/pflag"

	"optbind/internal/match"
	"optbind/primitive"
)

const unknownFlagPrefix = "unknown flag: --"

var errFlagValue = errors.New("flag takes no value")

// Match parses args against the schema. Each call uses its own pflag
// FlagSet, so a Schema can serve concurrent calls.
func (s *Schema) Match(args []string) (*Values, error) {
	fs, targets := s.flagSet()

	if err := fs.Parse(args); err != nil {
		return nil, &ArgumentError{Message: s.explain(err), Cause: err}
	}

	values := &Values{
		schema:  s,
		present: make(map[string]bool, len(s.options)),
		values:  make(map[string]reflect.Value, len(s.options)),
		args:    fs.Args(),
	}

	for _, o := range s.options {
		values.present[o.Name] = fs.Changed(o.Name)
		values.values[o.Name] = reflect.ValueOf(targets[o.Name]).Elem()
	}

	return values, nil
}

// WriteHelp renders the option table to w.
func (s *Schema) WriteHelp(w io.Writer) error {
	fs, _ := s.flagSet()
	_, err := io.WriteString(w, fs.FlagUsages())

	return err
}

func (s *Schema) flagSet() (*pflag.FlagSet, map[string]any) {
	fs := pflag.NewFlagSet(s.contract.Name(), pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false
	fs.SetInterspersed(true)

	targets := make(map[string]any, len(s.options))
	for _, o := range s.options {
		targets[o.Name] = register(fs, o)
	}

	return fs, targets
}

// register defines o on fs and returns the pointer pflag parses into.
func register(fs *pflag.FlagSet, o *OptionSpec) any {
	name, usage := o.Name, o.Description

	switch o.Primitive {
	case primitive.KindBool:
		short := ""
		if o.synthetic {
			short = "h"
		}
		p := new(bool)
		fs.VarPF((*presenceValue)(p), name, short, usage).NoOptDefVal = "true"
		return p
	case primitive.KindInt:
		return fs.Int(name, 0, usage)
	case primitive.KindInt8:
		return fs.Int8(name, 0, usage)
	case primitive.KindInt16:
		return fs.Int16(name, 0, usage)
	case primitive.KindInt32:
		return fs.Int32(name, 0, usage)
	case primitive.KindInt64:
		return fs.Int64(name, 0, usage)
	case primitive.KindUint:
		return fs.Uint(name, 0, usage)
	case primitive.KindUint8:
		return fs.Uint8(name, 0, usage)
	case primitive.KindUint16:
		return fs.Uint16(name, 0, usage)
	case primitive.KindUint32:
		return fs.Uint32(name, 0, usage)
	case primitive.KindUint64:
		return fs.Uint64(name, 0, usage)
	case primitive.KindFloat32:
		return fs.Float32(name, 0, usage)
	case primitive.KindFloat64:
		return fs.Float64(name, 0, usage)
	case primitive.KindDuration:
		return fs.Duration(name, 0, usage)
	case primitive.KindString:
		return fs.String(name, "", usage)
	default:
		// compile only admits the kinds above
		panic(fmt.Sprintf("bind: option --%s has unregistrable kind %s", name, o.Primitive))
	}
}

// presenceValue is a flag that is set by appearing and takes no value.
type presenceValue bool

func (v *presenceValue) Set(s string) error {
	if s != "true" {
		return errFlagValue
	}
	*v = true

	return nil
}

func (v *presenceValue) String() string {
	if *v {
		return "true"
	}

	return "false"
}

func (v *presenceValue) Type() string { return "bool" }

func (v *presenceValue) IsBoolFlag() bool { return true }

// explain turns an engine error into the message handed to OnError,
// suggesting the closest known option for an unknown one.
func (s *Schema) explain(err error) string {
	msg := err.Error()

	unknown, ok := strings.CutPrefix(msg, unknownFlagPrefix)
	if !ok {
		return msg
	}

	if best, found := match.Closest(unknown, s.Names(), match.DefaultMinSimilarity); found {
		msg += fmt.Sprintf(" (did you mean --%s?)", best)
	}

	return msg
}
