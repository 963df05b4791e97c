package bind

import (
	"encoding/json"
	"time"

	"github.com/invopop/jsonschema"

	"optbind/primitive"
)

// JSONSchema describes the options of the schema as a JSON Schema object,
// one property per option. The help flag is left out.
func (s *Schema) JSONSchema() *jsonschema.Schema {
	props := jsonschema.NewProperties()

	for _, o := range s.options {
		if o.synthetic {
			continue
		}

		props.Set(o.Name, PropertySchema(o.Primitive, o.Nullable, o.Description))
	}

	return &jsonschema.Schema{
		Version:              jsonschema.Version,
		Title:                s.contract.Name(),
		Type:                 "object",
		Properties:           props,
		AdditionalProperties: jsonschema.FalseSchema,
	}
}

// PropertySchema describes a single option value of the given kind.
// Non-nullable values carry their zero default; unsigned values have a
// minimum of zero.
func PropertySchema(kind primitive.KindEnum, nullable bool, description string) *jsonschema.Schema {
	typ, format := kind.JSONType()

	p := &jsonschema.Schema{
		Type:        typ,
		Format:      format,
		Description: description,
	}

	switch {
	case kind == primitive.KindBool:
		p.Default = false
	case nullable:
	case kind == primitive.KindDuration:
		p.Default = time.Duration(0).String()
	case kind == primitive.KindString:
		p.Default = ""
	case kind.IsNumber():
		p.Default = 0
	}

	if kind.IsUnsigned() {
		p.Minimum = json.Number("0")
	}

	return p
}
