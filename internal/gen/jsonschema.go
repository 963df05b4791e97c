package gen

import (
	"github.com/invopop/jsonschema"

	"optbind/bind"
	"optbind/internal/analyze"
)

// JSONSchema describes the options of an analyzed contract without loading
// it into a running program. The properties match bind.Schema.JSONSchema for
// the same contract; the contract's import path and doc comment are added.
func JSONSchema(c *analyze.Contract) *jsonschema.Schema {
	props := jsonschema.NewProperties()

	for _, acc := range c.Accessors {
		props.Set(acc.Option, bind.PropertySchema(acc.Kind, acc.Nullable, acc.Description))
	}

	return &jsonschema.Schema{
		Version:              jsonschema.Version,
		ID:                   jsonschema.ID(c.ID.String()),
		Title:                c.ID.Name,
		Description:          c.Doc,
		Type:                 "object",
		Properties:           props,
		AdditionalProperties: jsonschema.FalseSchema,
	}
}
