package bind_test

import (
	"encoding/json"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optbind/bind"
	"optbind/primitive"
)

func TestSchema_JSONSchema(t *testing.T) {
	schema, err := bind.CompileFor[simpleOptions](bind.Describe("Foo", "the foo count"))
	require.NoError(t, err)

	js := schema.JSONSchema()
	assert.Equal(t, "simpleOptions", js.Title)
	assert.Equal(t, "object", js.Type)
	assert.Equal(t, jsonschema.Version, js.Version)

	var keys []string
	for el := js.Properties.Oldest(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}
	assert.Equal(t, []string{"bar", "foo", "limit", "name", "ratio", "strict", "timeout"}, keys)

	foo, ok := js.Properties.Get("foo")
	require.True(t, ok)
	assert.Equal(t, "integer", foo.Type)
	assert.Equal(t, "the foo count", foo.Description)
	assert.Equal(t, 0, foo.Default)

	timeout, _ := js.Properties.Get("timeout")
	assert.Equal(t, "string", timeout.Type)
	assert.Equal(t, "duration", timeout.Format)
	assert.Equal(t, "0s", timeout.Default)

	name, _ := js.Properties.Get("name")
	assert.Nil(t, name.Default)

	strict, _ := js.Properties.Get("strict")
	assert.Equal(t, "boolean", strict.Type)

	_, hasHelp := js.Properties.Get("help")
	assert.False(t, hasHelp)

	data, err := json.Marshal(js)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"additionalProperties":false`)
}

func TestPropertySchema(t *testing.T) {
	p := bind.PropertySchema(primitive.KindFloat32, false, "ratio")
	assert.Equal(t, "number", p.Type)
	assert.Equal(t, 0, p.Default)
	assert.Equal(t, "ratio", p.Description)

	p = bind.PropertySchema(primitive.KindString, false, "")
	assert.Equal(t, "", p.Default)

	p = bind.PropertySchema(primitive.KindString, true, "")
	assert.Nil(t, p.Default)
	assert.Empty(t, p.Minimum)

	p = bind.PropertySchema(primitive.KindUint16, true, "")
	assert.Equal(t, "integer", p.Type)
	assert.Nil(t, p.Default)
	assert.Equal(t, json.Number("0"), p.Minimum)
}
