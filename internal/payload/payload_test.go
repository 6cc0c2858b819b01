package payload

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeKeepsKeyOrder(t *testing.T) {
	v, err := DecodeString(`{"userId": 1, "id": 2, "title": "t", "body": "b"}`)
	require.NoError(t, err)

	obj, ok := v.(Object)
	require.True(t, ok, "expected Object, got %T", v)
	assert.Equal(t, []string{"userId", "id", "title", "body"}, obj.Keys())

	id, ok := obj.Get("id")
	require.True(t, ok)
	assert.Equal(t, json.Number("2"), id)
}

func TestDecodeScalarsAndNesting(t *testing.T) {
	v, err := DecodeString(`[{"a": null, "b": true, "c": [1.50, "x"], "d": {}}]`)
	require.NoError(t, err)

	arr, ok := v.(Array)
	require.True(t, ok)
	require.Len(t, arr, 1)

	obj := arr[0].(Object)
	a, _ := obj.Get("a")
	b, _ := obj.Get("b")
	c, _ := obj.Get("c")
	d, _ := obj.Get("d")
	assert.Nil(t, a)
	assert.Equal(t, true, b)
	assert.Equal(t, Array{json.Number("1.50"), "x"}, c)
	assert.Equal(t, Object{}, d)
}

func TestDecodeRepeatedKeyKeepsFirstPositionLastValue(t *testing.T) {
	v, err := DecodeString(`{"a": 1, "b": 2, "a": 3}`)
	require.NoError(t, err)

	obj := v.(Object)
	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	a, _ := obj.Get("a")
	assert.Equal(t, json.Number("3"), a)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace", input: "   "},
		{name: "truncated object", input: `{"title": "foo"`},
		{name: "missing colon", input: `{"title" "foo"}`},
		{name: "trailing value", input: `{} {}`},
		{name: "bare word", input: `hello`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeString(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestDecodeEmptyReturnsErrEmpty(t *testing.T) {
	_, err := Decode(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestMarshalRoundTripsOrderAndText(t *testing.T) {
	in := `{"title":"a <b> & c","n":10.0,"tags":[],"meta":{"z":1,"a":null}}`
	v, err := DecodeString(in)
	require.NoError(t, err)

	out, err := Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}
