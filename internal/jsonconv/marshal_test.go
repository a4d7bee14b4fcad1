package jsonconv

import (
	"testing"

	"github.com/mcncl/toon/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON_PreservesKeyOrder(t *testing.T) {
	obj := value.NewObject()
	obj.Set("z", "first")
	obj.Set("a", "second")

	b, err := ToJSON(obj, "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"z\": \"first\",\n  \"a\": \"second\"\n}", string(b))
}

func TestToJSON_RoundTripsThroughFromJSON(t *testing.T) {
	v, err := FromJSONString(`{"name": "Alice", "age": 30, "tags": ["x", "y"]}`)
	require.NoError(t, err)

	b, err := ToJSON(v, "  ")
	require.NoError(t, err)

	v2, err := FromJSON(b)
	require.NoError(t, err)

	obj1 := v.(*value.Object)
	obj2 := v2.(*value.Object)
	assert.True(t, obj1.Equal(obj2))
}

func TestToJSON_EmptyObject(t *testing.T) {
	b, err := ToJSON(value.NewObject(), "  ")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}
