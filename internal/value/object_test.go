package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_SetGet(t *testing.T) {
	obj := NewObject()
	obj.Set("name", "Alice")
	obj.Set("age", NewNumber(30))

	v, ok := obj.Get("name")
	require.True(t, ok)
	assert.Equal(t, "Alice", v)

	_, ok = obj.Get("missing")
	assert.False(t, ok)
}

func TestObject_PreservesInsertionOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("z", 1)
	obj.Set("a", 2)
	obj.Set("m", 3)

	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())
}

func TestObject_ReSetDoesNotMoveKey(t *testing.T) {
	obj := NewObject()
	obj.Set("a", 1)
	obj.Set("b", 2)
	obj.Set("a", 99)

	assert.Equal(t, []string{"a", "b"}, obj.Keys())
	v, _ := obj.Get("a")
	assert.Equal(t, 99, v)
}

func TestObject_Keys_DefensiveCopy(t *testing.T) {
	obj := NewObject()
	obj.Set("a", 1)

	keys := obj.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a"}, obj.Keys())
}

func TestObject_Len(t *testing.T) {
	obj := NewObject()
	assert.Equal(t, 0, obj.Len())
	obj.Set("a", 1)
	obj.Set("b", 2)
	assert.Equal(t, 2, obj.Len())
}

func TestObject_Equal(t *testing.T) {
	a := NewObject()
	a.Set("name", "Alice")
	a.Set("age", NewNumber(30))

	b := NewObject()
	b.Set("name", "Alice")
	b.Set("age", NewNumber(30))

	assert.True(t, a.Equal(b))

	c := NewObject()
	c.Set("age", NewNumber(30))
	c.Set("name", "Alice")
	assert.False(t, a.Equal(c), "different key order must not be equal")

	d := NewObject()
	d.Set("name", "Bob")
	d.Set("age", NewNumber(30))
	assert.False(t, a.Equal(d))
}

func TestObject_Equal_Nested(t *testing.T) {
	inner := NewObject()
	inner.Set("city", "London")

	a := NewObject()
	a.Set("address", inner)
	a.Set("tags", []any{"x", "y"})

	inner2 := NewObject()
	inner2.Set("city", "London")
	b := NewObject()
	b.Set("address", inner2)
	b.Set("tags", []any{"x", "y"})

	assert.True(t, a.Equal(b))
}

func TestObject_Equal_NilHandling(t *testing.T) {
	var a, b *Object
	assert.True(t, a.Equal(b))

	obj := NewObject()
	assert.False(t, obj.Equal(nil))
}
