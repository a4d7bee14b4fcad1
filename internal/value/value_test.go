package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{"nil", nil, KindNull},
		{"bool", true, KindBool},
		{"number", NewNumber(42), KindNumber},
		{"string", "hello", KindString},
		{"array", []any{1, 2}, KindArray},
		{"object", NewObject(), KindObject},
		{"opaque host value coerces to string", struct{ X int }{1}, KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.in))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestIsEmptyArray(t *testing.T) {
	assert.True(t, IsEmptyArray([]any{}))
	assert.False(t, IsEmptyArray([]any{1}))
	assert.False(t, IsEmptyArray("not an array"))
}

func TestIsEmptyObject(t *testing.T) {
	assert.True(t, IsEmptyObject(NewObject()))

	obj := NewObject()
	obj.Set("a", 1)
	assert.False(t, IsEmptyObject(obj))

	assert.False(t, IsEmptyObject("not an object"))
}
