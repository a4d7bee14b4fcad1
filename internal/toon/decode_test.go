package toon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mcncl/toon/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// valueCmpOpts lets go-cmp compare Value trees containing *value.Object and
// value.Number, whose fields are unexported and would otherwise make cmp
// panic rather than silently ignore them.
var valueCmpOpts = cmp.Options{
	cmp.Comparer(func(a, b *value.Object) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b value.Number) bool { return a.Equal(b) }),
}

func decodeDefault(text string) any {
	return NewDecoder(text, DecodeOptions{}).Decode()
}

func TestDecode_SimpleObject(t *testing.T) {
	v := decodeDefault("name: Alice\nage: 30")
	obj, ok := v.(*value.Object)
	require.True(t, ok)

	name, _ := obj.Get("name")
	assert.Equal(t, "Alice", name)

	age, _ := obj.Get("age")
	num, ok := age.(value.Number)
	require.True(t, ok)
	assert.Equal(t, "30", num.String())
}

func TestDecode_InlinePrimitiveArray(t *testing.T) {
	v := decodeDefault("colors: red,green,blue")
	obj := v.(*value.Object)
	colors, _ := obj.Get("colors")
	arr, ok := colors.([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"red", "green", "blue"}, arr)
}

func TestDecode_QuotedStringStaysString(t *testing.T) {
	v := decodeDefault(`flag: "true"`)
	obj := v.(*value.Object)
	flag, _ := obj.Get("flag")
	assert.Equal(t, "true", flag)
}

func TestDecode_TabularArray(t *testing.T) {
	text := "[2]{id,name,role}:\n  1,Alice,admin\n  2,Bob,user"
	v := decodeDefault(text)
	arr, ok := v.([]any)
	require.True(t, ok)
	require.Len(t, arr, 2)

	row0 := arr[0].(*value.Object)
	id0, _ := row0.Get("id")
	assert.Equal(t, "1", id0.(value.Number).String())
	name0, _ := row0.Get("name")
	assert.Equal(t, "Alice", name0)

	row1 := arr[1].(*value.Object)
	role1, _ := row1.Get("role")
	assert.Equal(t, "user", role1)
}

func TestDecode_TabularArray_MissingTrailingCellLeavesKeyUnset(t *testing.T) {
	text := "[1]{a,b,c}:\n  1,2"
	v := decodeDefault(text)
	arr := v.([]any)
	row := arr[0].(*value.Object)

	a, ok := row.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", a.(value.Number).String())

	_, ok = row.Get("c")
	assert.False(t, ok, "an absent trailing cell leaves the key unset, same as a missing field")
}

func TestDecode_DashedListOfScalars(t *testing.T) {
	text := "- a\n- b\n- c"
	v := decodeDefault(text)
	assert.Equal(t, []any{"a", "b", "c"}, v)
}

func TestDecode_DashedListWithNestedObject(t *testing.T) {
	text := "- a\n-\n  x: 1\n- 2"
	v := decodeDefault(text)
	arr, ok := v.([]any)
	require.True(t, ok)
	require.Len(t, arr, 3)
	assert.Equal(t, "a", arr[0])

	obj, ok := arr[1].(*value.Object)
	require.True(t, ok)
	x, _ := obj.Get("x")
	assert.Equal(t, "1", x.(value.Number).String())

	assert.Equal(t, "2", arr[2].(value.Number).String())
}

func TestDecode_KeyWithNoValueBecomesNull(t *testing.T) {
	v := decodeDefault("key:")
	obj := v.(*value.Object)
	val, ok := obj.Get("key")
	require.True(t, ok)
	assert.Nil(t, val)
}

func TestDecode_EmptyObjectAndArraySuffixes(t *testing.T) {
	v := decodeDefault("a: {}\nb: []")
	obj := v.(*value.Object)

	a, _ := obj.Get("a")
	assert.True(t, value.IsEmptyObject(a))

	b, _ := obj.Get("b")
	assert.True(t, value.IsEmptyArray(b))
}

func TestDecode_NestedObject(t *testing.T) {
	text := "name: Alice\naddress:\n  city: London"
	v := decodeDefault(text)
	obj := v.(*value.Object)

	addr, ok := obj.Get("address")
	require.True(t, ok)
	addrObj := addr.(*value.Object)
	city, _ := addrObj.Get("city")
	assert.Equal(t, "London", city)
}

func TestDecode_CSVRowDropsTrailingDelimiterField(t *testing.T) {
	fields := splitCSVRow("1,Alice,", ',')
	assert.Equal(t, []string{"1", "Alice"}, fields)
}

func TestDecode_SingleLineScalar(t *testing.T) {
	assert.Equal(t, "hello", decodeDefault("hello"))
	assert.Nil(t, decodeDefault("null"))
	assert.Equal(t, true, decodeDefault("true"))
}

func TestDecode_SingleLinePrimitiveArray(t *testing.T) {
	v := decodeDefault("red,green,blue")
	assert.Equal(t, []any{"red", "green", "blue"}, v)
}

func TestDecode_DelimiterOption(t *testing.T) {
	dec := NewDecoder("a|b|c", DecodeOptions{Delimiter: '|'})
	v := dec.Decode()
	assert.Equal(t, []any{"a", "b", "c"}, v)
}

func TestDecode_RoundTripsEncodedOutput(t *testing.T) {
	row1 := value.NewObject()
	row1.Set("id", value.NewNumber(1))
	row1.Set("name", "Alice")

	row2 := value.NewObject()
	row2.Set("id", value.NewNumber(2))
	row2.Set("name", "Bob")

	obj := value.NewObject()
	obj.Set("users", []any{row1, row2})

	enc := NewEncoder(DefaultEncodeOptions())
	text := enc.Encode(obj)

	dec := NewDecoder(text, DecodeOptions{})
	got := dec.Decode().(*value.Object)

	if diff := cmp.Diff(obj, got, valueCmpOpts); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
