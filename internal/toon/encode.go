// Package toon implements the TOON encoder and decoder: the shape-selection
// logic that picks among scalar, inline-primitive, tabular, and dashed-list
// representations for a Value tree, and the indentation-driven recursive
// parser that reads them back (spec 4.1, 4.2).
package toon

import (
	"fmt"
	"math"
	"strings"

	"github.com/mcncl/toon/internal/value"
)

// EncodeOptions configures an Encoder (spec 4.1).
type EncodeOptions struct {
	// Indent is the number of spaces per nesting level. Zero selects the
	// default of 2.
	Indent int
	// Delimiter separates fields in tabular rows and primitive-array
	// inlines. The zero value selects ','.
	Delimiter byte
	// LengthMarker, when true, prefixes tabular headers with [N].
	LengthMarker bool
}

// DefaultEncodeOptions returns the codec's default configuration: two-space
// indent, comma delimiter, length markers on.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{Indent: 2, Delimiter: ',', LengthMarker: true}
}

// Encoder walks a Value tree and renders it as TOON text. It is stateless
// between calls to Encode: the same value and options always produce the
// same text (spec 5, 8 law 2).
type Encoder struct {
	indent       int
	delimiter    byte
	lengthMarker bool
}

// NewEncoder builds an Encoder from opts, substituting defaults for a zero
// Indent or Delimiter.
func NewEncoder(opts EncodeOptions) *Encoder {
	indent := opts.Indent
	if indent <= 0 {
		indent = 2
	}
	delim := opts.Delimiter
	if delim == 0 {
		delim = ','
	}
	return &Encoder{indent: indent, delimiter: delim, lengthMarker: opts.LengthMarker}
}

// Encode renders v as TOON text. It never fails on a well-formed value
// tree (spec 4.1).
func (e *Encoder) Encode(v any) string {
	switch value.KindOf(v) {
	case value.KindObject:
		obj := v.(*value.Object)
		if obj.Len() == 0 {
			return "{}"
		}
		return e.encodeObject(obj, 0)
	case value.KindArray:
		arr := v.([]any)
		if len(arr) == 0 {
			return "[]"
		}
		return e.encodeArrayBlock(arr, 0)
	default:
		return e.encodeScalar(v)
	}
}

func (e *Encoder) encodeScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		if t {
			return "true"
		}
		return "false"
	case value.Number:
		return t.String()
	case string:
		return EncodeScalarString(t, e.delimiter)
	default:
		return EncodeScalarString(fmt.Sprint(v), e.delimiter)
	}
}

func (e *Encoder) encodeKey(k string) string {
	return EncodeScalarString(k, e.delimiter)
}

// encodeObject renders a non-empty object's entries, one per line, at the
// given depth (spec 4.1.2).
func (e *Encoder) encodeObject(obj *value.Object, depth int) string {
	ind := strings.Repeat(" ", depth*e.indent)
	lines := make([]string, 0, obj.Len())
	for _, k := range obj.Keys() {
		v, _ := obj.Get(k)
		lines = append(lines, ind+e.encodeKey(k)+":"+e.encodeEntrySuffix(v, depth))
	}
	return strings.Join(lines, "\n")
}

// encodeEntrySuffix picks the value-suffix for an object entry's value
// (spec 4.1.4).
func (e *Encoder) encodeEntrySuffix(v any, depth int) string {
	switch value.KindOf(v) {
	case value.KindObject:
		obj := v.(*value.Object)
		if obj.Len() == 0 {
			return " {}"
		}
		return "\n" + e.encodeObject(obj, depth+1)
	case value.KindArray:
		arr := v.([]any)
		if len(arr) == 0 {
			return " []"
		}
		switch classifyArray(arr) {
		case arrayUniform:
			return "\n" + e.encodeTabular(arr, depth+1)
		case arrayPrimitive:
			return " " + e.encodeInlinePrimitive(arr)
		default:
			return "\n" + e.encodeDashedList(arr, depth+1)
		}
	default:
		return " " + e.encodeScalar(v)
	}
}

// encodeArrayBlock renders a non-empty array as whichever of the three
// array shapes it classifies as (spec 4.1.3).
func (e *Encoder) encodeArrayBlock(arr []any, depth int) string {
	switch classifyArray(arr) {
	case arrayUniform:
		return e.encodeTabular(arr, depth)
	case arrayPrimitive:
		return e.encodeInlinePrimitive(arr)
	default:
		return e.encodeDashedList(arr, depth)
	}
}

type arrayShape int

const (
	arrayDashed arrayShape = iota
	arrayUniform
	arrayPrimitive
)

func classifyArray(arr []any) arrayShape {
	if isUniformArray(arr) {
		return arrayUniform
	}
	if isPrimitiveArray(arr) {
		return arrayPrimitive
	}
	return arrayDashed
}

// isUniformArray implements the 80% rule of spec 3: non-empty, every
// element an Object, and every element's key-set overlapping the first
// element's key-set in at least ceil(0.8*|K|) entries.
func isUniformArray(arr []any) bool {
	if len(arr) == 0 {
		return false
	}
	first, ok := arr[0].(*value.Object)
	if !ok {
		return false
	}
	k := first.Keys()
	threshold := int(math.Ceil(0.8 * float64(len(k))))
	kset := make(map[string]bool, len(k))
	for _, key := range k {
		kset[key] = true
	}

	for _, el := range arr {
		obj, ok := el.(*value.Object)
		if !ok {
			return false
		}
		overlap := 0
		for _, key := range obj.Keys() {
			if kset[key] {
				overlap++
			}
		}
		if overlap < threshold {
			return false
		}
	}
	return true
}

func isPrimitiveArray(arr []any) bool {
	for _, el := range arr {
		switch value.KindOf(el) {
		case value.KindNull, value.KindBool, value.KindNumber, value.KindString:
		default:
			return false
		}
	}
	return true
}

// unionKeysFirstSeen returns the first row's keys in order, followed by any
// keys introduced by later rows in the order they first appear (spec 4.1.3,
// design note "Union-of-keys order").
func unionKeysFirstSeen(arr []any) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, el := range arr {
		obj := el.(*value.Object)
		for _, k := range obj.Keys() {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	return keys
}

// encodeTabular renders a uniform array as a header line followed by one
// CSV-like row per element (spec 4.1.3).
func (e *Encoder) encodeTabular(arr []any, depth int) string {
	keys := unionKeysFirstSeen(arr)
	ind := strings.Repeat(" ", depth*e.indent)
	rowInd := strings.Repeat(" ", (depth+1)*e.indent)

	headerFields := make([]string, len(keys))
	for i, k := range keys {
		headerFields[i] = e.encodeKey(k)
	}
	header := ind
	if e.lengthMarker {
		header += fmt.Sprintf("[%d]", len(arr))
	}
	header += "{" + strings.Join(headerFields, string(e.delimiter)) + "}:"

	lines := make([]string, 0, len(arr)+1)
	lines = append(lines, header)
	for _, el := range arr {
		obj := el.(*value.Object)
		cells := make([]string, len(keys))
		for i, k := range keys {
			v, ok := obj.Get(k)
			if !ok {
				v = nil
			}
			cells[i] = e.encodeScalar(v)
		}
		lines = append(lines, rowInd+strings.Join(cells, string(e.delimiter)))
	}
	return strings.Join(lines, "\n")
}

func (e *Encoder) encodeInlinePrimitive(arr []any) string {
	parts := make([]string, len(arr))
	for i, el := range arr {
		parts[i] = e.encodeScalar(el)
	}
	return strings.Join(parts, string(e.delimiter))
}

// encodeDashedList renders a general array as one "- " element per line,
// re-indenting multi-line children so their first column lands at depth+1
// (spec 4.1.3).
func (e *Encoder) encodeDashedList(arr []any, depth int) string {
	ind := strings.Repeat(" ", depth*e.indent)
	childInd := strings.Repeat(" ", (depth+1)*e.indent)

	lines := make([]string, len(arr))
	for i, el := range arr {
		switch value.KindOf(el) {
		case value.KindObject:
			obj := el.(*value.Object)
			child := "{}"
			if obj.Len() > 0 {
				child = e.encodeObject(obj, 0)
			}
			lines[i] = e.dashedItem(ind, childInd, child)
		case value.KindArray:
			sub := el.([]any)
			child := "[]"
			if len(sub) > 0 {
				child = e.encodeArrayBlock(sub, 0)
			}
			lines[i] = e.dashedItem(ind, childInd, child)
		default:
			lines[i] = ind + "- " + e.encodeScalar(el)
		}
	}
	return strings.Join(lines, "\n")
}

func (e *Encoder) dashedItem(ind, childInd, child string) string {
	if strings.Contains(child, "\n") {
		return ind + "-\n" + reindentBlock(child, childInd)
	}
	return ind + "- " + child
}

func reindentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
