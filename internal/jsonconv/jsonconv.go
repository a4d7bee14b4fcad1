// Package jsonconv converts between JSON text and the codec's Value tree
// (internal/value), preserving object key order in both directions. The
// standard library's map[string]any does not preserve order, so this
// package walks encoding/json's token stream by hand, the same technique
// gotyper's parser used (json.NewDecoder with UseNumber) generalized to
// keep insertion order rather than discarding it into a Go map.
package jsonconv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcncl/toon/internal/errors"
	"github.com/mcncl/toon/internal/value"
)

// FromJSONString parses a JSON document into a Value tree.
func FromJSONString(s string) (any, error) {
	return FromJSON([]byte(s))
}

// FromJSON parses JSON bytes into a Value tree, rejecting trailing data
// after the first value the same way gotyper's parser rejected multiple
// root-level JSON documents.
func FromJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		if err == io.EOF {
			return nil, errors.NewInputError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxErr *json.SyntaxError
		if asSyntaxError(err, &syntaxErr) {
			return nil, errors.NewInputError(fmt.Sprintf("JSON syntax error at offset %d", syntaxErr.Offset), errors.ErrInvalidJSON)
		}
		return nil, errors.NewInputError("failed to decode JSON", err)
	}

	if dec.More() {
		var trailing any
		if derr := dec.Decode(&trailing); derr != io.EOF {
			return nil, errors.NewInputError("multiple JSON values found at the root", errors.ErrInvalidJSON)
		}
	}

	return v, nil
}

func asSyntaxError(err error, target **json.SyntaxError) bool {
	se, ok := err.(*json.SyntaxError)
	if ok {
		*target = se
	}
	return ok
}

// decodeValue consumes one JSON value from dec's token stream and builds
// the corresponding Value.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case nil:
		return nil, nil
	case bool:
		return t, nil
	case json.Number:
		num, ok := value.ParseNumber(string(t))
		if !ok {
			num = value.NewNumber(string(t))
		}
		return num, nil
	case string:
		return t, nil
	default:
		return nil, fmt.Errorf("unexpected JSON token %T", tok)
	}
}

func decodeObject(dec *json.Decoder) (*value.Object, error) {
	obj := value.NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string object key, got %T", keyTok)
		}

		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	arr := []any{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}
