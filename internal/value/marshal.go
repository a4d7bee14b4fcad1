package value

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON implements json.Marshaler so a Number's canonical textual
// form passes through to JSON output unchanged, rather than being
// reformatted by Go's float printer.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.raw), nil
}

// MarshalJSON implements json.Marshaler, emitting the object's entries in
// insertion order. encoding/json does not preserve map order on its own,
// which is why Object exists rather than a plain map[string]any.
func (o *Object) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')

		valJSON, err := json.Marshal(o.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
