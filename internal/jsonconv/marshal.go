package jsonconv

import (
	"bytes"
	"encoding/json"
)

// ToJSON renders a Value tree as pretty-printed JSON, used by the facade's
// decode(..., json=true) option (spec 6). Object's own MarshalJSON keeps
// key order; json.Indent then does the formatting pass, mirroring how
// gotyper ran generated code through go/format as a separate pass rather
// than hand-rolling indentation.
func ToJSON(v any, indent string) ([]byte, error) {
	compact, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, compact, "", indent); err != nil {
		return nil, err
	}
	return pretty.Bytes(), nil
}
