// Package facade implements the external contract of spec 6: a thin
// dispatcher in front of the encoder and decoder that lets a host pass
// either a Value tree, a JSON document, or an arbitrary Go value to Encode,
// and get either a Value tree or pretty-printed JSON back from Decode. It
// is explicitly out of scope for the codec core (spec 1) but is the
// surface main.go's CLI calls.
package facade

import (
	"strings"

	"github.com/mcncl/toon/internal/errors"
	"github.com/mcncl/toon/internal/jsonconv"
	"github.com/mcncl/toon/internal/toon"
)

// EncodeOptions mirrors toon.EncodeOptions for the facade's public surface.
type EncodeOptions struct {
	Indent       int
	Delimiter    byte
	LengthMarker bool
}

// DecodeOptions mirrors toon.DecodeOptions, plus the JSON output switch.
type DecodeOptions struct {
	Indent    int
	Delimiter byte
	// JSON, when true, makes Decode return a pretty-printed JSON string
	// instead of a Value tree.
	JSON bool
}

// Encode implements spec 6's encode(input, options): if input is a string
// that looks like JSON (first non-whitespace character '{' or '['), it is
// parsed and the parsed tree is encoded; a JSON parse failure falls back to
// encoding the original string as-is. Any other input — an already-built
// Value tree, or an arbitrary host value — is encoded directly, and the
// encoder's own dispatch (spec 4.1.1) coerces values it does not recognize
// to their string form.
func Encode(input any, opts EncodeOptions) (string, error) {
	if err := validateEncodeOptions(opts); err != nil {
		return "", err
	}
	enc := toon.NewEncoder(toon.EncodeOptions{
		Indent:       opts.Indent,
		Delimiter:    opts.Delimiter,
		LengthMarker: opts.LengthMarker,
	})

	if s, ok := input.(string); ok {
		trimmed := strings.TrimSpace(s)
		if looksLikeJSON(trimmed) {
			if parsed, err := jsonconv.FromJSONString(s); err == nil {
				return enc.Encode(parsed), nil
			}
		}
		return enc.Encode(s), nil
	}

	return enc.Encode(input), nil
}

// Decode implements spec 6's decode(toon_text, options): it always parses
// toon_text into a Value tree, then, when opts.JSON is set, additionally
// serializes that tree as pretty-printed JSON.
func Decode(toonText string, opts DecodeOptions) (any, error) {
	if err := validateDecodeOptions(opts); err != nil {
		return nil, err
	}
	dec := toon.NewDecoder(toonText, toon.DecodeOptions{
		Indent:    opts.Indent,
		Delimiter: opts.Delimiter,
	})
	v := dec.Decode()

	if !opts.JSON {
		return v, nil
	}

	b, err := jsonconv.ToJSON(v, "  ")
	if err != nil {
		return nil, errors.NewOutputError("failed to render decoded value as JSON", err)
	}
	return string(b), nil
}

func looksLikeJSON(trimmed string) bool {
	if trimmed == "" {
		return false
	}
	return trimmed[0] == '{' || trimmed[0] == '['
}

func validateEncodeOptions(opts EncodeOptions) error {
	if opts.Indent < 0 {
		return errors.NewEncodeError("indent must not be negative", errors.ErrInvalidOption)
	}
	return nil
}

func validateDecodeOptions(opts DecodeOptions) error {
	if opts.Indent < 0 {
		return errors.NewDecodeError("indent must not be negative", errors.ErrInvalidOption)
	}
	return nil
}
