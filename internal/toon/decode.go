package toon

import (
	"regexp"
	"strings"

	"github.com/mcncl/toon/internal/value"
)

// tabularHeaderPattern is the authoritative shape for a tabular header line
// (spec 6): an optional [N] length marker, then a brace-delimited field
// list, then a colon.
var tabularHeaderPattern = regexp.MustCompile(`^(\[\d+\])?\{([^}]+)\}:$`)

// DecodeOptions configures a Decoder. Indent and Delimiter must match the
// Encoder that produced the text (spec 4.2).
type DecodeOptions struct {
	Indent    int
	Delimiter byte
}

// Decoder walks a TOON text's lines with a single cursor, classifying each
// line by prefix shape and recursing on indentation (spec 4.2). It is
// total: every input produces some value, never an error (spec 7).
type Decoder struct {
	lines      []string
	i          int
	indentStep int
	delimiter  byte
}

// NewDecoder splits text into lines and prepares a Decoder, substituting
// defaults for a zero Indent or Delimiter.
func NewDecoder(text string, opts DecodeOptions) *Decoder {
	indentStep := opts.Indent
	if indentStep <= 0 {
		indentStep = 2
	}
	delim := opts.Delimiter
	if delim == 0 {
		delim = ','
	}
	return &Decoder{
		lines:      strings.Split(text, "\n"),
		indentStep: indentStep,
		delimiter:  delim,
	}
}

// Decode parses the whole input and returns the resulting Value tree
// (spec 4.2.1).
func (d *Decoder) Decode() any {
	if len(d.lines) == 1 {
		return d.decodeSingleLine(d.lines[0])
	}
	return d.parseValue(0)
}

func (d *Decoder) decodeSingleLine(line string) any {
	trimmed := strings.TrimSpace(line)

	if _, _, ok := splitUnquotedColon(trimmed); ok {
		return d.parseHash(0)
	}
	if containsUnquotedDelimiter(trimmed, d.delimiter) && !isWhollyQuoted(trimmed) {
		d.i = 1
		return d.parsePrimitiveArray(trimmed)
	}
	d.i = 1
	return decodeScalarLiteral(trimmed)
}

func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

// parseValue reads one value starting at or after the cursor, classifying
// the current line by prefix shape (spec 4.2.2).
func (d *Decoder) parseValue(expectedIndent int) any {
	if d.i >= len(d.lines) {
		return nil
	}
	line := d.lines[d.i]
	indent := leadingSpaces(line)
	if indent < expectedIndent {
		return nil
	}
	content := strings.TrimSpace(line)

	if tabularHeaderPattern.MatchString(content) {
		return d.parseTabularArray(indent)
	}
	if strings.HasPrefix(content, "-") {
		return d.parseListArray(indent)
	}
	if _, _, ok := splitUnquotedColon(content); ok {
		return d.parseHash(indent)
	}
	d.i++
	return decodeScalarLiteral(content)
}

// parseHash consumes `key: value` lines at or above expectedIndent into an
// Object (spec 4.2.3).
func (d *Decoder) parseHash(expectedIndent int) *value.Object {
	obj := value.NewObject()
	for {
		if d.i >= len(d.lines) {
			break
		}
		line := d.lines[d.i]
		indent := leadingSpaces(line)
		if indent < expectedIndent {
			break
		}
		content := strings.TrimSpace(line)
		if content == "" {
			break
		}
		if tabularHeaderPattern.MatchString(content) {
			break
		}
		if strings.HasPrefix(content, "-") {
			break
		}
		keyText, rest, ok := splitUnquotedColon(content)
		if !ok {
			break
		}
		key := decodeKeyText(strings.TrimSpace(keyText))
		restTrim := strings.TrimSpace(rest)

		if restTrim == "" {
			d.i++
			if d.i < len(d.lines) {
				nextContent := strings.TrimSpace(d.lines[d.i])
				if tabularHeaderPattern.MatchString(nextContent) {
					nextIndent := leadingSpaces(d.lines[d.i])
					obj.Set(key, d.parseTabularArray(nextIndent))
					continue
				}
			}
			obj.Set(key, d.parseValue(expectedIndent))
			continue
		}

		d.i++
		switch restTrim {
		case "[]":
			obj.Set(key, []any{})
		case "{}":
			obj.Set(key, value.NewObject())
		default:
			if containsUnquotedDelimiter(restTrim, d.delimiter) && !isWhollyQuoted(restTrim) {
				obj.Set(key, d.parsePrimitiveArray(restTrim))
			} else {
				obj.Set(key, decodeScalarLiteral(restTrim))
			}
		}
	}
	return obj
}

// parseTabularArray reads a tabular header and its rows (spec 4.2.4). On a
// malformed header it returns an empty array rather than erroring (spec 7).
func (d *Decoder) parseTabularArray(expectedIndent int) []any {
	if d.i >= len(d.lines) {
		return []any{}
	}
	content := strings.TrimSpace(d.lines[d.i])
	m := tabularHeaderPattern.FindStringSubmatch(content)
	if m == nil {
		return []any{}
	}

	rawFields := strings.Split(m[2], string(d.delimiter))
	fields := make([]string, len(rawFields))
	for i, f := range rawFields {
		fields[i] = decodeKeyText(strings.TrimSpace(f))
	}
	d.i++

	rows := []any{}
	for d.i < len(d.lines) {
		line := d.lines[d.i]
		indent := leadingSpaces(line)
		if indent <= expectedIndent {
			break
		}
		rowContent := strings.TrimSpace(line)
		if rowContent == "" {
			break
		}
		if _, _, ok := splitUnquotedColon(rowContent); ok && !tabularHeaderPattern.MatchString(rowContent) {
			break
		}

		cells := splitCSVRow(rowContent, d.delimiter)
		row := value.NewObject()
		for idx, fname := range fields {
			if idx < len(cells) {
				row.Set(fname, decodeScalarLiteral(cells[idx]))
			}
		}
		rows = append(rows, row)
		d.i++
	}
	return rows
}

// parseListArray reads a run of "- " prefixed lines at or above
// expectedIndent (spec 4.2.5).
func (d *Decoder) parseListArray(expectedIndent int) []any {
	arr := []any{}
	for d.i < len(d.lines) {
		line := d.lines[d.i]
		indent := leadingSpaces(line)
		if indent < expectedIndent {
			break
		}
		content := strings.TrimSpace(line)
		if !strings.HasPrefix(content, "-") {
			break
		}

		rest := content[1:]
		if strings.HasPrefix(rest, " ") {
			rest = rest[1:]
		}
		d.i++

		if rest == "" {
			arr = append(arr, d.parseValue(expectedIndent+d.indentStep))
		} else {
			arr = append(arr, decodeScalarLiteral(rest))
		}
	}
	return arr
}

// parsePrimitiveArray CSV-splits s and decodes each field as a scalar,
// shared by the single-line entry point and parseHash's inline-value case
// (spec 4.2.1, 4.2.3).
func (d *Decoder) parsePrimitiveArray(s string) []any {
	fields := splitCSVRow(s, d.delimiter)
	arr := make([]any, len(fields))
	for i, f := range fields {
		arr[i] = decodeScalarLiteral(f)
	}
	return arr
}
