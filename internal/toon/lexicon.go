package toon

import (
	"regexp"
	"strings"

	"github.com/mcncl/toon/internal/value"
)

// reservedChars is the RESERVED set of spec 4.3: characters whose presence
// in a scalar forces it to be quoted, because they would otherwise be
// mistaken for TOON structure (field separators, container markers,
// comments, or line breaks).
var reservedChars = map[byte]bool{
	',':  true,
	':':  true,
	'[':  true,
	']':  true,
	'{':  true,
	'}':  true,
	'#':  true,
	'\n': true,
	'\r': true,
	'\t': true,
}

var numericLookalike = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

func isReservedWord(s string) bool {
	return s == "true" || s == "false" || s == "null"
}

// needsQuotes reports NEEDS_QUOTES(s) from spec 4.3, generalized to also
// treat the configured delimiter as reserved: a field or row value that
// contains the active delimiter must be quoted or the decoder could not
// tell it apart from a real field boundary (spec 6, "delimiter respect").
func needsQuotes(s string, delimiter byte) bool {
	if s == "" {
		return false
	}
	if s[0] == ' ' || s[len(s)-1] == ' ' {
		return true
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if reservedChars[c] || c == delimiter {
			return true
		}
	}
	return false
}

// EncodeScalarString renders a string as a TOON scalar: quoted and escaped
// when NEEDS_QUOTES, number-like, or a reserved word; raw otherwise (spec
// 4.3). It is also used to encode object keys and tabular field names,
// which follow the identical quoting rule.
func EncodeScalarString(s string, delimiter byte) string {
	if s == "" {
		return `""`
	}
	if needsQuotes(s, delimiter) || numericLookalike.MatchString(s) || isReservedWord(s) {
		return "\"" + escapeScalar(s) + "\""
	}
	return s
}

func escapeScalar(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// unquoteScalar strips the surrounding quotes from a quoted scalar and
// unescapes \\ and \" — the only two escapes the format recognizes (spec
// 4.3, 9). Any other backslash sequence is left exactly as written.
func unquoteScalar(s string) string {
	inner := s[1 : len(s)-1]
	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) && (inner[i+1] == '\\' || inner[i+1] == '"') {
			b.WriteByte(inner[i+1])
			i++
			continue
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}

func isWhollyQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// splitUnquotedColon finds the first colon outside quotes and splits line
// at it, tracking quote state exactly as spec 4.2.6 describes: a `"`
// toggles quoting unless the immediately preceding character is a
// backslash.
func splitUnquotedColon(line string) (key, rest string, ok bool) {
	inQuotes := false
	for j := 0; j < len(line); j++ {
		c := line[j]
		if c == '"' {
			if !(j > 0 && line[j-1] == '\\') {
				inQuotes = !inQuotes
			}
			continue
		}
		if c == ':' && !inQuotes {
			return line[:j], line[j+1:], true
		}
	}
	return line, "", false
}

// containsUnquotedDelimiter reports whether delimiter appears outside
// quotes anywhere in s.
func containsUnquotedDelimiter(s string, delimiter byte) bool {
	inQuotes := false
	for j := 0; j < len(s); j++ {
		c := s[j]
		if c == '"' {
			if !(j > 0 && s[j-1] == '\\') {
				inQuotes = !inQuotes
			}
			continue
		}
		if c == delimiter && !inQuotes {
			return true
		}
	}
	return false
}

// splitCSVRow splits a CSV-style row on the unquoted delimiter, trims each
// field, and drops one trailing empty field produced by a delimiter at the
// end of the line (spec 4.2.6).
func splitCSVRow(line string, delimiter byte) []string {
	var raw []string
	inQuotes := false
	start := 0
	for j := 0; j < len(line); j++ {
		c := line[j]
		if c == '"' {
			if !(j > 0 && line[j-1] == '\\') {
				inQuotes = !inQuotes
			}
			continue
		}
		if c == delimiter && !inQuotes {
			raw = append(raw, line[start:j])
			start = j + 1
		}
	}
	raw = append(raw, line[start:])

	fields := make([]string, len(raw))
	for i, f := range raw {
		fields[i] = strings.TrimSpace(f)
	}
	if len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// decodeKeyText decodes an object key or tabular field name: unquoted if
// quoted, literal otherwise. Unlike decodeScalarLiteral, a key is never
// reinterpreted as a number, bool, or null — keys are always Strings (spec
// 3), even when their text looks numeric or reserved.
func decodeKeyText(s string) string {
	if isWhollyQuoted(s) {
		return unquoteScalar(s)
	}
	return s
}

// decodeScalarLiteral decodes a stripped scalar lexeme per spec 4.3.
func decodeScalarLiteral(s string) any {
	switch s {
	case "null":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if num, ok := value.ParseNumber(s); ok {
		return num
	}
	if isWhollyQuoted(s) {
		return unquoteScalar(s)
	}
	return s
}
