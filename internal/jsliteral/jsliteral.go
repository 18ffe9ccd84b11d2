// Package jsliteral turns arbitrary text into JavaScript string literals that
// can be placed inside an HTML <script> element without terminating it.
package jsliteral

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	escapedLT = `\u003c`
	escapedGT = `\u003e`
)

var ErrMalformedDeclaration = errors.New("jsliteral: malformed declaration")

// Quote returns s as a double-quoted literal using JSON string escaping, with
// every '<' and '>' written as a \u escape. The result never contains a raw
// angle bracket, so "</script>" inside s cannot close an enclosing element.
//
// Invalid UTF-8 sequences are replaced with U+FFFD.
func Quote(s string) string {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// encoding a string value never fails
	_ = enc.Encode(s)

	quoted := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	var out strings.Builder
	out.Grow(len(quoted))

	// JSON escapes are pure ASCII, so a raw '<' or '>' in the encoded form is
	// always a character of s and never part of an escape sequence.
	for _, b := range quoted {
		switch b {
		case '<':
			out.WriteString(escapedLT)
		case '>':
			out.WriteString(escapedGT)
		default:
			out.WriteByte(b)
		}
	}

	return out.String()
}

// Unquote reverses Quote. It accepts any JSON string literal.
func Unquote(lit string) (string, error) {
	if len(lit) < 2 || lit[0] != '"' || lit[len(lit)-1] != '"' {
		return "", fmt.Errorf("jsliteral: %q is not a double-quoted literal", lit)
	}

	var s string
	if err := json.Unmarshal([]byte(lit), &s); err != nil {
		return "", fmt.Errorf("jsliteral: unquote: %w", err)
	}

	return s, nil
}

// Declaration returns the const declaration binding name to literal. literal
// is written as is and must already be a valid expression.
func Declaration(name, literal string) string {
	return "const " + name + " = " + literal + ";"
}

// ParseDeclaration parses src as produced by Declaration(name, Quote(value))
// and returns name and value.
func ParseDeclaration(src string) (name, value string, err error) {
	rest, ok := strings.CutPrefix(src, "const ")
	if !ok {
		return "", "", fmt.Errorf("%w: missing const keyword", ErrMalformedDeclaration)
	}

	name, literal, ok := strings.Cut(rest, " = ")
	if !ok {
		return "", "", fmt.Errorf("%w: missing assignment", ErrMalformedDeclaration)
	}

	if !IsIdentifier(name) {
		return "", "", fmt.Errorf("%w: invalid identifier %q", ErrMalformedDeclaration, name)
	}

	literal, ok = strings.CutSuffix(literal, ";")
	if !ok {
		return "", "", fmt.Errorf("%w: missing terminating semicolon", ErrMalformedDeclaration)
	}

	value, err = Unquote(literal)
	if err != nil {
		return "", "", err
	}

	return name, value, nil
}

// IsIdentifier reports whether name is an ASCII JavaScript identifier.
// Reserved words are not rejected.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		switch {
		case r == '_' || r == '$':
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}
