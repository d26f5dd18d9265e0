// Package questie decodes Questie-style Lua database tables
//
//	[id]={ field0, field1, ..., {spawns}, ... },
//
// and extracts per-entity spawn coordinates from one positional field.
package questie

import "strings"

// scanner tracks brace depth and string-quote state over a character cursor.
// Braces and commas inside a quoted string are literal.
type scanner struct {
	depth   int
	quote   byte // 0 when outside a string, otherwise the opening quote char
	escaped bool
}

// step consumes one byte and reports whether it is structural (outside any string).
func (s *scanner) step(c byte) bool {
	if s.quote != 0 {
		switch {
		case s.escaped:
			s.escaped = false
		case c == '\\':
			s.escaped = true
		case c == s.quote:
			s.quote = 0
		}
		return false
	}

	switch c {
	case '"', '\'':
		s.quote = c
		return false
	case '{':
		s.depth++
	case '}':
		s.depth--
	}
	return true
}

// ExtractBody returns the text between an already consumed opening brace at
// doc[start-1] and its matching closing brace. end is the offset just past the
// closing brace. ok is false when the document ends before depth returns to 0.
func ExtractBody(doc string, start int) (body string, end int, ok bool) {
	if start < 0 || start > len(doc) {
		return "", start, false
	}

	s := scanner{depth: 1}
	for i := start; i < len(doc); i++ {
		c := doc[i]
		if s.step(c) && c == '}' && s.depth == 0 {
			return doc[start:i], i + 1, true
		}
	}
	return "", len(doc), false
}

// SplitFields splits a table body into top-level comma separated fields.
// Commas nested in braces or inside quoted strings do not split. Fields are
// trimmed; a trailing comma does not produce an empty last field.
func SplitFields(body string) []string {
	var (
		fields []string
		s      scanner
		from   int
	)

	for i := 0; i < len(body); i++ {
		c := body[i]
		if s.step(c) && c == ',' && s.depth == 0 {
			fields = append(fields, strings.TrimSpace(body[from:i]))
			from = i + 1
		}
	}

	if rest := strings.TrimSpace(body[from:]); rest != "" {
		fields = append(fields, rest)
	}
	return fields
}
