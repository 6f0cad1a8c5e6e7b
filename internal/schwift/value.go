package schwift

import (
	"strconv"
	"strings"
)

// Value is a literal recognized by the value rule. It is a closed union over
// the four literal kinds; a Value is immutable once built.
type Value interface {
	value()
	// String returns the literal's canonical source spelling.
	String() string
}

type Int int64
type Float float64
type Str string
type Bool bool

func (Int) value()   {}
func (Float) value() {}
func (Str) value()   {}
func (Bool) value()  {}

func (v Int) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// String keeps a decimal point in the output so the spelling re-parses as a
// Float, never as an Int.
func (v Float) String() string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func (v Str) String() string {
	return "\"" + escape(string(v)) + "\""
}

func (v Bool) String() string {
	if v {
		return "rick"
	}
	return "morty"
}

// unescape decodes the raw span of a string literal. It returns the decoded
// text and -1, or the index of the offending backslash when the span holds a
// malformed escape sequence.
func unescape(raw []rune) (string, int) {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		r := raw[i]
		if r != '\\' {
			sb.WriteRune(r)
			continue
		}
		if i+1 >= len(raw) {
			return "", i
		}
		i++
		switch raw[i] {
		case '"':
			sb.WriteRune('"')
		case '\\':
			sb.WriteRune('\\')
		case 'n':
			sb.WriteRune('\n')
		case 't':
			sb.WriteRune('\t')
		case 'r':
			sb.WriteRune('\r')
		case '0':
			sb.WriteRune('\x00')
		default:
			return "", i - 1
		}
	}
	return sb.String(), -1
}

// escape is the inverse of unescape, used when reprinting string literals.
func escape(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '\x00':
			sb.WriteString(`\0`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
