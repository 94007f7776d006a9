package toml

import (
	"math"
	"strconv"
	"strings"
)

// decodeInteger turns a validated integer lexeme (decimal, or
// 0x/0o/0b-prefixed) into its value, stripping underscores first.
func decodeInteger(raw string) (int64, error) {
	clean := strings.ReplaceAll(raw, "_", "")
	neg := false
	s := clean
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	base := 10
	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x':
			base, s = 16, s[2:]
		case 'o':
			base, s = 8, s[2:]
		case 'b':
			base, s = 2, s[2:]
		}
	}
	if base != 10 {
		u, err := strconv.ParseUint(s, base, 64)
		if err != nil {
			return 0, err
		}
		v := int64(u)
		if neg {
			v = -v
		}
		return v, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return v, nil
}

// decodeFloat turns a validated float lexeme into its value, including
// the inf/nan spellings TOML allows.
func decodeFloat(raw string) (float64, error) {
	clean := strings.ReplaceAll(raw, "_", "")
	switch clean {
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	case "nan", "+nan", "-nan":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(clean, 64)
}

// unquoteBasicStr strips the surrounding quotes from a single-line
// basic-string token and decodes its escapes.
func unquoteBasicStr(tok string) string {
	if len(tok) < 2 {
		return tok
	}
	return decodeBasicEscapes(tok[1 : len(tok)-1])
}

// unquoteLiteralStr strips the surrounding quotes from a single-line
// literal-string token. Literal strings have no escapes.
func unquoteLiteralStr(tok string) string {
	if len(tok) < 2 {
		return tok
	}
	return tok[1 : len(tok)-1]
}

// decodeBasicEscapes decodes the escape sequences of a single-line
// basic string body (no line-ending-backslash trimming — that only
// applies inside multi-line basic strings).
func decodeBasicEscapes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i + 1
		if j >= len(s) {
			b.WriteByte('\\')
			i++
			break
		}
		n, adv, ok := decodeOneEscape(s, j)
		if ok {
			b.WriteRune(n)
			i = j + adv
			continue
		}
		b.WriteByte('\\')
		b.WriteByte(s[j])
		i = j + 1
	}
	return b.String()
}

// decodeMultilineBasicEscapes decodes a multi-line basic string body,
// additionally trimming a line-ending backslash: a backslash followed
// by optional horizontal whitespace, a newline, and all whitespace
// through the next non-whitespace character, is removed entirely.
func decodeMultilineBasicEscapes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			i++
			continue
		}
		if end, ok := lineEndingBackslashEnd(s, i); ok {
			i = end
			continue
		}
		j := i + 1
		if j >= len(s) {
			b.WriteByte('\\')
			i++
			continue
		}
		n, adv, ok := decodeOneEscape(s, j)
		if ok {
			b.WriteRune(n)
			i = j + adv
			continue
		}
		b.WriteByte('\\')
		b.WriteByte(s[j])
		i = j + 1
	}
	return b.String()
}

// lineEndingBackslashEnd reports whether s[i] starts a line-ending
// backslash (i.e. s[i] == '\\' followed by only horizontal whitespace
// then a newline), returning the index just past all whitespace that
// follows the newline.
func lineEndingBackslashEnd(s string, i int) (int, bool) {
	if s[i] != '\\' {
		return 0, false
	}
	k := i + 1
	for k < len(s) && (s[k] == ' ' || s[k] == '\t') {
		k++
	}
	if k >= len(s) {
		return 0, false
	}
	if s[k] == '\r' && k+1 < len(s) && s[k+1] == '\n' {
		k += 2
	} else if s[k] == '\n' {
		k++
	} else {
		return 0, false
	}
	for k < len(s) && isWhitespaceOrNewline(s[k]) {
		k++
	}
	return k, true
}

// decodeOneEscape decodes the escape character at s[i] (the byte
// right after the backslash), returning the decoded rune and how many
// bytes, counting s[i] itself, it consumed.
func decodeOneEscape(s string, i int) (rune, int, bool) {
	switch s[i] {
	case 'b':
		return '\b', 1, true
	case 't':
		return '\t', 1, true
	case 'n':
		return '\n', 1, true
	case 'f':
		return '\f', 1, true
	case 'r':
		return '\r', 1, true
	case '"':
		return '"', 1, true
	case '\\':
		return '\\', 1, true
	case 'e':
		return 0x1B, 1, true
	case 'x':
		return decodeHexEscape(s, i, 2)
	case 'u':
		return decodeHexEscape(s, i, 4)
	case 'U':
		return decodeHexEscape(s, i, 8)
	default:
		return 0, 0, false
	}
}

func decodeHexEscape(s string, i, digits int) (rune, int, bool) {
	if i+digits >= len(s) {
		return 0, 0, false
	}
	n, err := strconv.ParseUint(s[i+1:i+1+digits], 16, 32)
	if err != nil {
		return 0, 0, false
	}
	return rune(n), digits + 1, true
}
