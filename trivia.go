package toml

// Trivia carries the cosmetic bytes surrounding a value-bearing Item:
// the indentation before it, the comment (if any) that follows it on the
// same line, and the line terminator that closes it out. Trivia never
// affects lookup or equality — only rendering.
type Trivia struct {
	Indent    string // whitespace preceding the key (or value, for bare array elements)
	CommentWS string // whitespace between the value and an end-of-line comment
	Comment   string // comment text including the leading '#', or "" if none
	Trail     string // trailing line break ("\n", "\r\n", or "" at EOF)
}

// KeyKind identifies how a Key was written in source.
type KeyKind int

const (
	KeyBare KeyKind = iota
	KeyBasic
	KeyLiteral
)

// Key names a key-value entry or a table header. For a simple key it
// is a single bare identifier or quoted string; for a dotted key
// ("a.b.c = 1") or a multi-segment table header ("[a.b.c]") Text holds
// the full dotted path joined with "." (used for lookup and equality)
// while Raw preserves the exact source bytes of the whole key
// expression — quoting, internal whitespace around dots, all of it —
// so rendering never has to reconstruct it. Raw is empty for Keys
// built by the mutation API; Render falls back to Kind/Text in that
// case.
type Key struct {
	Kind KeyKind
	Text string // dotted path joined by ".", each segment unquoted
	Raw  string // exact original key text, or "" if constructed
	Sep  string // exact text between key and value, e.g. " = "
}

// bareKeyOK reports whether s can be written as a bare key without
// quoting.
func bareKeyOK(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isBareKeyChar(r) {
			return false
		}
	}
	return true
}

func isBareKeyChar(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') ||
		(r >= '0' && r <= '9') || r == '-' || r == '_'
}

// NewKey builds a Key for text, quoting it with double quotes only if it
// cannot be written bare.
func NewKey(text string) Key {
	if bareKeyOK(text) {
		return Key{Kind: KeyBare, Text: text, Sep: " = "}
	}
	return Key{Kind: KeyBasic, Text: text, Sep: " = "}
}

// Render returns the key exactly as it would appear in source: bare,
// "double-quoted", 'single-quoted', or the original dotted expression
// when Raw was captured during parsing.
func (k Key) Render() string {
	if k.Raw != "" {
		return k.Raw
	}
	switch k.Kind {
	case KeyBasic:
		return `"` + escapeBasicString(k.Text) + `"`
	case KeyLiteral:
		return "'" + k.Text + "'"
	default:
		return k.Text
	}
}
