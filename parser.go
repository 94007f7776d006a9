package toml

import (
	"fmt"
	"strings"
)

// parser turns a token stream from the lexer into a Document, tracking
// table/key semantics as it goes so conflicts (redefining a table,
// extending a closed inline table, duplicate keys) are reported at the
// point of declaration rather than discovered during a later query.
type parser struct {
	lex *lexer
	cur Token
	src string
}

func newParser(src []byte) *parser {
	p := &parser{lex: newLexer(string(src)), src: string(src)}
	p.cur = p.lex.Next()
	return p
}

func (p *parser) advance() Token {
	prev := p.cur
	p.cur = p.lex.Next()
	return prev
}

func (p *parser) at(t TokenType) bool { return p.cur.Type == t }

func (p *parser) errHere(kind ErrorKind, msg string) error {
	return &ParseError{Kind: kind, Message: msg, Pos: p.cur.Pos, Line: p.cur.Line, Column: p.cur.Col}
}

func (p *parser) errAt(tok Token, kind ErrorKind, msg string) error {
	return &ParseError{Kind: kind, Message: msg, Pos: tok.Pos, Line: tok.Line, Column: tok.Col}
}

// parseDocument consumes the entire token stream and returns the
// Document it describes.
func (p *parser) parseDocument() (*Document, error) {
	doc := NewDocument()
	cur := doc.Root
	var curBase []string
	state := newTableState()

	for {
		indent, eof, err := p.collectLeadingTrivia(cur)
		if err != nil {
			return nil, err
		}
		if eof {
			break
		}

		if p.at(TokLBracket) {
			newCur, newBase, err := p.parseHeader(doc, state, indent)
			if err != nil {
				return nil, err
			}
			cur, curBase = newCur, newBase
			continue
		}

		key, segs, val, err := p.parseKeyValuePair()
		if err != nil {
			return nil, err
		}
		trivia, err := p.readTrailingTrivia()
		if err != nil {
			return nil, err
		}
		trivia.Indent = indent
		*Meta(val) = trivia

		if msg := state.registerKey(curBase, segs, isContainerItem(val), isArrayItem(val)); msg != "" {
			return nil, p.errHere(ErrDuplicateKey, msg)
		}
		if err := cur.AppendKeyed(key, val); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// collectLeadingTrivia consumes blank lines and standalone comments,
// appending them as bare entries to cur, and returns the indentation
// that precedes the next real token (header or key-value). eof is true
// once the token stream is exhausted.
func (p *parser) collectLeadingTrivia(cur *Container) (indent string, eof bool, err error) {
	for {
		switch {
		case p.at(TokEOF):
			return "", true, nil

		case p.at(TokNewline):
			tok := p.advance()
			cur.AppendBare(&WSItem{Raw: tok.Text})

		case p.at(TokWhitespace):
			ws := p.advance()
			switch {
			case p.at(TokNewline):
				nl := p.advance()
				cur.AppendBare(&WSItem{Raw: ws.Text + nl.Text})
			case p.at(TokComment):
				if err := p.consumeStandaloneComment(cur, ws.Text); err != nil {
					return "", false, err
				}
			case p.at(TokEOF):
				cur.AppendBare(&WSItem{Raw: ws.Text})
				return "", true, nil
			default:
				return ws.Text, false, nil
			}

		case p.at(TokComment):
			if err := p.consumeStandaloneComment(cur, ""); err != nil {
				return "", false, err
			}

		default:
			return "", false, nil
		}
	}
}

func (p *parser) consumeStandaloneComment(cur *Container, indent string) error {
	tok := p.advance()
	if msg := validateCommentText(tok.Text); msg != "" {
		return p.errAt(tok, ErrStructural, msg)
	}
	trail := ""
	switch {
	case p.at(TokNewline):
		trail = p.advance().Text
	case p.at(TokEOF):
		trail = ""
	default:
		return p.errHere(ErrStructural, "expected newline after comment")
	}
	cur.AppendBare(&CommentItem{Trivia: Trivia{Indent: indent, Comment: tok.Text, Trail: trail}})
	return nil
}

// readTrailingTrivia reads the optional whitespace and comment that
// may follow a value on the same line, then requires a newline or EOF.
func (p *parser) readTrailingTrivia() (Trivia, error) {
	var t Trivia
	if p.at(TokWhitespace) {
		t.CommentWS = p.advance().Text
	}
	if p.at(TokComment) {
		tok := p.advance()
		if msg := validateCommentText(tok.Text); msg != "" {
			return t, p.errAt(tok, ErrStructural, msg)
		}
		t.Comment = tok.Text
	}
	if p.at(TokNewline) {
		t.Trail = p.advance().Text
		return t, nil
	}
	if p.at(TokEOF) {
		return t, nil
	}
	return t, p.errHere(ErrStructural, "expected newline or end of file after value")
}

// --- Table / array-of-tables headers ---

func (p *parser) parseHeader(doc *Document, state *tableState, indent string) (*Container, []string, error) {
	p.advance() // '['
	isArray := false
	if p.at(TokLBracket) {
		isArray = true
		p.advance()
	}

	var raw strings.Builder
	if p.at(TokWhitespace) {
		raw.WriteString(p.advance().Text)
	}
	key, segs, err := p.parseKeyExpr()
	if err != nil {
		return nil, nil, err
	}
	raw.WriteString(key.Raw)
	if p.at(TokWhitespace) {
		raw.WriteString(p.advance().Text)
	}

	if !p.at(TokRBracket) {
		return nil, nil, p.errHere(ErrExpectedCloseBracket, "expected ']' to close table header")
	}
	p.advance()
	if isArray {
		if !p.at(TokRBracket) {
			return nil, nil, p.errHere(ErrExpectedCloseBracket, "expected ']]' to close array of tables header")
		}
		p.advance()
	}

	trailing, err := p.readTrailingTrivia()
	if err != nil {
		return nil, nil, err
	}
	trivia := Trivia{Indent: indent, CommentWS: trailing.CommentWS, Comment: trailing.Comment, Trail: trailing.Trail}

	pathKeys := make([]Key, len(segs))
	for i, s := range segs {
		pathKeys[i] = NewKey(s)
	}
	tbl := &TableItem{Path: pathKeys, HeaderRaw: raw.String(), IsArrayElement: isArray, Entries: NewContainer(), Trivia: trivia}

	if isArray {
		if msg := state.registerAOT(segs); msg != "" {
			return nil, nil, p.errHere(ErrStructural, msg)
		}
		if existing, ok := doc.Root.Get(joinSegs(segs)).(*AoTItem); ok {
			existing.Tables = append(existing.Tables, tbl)
		} else {
			aot := &AoTItem{Path: pathKeys, Tables: []*TableItem{tbl}}
			if err := doc.Root.AppendKeyed(Key{Text: joinSegs(segs)}, aot); err != nil {
				return nil, nil, err
			}
		}
	} else {
		if msg := state.registerTable(segs); msg != "" {
			return nil, nil, p.errHere(ErrStructural, msg)
		}
		if err := doc.Root.AppendKeyed(Key{Text: joinSegs(segs)}, tbl); err != nil {
			return nil, nil, err
		}
	}

	return tbl.Entries, segs, nil
}

// --- Keys ---

// parseKeyExpr parses a simple or dotted key, returning a Key whose
// Text is the dotted path joined with "." and whose Raw is the exact
// source text of the whole expression.
func (p *parser) parseKeyExpr() (Key, []string, error) {
	var raw strings.Builder
	var segs []string

	rawSeg, seg, err := p.parseSimpleKeySeg()
	if err != nil {
		return Key{}, nil, err
	}
	raw.WriteString(rawSeg)
	segs = append(segs, seg)

	for p.at(TokDot) || (p.at(TokWhitespace) && p.lex.peekForDot()) {
		if p.at(TokWhitespace) {
			raw.WriteString(p.advance().Text)
		}
		if !p.at(TokDot) {
			break
		}
		raw.WriteString(".")
		p.advance()
		if p.at(TokWhitespace) {
			raw.WriteString(p.advance().Text)
		}
		rawSeg, seg, err = p.parseSimpleKeySeg()
		if err != nil {
			return Key{}, nil, err
		}
		raw.WriteString(rawSeg)
		segs = append(segs, seg)
	}

	return Key{Text: strings.Join(segs, "."), Raw: raw.String()}, segs, nil
}

func (p *parser) parseSimpleKeySeg() (rawText, unquoted string, err error) {
	switch p.cur.Type {
	case TokBareKey:
		tok := p.advance()
		for _, r := range tok.Text {
			if !isBareKeyChar(r) {
				return "", "", p.errAt(tok, ErrUnexpectedChar, fmt.Sprintf("invalid character %q in bare key %q", r, tok.Text))
			}
		}
		return tok.Text, tok.Text, nil
	case TokBoolean, TokInteger, TokFloat, TokDateTime:
		tok := p.advance()
		return tok.Text, tok.Text, nil
	case TokBasicString:
		tok := p.advance()
		if msg := validateStringText(tok.Text); msg != "" {
			return "", "", p.errAt(tok, ErrInvalidEscape, msg)
		}
		return tok.Text, unquoteBasicStr(tok.Text), nil
	case TokLiteralString:
		tok := p.advance()
		if msg := validateStringText(tok.Text); msg != "" {
			return "", "", p.errAt(tok, ErrUnexpectedChar, msg)
		}
		return tok.Text, unquoteLiteralStr(tok.Text), nil
	case TokUnterminatedString:
		tok := p.advance()
		return "", "", p.errAt(tok, ErrUnterminatedString, "unterminated string literal in key")
	default:
		return "", "", p.errHere(ErrStructural, "expected key")
	}
}

// parseKeyValuePair parses "key = value" without consuming any
// trailing trivia, for reuse inside inline tables.
func (p *parser) parseKeyValuePair() (Key, []string, Item, error) {
	key, segs, err := p.parseKeyExpr()
	if err != nil {
		return Key{}, nil, nil, err
	}

	preEq := ""
	if p.at(TokWhitespace) {
		preEq = p.advance().Text
	}
	if !p.at(TokEquals) {
		return Key{}, nil, nil, p.errHere(ErrExpectedEquals, "expected '='")
	}
	p.lex.valueMode = true
	p.advance()

	postEq := ""
	if p.at(TokWhitespace) {
		postEq = p.advance().Text
	}
	key.Sep = preEq + "=" + postEq

	val, err := p.parseValue()
	p.lex.valueMode = false
	if err != nil {
		return Key{}, nil, nil, err
	}
	return key, segs, val, nil
}

// --- Values ---

func (p *parser) parseValue() (Item, error) {
	switch p.cur.Type {
	case TokBasicString, TokMultiLineBasicStr, TokLiteralString, TokMultiLineLiteralStr:
		return p.parseStringValue()
	case TokInteger:
		return p.parseIntegerValue()
	case TokFloat:
		return p.parseFloatValue()
	case TokBoolean:
		tok := p.advance()
		return &BoolItem{Value: tok.Text == "true"}, nil
	case TokDateTime:
		return p.parseDateTimeValue()
	case TokLBracket:
		return p.parseArray()
	case TokLBrace:
		return p.parseInlineTable()
	case TokUnterminatedString:
		tok := p.advance()
		return nil, p.errAt(tok, ErrUnterminatedString, "unterminated string literal")
	default:
		return nil, p.errHere(ErrStructural, "expected value")
	}
}

func (p *parser) parseStringValue() (Item, error) {
	tok := p.advance()
	if msg := validateStringText(tok.Text); msg != "" {
		return nil, p.errAt(tok, ErrInvalidEscape, msg)
	}
	switch {
	case strings.HasPrefix(tok.Text, `"""`):
		body := tok.Text[3 : len(tok.Text)-3]
		return &StringItem{Value: decodeMultilineBasicEscapes(trimLeadingNewline(body)), Original: body, Flavor: FlavorMLB}, nil
	case strings.HasPrefix(tok.Text, "'''"):
		body := tok.Text[3 : len(tok.Text)-3]
		return &StringItem{Value: trimLeadingNewline(body), Original: body, Flavor: FlavorMLL}, nil
	case tok.Text[0] == '\'':
		body := tok.Text[1 : len(tok.Text)-1]
		return &StringItem{Value: body, Original: body, Flavor: FlavorSLL}, nil
	default:
		body := tok.Text[1 : len(tok.Text)-1]
		return &StringItem{Value: decodeBasicEscapes(body), Original: body, Flavor: FlavorSLB}, nil
	}
}

func (p *parser) parseIntegerValue() (Item, error) {
	tok := p.advance()
	if msg := validateNumberText(tok.Text); msg != "" {
		return nil, p.errAt(tok, ErrInvalidNumber, msg)
	}
	v, err := decodeInteger(tok.Text)
	if err != nil {
		return nil, p.errAt(tok, ErrInvalidNumber, err.Error())
	}
	return &IntegerItem{Value: v, Raw: tok.Text}, nil
}

func (p *parser) parseFloatValue() (Item, error) {
	tok := p.advance()
	if msg := validateNumberText(tok.Text); msg != "" {
		return nil, p.errAt(tok, ErrInvalidNumber, msg)
	}
	v, err := decodeFloat(tok.Text)
	if err != nil {
		return nil, p.errAt(tok, ErrInvalidNumber, err.Error())
	}
	return &FloatItem{Value: v, Raw: tok.Text}, nil
}

func (p *parser) parseDateTimeValue() (Item, error) {
	tok := p.advance()
	if msg := validateDateTimeText(tok.Text); msg != "" {
		return nil, p.errAt(tok, ErrInvalidDateTime, msg)
	}
	dt, err := decodeDateTime(tok.Text)
	if err != nil {
		return nil, p.errAt(tok, ErrInvalidDateTime, err.Error())
	}
	return &DateTimeItem{Value: dt, Raw: tok.Text}, nil
}

func (p *parser) parseArray() (Item, error) {
	p.advance() // '['
	var elements []Item

	if sep, err := p.consumeArraySep(); err != nil {
		return nil, err
	} else if sep != "" {
		elements = append(elements, &WSItem{Raw: sep})
	}

	for !p.at(TokRBracket) && !p.at(TokEOF) {
		p.lex.valueMode = true
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if prev := lastValue(elements); prev != nil && prev.Type() != val.Type() {
			return nil, p.errHere(ErrNonHomogeneousArray, fmt.Sprintf("array mixes %s and %s", prev.Type(), val.Type()))
		}
		elements = append(elements, val)
		p.lex.valueMode = true
		sep, err := p.consumeArraySep()
		if err != nil {
			return nil, err
		}
		if sep != "" {
			elements = append(elements, &WSItem{Raw: sep})
		}
	}

	if !p.at(TokRBracket) {
		return nil, p.errHere(ErrExpectedCloseBracket, "expected ']' to close array")
	}
	p.advance()
	return &ArrayItem{Elements: elements}, nil
}

func lastValue(elements []Item) Item {
	for i := len(elements) - 1; i >= 0; i-- {
		if elements[i].IsValue() {
			return elements[i]
		}
	}
	return nil
}

func (p *parser) consumeArraySep() (string, error) {
	var b strings.Builder
	for p.at(TokWhitespace) || p.at(TokComment) || p.at(TokNewline) || p.at(TokComma) {
		tok := p.advance()
		if tok.Type == TokComment {
			if msg := validateCommentText(tok.Text); msg != "" {
				return "", p.errAt(tok, ErrStructural, msg)
			}
		}
		b.WriteString(tok.Text)
	}
	return b.String(), nil
}

// parseInlineTable parses "{ ... }". Inline tables render on one line,
// so the whitespace around commas and braces is captured verbatim as
// bare WSItem entries rather than reconstructed — there is no comment
// or newline trivia to account for, since TOML forbids both inside an
// inline table.
func (p *parser) parseInlineTable() (Item, error) {
	savedMode := p.lex.valueMode
	p.lex.valueMode = false
	p.advance() // '{'

	entries := NewContainer()
	state := newTableState()

	if ws := p.consumeInlineWS(); ws != "" {
		entries.AppendBare(&WSItem{Raw: ws})
	}
	for !p.at(TokRBrace) && !p.at(TokEOF) {
		key, segs, val, err := p.parseKeyValuePair()
		if err != nil {
			return nil, err
		}
		if msg := state.registerKey(nil, segs, isContainerItem(val), isArrayItem(val)); msg != "" {
			return nil, p.errHere(ErrDuplicateKey, msg)
		}
		if err := entries.AppendKeyed(key, val); err != nil {
			return nil, err
		}
		if ws := p.consumeInlineWS(); ws != "" {
			entries.AppendBare(&WSItem{Raw: ws})
		}
		if p.at(TokComma) {
			p.advance()
			entries.AppendBare(&WSItem{Raw: ","})
			if ws := p.consumeInlineWS(); ws != "" {
				entries.AppendBare(&WSItem{Raw: ws})
			}
		} else if !p.at(TokRBrace) {
			return nil, p.errHere(ErrStructural, "expected ',' or '}' in inline table")
		}
	}

	if !p.at(TokRBrace) {
		return nil, p.errHere(ErrExpectedCloseBrace, "expected '}' to close inline table")
	}
	p.advance()
	p.lex.valueMode = savedMode
	return &InlineTableItem{Entries: entries}, nil
}

func (p *parser) consumeInlineWS() string {
	var b strings.Builder
	for p.at(TokWhitespace) {
		b.WriteString(p.advance().Text)
	}
	return b.String()
}

func isContainerItem(it Item) bool {
	switch it.(type) {
	case *ArrayItem, *InlineTableItem:
		return true
	default:
		return false
	}
}

func isArrayItem(it Item) bool {
	_, ok := it.(*ArrayItem)
	return ok
}
