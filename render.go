package toml

// renderContainer writes c's entries back to TOML text, in source
// order. Top-level tables and arrays-of-tables are entries of the same
// flat Container as ordinary key-values — renderTable emits a table's
// header line and then recurses into its own body Container.
func renderContainer(b []byte, c *Container, depth int) []byte {
	for i := 0; i < c.Len(); i++ {
		key := c.KeyAt(i)
		it := c.ItemAt(i)
		if key == nil {
			b = renderBareItem(b, it)
			continue
		}
		switch v := it.(type) {
		case *TableItem:
			b = renderTable(b, v)
		case *AoTItem:
			for _, t := range v.Tables {
				b = renderTable(b, t)
			}
		default:
			b = renderKeyValue(b, *key, it)
		}
	}
	return b
}

func renderBareItem(b []byte, it Item) []byte {
	switch v := it.(type) {
	case *WSItem:
		b = append(b, v.Raw...)
	case *CommentItem:
		b = append(b, v.Trivia.Indent...)
		b = append(b, v.Trivia.CommentWS...)
		b = append(b, v.Trivia.Comment...)
		b = append(b, v.Trivia.Trail...)
	}
	return b
}

func renderKeyValue(b []byte, key Key, it Item) []byte {
	t := Meta(it)
	b = append(b, t.Indent...)
	b = append(b, key.Render()...)
	b = append(b, key.Sep...)
	b = renderValue(b, it)
	b = append(b, t.CommentWS...)
	b = append(b, t.Comment...)
	b = append(b, t.Trail...)
	return b
}

// renderTable writes a table's "[header]" or "[[header]]" line plus
// its Trivia, then recurses into its body.
func renderTable(b []byte, t *TableItem) []byte {
	b = append(b, t.Trivia.Indent...)
	if t.IsArrayElement {
		b = append(b, "[["...)
		b = append(b, t.HeaderRaw...)
		b = append(b, "]]"...)
	} else {
		b = append(b, '[')
		b = append(b, t.HeaderRaw...)
		b = append(b, ']')
	}
	b = append(b, t.Trivia.CommentWS...)
	b = append(b, t.Trivia.Comment...)
	b = append(b, t.Trivia.Trail...)
	return renderContainer(b, t.Entries, 0)
}

// renderValue writes only the literal bytes of a value — no
// surrounding trivia. Used both for top-level key-values and for
// values nested inside arrays and inline tables, where no per-value
// trivia exists.
func renderValue(b []byte, it Item) []byte {
	switch v := it.(type) {
	case *IntegerItem:
		b = append(b, v.Raw...)
	case *FloatItem:
		b = append(b, v.Raw...)
	case *BoolItem:
		if v.Value {
			b = append(b, "true"...)
		} else {
			b = append(b, "false"...)
		}
	case *DateTimeItem:
		b = append(b, v.Raw...)
	case *StringItem:
		b = renderString(b, v)
	case *ArrayItem:
		b = append(b, '[')
		for _, e := range v.Elements {
			if e.IsValue() {
				b = renderValue(b, e)
			} else if ws, ok := e.(*WSItem); ok {
				b = append(b, ws.Raw...)
			}
		}
		b = append(b, ']')
	case *InlineTableItem:
		b = append(b, '{')
		b = renderInlineEntries(b, v.Entries)
		b = append(b, '}')
	}
	return b
}

// renderInlineEntries writes an inline table's body: each keyed entry
// as "key<sep>value", and each bare WSItem (whitespace or a comma)
// exactly as captured during parsing.
func renderInlineEntries(b []byte, c *Container) []byte {
	for i := 0; i < c.Len(); i++ {
		key := c.KeyAt(i)
		it := c.ItemAt(i)
		if key == nil {
			if ws, ok := it.(*WSItem); ok {
				b = append(b, ws.Raw...)
			}
			continue
		}
		b = append(b, key.Render()...)
		b = append(b, key.Sep...)
		b = renderValue(b, it)
	}
	return b
}

// renderString re-wraps a String item's original lexeme (or, for a
// constructed item with no original, an escaped rendering of Value) in
// its flavor's delimiters.
func renderString(b []byte, v *StringItem) []byte {
	switch v.Flavor {
	case FlavorMLB:
		b = append(b, `"""`...)
		b = append(b, stringBody(v, true)...)
		b = append(b, `"""`...)
	case FlavorSLL:
		b = append(b, '\'')
		b = append(b, stringBody(v, false)...)
		b = append(b, '\'')
	case FlavorMLL:
		b = append(b, "'''"...)
		b = append(b, stringBody(v, false)...)
		b = append(b, "'''"...)
	default:
		b = append(b, '"')
		b = append(b, stringBody(v, true)...)
		b = append(b, '"')
	}
	return b
}

// stringBody returns the bytes to place between a String item's
// delimiters: its original lexeme verbatim when one was captured
// during parsing, or an escaped rendering of Value for an item built
// through the mutation API. Literal flavors never escape, since TOML
// literal strings have no escape syntax.
func stringBody(v *StringItem, basic bool) string {
	if v.Original != "" {
		return v.Original
	}
	if basic {
		return escapeBasicString(v.Value)
	}
	return v.Value
}
