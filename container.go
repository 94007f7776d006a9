package toml

// entry is one slot in a Container: an Item, plus the Key that names it
// when the Item is a key-value pair, table, or array-of-tables entry.
// Key is nil for bare WS and Comment items that sit between entries.
type entry struct {
	Key  *Key
	Item Item
}

// Container is the ordered sequence of (optional Key, Item) pairs that
// backs a Document, a Table's body, and an inline table's body. Order
// of insertion is the source of truth for rendering; the index map
// gives O(1) key lookup and duplicate-key rejection.
type Container struct {
	entries []entry
	index   map[string]int // key text -> position in entries, keyed entries only
}

// NewContainer returns an empty Container ready for AppendKeyed/
// AppendBare/InsertAt.
func NewContainer() *Container {
	return &Container{index: make(map[string]int)}
}

// Len returns the number of entries, including unkeyed WS/Comment
// items.
func (c *Container) Len() int { return len(c.entries) }

// ItemAt returns the Item at position i.
func (c *Container) ItemAt(i int) Item { return c.entries[i].Item }

// KeyAt returns the Key at position i, or nil if that entry is unkeyed.
func (c *Container) KeyAt(i int) *Key { return c.entries[i].Key }

// Items returns every Item in source order, including WS and Comment.
// This is the exhaustive iteration flavor; see Values for the
// value-only counterpart.
func (c *Container) Items() []Item {
	out := make([]Item, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Item
	}
	return out
}

// Values returns every value-bearing Item in source order, skipping
// WS, Comment, and AoT pseudo-entries. This is the value-only
// iteration flavor consumers typically want; Items gives the
// exhaustive flavor the renderer needs.
func (c *Container) Values() []Item {
	out := make([]Item, 0, len(c.entries))
	for _, e := range c.entries {
		if e.Item.IsValue() {
			out = append(out, e.Item)
		}
	}
	return out
}

// Keys returns the Key of every keyed entry, in source order.
func (c *Container) Keys() []Key {
	out := make([]Key, 0, len(c.entries))
	for _, e := range c.entries {
		if e.Key != nil {
			out = append(out, *e.Key)
		}
	}
	return out
}

// has reports whether key is already present.
func (c *Container) has(key string) bool {
	_, ok := c.index[key]
	return ok
}

// find returns the position of key, or -1 if absent.
func (c *Container) find(key string) int {
	if i, ok := c.index[key]; ok {
		return i
	}
	return -1
}

// reindex rebuilds the index map from scratch; called after any splice
// that shifts positions.
func (c *Container) reindex() {
	c.index = make(map[string]int, len(c.entries))
	for i, e := range c.entries {
		if e.Key != nil {
			c.index[e.Key.Text] = i
		}
	}
}

// Get returns the Item stored under key, or nil if absent.
func (c *Container) Get(key string) Item {
	i := c.find(key)
	if i < 0 {
		return nil
	}
	return c.entries[i].Item
}

// AppendKeyed adds a new keyed entry at the end. It returns
// DuplicateKeyError if key.Text is already present.
func (c *Container) AppendKeyed(key Key, it Item) error {
	if c.has(key.Text) {
		return &DuplicateKeyError{Key: key.Text}
	}
	c.index[key.Text] = len(c.entries)
	c.entries = append(c.entries, entry{Key: &key, Item: it})
	return nil
}

// AppendBare adds a new unkeyed entry (WS or Comment) at the end.
func (c *Container) AppendBare(it Item) {
	c.entries = append(c.entries, entry{Item: it})
}

// InsertAt splices a keyed entry in at position i, shifting later
// entries down. Negative or out-of-range i clamps to the nearest end,
// matching the teacher's InsertAt semantics. Returns DuplicateKeyError
// if key.Text is already present.
func (c *Container) InsertAt(i int, key Key, it Item) error {
	if c.has(key.Text) {
		return &DuplicateKeyError{Key: key.Text}
	}
	if i < 0 {
		i = 0
	}
	if i > len(c.entries) {
		i = len(c.entries)
	}
	c.entries = append(c.entries, entry{})
	copy(c.entries[i+1:], c.entries[i:])
	c.entries[i] = entry{Key: &key, Item: it}
	c.reindex()
	return nil
}

// Delete removes the keyed entry for key, reporting whether it was
// present.
func (c *Container) Delete(key string) bool {
	i := c.find(key)
	if i < 0 {
		return false
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	c.reindex()
	return true
}

// DeleteAt removes the entry at position i unconditionally.
func (c *Container) DeleteAt(i int) {
	if i < 0 || i >= len(c.entries) {
		return
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
	c.reindex()
}

// Walk visits every keyed Item in the Container, depth-first, invoking
// fn with the dotted path built so far. It descends into Table,
// InlineTable, and the per-element Tables of an AoT. fn returning false
// stops the whole walk, and Walk then returns false.
func (c *Container) Walk(prefix []string, fn func(path []string, it Item) bool) bool {
	for _, e := range c.entries {
		if e.Key == nil {
			continue
		}
		path := append(append([]string{}, prefix...), e.Key.Text)
		if !fn(path, e.Item) {
			return false
		}
		switch v := e.Item.(type) {
		case *TableItem:
			if !v.Entries.Walk(path, fn) {
				return false
			}
		case *InlineTableItem:
			if !v.Entries.Walk(path, fn) {
				return false
			}
		case *AoTItem:
			for idx, tbl := range v.Tables {
				elemPath := append(append([]string{}, path...), itoaIndex(idx))
				if !fn(elemPath, tbl) {
					return false
				}
				if !tbl.Entries.Walk(path, fn) {
					return false
				}
			}
		}
	}
	return true
}

// FindPath resolves a dotted path against this Container, trying the
// full joined path as a single key first (covers plain keys and
// dotted key-values stored as one flat entry), then decreasing
// prefixes that name a Table, InlineTable, or AoT to descend into.
// This mirrors how TOML's dotted keys and table headers both name a
// position in the tree without the document model needing a separate
// implicit-table node for every intermediate segment.
func (c *Container) FindPath(segs []string) Item {
	if len(segs) == 0 {
		return nil
	}
	if it := c.Get(joinSegs(segs)); it != nil {
		return it
	}
	for p := len(segs) - 1; p >= 1; p-- {
		it := c.Get(joinSegs(segs[:p]))
		if it == nil {
			continue
		}
		rest := segs[p:]
		switch v := it.(type) {
		case *TableItem:
			if r := v.Entries.FindPath(rest); r != nil {
				return r
			}
		case *InlineTableItem:
			if r := v.Entries.FindPath(rest); r != nil {
				return r
			}
		case *AoTItem:
			if len(v.Tables) == 0 {
				continue
			}
			if r := v.Tables[len(v.Tables)-1].Entries.FindPath(rest); r != nil {
				return r
			}
		}
	}
	return nil
}

// DeletePath removes the entry named by segs, searching the same way
// FindPath does. It reports whether anything was removed.
func (c *Container) DeletePath(segs []string) bool {
	if len(segs) == 0 {
		return false
	}
	joined := joinSegs(segs)
	if c.has(joined) {
		return c.Delete(joined)
	}
	for p := len(segs) - 1; p >= 1; p-- {
		it := c.Get(joinSegs(segs[:p]))
		if it == nil {
			continue
		}
		rest := segs[p:]
		switch v := it.(type) {
		case *TableItem:
			if v.Entries.DeletePath(rest) {
				return true
			}
		case *InlineTableItem:
			if v.Entries.DeletePath(rest) {
				return true
			}
		case *AoTItem:
			if len(v.Tables) == 0 {
				continue
			}
			if v.Tables[len(v.Tables)-1].Entries.DeletePath(rest) {
				return true
			}
		}
	}
	return false
}

func joinSegs(segs []string) string {
	if len(segs) == 1 {
		return segs[0]
	}
	out := segs[0]
	for _, s := range segs[1:] {
		out += "." + s
	}
	return out
}

func itoaIndex(i int) string {
	if i == 0 {
		return "0"
	}
	digits := [20]byte{}
	pos := len(digits)
	for i > 0 {
		pos--
		digits[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(digits[pos:])
}
