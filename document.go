package toml

// Document is the root of a parsed TOML file: an ordered Container of
// top-level key-values, standalone comments/whitespace, Tables, and
// AoTs. Parse/Render on Document are the package's two primary entry
// points, and round-tripping Render(Parse(src)) == src is the
// invariant the rest of this package exists to uphold.
type Document struct {
	Root *Container
}

// NewDocument returns an empty Document ready for Append/InsertAt.
func NewDocument() *Document {
	return &Document{Root: NewContainer()}
}

// Parse reads src and returns the Document it describes, or a
// *ParseError pinpointing the first failure.
func Parse(src []byte) (*Document, error) {
	p := newParser(src)
	return p.parseDocument()
}

// Render serializes the Document back to TOML text. For a Document
// produced by Parse and never mutated, Render reproduces src byte for
// byte.
func (d *Document) Render() string {
	var b []byte
	b = renderContainer(b, d.Root, 0)
	return string(b)
}

// String implements fmt.Stringer via Render.
func (d *Document) String() string { return d.Render() }

// Get looks up a dotted path (e.g. "server.host") starting from the
// document root, descending through Table, InlineTable, and the last
// element of an AoT. It returns nil if any segment is absent.
func (d *Document) Get(path string) Item {
	return d.Root.FindPath(parseDottedPath(path))
}

// Table returns the TableItem at the given dotted header path, or nil.
func (d *Document) Table(path string) *TableItem {
	it := d.Get(path)
	t, _ := it.(*TableItem)
	return t
}

// AoT returns the AoTItem at the given dotted header path, or nil.
func (d *Document) AoT(path string) *AoTItem {
	it := d.Get(path)
	a, _ := it.(*AoTItem)
	return a
}

// Delete removes the entry at the given dotted path from wherever it
// lives (top level, inside a Table, or inside an InlineTable). It
// reports whether an entry was found and removed.
func (d *Document) Delete(path string) bool {
	return d.Root.DeletePath(parseDottedPath(path))
}

// DeleteTable removes the TableItem at the given dotted header path
// from its parent container.
func (d *Document) DeleteTable(path string) bool {
	return d.Delete(path)
}

// Append adds a new keyed entry to the end of the document's top-level
// Container.
func (d *Document) Append(key Key, it Item) error {
	return d.Root.AppendKeyed(key, it)
}

// AppendBare adds a standalone WS or Comment item to the end of the
// document.
func (d *Document) AppendBare(it Item) {
	d.Root.AppendBare(it)
}

// InsertAt inserts a new keyed entry at position i in the document's
// top-level Container.
func (d *Document) InsertAt(i int, key Key, it Item) error {
	return d.Root.InsertAt(i, key, it)
}

// Walk visits every keyed Item in the document, depth-first, in source
// order. fn returning false stops the walk.
func (d *Document) Walk(fn func(path []string, it Item) bool) {
	d.Root.Walk(nil, fn)
}

