package toml

import (
	"math"
	"testing"
)

func TestNewString(t *testing.T) {
	s := NewString("hello world")
	if s.Value != "hello world" {
		t.Fatalf("expected 'hello world', got %q", s.Value)
	}
	if s.Flavor != FlavorSLB {
		t.Fatalf("expected FlavorSLB, got %v", s.Flavor)
	}
}

func TestNewInteger(t *testing.T) {
	n := NewInteger(42)
	if n.Raw != "42" {
		t.Fatalf("expected '42', got %q", n.Raw)
	}
	if n.Value != 42 {
		t.Fatalf("expected 42, got %d", n.Value)
	}
}

func TestNewInteger_Negative(t *testing.T) {
	n := NewInteger(-100)
	if n.Raw != "-100" {
		t.Fatalf("expected '-100', got %q", n.Raw)
	}
}

func TestNewFloat(t *testing.T) {
	n := NewFloat(3.14)
	if n.Value != 3.14 {
		t.Fatalf("expected 3.14, got %f", n.Value)
	}
}

func TestNewFloat_Inf(t *testing.T) {
	n := NewFloat(math.Inf(1))
	if n.Raw != "inf" {
		t.Fatalf("expected 'inf', got %q", n.Raw)
	}
}

func TestNewFloat_WholeNumberGetsDecimalPoint(t *testing.T) {
	n := NewFloat(3.0)
	if n.Raw != "3.0" {
		t.Fatalf("expected '3.0', got %q", n.Raw)
	}
}

func TestNewBool(t *testing.T) {
	if !NewBool(true).Value {
		t.Fatal("expected true")
	}
	if NewBool(false).Value {
		t.Fatal("expected false")
	}
}

func TestNewArray(t *testing.T) {
	arr := NewArray(NewInteger(1), NewInteger(2), NewInteger(3))
	vals := arr.Values()
	if len(vals) != 3 {
		t.Fatalf("expected 3 values, got %d", len(vals))
	}
	var b []byte
	b = renderValue(b, arr)
	if string(b) != "[1, 2, 3]" {
		t.Fatalf("expected '[1, 2, 3]', got %q", string(b))
	}
}

func TestNewInlineTable(t *testing.T) {
	it := NewInlineTable()
	if err := it.Entries.AppendKeyed(NewKey("x"), NewInteger(1)); err != nil {
		t.Fatalf("AppendKeyed error: %v", err)
	}
	var b []byte
	b = renderValue(b, it)
	if string(b) != "{x = 1}" {
		t.Fatalf("expected '{x = 1}', got %q", string(b))
	}
}

func TestContainer_SetValue(t *testing.T) {
	c := NewContainer()
	if err := c.AppendKeyed(NewKey("x"), NewInteger(1)); err != nil {
		t.Fatalf("AppendKeyed error: %v", err)
	}
	if !c.SetValue("x", NewInteger(2)) {
		t.Fatal("expected SetValue to report success")
	}
	got, ok := c.Get("x").(*IntegerItem)
	if !ok || got.Value != 2 {
		t.Fatalf("expected updated value 2, got %#v", c.Get("x"))
	}
	if c.SetValue("missing", NewInteger(3)) {
		t.Fatal("expected SetValue on missing key to report failure")
	}
}

func TestContainer_AppendKeyed_DuplicateRejected(t *testing.T) {
	c := NewContainer()
	if err := c.AppendKeyed(NewKey("x"), NewInteger(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := c.AppendKeyed(NewKey("x"), NewInteger(2))
	if _, ok := err.(*DuplicateKeyError); !ok {
		t.Fatalf("expected DuplicateKeyError, got %v", err)
	}
}

func TestContainer_Delete(t *testing.T) {
	c := NewContainer()
	_ = c.AppendKeyed(NewKey("x"), NewInteger(1))
	if !c.Delete("x") {
		t.Fatal("expected Delete to report success")
	}
	if c.Delete("x") {
		t.Fatal("expected second Delete to report failure")
	}
}

func TestDocument_Append_RoundTripsAsValidTOML(t *testing.T) {
	doc := NewDocument()
	if err := doc.Append(NewKey("name"), NewString("Alice")); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	reparsed, err := Parse([]byte(doc.Render()))
	if err != nil {
		t.Fatalf("re-parse of rendered document failed: %v", err)
	}
	s, ok := reparsed.Get("name").(*StringItem)
	if !ok || s.Value != "Alice" {
		t.Fatalf("expected name = Alice, got %#v", reparsed.Get("name"))
	}
}
