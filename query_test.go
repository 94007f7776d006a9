package toml

import "testing"

func TestDocument_Get_TopLevel(t *testing.T) {
	d, err := Parse([]byte("name = \"Alice\"\nage = 30\n"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	s, ok := d.Get("name").(*StringItem)
	if !ok || s.Value != "Alice" {
		t.Fatalf("expected name = Alice, got %#v", d.Get("name"))
	}
}

func TestDocument_Get_DottedKey(t *testing.T) {
	d, err := Parse([]byte("a.b.c = 42\n"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	n, ok := d.Get("a.b.c").(*IntegerItem)
	if !ok || n.Value != 42 {
		t.Fatalf("expected a.b.c = 42, got %#v", d.Get("a.b.c"))
	}
}

func TestDocument_Get_InTable(t *testing.T) {
	d, err := Parse([]byte("[server]\nhost = \"localhost\"\nport = 8080\n"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	s, ok := d.Get("server.host").(*StringItem)
	if !ok || s.Value != "localhost" {
		t.Fatalf("expected server.host = localhost, got %#v", d.Get("server.host"))
	}
}

func TestDocument_Get_Nonexistent(t *testing.T) {
	d, err := Parse([]byte("key = 1\n"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if d.Get("missing") != nil {
		t.Fatal("expected nil for nonexistent key")
	}
}

func TestDocument_Get_InAoT(t *testing.T) {
	d, err := Parse([]byte("[[items]]\nname = \"widget\"\n"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	aot := d.AoT("items")
	if aot == nil || len(aot.Tables) != 1 {
		t.Fatalf("expected one items table, got %#v", aot)
	}
	s, ok := aot.Tables[0].Entries.Get("name").(*StringItem)
	if !ok || s.Value != "widget" {
		t.Fatalf("expected name = widget, got %#v", aot.Tables[0].Entries.Get("name"))
	}
}

func TestDocument_Table(t *testing.T) {
	d, err := Parse([]byte("[server]\nhost = \"localhost\"\n[database]\nport = 5432\n"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	tbl := d.Table("database")
	if tbl == nil {
		t.Fatal("expected to find table 'database'")
	}
	if tbl.HeaderRaw != "database" {
		t.Fatalf("expected header 'database', got %q", tbl.HeaderRaw)
	}
}

func TestDocument_Table_DottedHeader(t *testing.T) {
	d, err := Parse([]byte("[servers.alpha]\nip = \"10.0.0.1\"\n"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	tbl := d.Table("servers.alpha")
	if tbl == nil {
		t.Fatal("expected to find table 'servers.alpha'")
	}
	s, ok := tbl.Entries.Get("ip").(*StringItem)
	if !ok || s.Value != "10.0.0.1" {
		t.Fatalf("expected ip = 10.0.0.1, got %#v", tbl.Entries.Get("ip"))
	}
}

func TestDocument_Delete(t *testing.T) {
	d, err := Parse([]byte("a = 1\nb = 2\n"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if !d.Delete("a") {
		t.Fatal("expected Delete to report success")
	}
	if d.Get("a") != nil {
		t.Fatal("expected 'a' to be gone")
	}
	if d.Render() != "b = 2\n" {
		t.Fatalf("unexpected render after delete: %q", d.Render())
	}
}

func TestDocument_DeleteTable(t *testing.T) {
	d, err := Parse([]byte("[a]\nx = 1\n[b]\ny = 2\n"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if !d.DeleteTable("a") {
		t.Fatal("expected DeleteTable to report success")
	}
	if d.Render() != "[b]\ny = 2\n" {
		t.Fatalf("unexpected render after delete: %q", d.Render())
	}
}

func TestDocument_Walk_VisitsEveryKeyedItemInOrder(t *testing.T) {
	d, err := Parse([]byte("a = 1\n[b]\nc = 2\n[[d]]\ne = 3\n"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	var paths []string
	d.Walk(func(path []string, it Item) bool {
		paths = append(paths, joinSegs(path))
		return true
	})
	want := []string{"a", "b", "b.c", "d", "d.0", "d.e"}
	if len(paths) != len(want) {
		t.Fatalf("expected %v, got %v", want, paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, paths)
		}
	}
}

func TestParseDottedPath(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"a.b.c", []string{"a", "b", "c"}},
		{`server."my key".0`, []string{"server", "my key", "0"}},
		{"a . b", []string{"a", "b"}},
	}
	for _, tt := range tests {
		got := parseDottedPath(tt.path)
		if len(got) != len(tt.want) {
			t.Fatalf("parseDottedPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("parseDottedPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		}
	}
}
