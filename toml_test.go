package toml

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		wantErr  bool
		wantKind ErrorKind // checked only when wantErr is true
	}{
		{name: "empty document", input: []byte(""), wantErr: false},
		{name: "simple key-value", input: []byte(`key = "value"`), wantErr: false},
		{name: "dotted key", input: []byte("a.b.c = 42\n"), wantErr: false},
		{name: "duplicate key", input: []byte("a = 1\na = 2\n"), wantErr: true, wantKind: ErrDuplicateKey},
		{name: "unterminated string", input: []byte("a = \"unterminated\n"), wantErr: true, wantKind: ErrUnterminatedString},
		{name: "unterminated multi-line string", input: []byte("a = \"\"\"unterminated\n"), wantErr: true, wantKind: ErrUnterminatedString},
		{name: "mixed-type array", input: []byte("a = [1, \"two\"]\n"), wantErr: true, wantKind: ErrNonHomogeneousArray},
		{name: "table redefinition", input: []byte("[a]\nx = 1\n[a]\ny = 2\n"), wantErr: true, wantKind: ErrStructural},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got == nil {
				t.Errorf("Parse() returned nil document")
			}
			if tt.wantErr {
				pe, ok := err.(*ParseError)
				if !ok {
					t.Fatalf("Parse() error type = %T, want *ParseError", err)
				}
				if pe.Kind != tt.wantKind {
					t.Errorf("Parse() error kind = %v, want %v", pe.Kind, tt.wantKind)
				}
			}
		})
	}
}

// TestRoundTrip exercises the central correctness property: parsing and
// re-rendering a document must reproduce the source byte for byte.
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"bool = true\nstring = \"Hello!\"\nint = 42\n",
		"# top comment\n\n[a]\nx = 1 # inline\n",
		"a = [ 1, 2, 3 ]\n",
		"[[pkg]]\nname=\"a\"\n[[pkg]]\nname=\"b\"\n",
		"s = \"\"\"\nline\n\"\"\"\n",
		"key . dotted = 1\n",
		"a = { x = 1, y = 2 }\n",
		"d = 1979-05-27T07:32:00Z\n",
		"f = +1.0\ng = -0.01\nh = inf\ni = nan\n",
		"n = 0xDEADBEEF\no = 0o755\np = 0b1010\n",
	}
	for _, in := range inputs {
		doc, err := Parse([]byte(in))
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", in, err)
		}
		if got := doc.Render(); got != in {
			t.Errorf("round-trip mismatch:\n input:  %q\n output: %q", in, got)
		}
	}
}
