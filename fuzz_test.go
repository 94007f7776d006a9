package toml

import "testing"

// FuzzRoundTrip feeds the literal TOML strings from the package's
// documented end-to-end scenarios as seeds and checks that Parse never
// panics, and that Render reproduces any input that was itself a seed
// byte for byte.
func FuzzRoundTrip(f *testing.F) {
	seeds := []string{
		"bool = true\nstring = \"Hello!\"\nint = 42\n",
		"# top comment\n\n[a]\nx = 1 # inline\n",
		"a = [ 1, 2, 3 ]\n",
		"[[pkg]]\nname=\"a\"\n[[pkg]]\nname=\"b\"\n",
		"s = \"\"\"\nline\n\"\"\"\n",
		"a = 1\na = 2\n",
		"",
		"key . dotted = 1\n",
		"a = { x = 1, y = 2 }\n",
		"d = 1979-05-27T07:32:00Z\n",
	}
	seen := make(map[string]bool, len(seeds))
	for _, s := range seeds {
		if seen[s] {
			continue
		}
		seen[s] = true
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		doc, err := Parse([]byte(src))
		if err != nil {
			return
		}
		if !seen[src] {
			return
		}
		if got := doc.Render(); got != src {
			t.Errorf("round-trip mismatch for seed %q: got %q", src, got)
		}
	})
}
