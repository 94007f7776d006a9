package toml_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	toml "github.com/aurlay/molten"
	"github.com/aurlay/molten/internal/conformance"
	"github.com/aurlay/molten/internal/taggedjson"
)

// TestConformanceFixtures round-trips each fixture through Parse and
// the same tagged-JSON conversion cmd/decoder ships, diffing the
// result against the expected toml-test-shaped document. This is the
// concrete test the teacher's toml-test tool directive never got
// wired to a live corpus, so it runs against the vendored sample in
// internal/conformance instead.
func TestConformanceFixtures(t *testing.T) {
	for _, fx := range conformance.Fixtures {
		t.Run(fx.Name, func(t *testing.T) {
			doc, err := toml.Parse([]byte(fx.TOML))
			require.NoError(t, err)

			got := taggedjson.FromDocument(doc)
			require.Equal(t, fx.TaggedJSON, got)

			require.Equal(t, fx.TOML, doc.Render())
		})
	}
}

// TestConformanceEncodeDecodeRoundTrip feeds each fixture's tagged-JSON
// through ToDocument and checks the re-decoded shape matches what the
// original TOML decoded to, exercising cmd/encoder's half of the
// protocol against the same corpus.
func TestConformanceEncodeDecodeRoundTrip(t *testing.T) {
	for _, fx := range conformance.Fixtures {
		t.Run(fx.Name, func(t *testing.T) {
			doc := taggedjson.ToDocument(fx.TaggedJSON)
			got := taggedjson.FromDocument(doc)
			require.Equal(t, fx.TaggedJSON, got)
		})
	}
}
