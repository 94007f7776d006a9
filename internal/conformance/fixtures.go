// Package conformance holds a small hand-picked sample of TOML inputs
// in the style of the toml-test "valid/" corpus, each paired with the
// tagged-JSON document a correct decoder must produce for it. It is
// consumed by conformance_test.go at the module root.
package conformance

// Fixture is one TOML source paired with the tagged JSON a correct
// decoder must produce for it.
type Fixture struct {
	Name     string
	TOML     string
	TaggedJSON map[string]any
}

func taggedStr(v string) map[string]any        { return map[string]any{"type": "string", "value": v} }
func taggedInt(v string) map[string]any        { return map[string]any{"type": "integer", "value": v} }
func taggedFloat(v string) map[string]any      { return map[string]any{"type": "float", "value": v} }
func taggedBool(v string) map[string]any       { return map[string]any{"type": "bool", "value": v} }
func taggedDateTime(v string) map[string]any   { return map[string]any{"type": "datetime", "value": v} }
func taggedDateLocal(v string) map[string]any  { return map[string]any{"type": "date-local", "value": v} }

// Fixtures mirrors a slice of toml-test's valid/ corpus: basic scalars,
// arrays, inline tables, array-of-tables, and dotted keys.
var Fixtures = []Fixture{
	{
		Name: "string-integer-bool",
		TOML: "str = \"value\"\nnum = 42\nflag = true\n",
		TaggedJSON: map[string]any{
			"str":  taggedStr("value"),
			"num":  taggedInt("42"),
			"flag": taggedBool("true"),
		},
	},
	{
		Name: "array-of-integers",
		TOML: "nums = [1, 2, 3]\n",
		TaggedJSON: map[string]any{
			"nums": []any{taggedInt("1"), taggedInt("2"), taggedInt("3")},
		},
	},
	{
		Name: "inline-table",
		TOML: "point = { x = 1, y = 2 }\n",
		TaggedJSON: map[string]any{
			"point": map[string]any{
				"x": taggedInt("1"),
				"y": taggedInt("2"),
			},
		},
	},
	{
		Name: "table-and-subtable",
		TOML: "[fruit]\nname = \"apple\"\n\n[fruit.variety]\nname = \"red delicious\"\n",
		TaggedJSON: map[string]any{
			"fruit": map[string]any{
				"name": taggedStr("apple"),
				"variety": map[string]any{
					"name": taggedStr("red delicious"),
				},
			},
		},
	},
	{
		Name: "array-of-tables",
		TOML: "[[products]]\nname = \"widget\"\n\n[[products]]\nname = \"gadget\"\n",
		TaggedJSON: map[string]any{
			"products": []any{
				map[string]any{"name": taggedStr("widget")},
				map[string]any{"name": taggedStr("gadget")},
			},
		},
	},
	{
		Name: "dotted-keys",
		TOML: "physical.color = \"orange\"\nphysical.shape = \"round\"\n",
		TaggedJSON: map[string]any{
			"physical": map[string]any{
				"color": taggedStr("orange"),
				"shape": taggedStr("round"),
			},
		},
	},
	{
		Name: "float-and-datetime",
		TOML: "pi = 3.14\nborn = 1979-05-27T07:32:00Z\nday = 1979-05-27\n",
		TaggedJSON: map[string]any{
			"pi":   taggedFloat("3.14"),
			"born": taggedDateTime("1979-05-27T07:32:00Z"),
			"day":  taggedDateLocal("1979-05-27"),
		},
	},
}
