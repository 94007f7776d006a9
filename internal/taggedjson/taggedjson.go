// Package taggedjson converts between a molten Document and the
// "tagged JSON" shape the toml-test conformance protocol uses for
// scalars: {"type": "<kind>", "value": "<text>"}. It backs both
// cmd/decoder (TOML -> tagged JSON) and cmd/encoder (tagged JSON ->
// TOML), and is exercised directly by the conformance tests so the
// same conversion code is what both the CLI tools and the tests run.
package taggedjson

import (
	"math"
	"sort"
	"strconv"
	"strings"

	toml "github.com/aurlay/molten"
)

// FromDocument converts a parsed Document into the nested
// map[string]any tagged-JSON shape toml-test expects from a decoder.
func FromDocument(doc *toml.Document) map[string]any {
	root := make(map[string]any)
	addTableEntries(root, doc.Root)
	return root
}

func addTableEntries(tbl map[string]any, entries *toml.Container) {
	for i := 0; i < entries.Len(); i++ {
		key := entries.KeyAt(i)
		it := entries.ItemAt(i)
		if key == nil {
			continue
		}
		switch v := it.(type) {
		case *toml.TableItem:
			sub := resolveTablePath(tbl, splitPath(key.Text))
			addTableEntries(sub, v.Entries)
		case *toml.AoTItem:
			processAoT(tbl, splitPath(key.Text), v)
		default:
			if it.IsValue() {
				setNestedKey(tbl, splitPath(key.Text), valueToTagged(it))
			}
		}
	}
}

func processAoT(root map[string]any, parts []string, aot *toml.AoTItem) {
	if len(parts) == 0 {
		return
	}
	parent := resolveTablePath(root, parts[:len(parts)-1])
	lastKey := parts[len(parts)-1]
	arr, _ := parent[lastKey].([]any)
	for _, tbl := range aot.Tables {
		entry := make(map[string]any)
		addTableEntries(entry, tbl.Entries)
		arr = append(arr, entry)
	}
	parent[lastKey] = arr
}

// resolveTablePath navigates a dotted path, creating intermediate maps
// as needed and following arrays-of-tables to their last element.
func resolveTablePath(root map[string]any, parts []string) map[string]any {
	cur := root
	for _, key := range parts {
		existing := cur[key]
		switch v := existing.(type) {
		case []any:
			if len(v) == 0 {
				m := make(map[string]any)
				cur[key] = []any{m}
				cur = m
			} else if m, ok := v[len(v)-1].(map[string]any); ok {
				cur = m
			}
		case map[string]any:
			cur = v
		default:
			sub := make(map[string]any)
			cur[key] = sub
			cur = sub
		}
	}
	return cur
}

func setNestedKey(m map[string]any, parts []string, value any) {
	cur := m
	for i, key := range parts {
		if i == len(parts)-1 {
			cur[key] = value
			return
		}
		if sub, ok := cur[key].(map[string]any); ok {
			cur = sub
		} else {
			sub := make(map[string]any)
			cur[key] = sub
			cur = sub
		}
	}
}

func splitPath(text string) []string {
	return strings.Split(text, ".")
}

func valueToTagged(it toml.Item) any {
	switch v := it.(type) {
	case *toml.StringItem:
		return tagged("string", v.Value)
	case *toml.IntegerItem:
		return numberToTagged(v.Raw)
	case *toml.FloatItem:
		return numberToTagged(v.Raw)
	case *toml.BoolItem:
		if v.Value {
			return tagged("bool", "true")
		}
		return tagged("bool", "false")
	case *toml.DateTimeItem:
		return datetimeToTagged(v.Raw)
	case *toml.ArrayItem:
		result := make([]any, 0, len(v.Values()))
		for _, e := range v.Values() {
			result = append(result, valueToTagged(e))
		}
		return result
	case *toml.InlineTableItem:
		result := make(map[string]any)
		addTableEntries(result, v.Entries)
		return result
	default:
		return nil
	}
}

func tagged(typ, val string) map[string]any {
	return map[string]any{"type": typ, "value": val}
}

func numberToTagged(text string) map[string]any {
	clean := strings.ReplaceAll(text, "_", "")
	switch clean {
	case "inf", "+inf":
		return tagged("float", "+inf")
	case "-inf":
		return tagged("float", "-inf")
	case "nan", "+nan", "-nan":
		return tagged("float", "nan")
	}
	if strings.HasPrefix(clean, "0x") || strings.HasPrefix(clean, "0o") || strings.HasPrefix(clean, "0b") {
		return tagged("integer", parseIntegerText(clean))
	}
	if strings.ContainsAny(clean, ".eE") {
		return tagged("float", parseFloatText(clean))
	}
	return tagged("integer", parseIntegerText(clean))
}

func datetimeToTagged(text string) map[string]any {
	return tagged(detectDateTimeType(text), normalizeDatetime(text))
}

// normalizeDatetime normalizes space separators to T and adds :00 when seconds are omitted.
func normalizeDatetime(val string) string {
	if spaceIdx := strings.Index(val, " "); spaceIdx > 0 {
		if spaceIdx+1 < len(val) && val[spaceIdx-1] >= '0' && val[spaceIdx-1] <= '9' &&
			val[spaceIdx+1] >= '0' && val[spaceIdx+1] <= '9' {
			val = val[:spaceIdx] + "T" + val[spaceIdx+1:]
		}
	}
	if tIdx := strings.Index(val, "t"); tIdx > 0 && val[tIdx-1] >= '0' && val[tIdx-1] <= '9' {
		val = val[:tIdx] + "T" + val[tIdx+1:]
	}
	return addMissingSeconds(val)
}

func addMissingSeconds(val string) string {
	colonCount := strings.Count(val, ":")
	if colonCount == 0 {
		return val
	}
	if !strings.Contains(val, "-") && !strings.Contains(val, "T") {
		if colonCount == 1 {
			return val + ":00"
		}
		return val
	}
	tIdx := strings.Index(val, "T")
	if tIdx < 0 {
		return val
	}
	timePart := val[tIdx+1:]
	offsetStart := -1
	if zIdx := strings.IndexAny(timePart, "Zz"); zIdx >= 0 {
		offsetStart = zIdx
	} else if pIdx := strings.LastIndexAny(timePart, "+-"); pIdx > 0 {
		offsetStart = pIdx
	}
	timeCore := timePart
	suffix := ""
	if offsetStart >= 0 {
		timeCore = timePart[:offsetStart]
		suffix = timePart[offsetStart:]
	}
	if strings.Count(timeCore, ":") == 1 {
		return val[:tIdx+1] + timeCore + ":00" + suffix
	}
	return val
}

func detectDateTimeType(val string) string {
	if strings.Contains(val, "Z") || strings.Contains(val, "z") {
		return "datetime"
	}
	hasT := strings.Contains(val, "T") || strings.Contains(val, "t")
	hasDash := strings.Count(val, "-") >= 2
	hasColon := strings.Count(val, ":") >= 1

	if hasT && hasDash && hasColon {
		tPos := strings.IndexAny(val, "Tt")
		timePart := val[tPos+1:]
		if strings.Contains(timePart, "+") || lastDashIsOffset(timePart) {
			return "datetime"
		}
		return "datetime-local"
	}
	if hasDash && hasColon && strings.Contains(val, " ") {
		parts := strings.SplitN(val, " ", 2)
		if len(parts) == 2 && strings.Count(parts[0], "-") >= 2 {
			timePart := parts[1]
			if strings.Contains(timePart, "+") || lastDashIsOffset(timePart) || strings.HasSuffix(timePart, "Z") {
				return "datetime"
			}
			return "datetime-local"
		}
	}
	if hasDash && !hasColon && !hasT {
		return "date-local"
	}
	if hasColon && !hasDash {
		return "time-local"
	}
	return "datetime"
}

func lastDashIsOffset(timePart string) bool {
	idx := strings.LastIndex(timePart, "-")
	if idx <= 0 {
		return false
	}
	return idx+1 < len(timePart) && timePart[idx+1] >= '0' && timePart[idx+1] <= '9'
}

func parseIntegerText(val string) string {
	clean := strings.ReplaceAll(val, "_", "")
	var num int64
	var err error

	switch {
	case strings.HasPrefix(clean, "0x"):
		num, err = strconv.ParseInt(clean[2:], 16, 64)
	case strings.HasPrefix(clean, "0o"):
		num, err = strconv.ParseInt(clean[2:], 8, 64)
	case strings.HasPrefix(clean, "0b"):
		num, err = strconv.ParseInt(clean[2:], 2, 64)
	default:
		clean = strings.TrimPrefix(clean, "+")
		num, err = strconv.ParseInt(clean, 10, 64)
	}

	if err != nil {
		return val
	}
	return strconv.FormatInt(num, 10)
}

func parseFloatText(val string) string {
	clean := strings.ReplaceAll(val, "_", "")
	clean = strings.TrimPrefix(clean, "+")
	num, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return val
	}
	if math.IsInf(num, 0) || math.IsNaN(num) {
		return val
	}
	result := strconv.FormatFloat(num, 'G', -1, 64)
	result = strings.ReplaceAll(result, "E+", "e+")
	result = strings.ReplaceAll(result, "E-", "e-")
	if !strings.Contains(result, ".") && !strings.Contains(result, "e") {
		result += ".0"
	}
	return result
}

// ToDocument builds a Document from the tagged-JSON shape described
// above: scalars as {"type","value"} objects, tables as plain objects,
// arrays as JSON arrays (of either scalars or table objects, the
// latter becoming an array of tables).
func ToDocument(data map[string]any) *toml.Document {
	doc := toml.NewDocument()
	addLevel(doc.Root, doc.Root, nil, data)
	return doc
}

// addLevel populates target (a document root or a table's own body)
// with one level of tagged JSON: scalars and arrays go straight into
// target; nested (non-tagged) objects become new Table/AoT items keyed
// by their full dotted path and appended to root (the document root),
// since every table in this model — however deeply nested its header —
// is a direct entry of the flat root container.
func addLevel(root, target *toml.Container, path []string, data map[string]any) {
	for _, key := range sortedKeys(data) {
		val := data[key]
		fullPath := append(append([]string{}, path...), key)
		switch v := val.(type) {
		case map[string]any:
			if item, ok := taggedScalar(v); ok {
				_ = target.AppendKeyed(toml.NewKey(key), item)
				continue
			}
			tbl := toml.NewTable(fullPath...)
			_ = root.AppendKeyed(toml.NewKey(strings.Join(fullPath, ".")), tbl)
			addLevel(root, tbl.Entries, fullPath, v)
		case []any:
			if aot, ok := buildAoT(fullPath, v); ok {
				_ = root.AppendKeyed(toml.NewKey(strings.Join(fullPath, ".")), aot)
				continue
			}
			_ = target.AppendKeyed(toml.NewKey(key), buildArray(v))
		}
	}
}

func buildAoT(path []string, v []any) (*toml.AoTItem, bool) {
	if len(v) == 0 {
		return nil, false
	}
	tables := make([]*toml.TableItem, 0, len(v))
	for _, elem := range v {
		m, ok := elem.(map[string]any)
		if !ok {
			return nil, false
		}
		if _, isTagged := taggedScalar(m); isTagged {
			return nil, false
		}
		entry := toml.NewAoTEntry(path...)
		addLevel(entry.Entries, entry.Entries, path, m)
		tables = append(tables, entry)
	}
	keys := make([]toml.Key, len(path))
	for i, p := range path {
		keys[i] = toml.NewKey(p)
	}
	return &toml.AoTItem{Path: keys, Tables: tables}, true
}

func buildArray(v []any) *toml.ArrayItem {
	values := make([]toml.Item, 0, len(v))
	for _, elem := range v {
		switch e := elem.(type) {
		case map[string]any:
			if item, ok := taggedScalar(e); ok {
				values = append(values, item)
				continue
			}
			it := toml.NewInlineTable()
			addLevel(it.Entries, it.Entries, nil, e)
			values = append(values, it)
		case []any:
			values = append(values, buildArray(e))
		}
	}
	return toml.NewArray(values...)
}

func taggedScalar(v map[string]any) (toml.Item, bool) {
	if len(v) != 2 {
		return nil, false
	}
	typeVal, ok := v["type"].(string)
	if !ok {
		return nil, false
	}
	valStr, ok := v["value"].(string)
	if !ok {
		return nil, false
	}
	return scalarFromTagged(typeVal, valStr), true
}

func scalarFromTagged(typeStr, value string) toml.Item {
	switch typeStr {
	case "integer":
		n, _ := strconv.ParseInt(value, 10, 64)
		return toml.NewInteger(n)
	case "float":
		switch value {
		case "inf", "+inf":
			return toml.NewFloat(math.Inf(1))
		case "-inf":
			return toml.NewFloat(math.Inf(-1))
		case "nan", "+nan", "-nan":
			return toml.NewFloat(math.NaN())
		}
		f, _ := strconv.ParseFloat(value, 64)
		return toml.NewFloat(f)
	case "bool":
		return toml.NewBool(value == "true")
	case "datetime", "datetime-local", "date-local", "time-local":
		return toml.NewDateTime(toml.DateTime{}, value)
	default:
		return toml.NewString(value)
	}
}

func sortedKeys(data map[string]any) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
