package conf

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"
	"strings"
)

// FlatConfig maps a dotted/bracketed path to the scalar value stored at that
// path in the source document. Object fields are joined with "." and array
// indices are rendered as "[N]" segments, with no leading separator before
// the first segment (e.g. "build.args[0]").
//
// A FlatConfig is owned by a single resolution session and rebuilt fresh per
// run. Iteration order of the underlying map is not significant; use [Keys]
// for deterministic enumeration.
type FlatConfig map[string]any

// FlattenJSON decodes data as a JSON document and flattens it.
// Malformed input fails with [ErrInvalidDocument].
func FlattenJSON(data []byte) (FlatConfig, error) {
	var doc any

	err := json.Unmarshal(data, &doc)
	if err != nil {
		return nil, ErrInvalidDocument.Wrap(err)
	}

	return Flatten(doc), nil
}

// Flatten walks doc and emits one entry per reachable scalar, keyed by the
// path used to reach it. Containers themselves produce no entries; an empty
// object or array therefore contributes nothing to the result.
func Flatten(doc any) FlatConfig {
	flat := make(FlatConfig)
	flattenInto(flat, "", doc)

	return flat
}

func flattenInto(flat FlatConfig, prefix string, value any) {
	switch v := value.(type) {
	case map[string]any:
		for name, child := range v {
			path := name
			if prefix != "" {
				path = prefix + "." + name
			}

			flattenInto(flat, path, child)
		}

	case []any:
		for i, child := range v {
			flattenInto(flat, prefix+"["+strconv.Itoa(i)+"]", child)
		}

	default:
		flat[prefix] = value
	}
}

// Keys returns every path in the map in sorted order.
func (f FlatConfig) Keys() []string {
	keys := make([]string, 0, len(f))
	for key := range f {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Pending returns the sorted subset of paths whose value still contains at
// least one recognizable placeholder. An empty result means the document is
// fully resolved.
func (f FlatConfig) Pending() []string {
	var pending []string

	for _, key := range f.Keys() {
		if s, ok := f[key].(string); ok && HasPlaceholder(s) {
			pending = append(pending, key)
		}
	}

	return pending
}

// Unflatten reconstructs the nested document described by the flattened map.
// Entries are inserted one path at a time into a freshly built structure, so
// sparse or interleaved insertion order is tolerated; array positions never
// named by any path are filled with null.
func Unflatten(flat FlatConfig) (any, error) {
	var root any

	for _, key := range flat.Keys() {
		segs, err := splitPath(key)
		if err != nil {
			return nil, err
		}

		root, err = setPath(root, key, segs, flat[key])
		if err != nil {
			return nil, err
		}
	}

	return root, nil
}

// segment is one step of a tokenized path: either an object field name or an
// array index.
type segment struct {
	name    string
	index   int
	isIndex bool
}

// splitPath tokenizes a flattened path into its segments. Field names are
// taken verbatim between separators; names containing "." or "[" cannot be
// represented and produce a different (deeper) structure, matching the
// flattening convention.
func splitPath(path string) ([]segment, error) {
	if path == "" {
		return nil, nil
	}

	var segs []segment

	for i := 0; i < len(path); {
		switch path[i] {
		case '.':
			i++

		case '[':
			j := strings.IndexByte(path[i:], ']')
			if j < 0 {
				return nil, ErrInvalidPath.
					With(slog.String("path", path))
			}

			n, err := strconv.Atoi(path[i+1 : i+j])
			if err != nil || n < 0 {
				return nil, ErrInvalidPath.
					With(slog.String("path", path))
			}

			segs = append(segs, segment{index: n, isIndex: true})
			i += j + 1

		default:
			j := i
			for j < len(path) && path[j] != '.' && path[j] != '[' {
				j++
			}

			segs = append(segs, segment{name: path[i:j]})
			i = j
		}
	}

	return segs, nil
}

// setPath writes value into node at the location named by segs, creating
// intermediate containers as needed. It is the setpath primitive backing
// [Unflatten].
func setPath(node any, path string, segs []segment, value any) (any, error) {
	if len(segs) == 0 {
		return value, nil
	}

	seg := segs[0]

	if seg.isIndex {
		arr, ok := node.([]any)
		if node != nil && !ok {
			return nil, ErrInvalidPath.
				With(
					slog.String("path", path),
					slog.String("conflict", "array index into non-array"),
				)
		}

		for len(arr) <= seg.index {
			arr = append(arr, nil)
		}

		child, err := setPath(arr[seg.index], path, segs[1:], value)
		if err != nil {
			return nil, err
		}

		arr[seg.index] = child

		return arr, nil
	}

	obj, ok := node.(map[string]any)
	if node == nil {
		obj = make(map[string]any)
	} else if !ok {
		return nil, ErrInvalidPath.
			With(
				slog.String("path", path),
				slog.String("conflict", "object field into non-object"),
			)
	}

	child, err := setPath(obj[seg.name], path, segs[1:], value)
	if err != nil {
		return nil, err
	}

	obj[seg.name] = child

	return obj, nil
}

// formatScalar renders a scalar value as the text spliced into a resolved
// string. JSON numbers arrive as float64 and are rendered without a trailing
// fractional part when integral.
func formatScalar(value any) string {
	switch v := value.(type) {
	case string:
		return v

	case bool:
		return strconv.FormatBool(v)

	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	case nil:
		return "null"

	default:
		// Only reachable for documents built in memory with non-JSON scalar
		// types (e.g. int from a test fixture).
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}

		return string(b)
	}
}
