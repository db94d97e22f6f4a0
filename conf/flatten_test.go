package conf

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		doc  any
		want FlatConfig
	}{
		{
			name: "scalar leaves",
			doc: map[string]any{
				"name":    "svc",
				"port":    float64(8080),
				"enabled": true,
				"extra":   nil,
			},
			want: FlatConfig{
				"name":    "svc",
				"port":    float64(8080),
				"enabled": true,
				"extra":   nil,
			},
		},
		{
			name: "nested objects",
			doc: map[string]any{
				"build": map[string]any{
					"image": "debian",
					"opts": map[string]any{
						"cache": false,
					},
				},
			},
			want: FlatConfig{
				"build.image":      "debian",
				"build.opts.cache": false,
			},
		},
		{
			name: "arrays",
			doc: map[string]any{
				"args": []any{"-v", "-x"},
				"matrix": []any{
					[]any{float64(1), float64(2)},
				},
			},
			want: FlatConfig{
				"args[0]":      "-v",
				"args[1]":      "-x",
				"matrix[0][0]": float64(1),
				"matrix[0][1]": float64(2),
			},
		},
		{
			name: "objects inside arrays",
			doc: map[string]any{
				"jobs": []any{
					map[string]any{"name": "lint"},
					map[string]any{"name": "test"},
				},
			},
			want: FlatConfig{
				"jobs[0].name": "lint",
				"jobs[1].name": "test",
			},
		},
		{
			name: "empty containers produce nothing",
			doc: map[string]any{
				"obj": map[string]any{},
				"arr": []any{},
			},
			want: FlatConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flatten(tt.doc)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Flatten mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlattenJSON(t *testing.T) {
	flat, err := FlattenJSON([]byte(`{"a":{"b":[1,"x"]}}`))
	if err != nil {
		t.Fatalf("FlattenJSON failed: %v", err)
	}

	want := FlatConfig{
		"a.b[0]": float64(1),
		"a.b[1]": "x",
	}
	if diff := cmp.Diff(want, flat); diff != "" {
		t.Errorf("FlattenJSON mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenJSON_Invalid(t *testing.T) {
	_, err := FlattenJSON([]byte(`{"a":`))
	if !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestKeys_Sorted(t *testing.T) {
	flat := FlatConfig{
		"z":       1,
		"a.b":     2,
		"a.b[10]": 3,
		"a.a":     4,
	}

	want := []string{"a.a", "a.b", "a.b[10]", "z"}
	if diff := cmp.Diff(want, flat.Keys()); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
}

func TestPending(t *testing.T) {
	flat := FlatConfig{
		"plain":  "no placeholders here",
		"ref":    "${other}",
		"cmd":    "prefix $(date) suffix",
		"env":    "$HOME",
		"number": float64(3),
		"cost":   "$5 is not a placeholder",
	}

	want := []string{"cmd", "env", "ref"}
	if diff := cmp.Diff(want, flat.Pending()); diff != "" {
		t.Errorf("Pending mismatch (-want +got):\n%s", diff)
	}
}

func TestUnflatten_RoundTrip(t *testing.T) {
	docs := map[string]any{
		"nested": map[string]any{
			"service": map[string]any{
				"name":  "api",
				"ports": []any{float64(80), float64(443)},
			},
			"tags": []any{"a", "b"},
		},
		"array of objects": map[string]any{
			"jobs": []any{
				map[string]any{"name": "lint", "steps": []any{"go vet"}},
				map[string]any{"name": "test"},
			},
		},
		"deep arrays": map[string]any{
			"grid": []any{
				[]any{"x", "y"},
				[]any{"z"},
			},
		},
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			got, err := Unflatten(Flatten(doc))
			if err != nil {
				t.Fatalf("Unflatten failed: %v", err)
			}

			if diff := cmp.Diff(doc, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnflatten_SparseArray(t *testing.T) {
	// Positions never named by any path are filled with null.
	flat := FlatConfig{
		"a[0]": "x",
		"a[2]": "z",
	}

	got, err := Unflatten(flat)
	if err != nil {
		t.Fatalf("Unflatten failed: %v", err)
	}

	want := map[string]any{
		"a": []any{"x", nil, "z"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sparse array mismatch (-want +got):\n%s", diff)
	}
}

func TestUnflatten_PathConflict(t *testing.T) {
	tests := []struct {
		name string
		flat FlatConfig
	}{
		{"index into object", FlatConfig{"a.b": 1, "a[0]": 2}},
		{"field into array", FlatConfig{"a[0]": 1, "a.b": 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unflatten(tt.flat)
			if !errors.Is(err, ErrInvalidPath) {
				t.Errorf("expected ErrInvalidPath, got %v", err)
			}
		})
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		path string
		want []segment
		fail bool
	}{
		{path: "", want: nil},
		{path: "a", want: []segment{{name: "a"}}},
		{path: "a.b.c", want: []segment{{name: "a"}, {name: "b"}, {name: "c"}}},
		{path: "a[3]", want: []segment{{name: "a"}, {index: 3, isIndex: true}}},
		{path: "a[0].b", want: []segment{
			{name: "a"}, {index: 0, isIndex: true}, {name: "b"},
		}},
		{path: "a[1][2]", want: []segment{
			{name: "a"}, {index: 1, isIndex: true}, {index: 2, isIndex: true},
		}},
		{path: "a[", fail: true},
		{path: "a[x]", fail: true},
		{path: "a[-1]", fail: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := splitPath(tt.path)
			if tt.fail {
				if !errors.Is(err, ErrInvalidPath) {
					t.Errorf("expected ErrInvalidPath, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("splitPath failed: %v", err)
			}

			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(segment{})); diff != "" {
				t.Errorf("segments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatScalar(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string verbatim", "hello world", "hello world"},
		{"bool", true, "true"},
		{"integral float", float64(8080), "8080"},
		{"fractional float", float64(1.5), "1.5"},
		{"null", nil, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatScalar(tt.value); got != tt.want {
				t.Errorf("formatScalar(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
