package jsonpath

import (
	"reflect"
	"testing"
)

func TestSet(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
		path string
		val  any
		want map[string]any
	}{
		{
			name: "top level key",
			doc:  map[string]any{},
			path: "a",
			val:  5,
			want: map[string]any{"a": 5},
		},
		{
			name: "creates intermediates",
			doc:  map[string]any{},
			path: "a.b.c",
			val:  "deep",
			want: map[string]any{"a": map[string]any{"b": map[string]any{"c": "deep"}}},
		},
		{
			name: "replaces existing value",
			doc:  map[string]any{"a": 1},
			path: "a",
			val:  2,
			want: map[string]any{"a": 2},
		},
		{
			name: "keeps siblings",
			doc:  map[string]any{"a": map[string]any{"x": 1}},
			path: "a.y",
			val:  2,
			want: map[string]any{"a": map[string]any{"x": 1, "y": 2}},
		},
		{
			name: "overwrites scalar intermediate",
			doc:  map[string]any{"a": "scalar"},
			path: "a.b",
			val:  true,
			want: map[string]any{"a": map[string]any{"b": true}},
		},
		{
			name: "overwrites array intermediate",
			doc:  map[string]any{"a": []any{1, 2}},
			path: "a.b",
			val:  nil,
			want: map[string]any{"a": map[string]any{"b": nil}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Set(tt.doc, tt.path, tt.val)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Set() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSet_Idempotent(t *testing.T) {
	doc := map[string]any{}
	Set(doc, "a.b", 1)
	Set(doc, "a.b", 1)
	want := map[string]any{"a": map[string]any{"b": 1}}
	if !reflect.DeepEqual(doc, want) {
		t.Errorf("doc = %#v, want %#v", doc, want)
	}
}

func TestSet_NonObjectRoot(t *testing.T) {
	for _, doc := range []any{nil, "text", []any{1}} {
		if got := Set(doc, "a", 1); !reflect.DeepEqual(got, doc) {
			t.Errorf("Set over %T root = %#v, want unchanged", doc, got)
		}
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
		path string
		want map[string]any
	}{
		{
			name: "top level key",
			doc:  map[string]any{"a": 1, "b": 2},
			path: "a",
			want: map[string]any{"b": 2},
		},
		{
			name: "nested key",
			doc:  map[string]any{"a": map[string]any{"b": 1, "c": 2}},
			path: "a.b",
			want: map[string]any{"a": map[string]any{"c": 2}},
		},
		{
			name: "missing key is no-op",
			doc:  map[string]any{"a": 1},
			path: "b",
			want: map[string]any{"a": 1},
		},
		{
			name: "missing intermediate is no-op",
			doc:  map[string]any{"a": 1},
			path: "b.c",
			want: map[string]any{"a": 1},
		},
		{
			name: "scalar intermediate is no-op",
			doc:  map[string]any{"a": "scalar"},
			path: "a.b",
			want: map[string]any{"a": "scalar"},
		},
		{
			name: "empty object left behind",
			doc:  map[string]any{"a": map[string]any{"b": 1}},
			path: "a.b",
			want: map[string]any{"a": map[string]any{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Delete(tt.doc, tt.path)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Delete() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDelete_NonObjectRoot(t *testing.T) {
	for _, doc := range []any{nil, 5, []any{1}} {
		if got := Delete(doc, "a"); !reflect.DeepEqual(got, doc) {
			t.Errorf("Delete over %T root = %#v, want unchanged", doc, got)
		}
	}
}
