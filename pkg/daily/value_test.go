package daily

import (
	"reflect"
	"testing"
)

func TestParseLooseShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		kind Kind
	}{
		{"nil", nil, KindEmpty},
		{"empty string", "", KindEmpty},
		{"blank string", "   ", KindEmpty},
		{"plain literal", "hello", KindString},
		{"json list", `["yes","no"]`, KindList},
		{"json map", `{"yes":"😊"}`, KindMap},
		{"broken json", `{"yes":`, KindString},
		{"decoded list", []any{"a", "b"}, KindList},
		{"decoded map", map[string]any{"k": "v"}, KindMap},
		{"number", float64(3), KindString},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseLoose(tc.raw).Kind(); got != tc.kind {
				t.Fatalf("ParseLoose(%v).Kind() = %v, want %v", tc.raw, got, tc.kind)
			}
		})
	}
}

func TestParseLooseBrokenJSONKeepsRawText(t *testing.T) {
	v := ParseLoose(`{"oops"`)
	if v.Str() != `{"oops"` {
		t.Fatalf("Str() = %q, want the raw text", v.Str())
	}
}

func TestParseLooseQuotedStringDecodes(t *testing.T) {
	// A JSON-encoded string decodes to its contents, mirroring one decode
	// attempt before giving up.
	v := ParseLoose(`"hi"`)
	if v.Kind() != KindString || v.Str() != "hi" {
		t.Fatalf("got kind=%v str=%q", v.Kind(), v.Str())
	}
}

func TestParseLooseListContents(t *testing.T) {
	v := ParseLoose(`["yes", "no", 3]`)
	want := []string{"yes", "no", "3"}
	if !reflect.DeepEqual(v.List(), want) {
		t.Fatalf("List() = %v, want %v", v.List(), want)
	}
}

func TestLookup(t *testing.T) {
	v := ParseLoose(`{"yes":"😊","empty":""}`)
	if got, ok := v.Lookup("yes"); !ok || got != "😊" {
		t.Fatalf("Lookup(yes) = %q, %v", got, ok)
	}
	if _, ok := v.Lookup("empty"); ok {
		t.Fatalf("empty value should count as missing")
	}
	if _, ok := v.Lookup("absent"); ok {
		t.Fatalf("absent key should be missing")
	}
	if _, ok := ParseLoose("literal").Lookup("any"); ok {
		t.Fatalf("Lookup on a non-map should fail")
	}
}
