package daily

import (
	"encoding/json"
	"strings"

	"tableflip.dev/floof/pkg/content"
)

// Kind tags the shape of a leniently-parsed value.
type Kind int

const (
	// KindEmpty is the shape of absent or unparseable values.
	KindEmpty Kind = iota
	// KindString holds a single literal.
	KindString
	// KindList holds an ordered list of literals.
	KindList
	// KindMap holds a string-to-string mapping.
	KindMap
)

// Value is the lenient decode of an opaque JSON-ish field (payload,
// response_map). Accessors return zero values for mismatched kinds, so
// callers never branch on parse failures.
type Value struct {
	kind Kind
	str  string
	list []string
	m    map[string]string
}

// ParseLoose decodes whatever the sheet delivered. Structured values pass
// through, JSON-looking strings get one decode attempt, anything else
// becomes a literal. Parse failures collapse to the raw string, and absent
// values to the empty kind. It never fails.
func ParseLoose(raw any) Value {
	switch t := raw.(type) {
	case nil:
		return Value{}
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return Value{}
		}
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err == nil {
			return fromDecoded(decoded)
		}
		return Value{kind: KindString, str: t}
	default:
		return fromDecoded(raw)
	}
}

func fromDecoded(v any) Value {
	switch t := v.(type) {
	case nil:
		return Value{}
	case map[string]any:
		m := make(map[string]string, len(t))
		for k, e := range t {
			m[k] = content.Stringify(e)
		}
		return Value{kind: KindMap, m: m}
	case []any:
		list := make([]string, 0, len(t))
		for _, e := range t {
			list = append(list, content.Stringify(e))
		}
		return Value{kind: KindList, list: list}
	default:
		return Value{kind: KindString, str: content.Stringify(t)}
	}
}

// Kind reports the value's shape.
func (v Value) Kind() Kind { return v.kind }

// Str returns the literal, or "" for non-string kinds.
func (v Value) Str() string { return v.str }

// List returns the ordered literals, or nil for non-list kinds.
func (v Value) List() []string { return v.list }

// Lookup resolves a key against a map-shaped value.
func (v Value) Lookup(key string) (string, bool) {
	if v.kind != KindMap {
		return "", false
	}
	s, ok := v.m[key]
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
