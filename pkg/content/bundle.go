package content

import (
	"fmt"
	"strconv"
)

// Row is one schema-less record from the remote sheet. Fields arrive as
// whatever JSON gave us, so access goes through the stringifying helpers.
type Row map[string]any

// Bundle is the complete set of named row collections driving one page load.
type Bundle struct {
	Config           []Row  `json:"Config,omitempty"`
	AnimalTalk       []Row  `json:"AnimalTalk,omitempty"`
	DailyMenu        []Row  `json:"DailyMenu,omitempty"`
	DailyInteraction []Row  `json:"DailyInteraction,omitempty"`
	BlindBox         []Row  `json:"BlindBox,omitempty"`
	UpdatedAt        string `json:"updated_at,omitempty"`
}

// Str returns the row field rendered as a string. Missing and nil fields
// render as "".
func (r Row) Str(key string) string {
	if r == nil {
		return ""
	}
	return Stringify(r[key])
}

// Stringify renders a loosely-typed JSON value as a string. Numbers drop the
// float artifacts JSON decoding introduces.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// ConfigMap flattens key/value config rows into a lookup map. Rows without a
// key are skipped; the last value seen for a key wins.
func ConfigMap(rows []Row) map[string]string {
	m := make(map[string]string, len(rows))
	for _, r := range rows {
		key := r.Str("key")
		if key == "" {
			continue
		}
		m[key] = r.Str("value")
	}
	return m
}
