package daily

import (
	"regexp"
	"strings"
	"time"

	"tableflip.dev/floof/pkg/content"
)

// PlaceholderLine is spoken when neither daily nor fallback talk rows exist.
const PlaceholderLine = "怎么啦bb👀"

const maxInteractions = 3

var isoDateRE = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// Layouts tried when a date cell is not already ISO-shaped. Sheets sync
// whatever the editor typed, so this mirrors loose spreadsheet parsing.
var looseLayouts = []string{
	time.RFC3339,
	"Mon Jan 02 2006 15:04:05 GMT-0700 (MST)",
	"Mon Jan 02 2006",
	time.RFC1123,
	"2006/01/02",
	"January 2, 2006",
	"1/2/2006",
}

// NormalizeDate extracts a YYYY-MM-DD from a raw date cell. It prefers an
// ISO substring, then tries loose parsing, and returns "" when nothing
// matches — callers treat "" as "never today".
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if m := isoDateRE.FindString(s); m != "" {
		return m
	}
	for _, layout := range looseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(layoutISO)
		}
	}
	return ""
}

// TalkLines selects the pet's speech lines for today: daily rows whose
// normalized start date is today, else the fallback rows, else a single
// placeholder. Type matching ignores case. Source order is preserved.
func TalkLines(rows []content.Row, today string) []string {
	var todays, fallback []string
	for _, r := range rows {
		switch strings.ToLower(r.Str("type")) {
		case "daily":
			if NormalizeDate(r.Str("start_date")) == today {
				todays = append(todays, r.Str("text"))
			}
		case "fallback":
			fallback = append(fallback, r.Str("text"))
		}
	}
	if len(todays) > 0 {
		return todays
	}
	if len(fallback) > 0 {
		return fallback
	}
	return []string{PlaceholderLine}
}

// TodayOptions returns the option IDs scheduled for today, in source order.
// The date cell is truncated to its first ten characters before comparing.
func TodayOptions(menu []content.Row, today string) []string {
	var ids []string
	for _, r := range menu {
		date := r.Str("date")
		if len(date) > 10 {
			date = date[:10]
		}
		if date == today {
			ids = append(ids, r.Str("option_id"))
		}
	}
	return ids
}

// InteractionType tags how an interaction collects its answer.
type InteractionType string

const (
	// TypeChoice offers a set of literal options.
	TypeChoice InteractionType = "choice"
	// TypeInput collects one line of free text.
	TypeInput InteractionType = "input"
)

// ParseInteractionType normalizes a raw type cell. Unknown and empty values
// count as choice, matching how the page always rendered something tappable.
func ParseInteractionType(raw string) InteractionType {
	if strings.ToLower(strings.TrimSpace(raw)) == string(TypeInput) {
		return TypeInput
	}
	return TypeChoice
}

// Interaction is one prepared daily-chooser item.
type Interaction struct {
	OptionID    string
	Title       string
	Type        InteractionType
	Payload     Value
	ResponseMap Value
}

// JoinInteractions resolves today's option IDs against the interaction rows.
// The lookup is built by insertion, so a later duplicate option_id overwrites
// an earlier one. IDs without a matching row are dropped and the result is
// capped at three entries.
func JoinInteractions(optionIDs []string, rows []content.Row) []Interaction {
	byID := make(map[string]content.Row, len(rows))
	for _, r := range rows {
		byID[r.Str("option_id")] = r
	}

	items := make([]Interaction, 0, maxInteractions)
	for _, id := range optionIDs {
		r, ok := byID[id]
		if !ok {
			continue
		}
		title := r.Str("title")
		if title == "" {
			title = "今天的小互动"
		}
		items = append(items, Interaction{
			OptionID:    r.Str("option_id"),
			Title:       title,
			Type:        ParseInteractionType(r.Str("interaction_type")),
			Payload:     ParseLoose(r["payload"]),
			ResponseMap: ParseLoose(r["response_map"]),
		})
		if len(items) == maxInteractions {
			break
		}
	}
	return items
}

// BoxType tags how a blind box renders once opened.
type BoxType string

const (
	// BoxText renders as a sticky note.
	BoxText BoxType = "text"
	// BoxImage renders as a polaroid frame.
	BoxImage BoxType = "image"
	// BoxVideo renders as a film frame with click-to-expand playback.
	BoxVideo BoxType = "video"
	// BoxLink renders as a link card with a confirmation affordance.
	BoxLink BoxType = "link"
)

// ParseBoxType normalizes a raw type cell; anything unrecognized is text.
func ParseBoxType(raw string) BoxType {
	switch BoxType(strings.ToLower(strings.TrimSpace(raw))) {
	case BoxText, BoxImage, BoxVideo, BoxLink:
		return BoxType(strings.ToLower(strings.TrimSpace(raw)))
	}
	return BoxText
}

// Box is today's blind box entry.
type Box struct {
	Date    string
	Type    BoxType
	Title   string
	Content string
}

// TodayBox returns the first row whose truncated date matches today.
func TodayBox(rows []content.Row, today string) (Box, bool) {
	for _, r := range rows {
		date := r.Str("date")
		if len(date) > 10 {
			date = date[:10]
		}
		if date != today {
			continue
		}
		return Box{
			Date:    date,
			Type:    ParseBoxType(r.Str("type")),
			Title:   r.Str("title"),
			Content: r.Str("content"),
		}, true
	}
	return Box{}, false
}
