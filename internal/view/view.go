// Package view turns journal entries into display cards for the history
// panel, the terminal and HTML output.
package view

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/praxis/internal/constants"
	"github.com/julianstephens/praxis/internal/models"
)

// InvalidDate is shown for timestamps that do not parse.
const InvalidDate = "Invalid Date"

// Card is one rendered history item. Body is plain text with newlines.
type Card struct {
	ID    string
	Badge string
	When  string
	Body  string
	Empty bool
}

// Options controls card rendering.
type Options struct {
	Limit      int
	TimeFormat string
	Location   *time.Location
}

func (o Options) withDefaults() Options {
	if o.Limit <= 0 {
		o.Limit = constants.DefaultHistoryLimit
	}
	if o.TimeFormat == "" {
		o.TimeFormat = constants.DisplayTimeFormat
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	return o
}

// History builds cards for the first Limit entries. An empty journal yields
// a single placeholder card with Empty set.
func History(entries []models.Entry, opts Options) []Card {
	opts = opts.withDefaults()

	if len(entries) == 0 {
		return []Card{{Body: constants.MsgHistoryEmpty, Empty: true}}
	}

	n := min(len(entries), opts.Limit)
	cards := make([]Card, 0, n)
	for _, e := range entries[:n] {
		cards = append(cards, Card{
			ID:    e.ID,
			Badge: e.Kind.Label(),
			When:  FormatTime(e.CreatedAt, opts.TimeFormat, opts.Location),
			Body:  Content(e),
		})
	}
	return cards
}

// FormatTime renders a stored timestamp in loc, or InvalidDate.
func FormatTime(createdAt, layout string, loc *time.Location) string {
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return InvalidDate
	}
	return t.In(loc).Format(layout)
}

// Content is the text block of a card. Payload fields are read loosely so
// entries from older or foreign exports still render; missing values show
// as "undefined".
func Content(e models.Entry) string {
	var payload map[string]any
	if len(e.Payload) > 0 {
		_ = json.Unmarshal(e.Payload, &payload)
	}

	if e.Kind == models.KindCheckIn {
		return "Mood: " + field(payload, "mood") + "/10\n\n" + field(payload, "notes")
	}

	var b strings.Builder
	if theme, ok := payload["theme"]; ok && truthy(theme) {
		b.WriteString("Theme: " + text(theme) + "\n\n")
	}

	if list, ok := payload["priorities"].([]any); ok {
		for i, p := range list {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(strconv.Itoa(i+1) + ". " + text(p))
		}
	}

	b.WriteString("\n\nSmallest step: " + field(payload, "step"))
	b.WriteString("\nTime box: " + field(payload, "timebox") + " min")
	return b.String()
}

func field(payload map[string]any, name string) string {
	v, ok := payload[name]
	if !ok {
		return "undefined"
	}
	return text(v)
}

// text formats a decoded JSON value the way string interpolation would.
func text(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case float64:
		return FormatNumber(v)
	case bool:
		return strconv.FormatBool(v)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			if item != nil {
				parts[i] = text(item)
			}
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case float64:
		return v != 0
	case bool:
		return v
	default:
		return true
	}
}

// FormatNumber prints whole numbers without a fraction and others in the
// shortest form that round-trips.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
