package validation

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/julianstephens/praxis/internal/constants"
	"github.com/julianstephens/praxis/internal/models"
)

// ValidationError reports a user-correctable problem with a form. Message is
// suitable for showing as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CheckIn validates a check-in form and returns the payload to persist.
func CheckIn(form models.CheckInForm) (models.CheckIn, error) {
	mood, ok := ParseNumber(form.Mood)
	if !ok || mood < constants.MoodMin || mood > constants.MoodMax {
		return models.CheckIn{}, &ValidationError{Field: "mood", Message: constants.MsgMoodInvalid}
	}

	notes := strings.TrimSpace(form.Notes)
	if notes == "" {
		return models.CheckIn{}, &ValidationError{Field: "notes", Message: constants.MsgNotesRequired}
	}

	return models.CheckIn{Mood: mood, Notes: notes}, nil
}

// Plan validates a plan form and returns the payload to persist.
func Plan(form models.PlanForm) (models.Plan, error) {
	priorities := make([]string, 0, constants.PriorityCount)
	for _, p := range form.Priorities {
		p = strings.TrimSpace(p)
		if p == "" {
			return models.Plan{}, &ValidationError{Field: "priorities", Message: constants.MsgPlanIncomplete}
		}
		priorities = append(priorities, p)
	}

	step := strings.TrimSpace(form.Step)
	if step == "" {
		return models.Plan{}, &ValidationError{Field: "step", Message: constants.MsgPlanIncomplete}
	}

	timebox, ok := ParseNumber(form.Timebox)
	if !ok || timebox < constants.TimeboxMin || timebox > constants.TimeboxMax {
		return models.Plan{}, &ValidationError{Field: "timebox", Message: constants.MsgTimeboxInvalid}
	}

	return models.Plan{
		Theme:      strings.TrimSpace(form.Theme),
		Priorities: priorities,
		Step:       step,
		Timebox:    timebox,
	}, nil
}

// ParseNumber converts form text to a finite number the way a browser number
// field does. See Number.
func ParseNumber(s string) (float64, bool) {
	v := Number(s)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Number coerces text like a browser: surrounding whitespace is ignored,
// blank input is zero, unsigned 0x, 0o and 0b literals are read in their
// radix, and anything else that is not a decimal literal or Infinity is NaN.
func Number(s string) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		if base, ok := radixPrefixes[s[1]|0x20]; ok {
			v, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(v)
		}
	}

	// ParseFloat also reads inf, nan, underscores and hex floats.
	if strings.Trim(s, "0123456789+-.eE") != "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

var radixPrefixes = map[byte]int{'x': 16, 'o': 8, 'b': 2}
