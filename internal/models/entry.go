package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/julianstephens/praxis/internal/constants"
)

type Kind string

const (
	KindCheckIn Kind = "checkin"
	KindPlan    Kind = "plan"
)

// Label returns the badge text shown for the kind. Anything that is not a
// check-in renders as a plan.
func (k Kind) Label() string {
	if k == KindCheckIn {
		return "Check-in"
	}
	return "Plan"
}

// Entry is one persisted journal record. Payload is kept as raw JSON so that
// entries imported from another device survive a save/export cycle unchanged.
type Entry struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"type"`
	CreatedAt string          `json:"createdAt"` // ISO-8601, see constants.CreatedAtFormat
	Payload   json.RawMessage `json:"payload"`
}

type CheckIn struct {
	Mood  float64 `json:"mood"`
	Notes string  `json:"notes"`
}

type Plan struct {
	Theme      string   `json:"theme"`
	Priorities []string `json:"priorities"`
	Step       string   `json:"step"`
	Timebox    float64  `json:"timebox"`
}

// Document is the container persisted under constants.StorageKey and written
// by export.
type Document struct {
	Entries []Entry `json:"entries"`
}

// NewEntry builds an entry with the given payload encoded as JSON.
func NewEntry(id string, kind Kind, createdAt time.Time, payload any) (Entry, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to encode %s payload: %w", kind, err)
	}
	return Entry{
		ID:        id,
		Kind:      kind,
		CreatedAt: createdAt.UTC().Format(constants.CreatedAtFormat),
		Payload:   raw,
	}, nil
}

// CheckIn decodes the payload as a check-in.
func (e Entry) CheckIn() (CheckIn, error) {
	var c CheckIn
	if err := e.decode(&c); err != nil {
		return CheckIn{}, err
	}
	return c, nil
}

// Plan decodes the payload as a plan.
func (e Entry) Plan() (Plan, error) {
	var p Plan
	if err := e.decode(&p); err != nil {
		return Plan{}, err
	}
	return p, nil
}

func (e Entry) decode(v any) error {
	if len(e.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("failed to decode payload of entry %s: %w", e.ID, err)
	}
	return nil
}

// Time parses CreatedAt. Timestamps written by other tools may carry an
// offset instead of Z, so RFC3339 with optional fractions is accepted.
func (e Entry) Time() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, e.CreatedAt)
}

// UnmarshalJSON accepts numbers and booleans where strings are expected for
// id, type and createdAt, and converts them to their text form. Entries
// written by other tools keep their identity instead of being dropped.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        json.RawMessage `json:"id"`
		Kind      json.RawMessage `json:"type"`
		CreatedAt json.RawMessage `json:"createdAt"`
		Payload   json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := scalarText(raw.ID)
	if err != nil {
		return fmt.Errorf("id: %w", err)
	}
	kind, err := scalarText(raw.Kind)
	if err != nil {
		return fmt.Errorf("type: %w", err)
	}
	createdAt, err := scalarText(raw.CreatedAt)
	if err != nil {
		return fmt.Errorf("createdAt: %w", err)
	}

	*e = Entry{ID: id, Kind: Kind(kind), CreatedAt: createdAt, Payload: raw.Payload}
	return nil
}

// scalarText returns the text of a JSON string, number or boolean. Null and
// absent values are empty.
func scalarText(raw json.RawMessage) (string, error) {
	var v any
	if len(raw) == 0 {
		return "", nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", err
	}
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("unsupported value %s", raw)
	}
}
